package remap_test

import (
	"github.com/c360studio/entityloader/graph"
	"github.com/c360studio/entityloader/vocabulary/entitydata"
)

const (
	exA     = "http://example.org/A"
	exB     = "http://example.org/B"
	exC     = "http://example.org/C"
	exName  = "http://example.org/name"
	exKnows = "http://example.org/knows"
)

func iri(v string) graph.Term { return graph.IRI(v) }

func st(s, p string, o graph.Term) graph.Statement {
	return graph.Statement{Subject: iri(s), Predicate: iri(p), Object: o}
}

func typed(s string) graph.Statement {
	return st(s, graph.RDFType, iri(entitydata.ClassConcept))
}
