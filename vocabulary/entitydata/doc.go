// Package entitydata provides the vocabulary the entity loader works with.
//
// The entity registry stores concepts in the http://unit.no/entitydata#
// namespace. A concept is any subject typed with ClassConcept; predicates in
// the identity set link a concept to another name for the same thing and are
// never redirected to registry IRIs when references are rewritten.
//
// # Semstreams Integration
//
// Predicates are registered in init() with vocabulary.Register using the
// three-level dotted notation, and each carries its RDF IRI through
// vocabulary.WithIRI. Identity predicates are marked with
// vocabulary.WithAlias(vocabulary.AliasTypeIdentity, priority), so any other
// package that registers an identity alias with a standard IRI extends the set
// returned by IdentityPredicates.
//
// # Usage
//
//	import "github.com/c360studio/entityloader/vocabulary/entitydata"
//
//	concepts := remap.SelectConcepts(g, graph.IRI(entitydata.ClassConcept))
//	policy := remap.RewritePolicy{
//	    PreserveIdentity:   true,
//	    IdentityPredicates: entitydata.IdentityPredicates(),
//	}
package entitydata
