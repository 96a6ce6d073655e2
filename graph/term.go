// Package graph provides the in-memory statement store the loader works on.
//
// A Graph is a set of subject-predicate-object statements. Duplicate statements
// collapse and iteration follows first-insertion order, so every pass over a
// graph is deterministic.
package graph

import (
	"fmt"
	"strings"
)

// Well-known IRIs used when normalizing literals and selecting concepts.
const (
	RDFType       = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	RDFLangString = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"
	XSDString     = "http://www.w3.org/2001/XMLSchema#string"
)

// TermKind identifies what a Term denotes.
type TermKind int

const (
	// KindAny is the zero kind. A Term of this kind matches anything in a Pattern.
	KindAny TermKind = iota
	// KindIRI is an IRI reference.
	KindIRI
	// KindBlank is a blank node.
	KindBlank
	// KindLiteral is a literal value.
	KindLiteral
)

// String returns the kind name.
func (k TermKind) String() string {
	switch k {
	case KindIRI:
		return "iri"
	case KindBlank:
		return "blank"
	case KindLiteral:
		return "literal"
	default:
		return "any"
	}
}

// Term is an RDF term. Terms are comparable values and can be used as map keys.
type Term struct {
	Kind     TermKind
	Value    string
	Datatype string
	Lang     string
}

// IRI returns an IRI term.
func IRI(iri string) Term {
	return Term{Kind: KindIRI, Value: iri}
}

// Blank returns a blank node term. A leading "_:" is stripped.
func Blank(id string) Term {
	return Term{Kind: KindBlank, Value: strings.TrimPrefix(id, "_:")}
}

// Literal returns a plain literal, typed as xsd:string.
func Literal(value string) Term {
	return Term{Kind: KindLiteral, Value: value, Datatype: XSDString}
}

// LangLiteral returns a language-tagged literal.
func LangLiteral(value, lang string) Term {
	return Term{Kind: KindLiteral, Value: value, Datatype: RDFLangString, Lang: strings.ToLower(lang)}
}

// TypedLiteral returns a literal with an explicit datatype. An empty datatype
// yields a plain literal.
func TypedLiteral(value, datatype string) Term {
	if datatype == "" {
		return Literal(value)
	}
	return Term{Kind: KindLiteral, Value: value, Datatype: datatype}
}

// IsIRI reports whether the term is an IRI.
func (t Term) IsIRI() bool { return t.Kind == KindIRI }

// IsBlank reports whether the term is a blank node.
func (t Term) IsBlank() bool { return t.Kind == KindBlank }

// IsLiteral reports whether the term is a literal.
func (t Term) IsLiteral() bool { return t.Kind == KindLiteral }

// IsAny reports whether the term is the wildcard zero value.
func (t Term) IsAny() bool { return t.Kind == KindAny }

// String renders the term in N-Triples syntax.
func (t Term) String() string {
	switch t.Kind {
	case KindIRI:
		return "<" + t.Value + ">"
	case KindBlank:
		return "_:" + t.Value
	case KindLiteral:
		quoted := `"` + escapeLiteral(t.Value) + `"`
		if t.Lang != "" {
			return quoted + "@" + t.Lang
		}
		if t.Datatype != "" && t.Datatype != XSDString {
			return quoted + "^^<" + t.Datatype + ">"
		}
		return quoted
	default:
		return "?"
	}
}

// matches reports whether t satisfies the pattern term p.
func (t Term) matches(p Term) bool {
	return p.IsAny() || t == p
}

// escapeLiteral escapes special characters for N-Triples literal output.
func escapeLiteral(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}

// Statement is a single subject-predicate-object triple.
type Statement struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// NewStatement builds a statement, checking the RDF position rules: subjects
// are IRIs or blank nodes, predicates are IRIs, objects are any concrete term.
func NewStatement(subject, predicate, object Term) (Statement, error) {
	if !subject.IsIRI() && !subject.IsBlank() {
		return Statement{}, fmt.Errorf("invalid subject %s: must be an IRI or blank node", subject)
	}
	if !predicate.IsIRI() {
		return Statement{}, fmt.Errorf("invalid predicate %s: must be an IRI", predicate)
	}
	if object.IsAny() {
		return Statement{}, fmt.Errorf("invalid object: wildcard term")
	}
	return Statement{Subject: subject, Predicate: predicate, Object: object}, nil
}

// String renders the statement as an N-Triples line without the trailing newline.
func (s Statement) String() string {
	return fmt.Sprintf("%s %s %s .", s.Subject, s.Predicate, s.Object)
}
