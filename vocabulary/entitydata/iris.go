package entitydata

import "github.com/c360studio/semstreams/vocabulary"

// Namespace is the base IRI of the entity registry vocabulary.
const Namespace = "http://unit.no/entitydata#"

// ClassConcept is the class whose instances are externalized to the registry.
const ClassConcept = Namespace + "Concept"

// Predicate IRIs.
const (
	// SameAsIRI links a concept to an equivalent resource.
	SameAsIRI = Namespace + "sameAs"

	// OwlSameAsIRI is the OWL equivalence predicate.
	OwlSameAsIRI = vocabulary.OwlSameAs
)
