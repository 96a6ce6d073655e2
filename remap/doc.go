// Package remap moves the concepts of a graph into the entity registry and
// rewrites every reference to them.
//
// A run goes through fixed stages:
//
//	Loaded -> ConceptsDiscovered -> IdentitiesMinted -> Rewritten -> Persisted
//
// SelectConcepts finds the subjects typed as concepts. The Materializer
// creates one registry entity per concept and records the issued IRI in a
// Mapping. Rewrite substitutes the registry IRIs throughout the graph, and the
// Persister writes each concept's rewritten statements back to its entity.
// Pipeline chains the stages and stops at the first failure, reporting it as
// an *Error whose Kind tells the caller how to exit.
//
// Work is sequential. The Mapping is complete before any statement is
// rewritten, since any concept may reference any other.
package remap
