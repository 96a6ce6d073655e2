package entitydata

import (
	"sort"

	"github.com/c360studio/semstreams/vocabulary"
)

// Identity predicates link a concept to another identifier for the same entity.
const (
	// SameAs is the registry's own equivalence predicate.
	SameAs = "entitydata.identity.same_as"

	// OwlSameAs is owl:sameAs, accepted in input documents as an equivalent of SameAs.
	OwlSameAs = "entitydata.identity.owl_same_as"
)

func init() {
	vocabulary.Register(SameAs,
		vocabulary.WithDescription("Equivalent resource in another identifier scheme"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(SameAsIRI),
		vocabulary.WithAlias(vocabulary.AliasTypeIdentity, 0))

	vocabulary.Register(OwlSameAs,
		vocabulary.WithDescription("OWL equivalence between two resources"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(OwlSameAsIRI),
		vocabulary.WithAlias(vocabulary.AliasTypeIdentity, 1))
}

// IdentityPredicates returns the RDF IRIs of every registered identity alias
// predicate, sorted. Predicates registered without a standard IRI are ignored.
func IdentityPredicates() []string {
	seen := make(map[string]struct{})
	for name := range vocabulary.DiscoverAliasPredicates() {
		meta := vocabulary.GetPredicateMetadata(name)
		if meta == nil || meta.AliasType != vocabulary.AliasTypeIdentity || meta.StandardIRI == "" {
			continue
		}
		seen[meta.StandardIRI] = struct{}{}
	}

	iris := make([]string, 0, len(seen))
	for iri := range seen {
		iris = append(iris, iri)
	}
	sort.Strings(iris)
	return iris
}
