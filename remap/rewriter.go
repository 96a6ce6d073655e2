package remap

import (
	"github.com/c360studio/entityloader/graph"
	"github.com/c360studio/entityloader/vocabulary/entitydata"
)

// RewritePolicy controls which references Rewrite substitutes.
type RewritePolicy struct {
	// PreserveIdentity leaves the object of identity predicates pointing at
	// the local IRI, so equivalence links survive the rewrite.
	PreserveIdentity bool
	// IdentityPredicates are the predicate IRIs treated as identity links.
	IdentityPredicates []string
}

// DefaultRewritePolicy preserves identity links for every identity predicate
// known to the vocabulary registry.
func DefaultRewritePolicy() RewritePolicy {
	return RewritePolicy{
		PreserveIdentity:   true,
		IdentityPredicates: entitydata.IdentityPredicates(),
	}
}

// Rewrite returns a new graph in which mapped concept IRIs are replaced by
// their registry IRIs. Subjects are always substituted; IRI objects are
// substituted unless the policy preserves the predicate. Literals, blank nodes
// and unmapped IRIs pass through. g is not modified.
func Rewrite(g *graph.Graph, m *Mapping, policy RewritePolicy) *graph.Graph {
	preserved := make(map[string]struct{}, len(policy.IdentityPredicates))
	if policy.PreserveIdentity {
		for _, p := range policy.IdentityPredicates {
			preserved[p] = struct{}{}
		}
	}

	out := graph.New()
	for _, s := range g.Statements() {
		s.Subject = substitute(s.Subject, m)
		if _, keep := preserved[s.Predicate.Value]; !keep {
			s.Object = substitute(s.Object, m)
		}
		out.Add(s)
	}
	return out
}

func substitute(t graph.Term, m *Mapping) graph.Term {
	if !t.IsIRI() {
		return t
	}
	if iri, ok := m.Lookup(t.Value); ok {
		return graph.IRI(iri)
	}
	return t
}
