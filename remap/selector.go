package remap

import "github.com/c360studio/entityloader/graph"

// SelectConcepts returns every distinct IRI subject typed as class, in order of
// first occurrence. Blank nodes are skipped since they have no IRI to map.
func SelectConcepts(g *graph.Graph, class graph.Term) []graph.Term {
	typed := g.Select(graph.Pattern{
		Predicate: graph.IRI(graph.RDFType),
		Object:    class,
	})

	seen := make(map[graph.Term]struct{}, len(typed))
	concepts := make([]graph.Term, 0, len(typed))
	for _, s := range typed {
		if !s.Subject.IsIRI() {
			continue
		}
		if _, ok := seen[s.Subject]; ok {
			continue
		}
		seen[s.Subject] = struct{}{}
		concepts = append(concepts, s.Subject)
	}
	return concepts
}
