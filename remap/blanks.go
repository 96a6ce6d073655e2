package remap

import (
	"fmt"
	"strings"

	"github.com/c360studio/entityloader/graph"
)

// blankLabels returns the label of every blank node in g.
func blankLabels(g *graph.Graph) map[string]struct{} {
	labels := make(map[string]struct{})
	for _, s := range g.Statements() {
		for _, t := range []graph.Term{s.Subject, s.Object} {
			if t.IsBlank() {
				labels[t.Value] = struct{}{}
			}
		}
	}
	return labels
}

// scopeBlankNodes renames the blank nodes of g to labels prefixed with scope.
// A label already in taken gets a numeric suffix. Every label handed out is
// added to taken, so graphs scoped against the same set never share a node.
func scopeBlankNodes(g *graph.Graph, scope string, taken map[string]struct{}) *graph.Graph {
	renamed := make(map[string]graph.Term)
	relabel := func(t graph.Term) graph.Term {
		if !t.IsBlank() {
			return t
		}
		if r, ok := renamed[t.Value]; ok {
			return r
		}
		label := scope + "_" + t.Value
		for n := 1; ; n++ {
			if _, used := taken[label]; !used {
				break
			}
			label = fmt.Sprintf("%s_%s_%d", scope, t.Value, n)
		}
		taken[label] = struct{}{}
		r := graph.Blank(label)
		renamed[t.Value] = r
		return r
	}

	out := graph.New()
	for _, s := range g.Statements() {
		out.Add(graph.Statement{Subject: relabel(s.Subject), Predicate: s.Predicate, Object: relabel(s.Object)})
	}
	return out
}

// blankScope derives a blank node label prefix from a registry IRI.
func blankScope(iri string) string {
	scope := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, lastSegment(iri))
	return "e" + scope
}
