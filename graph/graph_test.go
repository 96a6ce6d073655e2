package graph_test

import (
	"testing"

	"github.com/c360studio/entityloader/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	exA     = "http://example.org/A"
	exB     = "http://example.org/B"
	name    = "http://example.org/name"
	knows   = "http://example.org/knows"
	concept = "http://unit.no/entitydata#Concept"
)

func st(s, p string, o graph.Term) graph.Statement {
	return graph.Statement{Subject: graph.IRI(s), Predicate: graph.IRI(p), Object: o}
}

func TestGraph_DuplicatesCollapse(t *testing.T) {
	g := graph.New()

	assert.True(t, g.Add(st(exA, name, graph.Literal("Alice"))))
	assert.False(t, g.Add(st(exA, name, graph.Literal("Alice"))))
	assert.True(t, g.Add(st(exA, name, graph.LangLiteral("Alice", "en"))))

	assert.Equal(t, 2, g.Len())
}

func TestGraph_ZeroValue(t *testing.T) {
	var g graph.Graph
	assert.True(t, g.IsEmpty())
	assert.False(t, g.Contains(st(exA, name, graph.Literal("Alice"))))

	assert.True(t, g.Add(st(exA, name, graph.Literal("Alice"))))
	assert.False(t, g.Add(st(exA, name, graph.Literal("Alice"))))
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 1, graph.New().Merge(&g))
}

func TestGraph_SelectPatterns(t *testing.T) {
	g := graph.New(
		st(exA, graph.RDFType, graph.IRI(concept)),
		st(exA, name, graph.Literal("Alice")),
		st(exB, knows, graph.IRI(exA)),
		st(exB, graph.RDFType, graph.IRI(concept)),
	)

	tests := []struct {
		name    string
		pattern graph.Pattern
		want    int
	}{
		{"wildcard", graph.Pattern{}, 4},
		{"by subject", graph.Pattern{Subject: graph.IRI(exA)}, 2},
		{"by predicate and object", graph.Pattern{Predicate: graph.IRI(graph.RDFType), Object: graph.IRI(concept)}, 2},
		{"by object", graph.Pattern{Object: graph.IRI(exA)}, 1},
		{"no match", graph.Pattern{Subject: graph.IRI("http://example.org/none")}, 0},
		{"literal is not an iri", graph.Pattern{Object: graph.IRI("Alice")}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, g.Select(tt.pattern), tt.want)
		})
	}
}

func TestGraph_SelectKeepsInsertionOrder(t *testing.T) {
	g := graph.New(
		st(exB, knows, graph.IRI(exA)),
		st(exA, name, graph.Literal("Alice")),
		st(exA, knows, graph.IRI(exB)),
	)

	got := g.Select(graph.Pattern{Subject: graph.IRI(exA)})
	require.Len(t, got, 2)
	assert.Equal(t, name, got[0].Predicate.Value)
	assert.Equal(t, knows, got[1].Predicate.Value)

	assert.Equal(t, []graph.Term{graph.IRI(exB), graph.IRI(exA)}, g.Subjects())
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := graph.New(st(exA, name, graph.Literal("Alice")))
	c := g.Clone()
	c.Add(st(exB, name, graph.Literal("Bob")))

	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 2, c.Len())
	assert.False(t, g.Equal(c))
}

func TestGraph_EqualIgnoresOrder(t *testing.T) {
	a := graph.New(st(exA, name, graph.Literal("Alice")), st(exB, knows, graph.IRI(exA)))
	b := graph.New(st(exB, knows, graph.IRI(exA)), st(exA, name, graph.Literal("Alice")))

	assert.True(t, a.Equal(b))
	assert.True(t, graph.New().Equal(graph.New()))
}

func TestNewStatement_PositionRules(t *testing.T) {
	_, err := graph.NewStatement(graph.Literal("x"), graph.IRI(name), graph.Literal("y"))
	assert.Error(t, err)

	_, err = graph.NewStatement(graph.IRI(exA), graph.Blank("b0"), graph.Literal("y"))
	assert.Error(t, err)

	_, err = graph.NewStatement(graph.IRI(exA), graph.IRI(name), graph.Term{})
	assert.Error(t, err)

	s, err := graph.NewStatement(graph.Blank("_:b0"), graph.IRI(name), graph.Literal("y"))
	require.NoError(t, err)
	assert.Equal(t, "b0", s.Subject.Value)
}

func TestTerm_String(t *testing.T) {
	tests := []struct {
		term graph.Term
		want string
	}{
		{graph.IRI(exA), "<http://example.org/A>"},
		{graph.Blank("b1"), "_:b1"},
		{graph.Literal("say \"hi\""), `"say \"hi\""`},
		{graph.LangLiteral("hei", "NO"), `"hei"@no`},
		{graph.TypedLiteral("1", "http://www.w3.org/2001/XMLSchema#integer"), `"1"^^<http://www.w3.org/2001/XMLSchema#integer>`},
		{graph.TypedLiteral("plain", ""), `"plain"`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.term.String())
		})
	}
}
