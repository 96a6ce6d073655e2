package graph

// Pattern selects statements. Zero-valued terms are wildcards.
type Pattern struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// Graph is an ordered, de-duplicating set of statements. The zero value is an
// empty graph ready to use. A Graph is not safe for concurrent mutation.
type Graph struct {
	statements []Statement
	index      map[Statement]struct{}
}

// New creates a graph holding the given statements.
func New(statements ...Statement) *Graph {
	g := &Graph{
		statements: make([]Statement, 0, len(statements)),
		index:      make(map[Statement]struct{}, len(statements)),
	}
	g.AddAll(statements)
	return g
}

// Add inserts a statement. It reports false when the statement was already present.
func (g *Graph) Add(s Statement) bool {
	if _, exists := g.index[s]; exists {
		return false
	}
	if g.index == nil {
		g.index = make(map[Statement]struct{})
	}
	g.index[s] = struct{}{}
	g.statements = append(g.statements, s)
	return true
}

// AddAll inserts every statement and returns how many were new.
func (g *Graph) AddAll(statements []Statement) int {
	added := 0
	for _, s := range statements {
		if g.Add(s) {
			added++
		}
	}
	return added
}

// Merge inserts every statement of other and returns how many were new.
func (g *Graph) Merge(other *Graph) int {
	if other == nil {
		return 0
	}
	return g.AddAll(other.statements)
}

// Len returns the number of distinct statements.
func (g *Graph) Len() int {
	return len(g.statements)
}

// IsEmpty reports whether the graph holds no statements.
func (g *Graph) IsEmpty() bool {
	return len(g.statements) == 0
}

// Contains reports whether the statement is in the graph.
func (g *Graph) Contains(s Statement) bool {
	_, ok := g.index[s]
	return ok
}

// Statements returns a copy of all statements in insertion order.
func (g *Graph) Statements() []Statement {
	out := make([]Statement, len(g.statements))
	copy(out, g.statements)
	return out
}

// Select returns every statement matching the pattern, in insertion order.
func (g *Graph) Select(p Pattern) []Statement {
	var out []Statement
	for _, s := range g.statements {
		if s.Subject.matches(p.Subject) && s.Predicate.matches(p.Predicate) && s.Object.matches(p.Object) {
			out = append(out, s)
		}
	}
	return out
}

// Subgraph returns a new graph holding the statements matching the pattern.
func (g *Graph) Subgraph(p Pattern) *Graph {
	return New(g.Select(p)...)
}

// Subjects returns the distinct subjects in order of first occurrence.
func (g *Graph) Subjects() []Term {
	seen := make(map[Term]struct{})
	var out []Term
	for _, s := range g.statements {
		if _, ok := seen[s.Subject]; ok {
			continue
		}
		seen[s.Subject] = struct{}{}
		out = append(out, s.Subject)
	}
	return out
}

// HasSubject reports whether any statement has t as its subject.
func (g *Graph) HasSubject(t Term) bool {
	for _, s := range g.statements {
		if s.Subject == t {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the graph.
func (g *Graph) Clone() *Graph {
	return New(g.statements...)
}

// Equal reports whether both graphs hold the same statements, regardless of order.
// Blank nodes are compared by label.
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.Len() != other.Len() {
		return false
	}
	for _, s := range g.statements {
		if !other.Contains(s) {
			return false
		}
	}
	return true
}
