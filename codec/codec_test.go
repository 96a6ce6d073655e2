package codec_test

import (
	"strings"
	"testing"

	"github.com/c360studio/entityloader/codec"
	"github.com/c360studio/entityloader/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	exA     = "http://example.org/A"
	exB     = "http://example.org/B"
	exName  = "http://example.org/name"
	exKnows = "http://example.org/knows"
	concept = "http://unit.no/entitydata#Concept"
)

const turtleDoc = `@prefix ex: <http://example.org/> .
@prefix ed: <http://unit.no/entitydata#> .

ex:A a ed:Concept ;
    ex:name "Alice" .

ex:B ex:knows ex:A .
`

func sampleGraph() *graph.Graph {
	return graph.New(
		graph.Statement{Subject: graph.IRI(exA), Predicate: graph.IRI(graph.RDFType), Object: graph.IRI(concept)},
		graph.Statement{Subject: graph.IRI(exA), Predicate: graph.IRI(exName), Object: graph.Literal("Alice")},
		graph.Statement{Subject: graph.IRI(exB), Predicate: graph.IRI(exKnows), Object: graph.IRI(exA)},
	)
}

func TestDecodeTurtle(t *testing.T) {
	g, err := codec.Decode(strings.NewReader(turtleDoc), codec.FormatTurtle)
	require.NoError(t, err)

	assert.True(t, g.Equal(sampleGraph()), "decoded graph: %v", g.Statements())
}

func TestDecodeNTriples(t *testing.T) {
	doc := `<http://example.org/A> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://unit.no/entitydata#Concept> .
<http://example.org/A> <http://example.org/name> "Alice" .
<http://example.org/B> <http://example.org/knows> <http://example.org/A> .
<http://example.org/B> <http://example.org/knows> <http://example.org/A> .
`
	g, err := codec.Decode(strings.NewReader(doc), codec.FormatNTriples)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Len(), "duplicate statements collapse")
	assert.True(t, g.Equal(sampleGraph()))
}

func TestDecodeRDFXML(t *testing.T) {
	doc := `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:ex="http://example.org/">
  <rdf:Description rdf:about="http://example.org/B">
    <ex:knows rdf:resource="http://example.org/A"/>
  </rdf:Description>
</rdf:RDF>
`
	g, err := codec.Decode(strings.NewReader(doc), codec.FormatRDFXML)
	require.NoError(t, err)

	got := g.Select(graph.Pattern{Predicate: graph.IRI(exKnows)})
	require.Len(t, got, 1)
	assert.Equal(t, graph.IRI(exB), got[0].Subject)
	assert.Equal(t, graph.IRI(exA), got[0].Object)
}

func TestDecodeJSONLD(t *testing.T) {
	doc := `{
  "@id": "http://example.org/A",
  "@type": "http://unit.no/entitydata#Concept",
  "http://example.org/knows": {"@id": "http://example.org/B"}
}`
	g, err := codec.Decode(strings.NewReader(doc), codec.FormatJSONLD)
	require.NoError(t, err)

	assert.Equal(t, 2, g.Len())
	assert.True(t, g.Contains(graph.Statement{
		Subject: graph.IRI(exA), Predicate: graph.IRI(graph.RDFType), Object: graph.IRI(concept),
	}))
	assert.True(t, g.Contains(graph.Statement{
		Subject: graph.IRI(exA), Predicate: graph.IRI(exKnows), Object: graph.IRI(exB),
	}))
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []codec.Format{codec.FormatTurtle, codec.FormatNTriples, codec.FormatJSONLD} {
		t.Run(string(format), func(t *testing.T) {
			data, err := codec.Marshal(sampleGraph(), format)
			require.NoError(t, err)

			back, err := codec.Unmarshal(data, format)
			require.NoError(t, err)
			assert.True(t, sampleGraph().Equal(back), "round trip through %s:\n%s", format, data)
		})
	}
}

func TestEncodeNTriples_OneLinePerStatement(t *testing.T) {
	data, err := codec.Marshal(sampleGraph(), codec.FormatNTriples)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, " ."), "N-Triple line should end with ' .': %s", line)
	}
}

func TestDecode_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name   string
		format codec.Format
		doc    string
	}{
		{"turtle missing terminator", codec.FormatTurtle, `<http://example.org/A> <http://example.org/name> "Alice"`},
		{"ntriples bare word", codec.FormatNTriples, "not a triple at all\n"},
		{"jsonld not json", codec.FormatJSONLD, `{"@id": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := codec.Decode(strings.NewReader(tt.doc), tt.format)
			require.Error(t, err)
			assert.ErrorIs(t, err, codec.ErrSyntax)
			assert.Nil(t, g)
		})
	}
}

func TestEncodeRDFXML_Unsupported(t *testing.T) {
	_, err := codec.Marshal(sampleGraph(), codec.FormatRDFXML)
	assert.ErrorIs(t, err, codec.ErrEncodeUnsupported)
}

func TestUnknownFormat(t *testing.T) {
	_, err := codec.Decode(strings.NewReader(""), codec.Format("trix"))
	assert.ErrorIs(t, err, codec.ErrUnknownFormat)

	_, err = codec.Marshal(graph.New(), codec.Format("trix"))
	assert.ErrorIs(t, err, codec.ErrUnknownFormat)
}
