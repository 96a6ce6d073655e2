package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/knakk/rdf"

	"github.com/c360studio/entityloader/graph"
)

type (
	decodeFunc func(io.Reader) (*graph.Graph, error)
	encodeFunc func(io.Writer, *graph.Graph) error
)

// codecs maps each format to its decoder and encoder. A nil encoder means the
// format is decode-only.
var codecs = map[Format]struct {
	decode decodeFunc
	encode encodeFunc
}{
	FormatTurtle: {
		decode: func(r io.Reader) (*graph.Graph, error) { return decodeTriples(r, rdf.Turtle) },
		encode: func(w io.Writer, g *graph.Graph) error { return encodeTriples(w, g, rdf.Turtle) },
	},
	FormatNTriples: {
		decode: func(r io.Reader) (*graph.Graph, error) { return decodeTriples(r, rdf.NTriples) },
		encode: func(w io.Writer, g *graph.Graph) error { return encodeTriples(w, g, rdf.NTriples) },
	},
	FormatRDFXML: {
		decode: func(r io.Reader) (*graph.Graph, error) { return decodeTriples(r, rdf.RDFXML) },
	},
	FormatJSONLD: {
		decode: decodeJSONLD,
		encode: encodeJSONLD,
	},
}

// Decode reads a whole document in the given format. Malformed input yields an
// error wrapping ErrSyntax; no partial graph is returned.
func Decode(r io.Reader, format Format) (*graph.Graph, error) {
	c, ok := codecs[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return c.decode(r)
}

// Encode writes g in the given format.
func Encode(w io.Writer, g *graph.Graph, format Format) error {
	c, ok := codecs[format]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if c.encode == nil {
		return fmt.Errorf("%w: %s", ErrEncodeUnsupported, format)
	}
	return c.encode(w, g)
}

// Marshal encodes g into a byte slice.
func Marshal(g *graph.Graph, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, g, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a document held in memory.
func Unmarshal(data []byte, format Format) (*graph.Graph, error) {
	return Decode(bytes.NewReader(data), format)
}

// decodeTriples drains a knakk/rdf triple decoder into a graph.
func decodeTriples(r io.Reader, f rdf.Format) (*graph.Graph, error) {
	dec := rdf.NewTripleDecoder(r, f)
	g := graph.New()
	for {
		tr, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return g, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		s, err := fromTriple(tr)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		g.Add(s)
	}
}

// decodeQuads drains an N-Quads stream into a graph, folding every named graph
// into the default one.
func decodeQuads(r io.Reader) (*graph.Graph, error) {
	dec := rdf.NewQuadDecoder(r, rdf.NQuads)
	g := graph.New()
	for {
		q, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return g, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		s, err := fromTriple(q.Triple)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		g.Add(s)
	}
}

// encodeTriples writes g through a knakk/rdf triple encoder.
func encodeTriples(w io.Writer, g *graph.Graph, f rdf.Format) error {
	enc := rdf.NewTripleEncoder(w, f)
	for _, s := range g.Statements() {
		tr, err := toTriple(s)
		if err != nil {
			return fmt.Errorf("encode statement %s: %w", s, err)
		}
		if err := enc.Encode(tr); err != nil {
			return fmt.Errorf("encode statement %s: %w", s, err)
		}
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush encoder: %w", err)
	}
	return nil
}
