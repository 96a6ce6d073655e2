package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/knakk/rdf"
	"github.com/piprate/json-gold/ld"

	"github.com/c360studio/entityloader/graph"
)

// nquadsMIME is the json-gold serializer name for N-Quads.
const nquadsMIME = "application/n-quads"

func jsonldOptions() *ld.JsonLdOptions {
	opts := ld.NewJsonLdOptions("")
	opts.Format = nquadsMIME
	return opts
}

// decodeJSONLD expands the document to N-Quads with json-gold and reads those
// back as statements.
func decodeJSONLD(r io.Reader) (*graph.Graph, error) {
	doc, err := ld.DocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	out, err := ld.NewJsonLdProcessor().ToRDF(doc, jsonldOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	nquads, ok := out.(string)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected json-ld output %T", ErrSyntax, out)
	}
	return decodeQuads(strings.NewReader(nquads))
}

// encodeJSONLD writes g as expanded JSON-LD.
func encodeJSONLD(w io.Writer, g *graph.Graph) error {
	var nt bytes.Buffer
	if err := encodeTriples(&nt, g, rdf.NTriples); err != nil {
		return err
	}

	expanded, err := ld.NewJsonLdProcessor().FromRDF(nt.String(), jsonldOptions())
	if err != nil {
		return fmt.Errorf("convert to json-ld: %w", err)
	}

	data, err := json.MarshalIndent(expanded, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json-ld: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json-ld: %w", err)
	}
	return nil
}
