// Package codec converts between serialized RDF documents and graph.Graph values.
package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Format specifies an RDF serialization.
type Format string

const (
	// FormatTurtle is Turtle (.ttl).
	FormatTurtle Format = "turtle"

	// FormatNTriples is N-Triples (.nt).
	FormatNTriples Format = "ntriples"

	// FormatRDFXML is RDF/XML (.rdf, .xml). Decode only.
	FormatRDFXML Format = "rdfxml"

	// FormatJSONLD is JSON-LD (.jsonld, .json).
	FormatJSONLD Format = "jsonld"
)

var (
	// ErrUnknownFormat is returned when a label or extension maps to no format.
	ErrUnknownFormat = errors.New("unknown serialization")

	// ErrSyntax wraps every decoding failure caused by a malformed document.
	ErrSyntax = errors.New("graph syntax error")

	// ErrEncodeUnsupported is returned when a format has no encoder.
	ErrEncodeUnsupported = errors.New("encoding not supported")
)

// FormatInfo provides metadata about a serialization.
type FormatInfo struct {
	// Name is the format identifier, also the CLI label.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extensions are the recognized file extensions, without the dot.
	Extensions []string

	// Description describes the format.
	Description string

	// CanEncode reports whether the format has an encoder.
	CanEncode bool
}

// formats lists every supported serialization in lookup order.
var formats = []FormatInfo{
	{
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extensions:  []string{"ttl"},
		Description: "Turtle - Terse RDF Triple Language",
		CanEncode:   true,
	},
	{
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extensions:  []string{"nt"},
		Description: "N-Triples - Line-based RDF format",
		CanEncode:   true,
	},
	{
		Name:        FormatRDFXML,
		MIMEType:    "application/rdf+xml",
		Extensions:  []string{"xml", "rdf", "rdfxml"},
		Description: "RDF/XML - XML syntax for RDF",
		CanEncode:   false,
	},
	{
		Name:        FormatJSONLD,
		MIMEType:    "application/ld+json",
		Extensions:  []string{"json", "jsonld"},
		Description: "JSON-LD - JSON for Linked Data",
		CanEncode:   true,
	},
}

// Formats returns metadata for every supported format.
func Formats() []FormatInfo {
	return slices.Clone(formats)
}

// Labels returns the accepted format labels.
func Labels() []string {
	labels := make([]string, 0, len(formats))
	for _, f := range formats {
		labels = append(labels, string(f.Name))
	}
	return labels
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	for _, f := range formats {
		if f.Name == format {
			return f, true
		}
	}
	return FormatInfo{}, false
}

// ParseFormat maps a label such as "turtle" to its Format. Labels are
// case-insensitive.
func ParseFormat(label string) (Format, error) {
	want := Format(strings.ToLower(strings.TrimSpace(label)))
	if _, ok := GetFormatInfo(want); ok {
		return want, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, label)
}

// FormatFromExtension maps a file extension (with or without the dot) to a Format.
func FormatFromExtension(ext string) (Format, error) {
	want := strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, f := range formats {
		if slices.Contains(f.Extensions, want) {
			return f.Name, nil
		}
	}
	return "", fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
}

// FormatFromPath infers a Format from a file name.
func FormatFromPath(path string) (Format, error) {
	return FormatFromExtension(Extension(path))
}

// Extension returns the file extension of path without the dot.
func Extension(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}
