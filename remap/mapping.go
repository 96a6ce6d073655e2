package remap

import "fmt"

// Mapping records the registry IRI issued for each concept IRI. It is
// injective: a concept is added once and never remapped, and no two concepts
// share a registry IRI. Iteration follows insertion order.
type Mapping struct {
	keys    []string
	index   map[string]string
	reverse map[string]string
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{
		index:   make(map[string]string),
		reverse: make(map[string]string),
	}
}

// Add records local -> registryIRI. Adding a concept twice, or reusing a
// registry IRI, is an error.
func (m *Mapping) Add(local, registryIRI string) error {
	if existing, ok := m.index[local]; ok {
		return fmt.Errorf("concept %s already mapped to %s", local, existing)
	}
	if owner, ok := m.reverse[registryIRI]; ok {
		return fmt.Errorf("registry IRI %s issued for %s was already issued for %s", registryIRI, local, owner)
	}
	m.keys = append(m.keys, local)
	m.index[local] = registryIRI
	m.reverse[registryIRI] = local
	return nil
}

// Lookup returns the registry IRI for a concept.
func (m *Mapping) Lookup(local string) (string, bool) {
	if m == nil {
		return "", false
	}
	iri, ok := m.index[local]
	return iri, ok
}

// Len returns the number of mapped concepts.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the concept IRIs in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns the registry IRIs in insertion order.
func (m *Mapping) Values() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	for i, k := range m.keys {
		out[i] = m.index[k]
	}
	return out
}
