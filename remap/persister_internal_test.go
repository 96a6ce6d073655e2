package remap

import "testing"

func TestLastSegment(t *testing.T) {
	tests := []struct {
		iri  string
		want string
	}{
		{"http://registry.example/entity/123", "123"},
		{"http://registry.example/entity/123/", "123"},
		{"https://registry.example/api/entity/abc-def?x=1", "abc-def"},
		{"urn:registry:42", "urn:registry:42"},
	}
	for _, tt := range tests {
		if got := lastSegment(tt.iri); got != tt.want {
			t.Errorf("lastSegment(%q) = %q, want %q", tt.iri, got, tt.want)
		}
	}
}
