package remap

import (
	"context"

	"github.com/c360studio/entityloader/registry"
)

// Registry is the entity store concepts are moved into. *registry.Client
// implements it.
type Registry interface {
	// Create stores a new entity and returns the IRI the registry issued.
	Create(ctx context.Context, localID string, doc []byte) (string, error)
	// Update replaces the document of an existing entity.
	Update(ctx context.Context, registryID string, doc []byte) error
	// Fetch reads an entity back.
	Fetch(ctx context.Context, registryIRI string) (*registry.Entity, error)
}

var _ Registry = (*registry.Client)(nil)
