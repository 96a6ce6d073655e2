package remap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/c360studio/entityloader/codec"
	"github.com/c360studio/entityloader/graph"
	"github.com/c360studio/entityloader/registry"
)

// Materializer creates one registry entity per concept.
type Materializer struct {
	Registry Registry
	// Format is the serialization of the documents sent to the registry.
	Format codec.Format
	// Endpoint is the registry URL named in creation failures.
	Endpoint string
	// NewID mints the client-side identifier for each entity. Defaults to a
	// random UUID.
	NewID   func() string
	Logger  *slog.Logger
	Metrics *Metrics
}

// Materialize creates an entity for each concept, in order, from the
// concept's statements in g. It stops at the first failure and returns no
// mapping in that case.
func (m *Materializer) Materialize(ctx context.Context, g *graph.Graph, concepts []graph.Term) (*Mapping, error) {
	newID := m.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	logger := m.logger()

	mapping := NewMapping()
	for _, concept := range concepts {
		if err := ctx.Err(); err != nil {
			return nil, &Error{Stage: StageIdentitiesMinted, Subject: concept.Value, Err: err}
		}

		doc, err := codec.Marshal(g.Subgraph(graph.Pattern{Subject: concept}), m.Format)
		if err != nil {
			return nil, &Error{
				Kind:    CreationFailed,
				Stage:   StageIdentitiesMinted,
				Subject: concept.Value,
				Err:     fmt.Errorf("encode concept %s: %w", concept.Value, err),
			}
		}

		localID := newID()
		iri, err := m.Registry.Create(ctx, localID, doc)
		if err != nil {
			return nil, &Error{
				Kind:    CreationFailed,
				Stage:   StageIdentitiesMinted,
				Subject: concept.Value,
				Err:     m.creationError(doc, err),
			}
		}

		if err := mapping.Add(concept.Value, iri); err != nil {
			return nil, &Error{Kind: CreationFailed, Stage: StageIdentitiesMinted, Subject: concept.Value, Err: err}
		}
		m.Metrics.entityCreated()
		logger.Debug("Materialized concept", "concept", concept.Value, "local_id", localID, "iri", iri)
	}
	return mapping, nil
}

// Refetch reads every created entity back from the registry and returns the
// union of their statements. Blank nodes are scoped per entity and never reuse
// a label of local, the graph the result will be merged into.
func (m *Materializer) Refetch(ctx context.Context, mapping *Mapping, local *graph.Graph) (*graph.Graph, error) {
	fetched := graph.New()
	taken := blankLabels(local)
	for _, iri := range mapping.Values() {
		entity, err := m.Registry.Fetch(ctx, iri)
		if err != nil {
			return nil, &Error{
				Kind:    CreationFailed,
				Stage:   StageIdentitiesMinted,
				Subject: iri,
				Err:     fmt.Errorf("fetch created entity %s: %w", iri, err),
			}
		}

		g, err := codec.Unmarshal(entity.Document(), m.Format)
		if err != nil {
			return nil, &Error{
				Kind:    CreationFailed,
				Stage:   StageIdentitiesMinted,
				Subject: iri,
				Err:     fmt.Errorf("decode created entity %s: %w", iri, err),
			}
		}
		fetched.Merge(scopeBlankNodes(g, blankScope(iri), taken))
		m.logger().Debug("Fetched created entity", "iri", iri, "statements", g.Len(), "etag", entity.ETag())
	}
	return fetched, nil
}

func (m *Materializer) creationError(doc []byte, err error) error {
	if errors.Is(err, registry.ErrMissingLocation) {
		return fmt.Errorf("posting data:\n\n%s\n\nto %s failed as no location header was returned (%w)",
			doc, m.Endpoint, err)
	}
	return fmt.Errorf("posting data to %s failed: %w", m.Endpoint, err)
}

func (m *Materializer) logger() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.Default()
}
