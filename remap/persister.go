package remap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/c360studio/entityloader/codec"
	"github.com/c360studio/entityloader/graph"
	"github.com/c360studio/entityloader/progress"
	"github.com/c360studio/entityloader/registry"
)

// Persister writes each concept's rewritten statements back to its entity.
type Persister struct {
	Registry Registry
	Format   codec.Format
	Reporter progress.Reporter
	Logger   *slog.Logger
	Metrics  *Metrics
}

// Persist updates, in mapping order, every registry IRI that is a subject of
// g. It returns the number of entities updated. The first failed update stops
// the run; entities updated before it keep their new content.
func (p *Persister) Persist(ctx context.Context, g *graph.Graph, mapping *Mapping) (int, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	reporter := p.Reporter
	if reporter == nil {
		reporter = progress.Discard
	}

	count := 0
	for _, iri := range mapping.Values() {
		subject := graph.IRI(iri)
		if !g.HasSubject(subject) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return count, &Error{Stage: StagePersisted, Subject: iri, Err: err}
		}

		doc, err := codec.Marshal(g.Subgraph(graph.Pattern{Subject: subject}), p.Format)
		if err != nil {
			return count, &Error{
				Kind:    UpdateFailed,
				Stage:   StagePersisted,
				Subject: iri,
				Err:     fmt.Errorf("encode entity %s: %w", iri, err),
			}
		}

		id := lastSegment(iri)
		if err := p.Registry.Update(ctx, id, doc); err != nil {
			return count, &Error{
				Kind:    UpdateFailed,
				Stage:   StagePersisted,
				Subject: iri,
				Err:     updateError(iri, err),
			}
		}

		count++
		p.Metrics.entityUpdated()
		ev := progress.Event{Count: count, IRI: iri, RegistryID: id, Time: time.Now().UTC()}
		if err := reporter.Report(ctx, ev); err != nil {
			logger.Warn("Progress report failed", "iri", iri, "error", err)
		}
	}
	return count, nil
}

func updateError(iri string, err error) error {
	var se *registry.StatusError
	if errors.As(err, &se) {
		return fmt.Errorf("attempting to update %s failed with status code %d: %w", se.URL, se.StatusCode, err)
	}
	return fmt.Errorf("attempting to update %s failed: %w", iri, err)
}

// lastSegment returns the final path segment of an IRI, which the registry
// uses as the entity identifier.
func lastSegment(iri string) string {
	if u, err := url.Parse(iri); err == nil && u.Path != "" {
		return path.Base(strings.TrimSuffix(u.Path, "/"))
	}
	trimmed := strings.TrimSuffix(iri, "/")
	return trimmed[strings.LastIndex(trimmed, "/")+1:]
}
