// Package progress reports entities as they are written to the registry.
package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Event describes one persisted entity.
type Event struct {
	// Count is the running number of entities updated so far, starting at 1.
	Count int `json:"count"`
	// IRI is the registry IRI of the entity.
	IRI string `json:"iri"`
	// RegistryID is the identifier the entity was updated under.
	RegistryID string    `json:"registry_id"`
	Time       time.Time `json:"time"`
}

// Reporter receives progress events. Reporting is informational: a
// Reporter error is logged by the caller and never aborts a run.
type Reporter interface {
	Report(ctx context.Context, ev Event) error
}

// LogReporter writes one log line per event.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter creates a LogReporter. A nil logger uses slog.Default().
func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogReporter{logger: logger}
}

// Report logs the event at info level.
func (r *LogReporter) Report(ctx context.Context, ev Event) error {
	r.logger.InfoContext(ctx, fmt.Sprintf("Updated %d entity at URL: %s", ev.Count, ev.IRI),
		"registry_id", ev.RegistryID)
	return nil
}

// Multi fans an event out to several reporters. Every reporter is called even
// when an earlier one fails; the errors are joined.
type Multi []Reporter

// Report implements Reporter.
func (m Multi) Report(ctx context.Context, ev Event) error {
	var errs []error
	for _, r := range m {
		if r == nil {
			continue
		}
		if err := r.Report(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Discard drops every event.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Report(context.Context, Event) error { return nil }
