package remap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/c360studio/entityloader/codec"
	"github.com/c360studio/entityloader/graph"
	"github.com/c360studio/entityloader/progress"
	"github.com/c360studio/entityloader/vocabulary/entitydata"
)

// RewriteSource selects which copy of a concept's statements is rewritten.
type RewriteSource string

const (
	// SourceLocal rewrites the statements as read from the input.
	SourceLocal RewriteSource = "local"
	// SourceRegistry rewrites the statements as stored by the registry after
	// creation.
	SourceRegistry RewriteSource = "registry"
)

// ParseRewriteSource validates a rewrite source name. Empty means SourceLocal.
func ParseRewriteSource(s string) (RewriteSource, error) {
	switch RewriteSource(s) {
	case "", SourceLocal:
		return SourceLocal, nil
	case SourceRegistry:
		return SourceRegistry, nil
	default:
		return "", fmt.Errorf("unknown rewrite source %q (want %q or %q)", s, SourceLocal, SourceRegistry)
	}
}

// Report summarizes a run. On failure it holds whatever was produced before
// the failing stage.
type Report struct {
	Stage     Stage
	Concepts  []graph.Term
	Mapping   *Mapping
	Rewritten *graph.Graph
	Updated   int
}

// Pipeline runs the stages against one registry.
type Pipeline struct {
	registry Registry
	class    string
	format   codec.Format
	endpoint string
	policy   RewritePolicy
	source   RewriteSource
	reporter progress.Reporter
	logger   *slog.Logger
	metrics  *Metrics
	newID    func() string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithConceptClass sets the class IRI that marks a subject as a concept.
func WithConceptClass(iri string) Option {
	return func(p *Pipeline) {
		p.class = iri
	}
}

// WithDocumentFormat sets the serialization exchanged with the registry.
func WithDocumentFormat(f codec.Format) Option {
	return func(p *Pipeline) {
		p.format = f
	}
}

// WithEndpoint sets the registry URL used in error messages.
func WithEndpoint(endpoint string) Option {
	return func(p *Pipeline) {
		p.endpoint = endpoint
	}
}

// WithRewritePolicy sets the rewrite policy.
func WithRewritePolicy(policy RewritePolicy) Option {
	return func(p *Pipeline) {
		p.policy = policy
	}
}

// WithRewriteSource sets where rewritten concept statements come from.
func WithRewriteSource(source RewriteSource) Option {
	return func(p *Pipeline) {
		p.source = source
	}
}

// WithReporter sets the progress reporter.
func WithReporter(r progress.Reporter) Option {
	return func(p *Pipeline) {
		p.reporter = r
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m *Metrics) Option {
	return func(p *Pipeline) {
		p.metrics = m
	}
}

// WithIDGenerator replaces the UUID generator for client-side identifiers.
func WithIDGenerator(fn func() string) Option {
	return func(p *Pipeline) {
		p.newID = fn
	}
}

// New creates a pipeline writing to reg.
func New(reg Registry, opts ...Option) *Pipeline {
	p := &Pipeline{
		registry: reg,
		class:    entitydata.ClassConcept,
		format:   codec.FormatJSONLD,
		policy:   DefaultRewritePolicy(),
		source:   SourceLocal,
		reporter: progress.Discard,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load reads and decodes the input document. A missing or unreadable file or
// an unknown format is an InputError; a malformed document is a SyntaxError.
func Load(path string, format codec.Format) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("the requested file %s was not found: %w", path, err)
		} else {
			err = fmt.Errorf("the requested file %s could not be read: %w", path, err)
		}
		return nil, &Error{Kind: InputError, Stage: StageLoaded, Err: err}
	}
	defer f.Close()

	g, err := codec.Decode(f, format)
	if err != nil {
		kind := SyntaxError
		if errors.Is(err, codec.ErrUnknownFormat) {
			kind = InputError
		}
		return nil, &Error{Kind: kind, Stage: StageLoaded, Err: fmt.Errorf("load %s: %w", path, err)}
	}
	return g, nil
}

// Run moves the concepts of g into the registry and writes the rewritten
// graph back. g is not modified.
func (p *Pipeline) Run(ctx context.Context, g *graph.Graph) (*Report, error) {
	report := &Report{Stage: StageLoaded}
	fail := func(err error) (*Report, error) {
		report.Stage = StageAborted
		p.metrics.failed(KindOf(err))
		p.logger.Error("Run aborted", "kind", KindOf(err).String(), "error", err)
		return report, err
	}

	report.Concepts = SelectConcepts(g, graph.IRI(p.class))
	report.Stage = StageConceptsDiscovered
	p.metrics.conceptsDiscovered(len(report.Concepts))
	p.logger.Info("Concepts discovered", "statements", g.Len(), "concepts", len(report.Concepts))

	materializer := &Materializer{
		Registry: p.registry,
		Format:   p.format,
		Endpoint: p.endpoint,
		NewID:    p.newID,
		Logger:   p.logger,
		Metrics:  p.metrics,
	}
	mapping, err := materializer.Materialize(ctx, g, report.Concepts)
	if err != nil {
		return fail(err)
	}
	report.Mapping = mapping
	report.Stage = StageIdentitiesMinted

	input := g
	if p.source == SourceRegistry && mapping.Len() > 0 {
		fetched, err := materializer.Refetch(ctx, mapping, g)
		if err != nil {
			return fail(err)
		}
		input = withoutSubjects(g, report.Concepts)
		input.Merge(fetched)
	}

	report.Rewritten = Rewrite(input, mapping, p.policy)
	report.Stage = StageRewritten

	persister := &Persister{
		Registry: p.registry,
		Format:   p.format,
		Reporter: p.reporter,
		Logger:   p.logger,
		Metrics:  p.metrics,
	}
	report.Updated, err = persister.Persist(ctx, report.Rewritten, mapping)
	if err != nil {
		return fail(err)
	}
	report.Stage = StagePersisted
	p.logger.Info("Run complete", "created", mapping.Len(), "updated", report.Updated)
	return report, nil
}

// withoutSubjects copies g, leaving out every statement about one of subjects.
func withoutSubjects(g *graph.Graph, subjects []graph.Term) *graph.Graph {
	drop := make(map[graph.Term]struct{}, len(subjects))
	for _, s := range subjects {
		drop[s] = struct{}{}
	}
	out := graph.New()
	for _, s := range g.Statements() {
		if _, ok := drop[s.Subject]; !ok {
			out.Add(s)
		}
	}
	return out
}
