package remap

import (
	"fmt"

	"github.com/c360studio/semstreams/metric"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsService = "entityloader"

// Metrics counts pipeline activity. A nil *Metrics records nothing.
type Metrics struct {
	ConceptsDiscovered prometheus.Counter
	EntitiesCreated    prometheus.Counter
	EntitiesUpdated    prometheus.Counter
	Failures           *prometheus.CounterVec
}

// NewMetrics creates the pipeline counters and registers them with reg.
func NewMetrics(reg metric.MetricsRegistrar) (*Metrics, error) {
	m := &Metrics{
		ConceptsDiscovered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsService,
			Name:      "concepts_discovered_total",
			Help:      "Concept subjects found in input graphs",
		}),
		EntitiesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsService,
			Name:      "entities_created_total",
			Help:      "Entities created in the registry",
		}),
		EntitiesUpdated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsService,
			Name:      "entities_updated_total",
			Help:      "Entities updated with rewritten statements",
		}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsService,
			Name:      "run_failures_total",
			Help:      "Aborted runs by error kind",
		}, []string{"kind"}),
	}

	if reg == nil {
		return m, nil
	}
	if err := reg.RegisterCounter(metricsService, "concepts_discovered", m.ConceptsDiscovered); err != nil {
		return nil, fmt.Errorf("register concepts counter: %w", err)
	}
	if err := reg.RegisterCounter(metricsService, "entities_created", m.EntitiesCreated); err != nil {
		return nil, fmt.Errorf("register created counter: %w", err)
	}
	if err := reg.RegisterCounter(metricsService, "entities_updated", m.EntitiesUpdated); err != nil {
		return nil, fmt.Errorf("register updated counter: %w", err)
	}
	if err := reg.RegisterCounterVec(metricsService, "run_failures", m.Failures); err != nil {
		return nil, fmt.Errorf("register failures counter: %w", err)
	}
	return m, nil
}

func (m *Metrics) conceptsDiscovered(n int) {
	if m != nil {
		m.ConceptsDiscovered.Add(float64(n))
	}
}

func (m *Metrics) entityCreated() {
	if m != nil {
		m.EntitiesCreated.Inc()
	}
}

func (m *Metrics) entityUpdated() {
	if m != nil {
		m.EntitiesUpdated.Inc()
	}
}

func (m *Metrics) failed(kind Kind) {
	if m != nil {
		m.Failures.WithLabelValues(kind.String()).Inc()
	}
}
