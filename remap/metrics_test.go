package remap_test

import (
	"testing"

	"github.com/c360studio/semstreams/metric"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/entityloader/graph"
	"github.com/c360studio/entityloader/remap"
)

func TestNewMetrics_RegistersWithSemstreams(t *testing.T) {
	reg := metric.NewMetricsRegistry()

	m, err := remap.NewMetrics(reg)
	require.NoError(t, err)
	m.EntitiesCreated.Inc()

	count, err := testutil.GatherAndCount(reg.PrometheusRegistry(), "entityloader_entities_created_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = remap.NewMetrics(reg)
	assert.Error(t, err, "registering twice is rejected")
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *remap.Metrics
	reg := newFakeRegistry()

	_, err := newPipeline(reg, remap.WithMetrics(m)).Run(t.Context(), graph.New(typed(exA)))
	assert.NoError(t, err)

	reg.failCreateAt = 2
	_, err = newPipeline(reg, remap.WithMetrics(m)).Run(t.Context(), graph.New(typed(exB)))
	assert.Error(t, err)
}
