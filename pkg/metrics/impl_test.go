/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package imetrics

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	require := require.New(t)
	m := Provide()

	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Increase("singleton_ownership_changes_total", "node1", 1)
			m.IncreaseGroup("singleton_activations_total", "node1", "svc1", 1)
		}()
	}
	wg.Wait()
	m.IncreaseGroup("singleton_activations_total", "node1", "svc2", 2.5)

	bb := strings.Builder{}
	require.NoError(m.List(func(metric IMetric, metricValue float64) error {
		bb.Write(ToPrometheus(metric, metricValue))
		return nil
	}))
	require.Equal(`singleton_activations_total{node="node1",group="svc1"} 10
singleton_activations_total{node="node1",group="svc2"} 2.5
singleton_ownership_changes_total{node="node1"} 10
`, bb.String())

	t.Run("List stops on error", func(t *testing.T) {
		errStop := errors.New("stop")
		calls := 0
		err := m.List(func(IMetric, float64) error {
			calls++
			return errStop
		})
		require.ErrorIs(err, errStop)
		require.Equal(1, calls)
	})
}

func TestToPrometheusWithoutLabels(t *testing.T) {
	require.Equal(t, "requests_total 3\n", string(ToPrometheus(&metric{name: "requests_total"}, 3)))
}

func TestCollector(t *testing.T) {
	require := require.New(t)
	m := Provide()
	m.IncreaseGroup("singleton_activations_total", "node1", "svc1", 2)
	m.Increase("singleton_ownership_changes_total", "node1", 5)

	reg := prometheus.NewPedanticRegistry()
	require.NoError(reg.Register(NewCollector(m)))

	expected := `
# HELP singleton_activations_total cluster singleton counter
# TYPE singleton_activations_total counter
singleton_activations_total{group="svc1",node="node1"} 2
`
	require.NoError(testutil.GatherAndCompare(reg, strings.NewReader(expected), "singleton_activations_total"))
	require.Equal(2, testutil.CollectAndCount(NewCollector(m)))
}
