/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package imetrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type collector struct {
	metrics IMetrics
}

// NewCollector exposes the metrics to a prometheus.Registerer as counters labelled by node and group
func NewCollector(metrics IMetrics) prometheus.Collector {
	return &collector{metrics: metrics}
}

// Describe sends nothing, the set of metrics grows at runtime
func (c *collector) Describe(chan<- *prometheus.Desc) {}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	descs := map[string]*prometheus.Desc{}
	_ = c.metrics.List(func(metric IMetric, metricValue float64) error {
		desc, ok := descs[metric.Name()]
		if !ok {
			desc = prometheus.NewDesc(metric.Name(), metricHelp, []string{labelNode, labelGroup}, nil)
			descs[metric.Name()] = desc
		}
		ch <- prometheus.MustNewConstMetric(desc, prometheus.CounterValue, metricValue, metric.Node(), metric.Group())
		return nil
	})
}
