/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package imetrics

type IMetric interface {
	Name() string

	// Node returns "" when not specified
	Node() string

	// Group returns "" when not specified
	Group() string
}

type IMetrics interface {
	// Increase metric value with "delta".
	// The default metric value is always 0.
	// Naming best practices: https://prometheus.io/docs/practices/naming/
	//
	// @ConcurrentAccess
	Increase(metricName string, node string, valueDelta float64)

	// IncreaseGroup increases the metric of a singleton service group
	//
	// @ConcurrentAccess
	IncreaseGroup(metricName string, node string, group string, valueDelta float64)

	// List lists current values of all metrics
	//
	// @ConcurrentAccess
	List(cb func(metric IMetric, metricValue float64) (err error)) (err error)
}
