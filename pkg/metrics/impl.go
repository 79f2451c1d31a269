/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package imetrics

import (
	"bytes"
	"sort"
	"strconv"
	"sync"
)

type metric struct {
	name  string
	node  string
	group string
}

func (m *metric) Name() string  { return m.name }
func (m *metric) Node() string  { return m.node }
func (m *metric) Group() string { return m.group }

type mapMetrics struct {
	metrics map[metric]float64
	lock    sync.Mutex
}

func (m *mapMetrics) Increase(metricName string, node string, valueDelta float64) {
	m.increase(metric{name: metricName, node: node}, valueDelta)
}

func (m *mapMetrics) IncreaseGroup(metricName string, node string, group string, valueDelta float64) {
	m.increase(metric{name: metricName, node: node, group: group}, valueDelta)
}

func (m *mapMetrics) increase(key metric, valueDelta float64) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.metrics[key] += valueDelta
}

// List calls cb in the order of names then labels, cb must not call IMetrics
func (m *mapMetrics) List(cb func(metric IMetric, metricValue float64) (err error)) (err error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	keys := make([]metric, 0, len(m.metrics))
	for k := range m.metrics {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].name != keys[j].name {
			return keys[i].name < keys[j].name
		}
		if keys[i].node != keys[j].node {
			return keys[i].node < keys[j].node
		}
		return keys[i].group < keys[j].group
	})
	for i := range keys {
		if err = cb(&keys[i], m.metrics[keys[i]]); err != nil {
			return err
		}
	}
	return nil
}

// ToPrometheus renders the metric as a line of the Prometheus text exposition format
func ToPrometheus(metric IMetric, metricValue float64) []byte {
	bb := bytes.Buffer{}
	bb.WriteString(metric.Name())
	labels := [][2]string{}
	if metric.Node() != "" {
		labels = append(labels, [2]string{labelNode, metric.Node()})
	}
	if metric.Group() != "" {
		labels = append(labels, [2]string{labelGroup, metric.Group()})
	}
	if len(labels) > 0 {
		bb.WriteRune('{')
		for i, l := range labels {
			if i > 0 {
				bb.WriteRune(',')
			}
			bb.WriteString(l[0])
			bb.WriteString(`=`)
			bb.WriteString(strconv.Quote(l[1]))
		}
		bb.WriteRune('}')
	}
	bb.WriteRune(' ')
	bb.WriteString(strconv.FormatFloat(metricValue, 'f', -1, bitSize))
	bb.WriteRune('\n')
	return bb.Bytes()
}
