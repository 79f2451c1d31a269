/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package imetrics

func Provide() IMetrics {
	return &mapMetrics{
		metrics: map[metric]float64{},
	}
}
