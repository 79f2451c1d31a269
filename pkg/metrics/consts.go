/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package imetrics

const (
	bitSize    = 64
	labelNode  = "node"
	labelGroup = "group"
	metricHelp = "cluster singleton counter"
)
