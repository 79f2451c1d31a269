/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package retrier

const (
	DefaultJitterFactor = 0.5
	DefaultMultiplier   = 2
)
