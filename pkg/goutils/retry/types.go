/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package retrier

import "time"

type Config struct {
	BaseDelay    time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	JitterFactor float64 // [0, 1]

	// delay is reset to BaseDelay if the previous failure was earlier than ResetAfter ago, 0 -> never
	ResetAfter time.Duration

	// OnError is called on each failed attempt before the pause
	OnError func(attempt int, delay time.Duration, err error)

	// errors that stop retrying, the error is returned as is
	Abort []error
}

// Retrier pauses between attempts with exponential backoff and jitter
type Retrier struct {
	cfg          Config
	currentDelay time.Duration
	lastFailure  time.Time
}
