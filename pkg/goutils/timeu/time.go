/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package timeu

import (
	"time"
)

// ITime is the clock used by leases and ownership polling. Tests inject testingu.MockTime.
type ITime interface {
	Now() time.Time
	NewTimerChan(d time.Duration) <-chan time.Time
	Sleep(d time.Duration)
}

func NewITime() ITime {
	return wallClock{}
}

type wallClock struct{}

func (wallClock) Now() time.Time {
	return time.Now()
}

func (wallClock) NewTimerChan(d time.Duration) <-chan time.Time {
	return time.NewTimer(d).C
}

func (wallClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
