/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package testingu

import (
	"sync"
	"time"

	"github.com/voedger/clustersingleton/pkg/goutils/timeu"
)

// MockTime is the one mock clock shared by all tests of a package
var MockTime = NewMockTime()

type IMockTime interface {
	timeu.ITime

	// Add advances the clock and fires every timer whose deadline has come
	Add(d time.Duration)

	// FireNextTimerImmediately makes the next created timer fire at once
	FireNextTimerImmediately()

	// SetOnNextNewTimerChan sets a hook called once by the next NewTimerChan.
	// The hook is called under the clock lock and must not use the clock.
	SetOnNextNewTimerChan(f func())
}

func NewMockTime() IMockTime {
	return &mockTime{
		now:    time.Now(),
		timers: map[*mockTimer]struct{}{},
	}
}

type mockTime struct {
	mu          sync.RWMutex
	now         time.Time
	timers      map[*mockTimer]struct{}
	fireNext    bool
	onNextTimer func()
}

type mockTimer struct {
	c        chan time.Time
	deadline time.Time
}

func (m *mockTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

func (m *mockTime) NewTimerChan(d time.Duration) <-chan time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	if hook := m.onNextTimer; hook != nil {
		m.onNextTimer = nil
		hook()
	}
	timer := &mockTimer{
		c:        make(chan time.Time, 1),
		deadline: m.now.Add(d),
	}
	if m.fireNext {
		m.fireNext = false
		timer.c <- m.now
		return timer.c
	}
	m.timers[timer] = struct{}{}
	return timer.c
}

func (m *mockTime) Sleep(d time.Duration) {
	m.Add(d)
}

func (m *mockTime) Add(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	for timer := range m.timers {
		if !m.now.Before(timer.deadline) {
			timer.c <- m.now
			delete(m.timers, timer)
		}
	}
}

func (m *mockTime) FireNextTimerImmediately() {
	m.mu.Lock()
	m.fireNext = true
	m.mu.Unlock()
}

func (m *mockTime) SetOnNextNewTimerChan(f func()) {
	m.mu.Lock()
	m.onNextTimer = f
	m.mu.Unlock()
}
