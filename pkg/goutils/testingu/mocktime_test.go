/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package testingu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fired(c <-chan time.Time) bool {
	select {
	case <-c:
		return true
	default:
		return false
	}
}

func TestMockTimeNow(t *testing.T) {
	require := require.New(t)
	clock := NewMockTime()

	start := clock.Now()
	time.Sleep(5 * time.Millisecond)
	require.Equal(start, clock.Now(), "real time must not move the mock clock")

	clock.Add(time.Minute)
	require.Equal(time.Minute, clock.Now().Sub(start))

	clock.Sleep(time.Second)
	require.Equal(time.Minute+time.Second, clock.Now().Sub(start))
}

func TestMockTimeTimers(t *testing.T) {
	require := require.New(t)
	clock := NewMockTime()

	lease := clock.NewTimerChan(10 * time.Second)
	renew := clock.NewTimerChan(30 * time.Second)

	clock.Add(9 * time.Second)
	require.False(fired(lease))
	require.False(fired(renew))

	clock.Add(time.Second)
	select {
	case at := <-lease:
		require.Equal(clock.Now(), at)
	default:
		t.Fatal("lease timer must fire at its deadline")
	}
	require.False(fired(renew))

	// jump over the second deadline
	clock.Add(time.Minute)
	select {
	case at := <-renew:
		require.Equal(clock.Now(), at)
	default:
		t.Fatal("renew timer must fire after its deadline")
	}
	require.False(fired(lease), "a timer fires once")
}

func TestMockTimeFireNextTimerImmediately(t *testing.T) {
	require := require.New(t)
	clock := NewMockTime()

	clock.FireNextTimerImmediately()
	require.Equal(clock.Now(), <-clock.NewTimerChan(time.Hour))

	require.False(fired(clock.NewTimerChan(time.Hour)), "only the next timer fires immediately")
}

func TestMockTimeOnNextNewTimerChan(t *testing.T) {
	clock := NewMockTime()
	calls := 0
	clock.SetOnNextNewTimerChan(func() { calls++ })
	clock.NewTimerChan(time.Hour)
	clock.NewTimerChan(time.Hour)
	require.Equal(t, 1, calls)
}

func BenchmarkMockTimeTimers(b *testing.B) {
	clock := NewMockTime()
	for i := 0; i < b.N; i++ {
		c := clock.NewTimerChan(time.Second)
		clock.Add(time.Second)
		<-c
	}
}
