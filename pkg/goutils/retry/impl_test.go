/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package retrier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInvalidConfig(t *testing.T) {
	cases := map[string]Config{
		"zero base delay":      {MaxDelay: time.Second, Multiplier: 2},
		"zero max delay":       {BaseDelay: time.Millisecond, Multiplier: 2},
		"max less than base":   {BaseDelay: time.Second, MaxDelay: time.Millisecond, Multiplier: 2},
		"multiplier below one": {BaseDelay: time.Millisecond, MaxDelay: time.Second, Multiplier: 0.5},
		"jitter above one":     {BaseDelay: time.Millisecond, MaxDelay: time.Second, Multiplier: 2, JitterFactor: 1.5},
		"negative reset":       {BaseDelay: time.Millisecond, MaxDelay: time.Second, Multiplier: 2, ResetAfter: -1},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(cfg)
			require.ErrorIs(t, err, ErrInvalidConfig)
			_, err = Retry(context.Background(), cfg, func() (int, error) { return 1, nil })
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNextDelayGrowsUpToMax(t *testing.T) {
	require := require.New(t)
	cfg := NewConfig(10*time.Millisecond, 40*time.Millisecond)
	cfg.JitterFactor = 0
	r, err := New(cfg)
	require.NoError(err)

	require.Equal(10*time.Millisecond, r.NextDelay())
	require.Equal(20*time.Millisecond, r.NextDelay())
	require.Equal(40*time.Millisecond, r.NextDelay())
	require.Equal(40*time.Millisecond, r.NextDelay())
}

func TestNextDelayJitter(t *testing.T) {
	r, err := New(NewConfig(100*time.Millisecond, time.Second))
	require.NoError(t, err)
	delay := r.NextDelay()
	require.GreaterOrEqual(t, delay, 50*time.Millisecond)
	require.LessOrEqual(t, delay, 150*time.Millisecond)
}

func TestRetrySucceeds(t *testing.T) {
	require := require.New(t)
	attempts := 0
	var reported []int
	cfg := NewConfig(time.Millisecond, 5*time.Millisecond)
	cfg.OnError = func(attempt int, _ time.Duration, err error) {
		reported = append(reported, attempt)
	}
	res, err := Retry(context.Background(), cfg, func() (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("temporary")
		}
		return "done", nil
	})
	require.NoError(err)
	require.Equal("done", res)
	require.Equal([]int{1, 2}, reported)
}

func TestRetryAbort(t *testing.T) {
	errFatal := errors.New("fatal")
	cfg := NewConfig(time.Millisecond, 5*time.Millisecond)
	cfg.Abort = []error{errFatal}
	attempts := 0
	err := RetryErr(context.Background(), cfg, func() error {
		attempts++
		return errors.Join(errors.New("wrapped"), errFatal)
	})
	require.ErrorIs(t, err, errFatal)
	require.Equal(t, 1, attempts)
}

func TestRetryContextDone(t *testing.T) {
	t.Run("cancelled before start", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		called := false
		err := RetryErr(ctx, NewConfig(time.Millisecond, time.Millisecond), func() error {
			called = true
			return nil
		})
		require.ErrorIs(t, err, context.Canceled)
		require.False(t, called)
	})

	t.Run("deadline during pause", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		err := RetryErr(ctx, NewConfig(time.Hour, time.Hour), func() error {
			return errors.New("always")
		})
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
