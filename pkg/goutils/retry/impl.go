/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package retrier

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

func NewConfig(baseDelay, maxDelay time.Duration) Config {
	return Config{
		BaseDelay:    baseDelay,
		MaxDelay:     maxDelay,
		Multiplier:   DefaultMultiplier,
		JitterFactor: DefaultJitterFactor,
	}
}

func New(cfg Config) (*Retrier, error) {
	if cfg.BaseDelay <= 0 || cfg.MaxDelay <= 0 || cfg.MaxDelay < cfg.BaseDelay ||
		cfg.Multiplier < 1 || cfg.JitterFactor < 0 || cfg.JitterFactor > 1 || cfg.ResetAfter < 0 {
		return nil, ErrInvalidConfig
	}
	return &Retrier{
		cfg:          cfg,
		currentDelay: cfg.BaseDelay,
	}, nil
}

// NextDelay returns the pause before the next attempt and grows the delay up to MaxDelay
func (r *Retrier) NextDelay() time.Duration {
	now := time.Now()
	if r.cfg.ResetAfter > 0 && !r.lastFailure.IsZero() && now.Sub(r.lastFailure) >= r.cfg.ResetAfter {
		r.currentDelay = r.cfg.BaseDelay
	}
	r.lastFailure = now

	base := r.currentDelay
	next := time.Duration(float64(base) * r.cfg.Multiplier)
	if next > r.cfg.MaxDelay {
		next = r.cfg.MaxDelay
	}
	r.currentDelay = next

	offset := (rand.Float64()*2 - 1) * r.cfg.JitterFactor * float64(base)
	if delay := base + time.Duration(offset); delay > 0 {
		return delay
	}
	return 0
}

// Run calls op until it succeeds, returns an Abort error or ctx is done
func (r *Retrier) Run(ctx context.Context, op func() error) error {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := op()
		if err == nil {
			return nil
		}
		if r.isAbort(err) {
			return err
		}
		delay := r.NextDelay()
		if r.cfg.OnError != nil {
			r.cfg.OnError(attempt, delay, err)
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (r *Retrier) isAbort(err error) bool {
	for _, abortErr := range r.cfg.Abort {
		if errors.Is(err, abortErr) {
			return true
		}
	}
	return false
}

func Retry[T any](ctx context.Context, cfg Config, op func() (T, error)) (res T, err error) {
	r, err := New(cfg)
	if err != nil {
		return res, err
	}
	err = r.Run(ctx, func() (opErr error) {
		res, opErr = op()
		return opErr
	})
	return res, err
}

func RetryErr(ctx context.Context, cfg Config, op func() error) error {
	r, err := New(cfg)
	if err != nil {
		return err
	}
	return r.Run(ctx, op)
}
