// Cardcast - Trading Card API and Stream Overlay Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cardcast

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/cardcast/internal/logging"
)

// Task is one run of a periodic job.
type Task func(ctx context.Context) error

// PeriodicService runs a task on a fixed interval under suture.
//
// The task runs once immediately, then on every tick. A failing task is
// logged and retried on the next tick; after MaxConsecutiveFailures in a
// row Serve returns so suture can apply its backoff.
type PeriodicService struct {
	name     string
	interval time.Duration
	timeout  time.Duration
	task     Task

	// MaxConsecutiveFailures of zero disables escalation.
	MaxConsecutiveFailures int
}

// NewPeriodicService creates a periodic service. Each run gets a context
// bounded by timeout; zero means the interval.
func NewPeriodicService(name string, interval, timeout time.Duration, task Task) *PeriodicService {
	if timeout <= 0 {
		timeout = interval
	}
	return &PeriodicService{
		name:     name,
		interval: interval,
		timeout:  timeout,
		task:     task,
	}
}

// Serve implements suture.Service.
func (p *PeriodicService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	failures := 0
	for {
		if err := p.runOnce(ctx); err != nil {
			failures++
			logging.Warn().Err(err).
				Str("service", p.name).
				Int("consecutive_failures", failures).
				Msg("Periodic task failed")
			if p.MaxConsecutiveFailures > 0 && failures >= p.MaxConsecutiveFailures {
				return fmt.Errorf("%s: %d consecutive failures: %w", p.name, failures, err)
			}
		} else {
			failures = 0
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (p *PeriodicService) runOnce(ctx context.Context) error {
	runCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.task(runCtx)
}

// String names the service in suture events.
func (p *PeriodicService) String() string {
	return p.name
}
