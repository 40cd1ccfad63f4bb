package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/middleware"
)

// periodicRunner drives a background job: once on Start, then every interval
// until the context ends or Stop is called. At most one loop runs per runner.
type periodicRunner struct {
	name     string
	interval time.Duration
	logger   *slog.Logger
	job      func(ctx context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func newPeriodicRunner(name string, interval time.Duration, logger *slog.Logger, job func(ctx context.Context)) *periodicRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return &periodicRunner{
		name:     name,
		interval: interval,
		logger:   logger.With(slog.String("monitor", name)),
		job:      job,
	}
}

// Start launches the loop. Calling Start on a running runner is a no-op.
func (r *periodicRunner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.logger.Warn("Monitor already running")
		return
	}

	loopCtx, cancel := context.WithCancel(middleware.WithLogger(ctx, r.logger))
	done := make(chan struct{})
	r.cancel = cancel
	r.done = done

	r.logger.Info("Starting monitor", slog.Duration("interval", r.interval))
	go r.loop(loopCtx, done)
}

func (r *periodicRunner) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	r.runOnce(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Monitor stopped")
			return
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

// runOnce shields the loop from a panicking job so the schedule survives.
func (r *periodicRunner) runOnce(ctx context.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Monitor run panicked", slog.Any("panic", rec))
		}
	}()
	r.job(ctx)
}

// Stop cancels the loop and waits for an in-flight run to return.
func (r *periodicRunner) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
