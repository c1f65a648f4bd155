package session

import (
	"context"
	"log/slog"
	"time"
)

// Reaper periodically expires idle sessions.
type Reaper struct {
	manager  *Manager
	interval time.Duration
	done     chan struct{}
}

// NewReaper creates a reaper over the given manager.
func NewReaper(manager *Manager, interval time.Duration) *Reaper {
	return &Reaper{
		manager:  manager,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins the expiry loop in a background goroutine.
func (r *Reaper) Start(ctx context.Context) {
	slog.Info("session reaper started", "interval", r.interval)

	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		// Run once immediately on start
		r.runExpire()

		for {
			select {
			case <-ticker.C:
				r.runExpire()
			case <-ctx.Done():
				slog.Info("session reaper stopping")
				close(r.done)
				return
			}
		}
	}()
}

// Wait blocks until the reaper has fully stopped.
func (r *Reaper) Wait() {
	<-r.done
}

func (r *Reaper) runExpire() {
	if n := r.manager.Expire(time.Now()); n > 0 {
		slog.Info("expired idle sessions", "count", n, "remaining", r.manager.Count())
	}
}
