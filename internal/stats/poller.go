package stats

import (
	"context"
	"time"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/pkg/logger"
)

// Poller refreshes the dashboard snapshot on a fixed interval so the
// dashboard always reads a warm cache. The interval does not back off;
// a failed refresh just waits for the next tick.
type Poller struct {
	service  Service
	interval time.Duration
	log      *logger.Logger
	stop     chan struct{}
	done     chan struct{}
}

func NewPoller(service Service, interval time.Duration, log *logger.Logger) *Poller {
	return &Poller{
		service:  service,
		interval: interval,
		log:      log,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the polling loop. It refreshes once immediately so the
// first dashboard view after boot is already served from cache.
func (p *Poller) Start(ctx context.Context) {
	go func() {
		defer close(p.done)

		p.refresh(ctx)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				p.refresh(ctx)
			case <-p.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop halts the polling loop and waits for it to exit.
func (p *Poller) Stop() {
	close(p.stop)
	<-p.done
}

func (p *Poller) refresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := p.service.Refresh(refreshCtx); err != nil {
		p.log.Warn("dashboard stats refresh failed", "error", err)
		return
	}
	p.log.Debug("dashboard stats refreshed")
}
