package audit

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

const (
	defaultBuffer       = 1024
	defaultDrainTimeout = 5 * time.Second
)

// AsyncPublisher queues events in memory and hands them to a sink from a
// background worker, so exchanges never wait on the audit stream. When the
// queue is full new events are dropped and counted.
type AsyncPublisher struct {
	sink         Publisher
	inbox        chan Event
	logger       *slog.Logger
	drainTimeout time.Duration
	dropped      atomic.Int64
}

type AsyncOption func(*AsyncPublisher)

// WithDrainTimeout bounds how long Run keeps delivering queued events after
// its context is done. Events still queued at the deadline are dropped.
func WithDrainTimeout(d time.Duration) AsyncOption {
	return func(p *AsyncPublisher) {
		if d > 0 {
			p.drainTimeout = d
		}
	}
}

// NewAsyncPublisher creates a queue of the given capacity in front of sink.
func NewAsyncPublisher(sink Publisher, capacity int, logger *slog.Logger, opts ...AsyncOption) *AsyncPublisher {
	if capacity <= 0 {
		capacity = defaultBuffer
	}
	p := &AsyncPublisher{
		sink:         sink,
		inbox:        make(chan Event, capacity),
		logger:       logger,
		drainTimeout: defaultDrainTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish enqueues the event without blocking.
func (p *AsyncPublisher) Publish(_ context.Context, e Event) error {
	select {
	case p.inbox <- stamp(e):
	default:
		p.dropped.Add(1)
	}
	return nil
}

// Dropped reports how many events were discarded because the queue was full.
func (p *AsyncPublisher) Dropped() int64 {
	return p.dropped.Load()
}

// Run forwards queued events to the sink until ctx is done, then drains
// whatever is still queued for at most the drain timeout.
func (p *AsyncPublisher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			p.drain(ctx)
			return ctx.Err()
		case e := <-p.inbox:
			p.forward(ctx, e)
		}
	}
}

func (p *AsyncPublisher) drain(parent context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), p.drainTimeout)
	defer cancel()
	for {
		if ctx.Err() != nil {
			p.discard(ctx)
			return
		}
		select {
		case e := <-p.inbox:
			p.forward(ctx, e)
		default:
			return
		}
	}
}

// discard drops whatever is still queued once the drain deadline passed.
func (p *AsyncPublisher) discard(ctx context.Context) {
	var n int64
	for {
		select {
		case <-p.inbox:
			n++
		default:
			if n > 0 {
				p.dropped.Add(n)
				p.logger.WarnContext(ctx, "audit drain timed out", "dropped", n)
			}
			return
		}
	}
}

func (p *AsyncPublisher) forward(ctx context.Context, e Event) {
	if err := p.sink.Publish(ctx, e); err != nil {
		p.logger.WarnContext(ctx, "audit publish failed", "module", e.Module, "error", err)
	}
}
