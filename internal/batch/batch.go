// Package batch runs one adapter over many leads.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"trustedform/internal/trustedform/lead"
	"trustedform/internal/trustedform/payload"
	"trustedform/internal/trustedform/providers"
)

const DefaultConcurrency = 8

// Runner executes one adapter over one lead.
type Runner interface {
	Run(ctx context.Context, id string, vars *lead.Vars) (payload.Appended, error)
}

// Result is the outcome of one lead, at the lead's input position.
type Result struct {
	Index    int              `json:"index" yaml:"index"`
	LeadID   string           `json:"lead_id,omitempty" yaml:"lead_id,omitempty"`
	Outcome  string           `json:"outcome" yaml:"outcome"`
	Reason   string           `json:"reason,omitempty" yaml:"reason,omitempty"`
	Appended payload.Appended `json:"appended" yaml:"appended"`
}

// Summary counts results by outcome.
type Summary struct {
	Total   int `json:"total" yaml:"total"`
	Success int `json:"success" yaml:"success"`
	Failure int `json:"failure" yaml:"failure"`
	Error   int `json:"error" yaml:"error"`
	Skip    int `json:"skip" yaml:"skip"`
}

type Batch struct {
	runner      Runner
	concurrency int
	logger      *slog.Logger
}

type Option func(*Batch)

// WithConcurrency bounds the number of leads in flight. Values below one
// fall back to DefaultConcurrency.
func WithConcurrency(n int) Option {
	return func(b *Batch) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(b *Batch) {
		b.logger = logger
	}
}

func New(runner Runner, opts ...Option) *Batch {
	b := &Batch{
		runner:      runner,
		concurrency: DefaultConcurrency,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run sends every lead through adapter id. Results keep input order. The
// first Go error (an unknown adapter or a cancelled context) stops the batch.
func (b *Batch) Run(ctx context.Context, id string, leads []*lead.Vars) ([]Result, error) {
	if _, ok := b.lookup(id); !ok {
		return nil, fmt.Errorf("%w: %s", providers.ErrProviderNotFound, id)
	}

	start := time.Now()
	results := make([]Result, len(leads))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, vars := range leads {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if vars == nil {
				vars = &lead.Vars{}
			}
			appended, err := b.runner.Run(gctx, id, vars)
			if err != nil {
				return fmt.Errorf("lead %d: %w", i, err)
			}
			outcome, reason := payload.OutcomeOf(appended)
			results[i] = Result{
				Index:    i,
				LeadID:   vars.Lead.ID,
				Outcome:  outcome,
				Reason:   reason,
				Appended: appended,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Wait returns nil when the loop stopped before any worker saw the
	// parent's cancellation.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.logger.InfoContext(ctx, "batch complete",
		"module", id,
		"leads", len(leads),
		"concurrency", b.concurrency,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return results, nil
}

// lookup resolves id when the runner can enumerate its adapters.
func (b *Batch) lookup(id string) (providers.Adapter, bool) {
	r, ok := b.runner.(interface{ Registry() *providers.Registry })
	if !ok {
		return nil, true
	}
	return r.Registry().Get(id)
}

// Summarize counts results by outcome.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Outcome {
		case providers.OutcomeSuccess:
			s.Success++
		case providers.OutcomeFailure:
			s.Failure++
		case providers.OutcomeError:
			s.Error++
		case providers.OutcomeSkip:
			s.Skip++
		}
	}
	return s
}
