// Package exchange runs one adapter over one lead: validate, build the
// request, send it, and map the response into appended fields.
package exchange

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"trustedform/internal/audit"
	"trustedform/internal/platform/metrics"
	"trustedform/internal/trustedform/lead"
	"trustedform/internal/trustedform/payload"
	"trustedform/internal/trustedform/providers"
	"trustedform/pkg/platform/circuit"
	"trustedform/pkg/requestcontext"
)

const tracerName = "trustedform/exchange"

// Transport sends a built adapter request.
type Transport interface {
	Do(ctx context.Context, req *providers.Request) (*providers.Response, error)
}

// AuditPublisher receives one event per run.
type AuditPublisher interface {
	Publish(ctx context.Context, event audit.Event) error
}

// Service runs adapters from a registry.
type Service struct {
	registry  *providers.Registry
	transport Transport
	audit     AuditPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
	tracer    trace.Tracer

	breakerOpts []circuit.Option
	mu          sync.Mutex
	breakers    map[string]*circuit.Breaker
}

// Option configures a Service.
type Option func(*Service)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) { s.audit = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

// WithCircuitBreaker guards each module with its own breaker. A failure
// threshold of zero leaves modules unguarded.
func WithCircuitBreaker(failures, successes int, cooldown time.Duration) Option {
	return func(s *Service) {
		if failures <= 0 {
			s.breakerOpts = nil
			return
		}
		s.breakerOpts = []circuit.Option{
			circuit.WithFailureThreshold(failures),
			circuit.WithSuccessThreshold(successes),
			circuit.WithCooldown(cooldown),
		}
	}
}

// New creates an exchange service.
func New(registry *providers.Registry, transport Transport, opts ...Option) *Service {
	s := &Service{
		registry:  registry,
		transport: transport,
		logger:    slog.Default(),
		tracer:    otel.Tracer(tracerName),
		breakers:  make(map[string]*circuit.Breaker),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry exposes the adapters this service runs.
func (s *Service) Registry() *providers.Registry {
	return s.registry
}

// Run executes module id for vars. Every problem with the lead or the
// exchange is reported as an appended outcome; the only error is an unknown
// module.
func (s *Service) Run(ctx context.Context, id string, vars *lead.Vars) (payload.Appended, error) {
	adapter, ok := s.registry.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", providers.ErrProviderNotFound, id)
	}
	if vars == nil {
		vars = &lead.Vars{}
	}
	module := adapter.ID()
	ctx = requestcontext.WithModule(ctx, module)

	ctx, span := s.tracer.Start(ctx, "trustedform.exchange",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("trustedform.module", module)),
	)
	defer span.End()

	r := &run{
		start:   time.Now(),
		span:    span,
		adapter: adapter,
		vars:    vars,
		event: audit.Event{
			RequestID: requestcontext.RequestID(ctx),
			Action:    audit.ActionExchange,
			Module:    module,
			LeadID:    vars.Lead.ID,
		},
	}

	if reason := adapter.Validate(vars); reason != "" {
		r.event.Action = audit.ActionSkip
		return s.finish(ctx, r, payload.Outcome(providers.OutcomeSkip, reason)), nil
	}

	req, err := adapter.Request(vars)
	if err != nil {
		return s.fail(ctx, r, providers.NewProviderError(providers.ErrorBadData, module, "build request", err)), nil
	}

	breaker := s.breaker(module)
	if breaker != nil && !breaker.Allow() {
		r.event.Action = audit.ActionRejected
		return s.fail(ctx, r, providers.NewProviderError(providers.ErrorCircuitOpen, module, "circuit open", nil)), nil
	}

	s.logger.DebugContext(ctx, "sending trustedform request",
		"module", module,
		"method", req.Method,
		"url", req.URL,
		"headers", req.Redacted(),
	)

	res, err := s.transport.Do(ctx, req)
	if err != nil {
		if providers.IsTransient(err) {
			s.recordFailure(ctx, breaker, module)
		}
		return s.fail(ctx, r, err), nil
	}

	r.event.Status = res.Status
	span.SetAttributes(attribute.Int("http.response.status_code", res.Status))
	if res.Status >= 500 {
		s.recordFailure(ctx, breaker, module)
	} else {
		s.recordSuccess(ctx, breaker, module)
	}

	return s.finish(ctx, r, adapter.Response(vars, res)), nil
}

type run struct {
	start   time.Time
	span    trace.Span
	adapter providers.Adapter
	vars    *lead.Vars
	event   audit.Event
}

func (s *Service) fail(ctx context.Context, r *run, err error) payload.Appended {
	r.event.Error = err.Error()
	r.span.RecordError(err)

	var appended payload.Appended
	if tr, ok := r.adapter.(providers.TransportResponder); ok {
		appended = tr.TransportError(r.vars, err)
	} else {
		appended = providers.TransportFailure(err)
	}
	return s.finish(ctx, r, appended)
}

func (s *Service) finish(ctx context.Context, r *run, appended payload.Appended) payload.Appended {
	elapsed := time.Since(r.start)
	outcome, reason := payload.OutcomeOf(appended)
	module := r.event.Module

	r.event.Outcome = outcome
	r.event.Reason = reason
	r.event.DurationMS = elapsed.Milliseconds()

	r.span.SetAttributes(attribute.String("trustedform.outcome", outcome))
	if outcome == providers.OutcomeError {
		r.span.SetStatus(codes.Error, reason)
	}

	s.metrics.IncrementOutcome(module, outcome)
	s.metrics.ObserveAdapterLatency(module, elapsed)

	s.logger.InfoContext(ctx, "trustedform exchange",
		"module", module,
		"lead_id", r.event.LeadID,
		"outcome", outcome,
		"reason", reason,
		"status", r.event.Status,
		"duration_ms", r.event.DurationMS,
	)

	if s.audit != nil {
		if err := s.audit.Publish(ctx, r.event); err != nil {
			s.logger.WarnContext(ctx, "audit publish failed", "module", module, "error", err)
		}
	}
	return appended
}

func (s *Service) breaker(module string) *circuit.Breaker {
	if s.breakerOpts == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.breakers[module]
	if !ok {
		b = circuit.New(module, s.breakerOpts...)
		s.breakers[module] = b
	}
	return b
}

func (s *Service) recordFailure(ctx context.Context, b *circuit.Breaker, module string) {
	if b == nil {
		return
	}
	if _, change := b.RecordFailure(); change.Opened {
		s.metrics.IncrementCircuitTransition(module, string(circuit.StateOpen))
		s.logger.WarnContext(ctx, "circuit opened", "module", module)
	}
}

func (s *Service) recordSuccess(ctx context.Context, b *circuit.Breaker, module string) {
	if b == nil {
		return
	}
	if _, change := b.RecordSuccess(); change.Closed {
		s.metrics.IncrementCircuitTransition(module, string(circuit.StateClosed))
		s.logger.InfoContext(ctx, "circuit closed", "module", module)
	}
}
