package flow

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	dErrors "trustedform/pkg/domain-errors"
	"trustedform/pkg/platform/sentinel"
	"trustedform/pkg/requestcontext"
)

// Service builds and stores flows.
type Service struct {
	builder *Builder
	store   Store
	logger  *slog.Logger
}

func NewService(builder *Builder, store Store, logger *slog.Logger) *Service {
	return &Service{builder: builder, store: store, logger: logger}
}

// Create builds a flow from sel and stores it.
func (s *Service) Create(ctx context.Context, sel Selection) (*Flow, error) {
	f, err := s.builder.Build(sel, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, f); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save flow")
	}
	s.logger.InfoContext(ctx, "flow created",
		"flow_id", f.ID,
		"entity_id", f.Steps[0].Entity.ID,
		"module_id", f.Steps[0].Integration.ModuleID,
		"mappings", len(f.Steps[0].Integration.Mappings),
	)
	return f, nil
}

// Get returns one flow.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Flow, error) {
	f, err := s.store.Get(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "flow not found")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load flow")
	}
	return f, nil
}

// List returns the newest flows.
func (s *Service) List(ctx context.Context, limit int) ([]*Flow, error) {
	flows, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list flows")
	}
	return flows, nil
}
