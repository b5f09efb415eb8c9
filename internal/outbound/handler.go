// Package outbound exposes the registered adapters over HTTP.
package outbound

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"trustedform/internal/trustedform/lead"
	"trustedform/internal/trustedform/payload"
	"trustedform/internal/trustedform/providers"
	dErrors "trustedform/pkg/domain-errors"
	"trustedform/pkg/platform/httputil"
	"trustedform/pkg/requestcontext"
)

// Runner executes one adapter over one lead.
type Runner interface {
	Run(ctx context.Context, id string, vars *lead.Vars) (payload.Appended, error)
}

// Handler serves adapter metadata and runs adapters.
type Handler struct {
	registry *providers.Registry
	runner   Runner
	logger   *slog.Logger
}

func NewHandler(registry *providers.Registry, runner Runner, logger *slog.Logger) *Handler {
	return &Handler{registry: registry, runner: runner, logger: logger}
}

// Register mounts the outbound routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/outbound", h.HandleList)
	r.Get("/outbound/{id}/variables", h.HandleVariables)
	r.Post("/outbound/{id}", h.HandleRun)
}

// ModuleSummary describes one adapter.
type ModuleSummary struct {
	ID       string             `json:"id" yaml:"id"`
	Name     string             `json:"name" yaml:"name"`
	Protocol providers.Protocol `json:"protocol" yaml:"protocol"`
	Version  string             `json:"version,omitempty" yaml:"version,omitempty"`
}

// VariablesResponse is the variable catalog of one adapter.
type VariablesResponse struct {
	ID                string               `json:"id" yaml:"id"`
	RequestVariables  []providers.Variable `json:"request_variables" yaml:"request_variables"`
	ResponseVariables []providers.Variable `json:"response_variables" yaml:"response_variables"`
	EnvVariables      []string             `json:"env_variables,omitempty" yaml:"env_variables,omitempty"`
}

// Summaries describes every adapter in registry, ordered by id.
func Summaries(registry *providers.Registry) []ModuleSummary {
	adapters := registry.All()
	out := make([]ModuleSummary, 0, len(adapters))
	for _, a := range adapters {
		c := a.Capabilities()
		out = append(out, ModuleSummary{
			ID:       providers.ModuleID(a.ID()),
			Name:     c.Name,
			Protocol: c.Protocol,
			Version:  c.Version,
		})
	}
	return out
}

// Variables returns the variable catalogs of a.
func Variables(a providers.Adapter) VariablesResponse {
	c := a.Capabilities()
	return VariablesResponse{
		ID:                providers.ModuleID(a.ID()),
		RequestVariables:  c.RequestVariables,
		ResponseVariables: c.ResponseVariables,
		EnvVariables:      c.EnvVariables,
	}
}

// HandleList handles GET /outbound.
func (h *Handler) HandleList(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, Summaries(h.registry))
}

// HandleVariables handles GET /outbound/{id}/variables.
func (h *Handler) HandleVariables(w http.ResponseWriter, r *http.Request) {
	a, ok := h.registry.Get(chi.URLParam(r, "id"))
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "unknown module"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, Variables(a))
}

// HandleRun handles POST /outbound/{id}. Adapter outcomes, including errors
// talking to TrustedForm, are returned with 200.
func (h *Handler) HandleRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	id := chi.URLParam(r, "id")
	start := time.Now()

	var vars lead.Vars
	if err := httputil.DecodeJSON(r, &vars); err != nil {
		httputil.WriteError(w, err)
		return
	}

	appended, err := h.runner.Run(ctx, id, &vars)
	if errors.Is(err, providers.ErrProviderNotFound) {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeNotFound, "unknown module"))
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "outbound run failed",
			"request_id", requestID,
			"module", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	outcome, _ := payload.OutcomeOf(appended)
	h.logger.InfoContext(ctx, "outbound run",
		"request_id", requestID,
		"module", id,
		"outcome", outcome,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, appended)
}
