package flow

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	dErrors "trustedform/pkg/domain-errors"
	"trustedform/pkg/platform/httputil"
	"trustedform/pkg/requestcontext"
)

// FlowService is what the handler needs from the flow service.
type FlowService interface {
	Create(ctx context.Context, sel Selection) (*Flow, error)
	Get(ctx context.Context, id uuid.UUID) (*Flow, error)
	List(ctx context.Context, limit int) ([]*Flow, error)
}

// Handler serves field catalogs and the flow builder.
type Handler struct {
	service FlowService
	logger  *slog.Logger
}

func NewHandler(service FlowService, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the configuration UI routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/ui/api/fields/insights", h.HandleInsightsFields)
	r.Get("/ui/api/fields/data_service", h.HandleDataServiceFields)
	r.Post("/ui/api/flows", h.HandleCreate)
	r.Get("/ui/api/flows", h.HandleList)
	r.Get("/ui/api/flows/{id}", h.HandleGet)
}

func (h *Handler) HandleInsightsFields(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, InsightsCatalog)
}

func (h *Handler) HandleDataServiceFields(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, DataServiceCatalog)
}

type createRequest struct {
	Selection
}

func (r *createRequest) Validate() error {
	if r.Entity.Name == "" || r.Entity.ID == "" {
		return dErrors.New(dErrors.CodeValidation, "entity name and id are required")
	}
	return nil
}

// HandleCreate handles POST /ui/api/flows.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[createRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	f, err := h.service.Create(ctx, req.Selection)
	if err != nil {
		h.logger.WarnContext(ctx, "flow creation failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	h.write(w, r, http.StatusCreated, f)
}

// HandleGet handles GET /ui/api/flows/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid flow id"))
		return
	}
	f, err := h.service.Get(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.write(w, r, http.StatusOK, f)
}

// HandleList handles GET /ui/api/flows.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "limit must be a non-negative integer"))
			return
		}
		limit = n
	}
	flows, err := h.service.List(r.Context(), limit)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if flows == nil {
		flows = []*Flow{}
	}
	httputil.WriteJSON(w, http.StatusOK, flows)
}

// write renders f as JSON, or as an importable YAML document with ?format=yaml.
func (h *Handler) write(w http.ResponseWriter, r *http.Request, status int, f *Flow) {
	if r.URL.Query().Get("format") != "yaml" {
		httputil.WriteJSON(w, status, f)
		return
	}
	out, err := f.YAML()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(status)
	_, _ = w.Write(out)
}
