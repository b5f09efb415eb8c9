package account

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"trustedform/pkg/platform/httputil"
	"trustedform/pkg/requestcontext"
)

// MissingAPIKeyMessage is returned when the lookup has no apiKey.
const MissingAPIKeyMessage = "missing required field: apiKey"

// Lookuper is what the handler needs from the account service.
type Lookuper interface {
	Lookup(ctx context.Context, apiKey string) (*Result, error)
}

// Handler serves the account lookup the configuration UI calls.
type Handler struct {
	service Lookuper
	logger  *slog.Logger
}

func NewHandler(service Lookuper, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the account route.
func (h *Handler) Register(r chi.Router) {
	r.Get("/ui/api/account", h.HandleLookup)
}

type errorBody struct {
	Error string `json:"error"`
}

// HandleLookup handles GET /ui/api/account?apiKey=.
func (h *Handler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	apiKey := r.URL.Query().Get("apiKey")
	if apiKey == "" {
		httputil.WriteJSON(w, http.StatusUnprocessableEntity, errorBody{Error: MissingAPIKeyMessage})
		return
	}

	result, err := h.service.Lookup(ctx, apiKey)
	if err != nil {
		h.logger.WarnContext(ctx, "account lookup failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteJSON(w, http.StatusUnprocessableEntity, errorBody{Error: err.Error()})
		return
	}

	if !result.OK() {
		h.logger.InfoContext(ctx, "account lookup rejected",
			"request_id", requestID,
			"status", result.Status,
		)
		httputil.WriteJSON(w, result.Status, errorBody{Error: upstreamError(result)})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Body)
}

func upstreamError(r *Result) string {
	var body struct {
		Error *string `json:"error"`
	}
	if err := json.Unmarshal(r.Body, &body); err != nil || body.Error == nil {
		return fmt.Sprintf("Error (%d); unable to parse response from LeadConduit", r.Status)
	}
	return *body.Error
}
