// internal/app/features/inference/handler.go
package inference

import (
	"context"
	"encoding/json"
	"net/http"

	uierrors "github.com/dalemusser/resourcehub/internal/app/features/errors"
	"github.com/dalemusser/resourcehub/internal/app/system/inputval"
	"github.com/dalemusser/resourcehub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler serves the metadata inference endpoint.
type Handler struct {
	Inferencer Inferencer // nil when inference is disabled
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger
}

// NewHandler constructs an inference Handler. A nil Inferencer is
// allowed; the endpoint then answers 503.
func NewHandler(inf Inferencer, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Inferencer: inf,
		Log:        logger,
		ErrLog:     errLog,
	}
}

type inferRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// inferResponse mirrors the upstream action result: success plus data,
// or a caller-facing message when nothing useful came back.
type inferResponse struct {
	Success bool      `json:"success"`
	Data    *Metadata `json:"data,omitempty"`
	Message string    `json:"message,omitempty"`
}

// HandleInfer serves POST /api/inference.
//
// Both name and url are required. A model run that yields neither field
// is reported as success=false with an explanatory message, not as an
// HTTP error; the editor just gets nothing to prefill.
func (h *Handler) HandleInfer(w http.ResponseWriter, r *http.Request) {
	if h.Inferencer == nil {
		writeJSON(w, http.StatusServiceUnavailable, inferResponse{
			Success: false,
			Message: "Metadata inference is not configured.",
		})
		return
	}

	var req inferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, inferResponse{
			Success: false,
			Message: "Invalid JSON body.",
		})
		return
	}

	if !inputval.NonEmpty(req.URL) || !inputval.NonEmpty(req.Name) {
		writeJSON(w, http.StatusBadRequest, inferResponse{
			Success: false,
			Message: "URL and name are required for scraping.",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	meta, err := h.Inferencer.InferMetadata(ctx, req.Name, req.URL)
	if err != nil {
		h.Log.Error("metadata inference failed", zap.Error(err), zap.String("url", req.URL))
		writeJSON(w, http.StatusOK, inferResponse{
			Success: false,
			Message: "An unexpected error occurred during the scraping process.",
		})
		return
	}

	if meta.Duration == "" && meta.ManualLastUpdate == "" {
		writeJSON(w, http.StatusOK, inferResponse{
			Success: false,
			Message: "Could not extract any new information from the resource.",
		})
		return
	}

	writeJSON(w, http.StatusOK, inferResponse{
		Success: true,
		Data:    &meta,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
