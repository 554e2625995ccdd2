package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ecofootprint/ecofootprint/internal/fetch"
	"github.com/ecofootprint/ecofootprint/internal/footprint"
	"github.com/ecofootprint/ecofootprint/internal/history"
	"github.com/ecofootprint/ecofootprint/internal/pipeline"
	"github.com/ecofootprint/ecofootprint/internal/units"
)

type Handlers struct {
	analyzer *pipeline.Analyzer
	history  *history.Store
	logger   *slog.Logger
}

func NewHandlers(analyzer *pipeline.Analyzer, hist *history.Store, logger *slog.Logger) *Handlers {
	return &Handlers{
		analyzer: analyzer,
		history:  hist,
		logger:   logger,
	}
}

// AnalyzeRequest asks for a footprint estimate of the product behind a URL.
type AnalyzeRequest struct {
	URL string `json:"url"`
}

// AnalyzeProduct handles the scrape-and-calculate path.
func (h *Handlers) AnalyzeProduct(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.URL == "" {
		h.respondError(w, http.StatusBadRequest, "URL required")
		return
	}

	result, err := h.analyzer.AnalyzeURL(r.Context(), req.URL)
	if err != nil {
		h.respondAnalyzeError(w, req.URL, err)
		return
	}

	h.respondRaw(w, http.StatusOK, result)
}

func (h *Handlers) respondAnalyzeError(w http.ResponseWriter, url string, err error) {
	if errors.Is(err, pipeline.ErrInvalidURL) {
		h.respondError(w, http.StatusBadRequest, "Invalid URL format")
		return
	}

	var fetchErr *fetch.FetchError
	if errors.As(err, &fetchErr) {
		h.logger.Error("failed to fetch product page", "url", url, "error", err)
		if fetchErr.StatusCode > 0 {
			h.respondError(w, fetchErr.StatusCode, fetchErr.Message)
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to analyze product")
		return
	}

	h.logger.Error("failed to analyze product", "url", url, "error", err)
	h.respondError(w, http.StatusInternalServerError, "Failed to analyze product")
}

// CalculateRequest describes a product explicitly. Weight is decoded
// loosely because form clients send it both as a number and as a string.
type CalculateRequest struct {
	Weight             interface{} `json:"weight"`
	Unit               string      `json:"unit"`
	ProductType        string      `json:"productType"`
	ManufacturerRegion string      `json:"manufacturerRegion"`
	Materials          []string    `json:"materials"`
}

// CalculateFootprint handles the structured-input path.
func (h *Handlers) CalculateFootprint(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Weight == nil || req.Unit == "" || req.ProductType == "" || req.ManufacturerRegion == "" {
		h.respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	weight, err := units.ParseWeight(req.Weight)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid weight value")
		return
	}

	result, err := h.analyzer.Calculate(r.Context(), footprint.ProductInput{
		Weight:             weight,
		Unit:               req.Unit,
		ProductType:        req.ProductType,
		ManufacturerRegion: req.ManufacturerRegion,
		Materials:          req.Materials,
	})
	if err != nil {
		h.respondCalculateError(w, req, err)
		return
	}

	h.respondRaw(w, http.StatusOK, result)
}

func (h *Handlers) respondCalculateError(w http.ResponseWriter, req CalculateRequest, err error) {
	switch {
	case errors.Is(err, footprint.ErrMissingField):
		h.respondError(w, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, units.ErrInvalidUnit):
		h.respondError(w, http.StatusBadRequest, "Invalid unit: "+req.Unit)
	case errors.Is(err, units.ErrInvalidWeight):
		h.respondError(w, http.StatusBadRequest, "Invalid weight value")
	default:
		h.logger.Error("failed to calculate footprint", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Calculation error")
	}
}

// ListAnalyses returns the most recent persisted URL analyses.
func (h *Handlers) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	analyses, err := h.history.Recent(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list analyses", "error", err)
		h.respondError(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{"analyses": analyses})
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// respondRaw writes pre-marshaled JSON, preserving cached bytes exactly.
func (h *Handlers) respondRaw(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}

func (h *Handlers) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
