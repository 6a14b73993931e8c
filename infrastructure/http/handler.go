package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/shirou/gopsutil/process"

	apperrors "member-qa/errors"

	"member-qa/contract"
	"member-qa/observability"
)

type Handler struct {
	service contract.IQAService
	stats   *observability.PipelineStats
	log     *slog.Logger
}

func NewHandler(service contract.IQAService, stats *observability.PipelineStats, log *slog.Logger) *Handler {
	return &Handler{service: service, stats: stats, log: log}
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer   string `json:"answer"`
	Grounded bool   `json:"grounded"`
}

// Ask runs the full pipeline for one question. Hard failures keep their
// error status: the fallback sentence only ever travels in a 200 payload.
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be JSON with a 'question' field")
		return
	}

	result, err := h.service.Ask(r.Context(), req.Question)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrEmptyQuestion):
			writeError(w, http.StatusBadRequest, "question cannot be empty")
		case errors.Is(err, apperrors.ErrFeedUnavailable):
			h.log.Error("Feed unavailable", "err", err)
			writeError(w, http.StatusBadGateway, "upstream messages feed unavailable")
		case errors.Is(err, apperrors.ErrGeneration):
			h.log.Error("Generation failed", "err", err)
			writeError(w, http.StatusInternalServerError, "generation backend failed")
		default:
			h.log.Error("Unexpected pipeline failure", "err", err)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, askResponse{Answer: result.Answer, Grounded: result.Grounded})
}

type processStats struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemPercent float32 `json:"mem_percent"`
}

type healthResponse struct {
	Status   string                      `json:"status"`
	Service  string                      `json:"service"`
	Process  *processStats               `json:"process,omitempty"`
	Pipeline observability.StatsSnapshot `json:"pipeline"`
}

// Health reports liveness plus process usage and pipeline counters.
// Process metrics are best-effort: their failure never degrades the status.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	resp := healthResponse{
		Status:   "healthy",
		Service:  serviceName,
		Pipeline: h.stats.Snapshot(),
	}

	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		cpu, cpuErr := p.CPUPercent()
		ram, ramErr := p.MemoryPercent()
		if cpuErr == nil && ramErr == nil {
			resp.Process = &processStats{CPUPercent: cpu, MemPercent: ram}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// Root is a landing payload so the base URL does not 404.
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": serviceName,
		"message": "Welcome. Use POST /ask with {'question': '...'}.",
		"endpoints": map[string]string{
			"health": "/health",
			"ask":    "/ask",
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
