package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"vrp-instance-service/internal/api/dto"
	"vrp-instance-service/internal/ports"
)

const (
	defaultRecent = 10
	maxRecent     = 100
)

type ResultHandler struct {
	Results ports.ResultStore
}

// Get serves GET /results?instance=<name>&limit=<n>.
func (h *ResultHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	if h.Results == nil {
		writeError(w, r, http.StatusServiceUnavailable, "result store not configured")
		return
	}

	instance := strings.TrimSpace(r.URL.Query().Get("instance"))
	if instance == "" {
		writeError(w, r, http.StatusBadRequest, "instance is required")
		return
	}

	limit := defaultRecent
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > maxRecent {
			writeError(w, r, http.StatusBadRequest, "limit must be between 0 and 100")
			return
		}
		limit = n
	}

	res := dto.ResultsResponse{Instance: instance}

	best, err := h.Results.Best(r.Context(), instance)
	switch {
	case errors.Is(err, ports.ErrNoResult):
	case err != nil:
		log.Printf("best result failed: instance=%s err=%v", instance, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	default:
		b := resultResponse(best)
		res.Best = &b
	}

	recent, err := h.Results.Recent(r.Context(), instance, limit)
	if err != nil {
		log.Printf("recent results failed: instance=%s err=%v", instance, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	res.Recent = make([]dto.ResultResponse, 0, len(recent))
	for _, rec := range recent {
		res.Recent = append(res.Recent, resultResponse(rec))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func resultResponse(r ports.ResultRecord) dto.ResultResponse {
	return dto.ResultResponse{
		RunID:          r.RunID,
		Solver:         r.Solver,
		Heuristic:      r.Heuristic,
		Defined:        r.Defined,
		Value:          r.Value,
		Status:         r.Status,
		SolutionTimeMS: r.SolutionTime.Milliseconds(),
		RecordedAt:     r.RecordedAt,
	}
}
