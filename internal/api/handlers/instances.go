package handlers

import (
	"errors"
	"log"
	"net/http"
	"vrp-instance-service/internal/api/dto"
	"vrp-instance-service/internal/domain"
	"vrp-instance-service/internal/parsers"
	"vrp-instance-service/internal/platform/obs"
	"vrp-instance-service/internal/ports"
	"vrp-instance-service/internal/services"
)

// InstanceHandler parses uploaded benchmark files and serves the catalog.
// Repo may be nil, in which case parsed instances are not stored.
type InstanceHandler struct {
	Repo ports.InstanceRepository
}

// Serve dispatches GET (list) and POST (parse) on /instances.
func (h *InstanceHandler) Serve(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.List(w, r)
	case http.MethodPost:
		h.Parse(w, r)
	default:
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *InstanceHandler) Parse(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}

	var req dto.ParseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	d, err := parsers.ParseDialect(req.Dialect)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	inst, err := services.LoadInstance(r.Context(), req.Name, d, req.Content)
	if err != nil {
		writeParseError(w, r, err)
		return
	}

	saved := false
	if h.Repo != nil {
		if err := h.Repo.SaveInstance(r.Context(), inst); err != nil {
			log.Printf("save instance failed: name=%s err=%v", inst.Name, err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		saved = true
	}

	writeJSON(w, r, http.StatusCreated, instanceResponse(inst, saved, req.IncludeMatrix))
}

func (h *InstanceHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	if h.Repo == nil {
		writeError(w, r, http.StatusServiceUnavailable, "instance catalog not configured")
		return
	}

	list, err := h.Repo.ListInstances(r.Context())
	if err != nil {
		log.Printf("list instances failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListInstancesResponse{Instances: make([]dto.InstanceSummaryResponse, 0, len(list))}
	for _, s := range list {
		res.Instances = append(res.Instances, dto.InstanceSummaryResponse{
			Name:         s.Name,
			Dialect:      s.Dialect,
			Points:       s.Points,
			VehicleTypes: s.VehicleTypes,
			FleetSize:    s.FleetSize,
			Timed:        s.Timed,
			LoadedAt:     s.LoadedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func instanceResponse(inst *domain.Instance, saved, withMatrix bool) dto.InstanceResponse {
	res := dto.InstanceResponse{
		Name:         inst.Name,
		Dialect:      inst.Dialect,
		Points:       len(inst.Points),
		Customers:    len(inst.Customers()),
		VehicleTypes: len(inst.VehicleTypes),
		FleetSize:    inst.FleetSize(),
		Links:        len(inst.Links),
		Timed:        inst.Timed(),
		Saved:        saved,
		Fleet: dto.FleetResponse{
			Capacities: domain.Capacities(inst.Fleet),
			FixedCosts: domain.FixedCosts(inst.Fleet),
			VarCosts:   domain.VarCosts(inst.Fleet),
		},
	}
	if withMatrix {
		res.Distances = inst.Distances.Rows()
		if inst.Timed() {
			res.Times = inst.Times.Rows()
		}
	}
	return res
}

// writeParseError reports an input file that could not be loaded. Parse
// errors carry the position and the expected token.
func writeParseError(w http.ResponseWriter, r *http.Request, err error) {
	var perr *parsers.ParseError
	if errors.As(err, &perr) {
		log.Printf("parse failed: req_id=%s kind=%v state=%s pos=%d", obs.RequestID(r.Context()), perr.Kind, perr.State, perr.Pos)
	}
	writeError(w, r, http.StatusUnprocessableEntity, err.Error())
}
