package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/camperplan/camperplan/internal/api/middleware"
	"github.com/camperplan/camperplan/internal/api/models"
	"github.com/camperplan/camperplan/internal/api/response"
	"github.com/camperplan/camperplan/internal/optimizer"
	"github.com/camperplan/camperplan/internal/planner"
	"github.com/camperplan/camperplan/internal/season"
	"github.com/camperplan/camperplan/internal/trip"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// TripHandler handles saved-trip endpoints.
type TripHandler struct {
	service *trip.Service
	metrics *middleware.EngineMetrics
}

// NewTripHandler creates a new TripHandler. Metrics may be nil.
func NewTripHandler(service *trip.Service, metrics *middleware.EngineMetrics) *TripHandler {
	return &TripHandler{service: service, metrics: metrics}
}

// ListTrips handles GET /v1/trips - list saved trips.
func (h *TripHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxListLimit {
			response.BadRequest(w, r, "limit must be an integer between 1 and 100", nil)
			return
		}
		limit = n
	}
	cursor := r.URL.Query().Get("cursor")

	trips, err := h.service.List(r.Context(), userID, limit, cursor)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, trips)
}

// CreateTrip handles POST /v1/trips - create a saved trip.
func (h *TripHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var input models.TripCreateRequest
	if !decodeJSON(w, r, &input) {
		return
	}

	created, err := h.service.Create(r.Context(), GetUserID(r.Context()), &input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	location := fmt.Sprintf("/v1/trips/%s", created.ID)
	response.Created(w, r, location, created)
}

// GetTrip handles GET /v1/trips/{tripId} - get a saved trip.
func (h *TripHandler) GetTrip(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.Get(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "tripId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, t)
}

// UpdateTrip handles PUT /v1/trips/{tripId} - update a saved trip.
func (h *TripHandler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	var input models.TripUpdateRequest
	if !decodeJSON(w, r, &input) {
		return
	}

	updated, err := h.service.Update(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "tripId"), &input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /v1/trips/{tripId} - delete a saved trip.
func (h *TripHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "tripId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.NoContent(w, r)
}

// PlanTrip handles POST /v1/trips/{tripId}:plan - compute a trip plan
// from the stored waypoints. The optional body overrides the stored
// season and start date.
func (h *TripHandler) PlanTrip(w http.ResponseWriter, r *http.Request) {
	var req models.TripPlanRequest
	if !decodeJSONOptional(w, r, &req) {
		return
	}

	if req.Season != "" && !season.Season(req.Season).Valid() {
		response.BadRequest(w, r, "validation failed", []models.FieldError{
			{Field: "season", Message: "must be one of spring, summer, autumn, winter"},
		})
		return
	}
	if req.FuelCostPerKm != nil && *req.FuelCostPerKm < 0 {
		response.BadRequest(w, r, "validation failed", []models.FieldError{
			{Field: "fuelCostPerKm", Message: "must not be negative"},
		})
		return
	}

	started := time.Now()
	plan, stored, err := h.service.Plan(r.Context(), GetUserID(r.Context()),
		chi.URLParam(r, "tripId"), req.Season, dateFromAPI(req.StartDate))
	if h.metrics != nil {
		h.metrics.RecordCompute("plan", time.Since(started), err)
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	s := stored.Season
	if req.Season != "" {
		s = season.Season(req.Season)
	}
	out := planToAPI(plan, planner.DeriveLimits(stored.VehicleProfile, s))
	if len(req.Countries) > 0 {
		out.Warnings = mergeWarnings(out.Warnings, season.Factors(s, req.Countries).Warnings)
	}
	if req.FuelCostPerKm != nil && *req.FuelCostPerKm > 0 {
		cost := plan.TotalDistanceKm * *req.FuelCostPerKm
		out.EstimatedFuelCost = &cost
	}

	response.JSON(w, r, http.StatusOK, out)
}

// OptimizeTrip handles POST /v1/trips/{tripId}:optimize - optimize the
// stored waypoint order without modifying the trip.
func (h *TripHandler) OptimizeTrip(w http.ResponseWriter, r *http.Request) {
	criteria, ok := h.decodeCriteria(w, r)
	if !ok {
		return
	}

	started := time.Now()
	result, err := h.service.Optimize(r.Context(), GetUserID(r.Context()),
		chi.URLParam(r, "tripId"), criteria)
	if h.metrics != nil {
		h.metrics.RecordCompute("optimize", time.Since(started), err)
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	id := "opt_" + uuid.New().String()[:22]
	response.JSON(w, r, http.StatusOK, resultToAPI(id, result))
}

// ApplyOptimization handles POST /v1/trips/{tripId}:applyOptimization -
// optimize the stored waypoint order and persist the result.
func (h *TripHandler) ApplyOptimization(w http.ResponseWriter, r *http.Request) {
	criteria, ok := h.decodeCriteria(w, r)
	if !ok {
		return
	}

	started := time.Now()
	result, updated, err := h.service.ApplyOptimization(r.Context(), GetUserID(r.Context()),
		chi.URLParam(r, "tripId"), criteria)
	if h.metrics != nil {
		h.metrics.RecordCompute("optimize", time.Since(started), err)
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	id := "opt_" + uuid.New().String()[:22]
	response.JSON(w, r, http.StatusOK, struct {
		Result *models.OptimizationResult `json:"result"`
		Trip   *models.Trip               `json:"trip"`
	}{
		Result: resultToAPI(id, result),
		Trip:   updated,
	})
}

func (h *TripHandler) decodeCriteria(w http.ResponseWriter, r *http.Request) (optimizer.Criteria, bool) {
	var req models.TripOptimizeRequest
	if !decodeJSONOptional(w, r, &req) {
		return optimizer.Criteria{}, false
	}
	if errs := validateCriteria(req.Criteria); len(errs) > 0 {
		response.BadRequest(w, r, "validation failed", errs)
		return optimizer.Criteria{}, false
	}
	return criteriaFromAPI(req.Criteria), true
}

func (h *TripHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validation *trip.ValidationError
	var invalid *planner.InvalidInputError

	switch {
	case errors.As(err, &validation):
		response.BadRequest(w, r, "validation failed", validation.Errors)
	case errors.As(err, &invalid):
		response.BadRequest(w, r, invalid.Message, nil)
	case trip.IsNotFound(err):
		response.NotFound(w, r, "trip not found")
	default:
		response.InternalError(w, r, "request failed")
	}
}
