package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/camperplan/camperplan/internal/api/middleware"
	"github.com/camperplan/camperplan/internal/api/models"
	"github.com/camperplan/camperplan/internal/api/response"
	"github.com/camperplan/camperplan/internal/planner"
	"github.com/camperplan/camperplan/internal/season"
	"github.com/camperplan/camperplan/internal/trip"
)

// PlanHandler handles stateless trip plan computation.
type PlanHandler struct {
	metrics *middleware.EngineMetrics
}

// NewPlanHandler creates a new PlanHandler. Metrics may be nil.
func NewPlanHandler(metrics *middleware.EngineMetrics) *PlanHandler {
	return &PlanHandler{metrics: metrics}
}

// ComputePlan handles POST /v1/plans:compute.
func (h *PlanHandler) ComputePlan(w http.ResponseWriter, r *http.Request) {
	var req models.PlanComputeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errs := validatePlanRequest(&req); len(errs) > 0 {
		response.BadRequest(w, r, "validation failed", errs)
		return
	}

	s := season.Season(req.Season)
	profile := profileFromAPI(req.VehicleProfile)
	start := dateFromAPI(req.StartDate)

	started := time.Now()
	plan, err := planner.CreateTripPlan(waypointsFromAPI(req.Waypoints), profile, start, s)
	if h.metrics != nil {
		h.metrics.RecordCompute("plan", time.Since(started), err)
	}
	if err != nil {
		var invalid *planner.InvalidInputError
		if errors.As(err, &invalid) {
			response.BadRequest(w, r, invalid.Message, nil)
			return
		}
		response.InternalError(w, r, "plan computation failed")
		return
	}

	out := planToAPI(plan, planner.DeriveLimits(profile, s))

	// Country-specific seasonal warnings beyond the baseline set.
	if len(req.Countries) > 0 {
		out.Warnings = mergeWarnings(out.Warnings, season.Factors(s, req.Countries).Warnings)
	}
	if req.FuelCostPerKm != nil && *req.FuelCostPerKm > 0 {
		cost := plan.TotalDistanceKm * *req.FuelCostPerKm
		out.EstimatedFuelCost = &cost
	}

	response.JSON(w, r, http.StatusOK, out)
}

func validatePlanRequest(req *models.PlanComputeRequest) []models.FieldError {
	var errs []models.FieldError

	if len(req.Waypoints) < 2 {
		errs = append(errs, models.FieldError{
			Field:   "waypoints",
			Message: "at least 2 waypoints are required",
		})
	}
	for i := range req.Waypoints {
		errs = append(errs, trip.ValidateWaypoint(&req.Waypoints[i], waypointField(i))...)
	}
	if req.Season != "" && !season.Season(req.Season).Valid() {
		errs = append(errs, models.FieldError{
			Field:   "season",
			Message: "must be one of spring, summer, autumn, winter",
		})
	}
	if req.FuelCostPerKm != nil && *req.FuelCostPerKm < 0 {
		errs = append(errs, models.FieldError{
			Field:   "fuelCostPerKm",
			Message: "must not be negative",
		})
	}

	return errs
}

func waypointField(i int) string {
	return "waypoints[" + strconv.Itoa(i) + "]"
}

// mergeWarnings appends the warnings from extra that base does not
// already contain, preserving order.
func mergeWarnings(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	for _, warning := range base {
		seen[warning] = true
	}
	for _, warning := range extra {
		if !seen[warning] {
			base = append(base, warning)
			seen[warning] = true
		}
	}
	return base
}
