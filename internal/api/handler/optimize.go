package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/camperplan/camperplan/internal/api/middleware"
	"github.com/camperplan/camperplan/internal/api/models"
	"github.com/camperplan/camperplan/internal/api/response"
	"github.com/camperplan/camperplan/internal/optimizer"
	"github.com/camperplan/camperplan/internal/planner"
	"github.com/camperplan/camperplan/internal/trip"
)

// OptimizeHandler handles stateless route optimization.
type OptimizeHandler struct {
	metrics *middleware.EngineMetrics
}

// NewOptimizeHandler creates a new OptimizeHandler. Metrics may be nil.
func NewOptimizeHandler(metrics *middleware.EngineMetrics) *OptimizeHandler {
	return &OptimizeHandler{metrics: metrics}
}

// OptimizeRoute handles POST /v1/routes:optimize.
func (h *OptimizeHandler) OptimizeRoute(w http.ResponseWriter, r *http.Request) {
	var req models.OptimizeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errs := validateOptimizeRequest(&req); len(errs) > 0 {
		response.BadRequest(w, r, "validation failed", errs)
		return
	}

	criteria := criteriaFromAPI(req.Criteria)

	started := time.Now()
	result, err := optimizer.Optimize(waypointsFromAPI(req.Waypoints), criteria)
	if h.metrics != nil {
		h.metrics.RecordCompute("optimize", time.Since(started), err)
	}
	if err != nil {
		var invalid *planner.InvalidInputError
		if errors.As(err, &invalid) {
			response.BadRequest(w, r, invalid.Message, nil)
			return
		}
		response.InternalError(w, r, "route optimization failed")
		return
	}

	id := "opt_" + uuid.New().String()[:22]
	response.JSON(w, r, http.StatusOK, resultToAPI(id, result))
}

func validateOptimizeRequest(req *models.OptimizeRequest) []models.FieldError {
	var errs []models.FieldError

	if len(req.Waypoints) < 3 {
		errs = append(errs, models.FieldError{
			Field:   "waypoints",
			Message: "at least 3 waypoints are required",
		})
	}
	for i := range req.Waypoints {
		errs = append(errs, trip.ValidateWaypoint(&req.Waypoints[i], waypointField(i))...)
	}
	errs = append(errs, validateCriteria(req.Criteria)...)

	return errs
}

func validateCriteria(c *models.OptimizationCriteria) []models.FieldError {
	if c == nil {
		return nil
	}

	var errs []models.FieldError
	switch c.Objective {
	case "", models.ObjectiveShortest, models.ObjectiveFastest, models.ObjectiveBalanced:
	default:
		errs = append(errs, models.FieldError{
			Field:   "criteria.objective",
			Message: "must be one of shortest, fastest, balanced",
		})
	}
	if c.FuelCostPerKm != nil && *c.FuelCostPerKm < 0 {
		errs = append(errs, models.FieldError{
			Field:   "criteria.fuelCostPerKm",
			Message: "must not be negative",
		})
	}
	return errs
}
