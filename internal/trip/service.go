package trip

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/camperplan/camperplan/internal/api/models"
	"github.com/camperplan/camperplan/internal/optimizer"
	"github.com/camperplan/camperplan/internal/planner"
	"github.com/camperplan/camperplan/internal/season"
)

// Validation constants.
const (
	MaxNameLength  = 80
	MaxNotesLength = 500
	MaxWaypoints   = 100
)

// Service provides saved-trip operations.
type Service struct {
	repo Repository
}

// NewService creates a new trip service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List retrieves a page of the user's trips. The cursor is the opaque
// nextCursor value from a previous page, or empty for the first page.
func (s *Service) List(ctx context.Context, userID string, limit int, cursor string) (*models.PagedTrips, error) {
	result, err := s.repo.List(ctx, userID, ListOptions{Limit: limit, Cursor: cursor})
	if err != nil {
		return nil, err
	}

	items := make([]models.Trip, 0, len(result.Items))
	for _, t := range result.Items {
		items = append(items, s.toAPITrip(t))
	}

	var nextCursor *string
	if result.NextCursor != "" {
		nextCursor = &result.NextCursor
	}

	return &models.PagedTrips{
		Items: items,
		Meta: models.PagedResponseMeta{
			Limit:      limit,
			NextCursor: nextCursor,
		},
	}, nil
}

// Get retrieves a trip by ID for a user.
func (s *Service) Get(ctx context.Context, userID, tripID string) (*models.Trip, error) {
	t, err := s.repo.GetByUserAndID(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	result := s.toAPITrip(t)
	return &result, nil
}

// Create creates a new trip for a user.
func (s *Service) Create(ctx context.Context, userID string, input *models.TripCreateRequest) (*models.Trip, error) {
	if fieldErrors := s.validateCreateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	now := time.Now()
	tripID := "trp_" + uuid.New().String()[:22]

	t := &Trip{
		ID:             tripID,
		UserID:         userID,
		Name:           input.Name,
		Waypoints:      waypointsFromAPI(input.Waypoints),
		VehicleProfile: profileFromAPI(input.VehicleProfile),
		StartDate:      dateFromAPI(input.StartDate),
		Season:         season.Season(input.Season),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	result := s.toAPITrip(t)
	return &result, nil
}

// Update updates an existing trip for a user.
func (s *Service) Update(ctx context.Context, userID, tripID string, input *models.TripUpdateRequest) (*models.Trip, error) {
	t, err := s.repo.GetByUserAndID(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	if fieldErrors := s.validateUpdateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	if input.Name != nil {
		t.Name = *input.Name
	}
	if input.Waypoints != nil {
		t.Waypoints = waypointsFromAPI(input.Waypoints)
	}
	if input.VehicleProfile != nil {
		t.VehicleProfile = profileFromAPI(input.VehicleProfile)
	}
	if input.StartDate != nil {
		t.StartDate = dateFromAPI(input.StartDate)
	}
	if input.Season != nil {
		t.Season = season.Season(*input.Season)
	}
	t.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}

	result := s.toAPITrip(t)
	return &result, nil
}

// Delete deletes a trip for a user.
func (s *Service) Delete(ctx context.Context, userID, tripID string) error {
	// Verify ownership
	_, err := s.repo.GetByUserAndID(ctx, userID, tripID)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, tripID)
}

// Plan computes a trip plan from the stored waypoint snapshot. Season and
// start date default to the stored values unless overridden.
func (s *Service) Plan(ctx context.Context, userID, tripID string, overrideSeason string, overrideStart *time.Time) (*planner.TripPlan, *Trip, error) {
	t, err := s.repo.GetByUserAndID(ctx, userID, tripID)
	if err != nil {
		return nil, nil, err
	}

	sn := t.Season
	if overrideSeason != "" {
		sn = season.Season(overrideSeason)
	}
	start := t.StartDate
	if overrideStart != nil {
		start = overrideStart
	}

	plan, err := planner.CreateTripPlan(t.Waypoints, t.VehicleProfile, start, sn)
	if err != nil {
		return nil, nil, err
	}
	return plan, t, nil
}

// Optimize runs route optimization over the stored waypoint snapshot
// without modifying the trip.
func (s *Service) Optimize(ctx context.Context, userID, tripID string, criteria optimizer.Criteria) (*optimizer.Result, error) {
	t, err := s.repo.GetByUserAndID(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	if criteria.VehicleProfile == nil {
		criteria.VehicleProfile = t.VehicleProfile
	}

	return optimizer.Optimize(t.Waypoints, criteria)
}

// ApplyOptimization runs route optimization over the stored waypoint
// snapshot and replaces the stored order with the optimized one.
func (s *Service) ApplyOptimization(ctx context.Context, userID, tripID string, criteria optimizer.Criteria) (*optimizer.Result, *models.Trip, error) {
	t, err := s.repo.GetByUserAndID(ctx, userID, tripID)
	if err != nil {
		return nil, nil, err
	}

	if criteria.VehicleProfile == nil {
		criteria.VehicleProfile = t.VehicleProfile
	}

	result, err := optimizer.Optimize(t.Waypoints, criteria)
	if err != nil {
		return nil, nil, err
	}

	t.Waypoints = result.OptimizedRoute.Waypoints
	t.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, nil, err
	}

	updated := s.toAPITrip(t)
	return result, &updated, nil
}

// validateCreateInput validates the create trip input.
func (s *Service) validateCreateInput(input *models.TripCreateRequest) []models.FieldError {
	var errs []models.FieldError

	if input.Name == "" {
		errs = append(errs, models.FieldError{Field: "name", Message: "is required"})
	} else if len(input.Name) > MaxNameLength {
		errs = append(errs, models.FieldError{Field: "name", Message: "must be at most 80 characters"})
	}

	errs = append(errs, s.validateWaypoints(input.Waypoints, true)...)

	if input.Season != "" && !season.Season(input.Season).Valid() {
		errs = append(errs, models.FieldError{Field: "season", Message: "must be one of spring, summer, autumn, winter"})
	}

	return errs
}

// validateUpdateInput validates the update trip input.
func (s *Service) validateUpdateInput(input *models.TripUpdateRequest) []models.FieldError {
	var errs []models.FieldError

	if input.Name != nil {
		if *input.Name == "" {
			errs = append(errs, models.FieldError{Field: "name", Message: "cannot be empty"})
		} else if len(*input.Name) > MaxNameLength {
			errs = append(errs, models.FieldError{Field: "name", Message: "must be at most 80 characters"})
		}
	}

	if input.Waypoints != nil {
		errs = append(errs, s.validateWaypoints(input.Waypoints, false)...)
	}

	if input.Season != nil && !season.Season(*input.Season).Valid() {
		errs = append(errs, models.FieldError{Field: "season", Message: "must be one of spring, summer, autumn, winter"})
	}

	return errs
}

// validateWaypoints validates a waypoint list.
func (s *Service) validateWaypoints(waypoints []models.Waypoint, required bool) []models.FieldError {
	var errs []models.FieldError

	if len(waypoints) == 0 {
		if required {
			return []models.FieldError{{Field: "waypoints", Message: "is required"}}
		}
		return []models.FieldError{{Field: "waypoints", Message: "cannot be empty"}}
	}
	if len(waypoints) > MaxWaypoints {
		return []models.FieldError{{Field: "waypoints", Message: "must contain at most 100 waypoints"}}
	}

	for i, w := range waypoints {
		errs = append(errs, ValidateWaypoint(&w, fieldIndex("waypoints", i))...)
	}

	return errs
}

// ValidateWaypoint validates a single waypoint. The prefix names the
// field in error messages, e.g. "waypoints[2]".
func ValidateWaypoint(w *models.Waypoint, prefix string) []models.FieldError {
	var errs []models.FieldError

	if w.Lat < -90 || w.Lat > 90 {
		errs = append(errs, models.FieldError{
			Field:   prefix + ".lat",
			Message: "must be between -90 and 90",
		})
	}
	if w.Lng < -180 || w.Lng > 180 {
		errs = append(errs, models.FieldError{
			Field:   prefix + ".lng",
			Message: "must be between -180 and 180",
		})
	}
	if w.Kind != "" && !validWaypointKind(w.Kind) {
		errs = append(errs, models.FieldError{
			Field:   prefix + ".kind",
			Message: "must be one of start, end, intermediate, campsite, accommodation",
		})
	}
	if len(w.Notes) > MaxNotesLength {
		errs = append(errs, models.FieldError{
			Field:   prefix + ".notes",
			Message: "must be at most 500 characters",
		})
	}
	if w.StayDurationHours != nil && *w.StayDurationHours < 0 {
		errs = append(errs, models.FieldError{
			Field:   prefix + ".stayDurationHours",
			Message: "must not be negative",
		})
	}

	return errs
}

func validWaypointKind(k models.WaypointKind) bool {
	switch k {
	case models.KindStart, models.KindEnd, models.KindIntermediate,
		models.KindCampsite, models.KindAccommodation:
		return true
	}
	return false
}

func fieldIndex(field string, i int) string {
	return field + "[" + strconv.Itoa(i) + "]"
}

// toAPITrip converts a domain Trip to an API Trip.
func (s *Service) toAPITrip(t *Trip) models.Trip {
	return models.Trip{
		ID:             t.ID,
		Name:           t.Name,
		Waypoints:      waypointsToAPI(t.Waypoints),
		VehicleProfile: profileToAPI(t.VehicleProfile),
		StartDate:      dateToAPI(t.StartDate),
		Season:         string(t.Season),
		CreatedAt:      models.Timestamp(t.CreatedAt),
		UpdatedAt:      models.Timestamp(t.UpdatedAt),
	}
}

func waypointsFromAPI(in []models.Waypoint) []planner.Waypoint {
	out := make([]planner.Waypoint, 0, len(in))
	for _, w := range in {
		var visit *time.Time
		if w.VisitDate != nil {
			v := w.VisitDate.Time()
			visit = &v
		}
		out = append(out, planner.Waypoint{
			ID:                w.ID,
			Lat:               w.Lat,
			Lng:               w.Lng,
			Name:              w.Name,
			Kind:              planner.WaypointKind(w.Kind),
			VisitDate:         visit,
			StayDurationHours: w.StayDurationHours,
			Notes:             w.Notes,
		})
	}
	return out
}

func waypointsToAPI(in []planner.Waypoint) []models.Waypoint {
	out := make([]models.Waypoint, 0, len(in))
	for _, w := range in {
		var visit *models.DateOnly
		if w.VisitDate != nil {
			v := models.DateOnly(*w.VisitDate)
			visit = &v
		}
		out = append(out, models.Waypoint{
			ID:                w.ID,
			Lat:               w.Lat,
			Lng:               w.Lng,
			Name:              w.Name,
			Kind:              models.WaypointKind(w.Kind),
			VisitDate:         visit,
			StayDurationHours: w.StayDurationHours,
			Notes:             w.Notes,
		})
	}
	return out
}

func profileFromAPI(p *models.VehicleProfile) *planner.VehicleProfile {
	if p == nil {
		return nil
	}
	return &planner.VehicleProfile{
		HeightM:     p.HeightM,
		WidthM:      p.WidthM,
		LengthM:     p.LengthM,
		WeightT:     p.WeightT,
		VehicleType: planner.VehicleType(p.VehicleType),
		FuelType:    planner.FuelType(p.FuelType),
	}
}

func profileToAPI(p *planner.VehicleProfile) *models.VehicleProfile {
	if p == nil {
		return nil
	}
	return &models.VehicleProfile{
		HeightM:     p.HeightM,
		WidthM:      p.WidthM,
		LengthM:     p.LengthM,
		WeightT:     p.WeightT,
		VehicleType: models.VehicleType(p.VehicleType),
		FuelType:    models.FuelType(p.FuelType),
	}
}

func dateFromAPI(d *models.DateOnly) *time.Time {
	if d == nil {
		return nil
	}
	v := d.Time()
	return &v
}

func dateToAPI(t *time.Time) *models.DateOnly {
	if t == nil {
		return nil
	}
	v := models.DateOnly(*t)
	return &v
}

// ValidationError represents validation errors.
type ValidationError struct {
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// IsNotFound reports whether err is the trip-not-found sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTripNotFound)
}
