package models

// Trip is a saved trip: a named waypoint snapshot with an optional
// vehicle profile, start date, and season.
type Trip struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Waypoints      []Waypoint      `json:"waypoints"`
	VehicleProfile *VehicleProfile `json:"vehicleProfile,omitempty"`
	StartDate      *DateOnly       `json:"startDate,omitempty"`
	Season         string          `json:"season,omitempty"`
	CreatedAt      Timestamp       `json:"createdAt"`
	UpdatedAt      Timestamp       `json:"updatedAt"`
}

// TripCreateRequest is the request body for POST /v1/trips.
type TripCreateRequest struct {
	Name           string          `json:"name"`
	Waypoints      []Waypoint      `json:"waypoints"`
	VehicleProfile *VehicleProfile `json:"vehicleProfile,omitempty"`
	StartDate      *DateOnly       `json:"startDate,omitempty"`
	Season         string          `json:"season,omitempty"`
}

// TripUpdateRequest is the request body for PUT /v1/trips/{tripId}.
// Nil fields are left unchanged.
type TripUpdateRequest struct {
	Name           *string         `json:"name,omitempty"`
	Waypoints      []Waypoint      `json:"waypoints,omitempty"`
	VehicleProfile *VehicleProfile `json:"vehicleProfile,omitempty"`
	StartDate      *DateOnly       `json:"startDate,omitempty"`
	Season         *string         `json:"season,omitempty"`
}

// PagedTrips is a paginated list of trips.
type PagedTrips struct {
	Items []Trip            `json:"items"`
	Meta  PagedResponseMeta `json:"meta"`
}

// TripPlanRequest is the request body for POST /v1/trips/{tripId}:plan.
// The stored trip supplies the waypoints; season and start date default
// to the stored values unless overridden here.
type TripPlanRequest struct {
	Season        string    `json:"season,omitempty"`
	StartDate     *DateOnly `json:"startDate,omitempty"`
	Countries     []string  `json:"countries,omitempty"`
	FuelCostPerKm *float64  `json:"fuelCostPerKm,omitempty"`
}

// TripOptimizeRequest is the request body for
// POST /v1/trips/{tripId}:optimize and :applyOptimization.
type TripOptimizeRequest struct {
	Criteria *OptimizationCriteria `json:"criteria,omitempty"`
}
