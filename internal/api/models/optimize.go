package models

// TimeConstraints bound the driving schedule an optimization may assume.
type TimeConstraints struct {
	MaxDrivingTimeHours float64 `json:"maxDrivingTimeHours,omitempty"`
	PreferredStartHour  int     `json:"preferredStartHour,omitempty"`
	AvoidNightDriving   bool    `json:"avoidNightDriving,omitempty"`
}

// CampsitePreferences express where the traveler wants to spend nights.
type CampsitePreferences struct {
	MaxDistanceBetweenStopsKm  float64 `json:"maxDistanceBetweenStopsKm,omitempty"`
	PreferredStopDurationHours float64 `json:"preferredStopDurationHours,omitempty"`
	RequireCampsiteOvernight   bool    `json:"requireCampsiteOvernight,omitempty"`
}

// OptimizationCriteria configures a route optimization run.
type OptimizationCriteria struct {
	Objective           Objective            `json:"objective,omitempty"`
	VehicleProfile      *VehicleProfile      `json:"vehicleProfile,omitempty"`
	TimeConstraints     *TimeConstraints     `json:"timeConstraints,omitempty"`
	CampsitePreferences *CampsitePreferences `json:"campsitePreferences,omitempty"`
	FuelCostPerKm       *float64             `json:"fuelCostPerKm,omitempty"`
}

// OptimizeRequest is the request body for POST /v1/routes:optimize.
type OptimizeRequest struct {
	Waypoints []Waypoint            `json:"waypoints"`
	Criteria  *OptimizationCriteria `json:"criteria,omitempty"`
}

// RouteSummary is one ordering of the waypoints with its totals.
type RouteSummary struct {
	Waypoints       []Waypoint `json:"waypoints"`
	TotalDistanceKm float64    `json:"totalDistanceKm"`
	TotalTimeHours  float64    `json:"totalTimeHours"`
}

// OptimizationImprovements quantifies what the optimized ordering saves
// over the original.
type OptimizationImprovements struct {
	DistanceSavedKm       float64  `json:"distanceSavedKm"`
	TimeSavedMinutes      float64  `json:"timeSavedMinutes"`
	PercentageImprovement float64  `json:"percentageImprovement"`
	CostSaved             *float64 `json:"costSaved,omitempty"`
}

// OptimizationMetadata records how the optimization ran.
type OptimizationMetadata struct {
	Algorithm       string  `json:"algorithm"`
	Iterations      int     `json:"iterations"`
	ExecutionTimeMs float64 `json:"executionTimeMs"`
}

// OptimizationResult is the response body for route optimization.
type OptimizationResult struct {
	ID             string                   `json:"id"`
	OriginalRoute  RouteSummary             `json:"originalRoute"`
	OptimizedRoute RouteSummary             `json:"optimizedRoute"`
	Improvements   OptimizationImprovements `json:"improvements"`
	Metadata       OptimizationMetadata     `json:"metadata"`
}
