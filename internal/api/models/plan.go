package models

// Waypoint is the API representation of a stop on a route.
type Waypoint struct {
	ID                string       `json:"id,omitempty"`
	Lat               float64      `json:"lat"`
	Lng               float64      `json:"lng"`
	Name              string       `json:"name"`
	Kind              WaypointKind `json:"kind"`
	VisitDate         *DateOnly    `json:"visitDate,omitempty"`
	StayDurationHours *float64     `json:"stayDurationHours,omitempty"`
	Notes             string       `json:"notes,omitempty"`
}

// VehicleProfile describes the traveler's vehicle.
type VehicleProfile struct {
	HeightM     float64     `json:"heightM"`
	WidthM      float64     `json:"widthM"`
	LengthM     float64     `json:"lengthM"`
	WeightT     float64     `json:"weightT"`
	VehicleType VehicleType `json:"vehicleType"`
	FuelType    FuelType    `json:"fuelType"`
}

// DrivingLimits are the per-day driving bounds derived for a vehicle and
// season.
type DrivingLimits struct {
	MaxDailyDistanceKm            float64 `json:"maxDailyDistanceKm"`
	MaxDailyDrivingTimeHours      float64 `json:"maxDailyDrivingTimeHours"`
	AverageSpeedKmh               float64 `json:"averageSpeedKmh"`
	RecommendedBreakIntervalHours float64 `json:"recommendedBreakIntervalHours"`
	BreakDurationMinutes          int     `json:"breakDurationMinutes"`
}

// PlanComputeRequest is the request body for POST /v1/plans:compute.
type PlanComputeRequest struct {
	Waypoints      []Waypoint      `json:"waypoints"`
	VehicleProfile *VehicleProfile `json:"vehicleProfile,omitempty"`
	StartDate      *DateOnly       `json:"startDate,omitempty"`
	Season         string          `json:"season,omitempty"`
	Countries      []string        `json:"countries,omitempty"`

	// FuelCostPerKm, when positive, adds an estimated fuel cost to the
	// response.
	FuelCostPerKm *float64 `json:"fuelCostPerKm,omitempty"`
}

// DailyStage is one day of a trip plan.
type DailyStage struct {
	DayNumber        int         `json:"dayNumber"`
	Date             *DateOnly   `json:"date,omitempty"`
	StartWaypoint    Waypoint    `json:"startWaypoint"`
	EndWaypoint      Waypoint    `json:"endWaypoint"`
	DistanceKm       float64     `json:"distanceKm"`
	DrivingTimeHours float64     `json:"drivingTimeHours"`
	SegmentCount     int         `json:"segmentCount"`
	Feasibility      Feasibility `json:"feasibility"`
	Warnings         []string    `json:"warnings,omitempty"`
	Recommendations  []string    `json:"recommendations,omitempty"`
}

// TripPlan is the response body for plan computation.
type TripPlan struct {
	TotalDays             int           `json:"totalDays"`
	TotalDistanceKm       float64       `json:"totalDistanceKm"`
	TotalDrivingTimeHours float64       `json:"totalDrivingTimeHours"`
	DailyStages           []DailyStage  `json:"dailyStages"`
	FeasibilityScore      float64       `json:"feasibilityScore"`
	OverallFeasibility    Feasibility   `json:"overallFeasibility"`
	Warnings              []string      `json:"warnings,omitempty"`
	StartDate             *DateOnly     `json:"startDate,omitempty"`
	EndDate               *DateOnly     `json:"endDate,omitempty"`
	DrivingLimits         DrivingLimits `json:"drivingLimits"`

	// EstimatedFuelCost is totalDistanceKm times the request's
	// fuelCostPerKm, present only when the latter was supplied.
	EstimatedFuelCost *float64 `json:"estimatedFuelCost,omitempty"`
}
