package models

// SeasonalFactors describes travel conditions for a season, adjusted for
// the countries on the route.
type SeasonalFactors struct {
	Season               string   `json:"season"`
	TemperatureBand      string   `json:"temperatureBand"`
	PrecipitationBand    string   `json:"precipitationBand"`
	CampsiteAvailability string   `json:"campsiteAvailability"`
	DrivingConditions    string   `json:"drivingConditions"`
	DistanceMultiplier   float64  `json:"distanceMultiplier"`
	SpeedMultiplier      float64  `json:"speedMultiplier"`
	Recommendations      []string `json:"recommendations,omitempty"`
	Warnings             []string `json:"warnings,omitempty"`
}

// Enums lists the enum values the API accepts, for client form builders.
type Enums struct {
	WaypointKinds []WaypointKind `json:"waypointKinds"`
	VehicleTypes  []VehicleType  `json:"vehicleTypes"`
	FuelTypes     []FuelType     `json:"fuelTypes"`
	Objectives    []Objective    `json:"objectives"`
	Seasons       []string       `json:"seasons"`
	Feasibilities []Feasibility  `json:"feasibilities"`
}
