// Package models provides request and response models for the CamperPlan API.
package models

import "time"

// Point represents a geographic coordinate.
type Point struct {
	Lat float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"required,gte=-180,lte=180"`
}

// WaypointKind classifies a stop on a route.
type WaypointKind string

const (
	KindStart         WaypointKind = "start"
	KindEnd           WaypointKind = "end"
	KindIntermediate  WaypointKind = "intermediate"
	KindCampsite      WaypointKind = "campsite"
	KindAccommodation WaypointKind = "accommodation"
)

// VehicleType identifies the vehicle class used for a trip.
type VehicleType string

const (
	VehicleMotorhome VehicleType = "motorhome"
	VehicleCaravan   VehicleType = "caravan"
	VehicleCampervan VehicleType = "campervan"
)

// FuelType identifies the fuel a vehicle runs on.
type FuelType string

const (
	FuelDiesel   FuelType = "diesel"
	FuelPetrol   FuelType = "petrol"
	FuelElectric FuelType = "electric"
	FuelLPG      FuelType = "lpg"
)

// Objective selects what a route optimization minimizes.
type Objective string

const (
	ObjectiveShortest Objective = "shortest"
	ObjectiveFastest  Objective = "fastest"
	ObjectiveBalanced Objective = "balanced"
)

// Feasibility rates how realistic a driving day or trip is.
type Feasibility string

const (
	FeasibilityExcellent   Feasibility = "excellent"
	FeasibilityGood        Feasibility = "good"
	FeasibilityChallenging Feasibility = "challenging"
	FeasibilityUnrealistic Feasibility = "unrealistic"
)

// PagedResponseMeta contains pagination metadata.
type PagedResponseMeta struct {
	Limit      int     `json:"limit"`
	NextCursor *string `json:"nextCursor,omitempty"`
}

// HealthStatus represents the health status of the service.
type HealthStatus string

const (
	HealthStatusOK       HealthStatus = "OK"
	HealthStatusDegraded HealthStatus = "DEGRADED"
	HealthStatusFail     HealthStatus = "FAIL"
)

// Timestamp is a helper type for time.Time with custom JSON formatting.
type Timestamp time.Time

// MarshalJSON implements json.Marshaler for Timestamp.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).Format(time.RFC3339) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Timestamp.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	// Remove quotes
	s := string(data[1 : len(data)-1])
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}

// Time returns the underlying time.Time.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// DateOnly is a calendar date serialized as "2006-01-02".
type DateOnly time.Time

// MarshalJSON implements json.Marshaler for DateOnly.
func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(time.DateOnly) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for DateOnly.
func (d *DateOnly) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	s := string(data[1 : len(data)-1])
	parsed, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	*d = DateOnly(parsed)
	return nil
}

// Time returns the underlying time.Time.
func (d DateOnly) Time() time.Time {
	return time.Time(d)
}
