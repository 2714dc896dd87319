// Package planner implements the trip planning engine: deriving driving
// limits from a vehicle profile and season, building route segments from
// an ordered waypoint list, and partitioning segments into daily stages
// with feasibility scoring.
//
// Every operation is a pure function over its inputs. The engine never
// mutates caller-owned waypoints and holds no state between calls, so it
// is safe to invoke concurrently.
package planner

import (
	"time"

	"github.com/camperplan/camperplan/pkg/geo"
)

// WaypointKind classifies a stop within a route.
type WaypointKind string

const (
	KindStart         WaypointKind = "start"
	KindEnd           WaypointKind = "end"
	KindIntermediate  WaypointKind = "intermediate"
	KindCampsite      WaypointKind = "campsite"
	KindAccommodation WaypointKind = "accommodation"
)

// Waypoint is a single stop in a trip. Waypoints are created by the
// caller and never mutated by the engine; optimization returns copies in
// a new order.
type Waypoint struct {
	ID   string
	Lat  float64
	Lng  float64
	Name string
	Kind WaypointKind

	// VisitDate is the intended visit date, when known.
	VisitDate *time.Time

	// StayDurationHours is how long the traveler intends to stay.
	StayDurationHours *float64

	Notes string
}

// Point returns the waypoint's coordinate.
func (w Waypoint) Point() geo.Point {
	return geo.Point{Lat: w.Lat, Lng: w.Lng}
}

// IsOvernightStop reports whether the waypoint is a campsite or
// accommodation with a planned stay.
func (w Waypoint) IsOvernightStop() bool {
	return (w.Kind == KindCampsite || w.Kind == KindAccommodation) && w.StayDurationHours != nil
}

// VehicleType classifies the camper vehicle.
type VehicleType string

const (
	VehicleMotorhome VehicleType = "motorhome"
	VehicleCaravan   VehicleType = "caravan"
	VehicleCampervan VehicleType = "campervan"
)

// FuelType classifies the vehicle's fuel.
type FuelType string

const (
	FuelDiesel   FuelType = "diesel"
	FuelPetrol   FuelType = "petrol"
	FuelElectric FuelType = "electric"
	FuelLPG      FuelType = "lpg"
)

// VehicleProfile describes the traveler's vehicle. It is only used to
// derive driving limits; dimensional road restrictions are out of scope.
type VehicleProfile struct {
	HeightM     float64
	WidthM      float64
	LengthM     float64
	WeightT     float64
	VehicleType VehicleType
	FuelType    FuelType
}

// DrivingLimits bound a single day of driving. Limits are derived per
// call from the vehicle profile and season and are never persisted.
type DrivingLimits struct {
	MaxDailyDistanceKm            float64
	MaxDailyDrivingTimeHours      float64
	AverageSpeedKmh               float64
	RecommendedBreakIntervalHours float64
	BreakDurationMinutes          int
}

// SegmentType classifies a route segment.
type SegmentType string

const (
	SegmentDriving   SegmentType = "driving"
	SegmentOvernight SegmentType = "overnight"
)

// RouteSegment is the directed hop between two consecutive waypoints.
// Segments are atomic: the stage planner never merges or splits them.
type RouteSegment struct {
	StartWaypoint    Waypoint
	EndWaypoint      Waypoint
	DistanceKm       float64
	DrivingTimeHours float64
	SegmentType      SegmentType
}

// Feasibility rates how realistic a day's or trip's driving load is.
type Feasibility string

const (
	FeasibilityExcellent   Feasibility = "excellent"
	FeasibilityGood        Feasibility = "good"
	FeasibilityChallenging Feasibility = "challenging"
	FeasibilityUnrealistic Feasibility = "unrealistic"
)

// DailyStage is the subset of consecutive segments assigned to one trip
// day. A stage may span multiple segments but a segment always belongs
// to exactly one stage.
type DailyStage struct {
	DayNumber        int
	Date             *time.Time
	StartWaypoint    Waypoint
	EndWaypoint      Waypoint
	DistanceKm       float64
	DrivingTimeHours float64
	SegmentCount     int
	Feasibility      Feasibility
	Warnings         []string
	Recommendations  []string
}

// TripPlan is the complete result of planning a trip. It is created
// fresh on every call and never mutated afterwards.
type TripPlan struct {
	TotalDays             int
	TotalDistanceKm       float64
	TotalDrivingTimeHours float64
	DailyStages           []DailyStage
	FeasibilityScore      float64
	OverallFeasibility    Feasibility
	Warnings              []string
	StartDate             *time.Time
	EndDate               *time.Time
}
