package optimizer

import (
	"github.com/camperplan/camperplan/internal/planner"
)

// Objective selects what the optimizer minimizes.
type Objective string

const (
	ObjectiveShortest Objective = "shortest"
	ObjectiveFastest  Objective = "fastest"
	ObjectiveBalanced Objective = "balanced"
)

// TimeConstraints bound the driving schedule the caller is willing to
// accept.
type TimeConstraints struct {
	MaxDrivingTimeHours float64
	PreferredStartHour  int
	AvoidNightDriving   bool
}

// CampsitePreferences express where the traveler wants to spend nights.
type CampsitePreferences struct {
	// MaxDistanceBetweenStopsKm is the longest stretch the traveler
	// accepts without an overnight-capable stop.
	MaxDistanceBetweenStopsKm float64

	PreferredStopDurationHours float64

	// RequireCampsiteOvernight penalizes orderings whose stretches
	// between campsite-kind waypoints exceed MaxDistanceBetweenStopsKm.
	// It is a soft constraint: candidates are penalized, not rejected.
	RequireCampsiteOvernight bool
}

// Criteria configures a route optimization run.
type Criteria struct {
	Objective           Objective
	VehicleProfile      *planner.VehicleProfile
	TimeConstraints     TimeConstraints
	CampsitePreferences CampsitePreferences

	// FuelCostPerKm, when positive, prices the distance saved so the
	// result can report a cost saving.
	FuelCostPerKm float64
}

// RouteSummary describes one ordering of the waypoints with its totals.
type RouteSummary struct {
	Waypoints       []planner.Waypoint
	TotalDistanceKm float64
	TotalTimeHours  float64
}

// Improvements quantifies what the optimized ordering saves over the
// original. All values are floored at zero: when the search finds no
// better ordering, the original is returned unchanged with zero savings.
type Improvements struct {
	DistanceSavedKm       float64
	TimeSavedMinutes      float64
	PercentageImprovement float64
	CostSaved             *float64
}

// Metadata records how the optimization ran.
type Metadata struct {
	Algorithm       string
	Iterations      int
	ExecutionTimeMs float64
}

// Result is the outcome of a route optimization.
type Result struct {
	OriginalRoute  RouteSummary
	OptimizedRoute RouteSummary
	Improvements   Improvements
	Metadata       Metadata
}
