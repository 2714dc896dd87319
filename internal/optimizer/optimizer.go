// Package optimizer reorders trip waypoints into a near-optimal visiting
// sequence. It seeds an ordering with the nearest-neighbor heuristic
// from the fixed start and improves it with a bounded 2-opt local
// search. The search is deterministic for identical input and always
// terminates; it is a heuristic, not an exact solver.
package optimizer

import (
	"time"

	"github.com/camperplan/camperplan/internal/planner"
	"github.com/camperplan/camperplan/internal/season"
	"github.com/camperplan/camperplan/pkg/geo"
)

// AlgorithmName identifies the heuristic in result metadata.
const AlgorithmName = "nearest-neighbor+2-opt"

// maxPassCeiling bounds the number of 2-opt improvement passes
// regardless of input size, keeping the call interactive.
const maxPassCeiling = 100

// campsitePenaltyWeight converts kilometers of campsite-gap overshoot
// into objective units.
const campsitePenaltyWeight = 0.5

// Optimize searches for a reordering of the waypoints that minimizes a
// weighted combination of total distance and total driving time. The
// start waypoint (and the end waypoint, when one is flagged) keep their
// positions; only the intermediate set is reordered.
//
// Fails with a planner.InvalidInputError for fewer than 3 waypoints. It
// is a pure function: the input slice is never mutated.
func Optimize(waypoints []planner.Waypoint, criteria Criteria) (*Result, error) {
	if len(waypoints) < 3 {
		return nil, planner.NewInvalidInput("at least 3 waypoints required")
	}

	started := time.Now()
	limits := planner.DeriveLimits(criteria.VehicleProfile, season.SeasonSummer)

	original := append([]planner.Waypoint(nil), waypoints...)
	originalScore := score(original, limits, criteria)

	// The start keeps its position, and so does the end when one is
	// flagged; only the intermediate set is reordered.
	arranged, fixedEnd := arrange(original)

	candidate := nearestNeighbor(arranged, fixedEnd)
	candidate, passes := twoOpt(candidate, fixedEnd, limits, criteria)
	candidateScore := score(candidate, limits, criteria)

	// Never report a worse ordering as an improvement.
	if candidateScore.objective >= originalScore.objective {
		candidate = original
		candidateScore = originalScore
	}

	result := &Result{
		OriginalRoute: RouteSummary{
			Waypoints:       original,
			TotalDistanceKm: originalScore.distanceKm,
			TotalTimeHours:  originalScore.timeHours,
		},
		OptimizedRoute: RouteSummary{
			Waypoints:       candidate,
			TotalDistanceKm: candidateScore.distanceKm,
			TotalTimeHours:  candidateScore.timeHours,
		},
		Metadata: Metadata{
			Algorithm:       AlgorithmName,
			Iterations:      passes,
			ExecutionTimeMs: float64(time.Since(started).Microseconds()) / 1000,
		},
	}

	distanceSaved := originalScore.distanceKm - candidateScore.distanceKm
	timeSaved := (originalScore.timeHours - candidateScore.timeHours) * 60
	if distanceSaved < 0 {
		distanceSaved = 0
	}
	if timeSaved < 0 {
		timeSaved = 0
	}

	result.Improvements.DistanceSavedKm = distanceSaved
	result.Improvements.TimeSavedMinutes = timeSaved
	if originalScore.distanceKm > 0 {
		result.Improvements.PercentageImprovement = distanceSaved / originalScore.distanceKm * 100
	}
	if criteria.FuelCostPerKm > 0 {
		cost := distanceSaved * criteria.FuelCostPerKm
		result.Improvements.CostSaved = &cost
	}

	return result, nil
}

// routeScore carries the totals and weighted objective of one ordering.
type routeScore struct {
	distanceKm float64
	timeHours  float64
	objective  float64
}

// score computes the weighted objective for an ordering. Distance and
// time are made commensurate by pricing an hour of driving at the
// average speed, so the weights express a pure preference.
func score(route []planner.Waypoint, limits planner.DrivingLimits, criteria Criteria) routeScore {
	var distance float64
	for i := 0; i < len(route)-1; i++ {
		distance += geo.DistanceKm(route[i].Point(), route[i+1].Point())
	}
	timeHours := distance / limits.AverageSpeedKmh

	distWeight, timeWeight := objectiveWeights(criteria.Objective)
	objective := distWeight*distance + timeWeight*timeHours*limits.AverageSpeedKmh

	if criteria.CampsitePreferences.RequireCampsiteOvernight {
		objective += campsitePenalty(route, criteria.CampsitePreferences)
	}

	return routeScore{distanceKm: distance, timeHours: timeHours, objective: objective}
}

func objectiveWeights(o Objective) (distance, time float64) {
	switch o {
	case ObjectiveFastest:
		return 0, 1
	case ObjectiveBalanced:
		return 0.5, 0.5
	default: // shortest
		return 1, 0
	}
}

// campsitePenalty charges an ordering for every stretch between
// overnight-capable waypoints that exceeds the preferred maximum. The
// penalty grows with the overshoot so nearer-compliant orderings still
// rank better.
func campsitePenalty(route []planner.Waypoint, prefs CampsitePreferences) float64 {
	maxGap := prefs.MaxDistanceBetweenStopsKm
	if maxGap <= 0 {
		maxGap = planner.BaseMaxDailyDistanceKm
	}

	var penalty, gap float64
	for i := 0; i < len(route)-1; i++ {
		gap += geo.DistanceKm(route[i].Point(), route[i+1].Point())

		next := route[i+1]
		atOvernight := next.Kind == planner.KindCampsite || next.Kind == planner.KindAccommodation
		if atOvernight || i == len(route)-2 {
			if gap > maxGap {
				penalty += (gap - maxGap) * campsitePenaltyWeight
			}
			gap = 0
		}
	}
	return penalty
}

// arrange moves the start-kind waypoint to the front and the end-kind
// waypoint (when present) to the back, keeping the relative order of the
// intermediates. Reports whether the last position is a fixed end.
func arrange(route []planner.Waypoint) ([]planner.Waypoint, bool) {
	var start, end *planner.Waypoint
	middle := make([]planner.Waypoint, 0, len(route))

	for i := range route {
		switch {
		case route[i].Kind == planner.KindStart && start == nil:
			start = &route[i]
		case route[i].Kind == planner.KindEnd && end == nil:
			end = &route[i]
		default:
			middle = append(middle, route[i])
		}
	}
	if start == nil {
		start, middle = &middle[0], middle[1:]
	}

	arranged := make([]planner.Waypoint, 0, len(route))
	arranged = append(arranged, *start)
	arranged = append(arranged, middle...)
	if end != nil {
		arranged = append(arranged, *end)
	}
	return arranged, end != nil
}

// nearestNeighbor builds an initial ordering greedily from the fixed
// start, always visiting the closest unvisited waypoint next. Ties
// break toward the earlier input position, keeping the construction
// deterministic.
func nearestNeighbor(route []planner.Waypoint, fixedEnd bool) []planner.Waypoint {
	last := len(route)
	if fixedEnd {
		last--
	}

	ordered := make([]planner.Waypoint, 0, len(route))
	ordered = append(ordered, route[0])

	remaining := append([]planner.Waypoint(nil), route[1:last]...)
	current := route[0]

	for len(remaining) > 0 {
		best := 0
		bestDist := geo.DistanceKm(current.Point(), remaining[0].Point())
		for i := 1; i < len(remaining); i++ {
			if d := geo.DistanceKm(current.Point(), remaining[i].Point()); d < bestDist {
				best = i
				bestDist = d
			}
		}

		current = remaining[best]
		ordered = append(ordered, current)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	if fixedEnd {
		ordered = append(ordered, route[len(route)-1])
	}
	return ordered
}

// twoOpt improves an ordering by reversing the stretch between two
// edges whenever that lowers the weighted objective. Each pass applies
// the best improving reversal; passes repeat until no reversal improves
// or the pass ceiling is reached. Returns the improved ordering and the
// number of passes run.
func twoOpt(route []planner.Waypoint, fixedEnd bool, limits planner.DrivingLimits, criteria Criteria) ([]planner.Waypoint, int) {
	n := len(route)
	last := n - 1
	if fixedEnd {
		last = n - 2
	}
	if last < 2 {
		return route, 0
	}

	maxPasses := n * n
	if maxPasses > maxPassCeiling {
		maxPasses = maxPassCeiling
	}

	best := append([]planner.Waypoint(nil), route...)
	bestObjective := score(best, limits, criteria).objective

	passes := 0
	for ; passes < maxPasses; passes++ {
		improved := false
		bestI, bestK := -1, -1
		passBest := bestObjective

		for i := 1; i < last; i++ {
			for k := i + 1; k <= last; k++ {
				candidate := reverseSegment(best, i, k)
				if obj := score(candidate, limits, criteria).objective; obj+1e-9 < passBest {
					passBest = obj
					bestI, bestK = i, k
					improved = true
				}
			}
		}

		if !improved {
			break
		}
		best = reverseSegment(best, bestI, bestK)
		bestObjective = passBest
	}

	return best, passes
}

// reverseSegment returns a copy of the route with positions i..k
// reversed.
func reverseSegment(route []planner.Waypoint, i, k int) []planner.Waypoint {
	out := append([]planner.Waypoint(nil), route...)
	for l, r := i, k; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return out
}
