package planner

import (
	"fmt"
	"time"

	"github.com/camperplan/camperplan/internal/season"
)

// Feasibility thresholds as a fraction of the daily driving time limit.
// The classification is monotonic: a longer day never rates better.
const (
	excellentThreshold   = 0.6
	goodThreshold        = 1.0
	challengingThreshold = 1.5
)

// packingComfortFactor is the fraction of the daily limits used as the
// packing budget. Days are planned with slack below the hard limits so
// drivers are not scheduled to their maximum every single day; the full
// limits remain the reference for feasibility and warnings.
const packingComfortFactor = 0.85

// Per-day feasibility weights for the trip-level score.
var feasibilityWeights = map[Feasibility]float64{
	FeasibilityExcellent:   100,
	FeasibilityGood:        75,
	FeasibilityChallenging: 40,
	FeasibilityUnrealistic: 10,
}

// PlanDailyStages partitions an ordered segment list into calendar days
// using greedy first-fit packing: segments accumulate into the current
// day while both the distance and driving-time budgets hold, and the
// day closes when the next segment would breach either. The budgets are
// the daily limits scaled by packingComfortFactor. A segment is never
// split across days, so a single oversized segment still becomes one
// (likely unrealistic) day.
//
// Day numbers are sequential from 1. When startDate is supplied, day k
// carries the date startDate + (k-1) days; otherwise stages carry no
// date. The result is deterministic for identical input.
func PlanDailyStages(segments []RouteSegment, limits DrivingLimits, startDate *time.Time, s season.Season) []DailyStage {
	if len(segments) == 0 {
		return nil
	}

	factors := season.Factors(s, nil)

	var stages []DailyStage
	var current []RouteSegment
	var distance, drivingTime float64

	closeDay := func() {
		if len(current) == 0 {
			return
		}
		stage := buildStage(current, distance, drivingTime, len(stages)+1, startDate, limits, factors)
		stages = append(stages, stage)
		current = nil
		distance = 0
		drivingTime = 0
	}

	distanceBudget := limits.MaxDailyDistanceKm * packingComfortFactor
	timeBudget := limits.MaxDailyDrivingTimeHours * packingComfortFactor

	for _, seg := range segments {
		exceedsDistance := distance+seg.DistanceKm > distanceBudget
		exceedsTime := drivingTime+seg.DrivingTimeHours > timeBudget
		if len(current) > 0 && (exceedsDistance || exceedsTime) {
			closeDay()
		}

		current = append(current, seg)
		distance += seg.DistanceKm
		drivingTime += seg.DrivingTimeHours

		// An overnight stop always ends the day there.
		if seg.SegmentType == SegmentOvernight {
			closeDay()
		}
	}
	closeDay()

	return stages
}

func buildStage(segments []RouteSegment, distance, drivingTime float64, dayNumber int, startDate *time.Time, limits DrivingLimits, factors season.SeasonalFactors) DailyStage {
	stage := DailyStage{
		DayNumber:        dayNumber,
		StartWaypoint:    segments[0].StartWaypoint,
		EndWaypoint:      segments[len(segments)-1].EndWaypoint,
		DistanceKm:       distance,
		DrivingTimeHours: drivingTime,
		SegmentCount:     len(segments),
		Feasibility:      classifyDay(drivingTime, limits.MaxDailyDrivingTimeHours),
	}

	if startDate != nil {
		date := startDate.AddDate(0, 0, dayNumber-1)
		stage.Date = &date
	}

	if drivingTime > limits.MaxDailyDrivingTimeHours {
		stage.Warnings = append(stage.Warnings,
			fmt.Sprintf("day %d exceeds recommended daily driving time (%.1fh of %.1fh)",
				dayNumber, drivingTime, limits.MaxDailyDrivingTimeHours))
	}
	if distance > limits.MaxDailyDistanceKm {
		stage.Warnings = append(stage.Warnings,
			fmt.Sprintf("day %d exceeds recommended daily distance (%.0f km of %.0f km)",
				dayNumber, distance, limits.MaxDailyDistanceKm))
		if factors.Season == season.SeasonWinter {
			stage.Recommendations = append(stage.Recommendations,
				"consider adding a rest day; winter conditions shorten safe driving windows")
		}
	}

	// Break reminders only matter once a day is long enough to need
	// several of them; short comfortable days stay quiet.
	if stage.Feasibility != FeasibilityExcellent && drivingTime > limits.RecommendedBreakIntervalHours {
		stage.Recommendations = append(stage.Recommendations,
			fmt.Sprintf("plan a %d-minute break every %.1f hours of driving",
				limits.BreakDurationMinutes, limits.RecommendedBreakIntervalHours))
	}
	if stage.Feasibility == FeasibilityUnrealistic {
		stage.Recommendations = append(stage.Recommendations,
			"split this day by adding an overnight stop along the way")
	}
	stage.Recommendations = append(stage.Recommendations, factors.Recommendations...)

	return stage
}

// classifyDay rates a day's driving time against the daily limit.
func classifyDay(drivingTime, limit float64) Feasibility {
	ratio := drivingTime / limit
	switch {
	case ratio <= excellentThreshold:
		return FeasibilityExcellent
	case ratio <= goodThreshold:
		return FeasibilityGood
	case ratio <= challengingThreshold:
		return FeasibilityChallenging
	default:
		return FeasibilityUnrealistic
	}
}

// classifyScore coarsens a 0-100 feasibility score into the same
// four-way classification used for days.
func classifyScore(score float64) Feasibility {
	switch {
	case score >= 90:
		return FeasibilityExcellent
	case score >= 70:
		return FeasibilityGood
	case score >= 40:
		return FeasibilityChallenging
	default:
		return FeasibilityUnrealistic
	}
}

// CreateTripPlan plans a full trip over the given waypoints. It derives
// driving limits from the profile and season, builds road-factored
// segments, packs them into daily stages, and aggregates trip-level
// feasibility. Fails with an InvalidInputError for fewer than 2
// waypoints; otherwise it always returns a complete plan.
func CreateTripPlan(waypoints []Waypoint, profile *VehicleProfile, startDate *time.Time, s season.Season) (*TripPlan, error) {
	if len(waypoints) < 2 {
		return nil, NewInvalidInput("at least 2 waypoints required for trip planning")
	}

	limits := DeriveLimits(profile, s)
	segments := BuildSegmentsWithLimits(waypoints, limits)
	stages := PlanDailyStages(segments, limits, startDate, s)

	plan := &TripPlan{
		TotalDays:   len(stages),
		DailyStages: stages,
		StartDate:   startDate,
	}

	var score float64
	for _, stage := range stages {
		plan.TotalDistanceKm += stage.DistanceKm
		plan.TotalDrivingTimeHours += stage.DrivingTimeHours
		score += feasibilityWeights[stage.Feasibility]

		if stage.Feasibility == FeasibilityUnrealistic {
			plan.Warnings = append(plan.Warnings,
				fmt.Sprintf("day %d is unrealistic with the current driving limits", stage.DayNumber))
		}
	}
	if len(stages) > 0 {
		score /= float64(len(stages))
	}
	plan.FeasibilityScore = score
	plan.OverallFeasibility = classifyScore(score)

	if startDate != nil && len(stages) > 0 {
		end := startDate.AddDate(0, 0, len(stages)-1)
		plan.EndDate = &end
	}

	factors := season.Factors(s, nil)
	plan.Warnings = append(plan.Warnings, factors.Warnings...)

	return plan, nil
}
