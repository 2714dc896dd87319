package planner

import (
	"github.com/camperplan/camperplan/internal/season"
)

// Base driving limits for an unspecified vehicle in summer.
const (
	BaseMaxDailyDistanceKm       = 500.0
	BaseMaxDailyDrivingTimeHours = 8.0
	BaseAverageSpeedKmh          = 70.0
	BaseBreakIntervalHours       = 2.0
	BaseBreakDurationMinutes     = 15
)

// Vehicle thresholds above which driving slows down. Vehicles at or
// below these nominal dimensions keep the base limits.
const (
	nominalWeightT = 3.5
	nominalLengthM = 7.0
	nominalHeightM = 3.3
)

// DeriveLimits translates a vehicle profile and season into driving
// limits. A nil profile keeps the base limits; an unknown season falls
// back to summer. The function always returns usable limits.
func DeriveLimits(profile *VehicleProfile, s season.Season) DrivingLimits {
	limits := DrivingLimits{
		MaxDailyDistanceKm:            BaseMaxDailyDistanceKm,
		MaxDailyDrivingTimeHours:      BaseMaxDailyDrivingTimeHours,
		AverageSpeedKmh:               BaseAverageSpeedKmh,
		RecommendedBreakIntervalHours: BaseBreakIntervalHours,
		BreakDurationMinutes:          BaseBreakDurationMinutes,
	}

	if profile != nil {
		factor := vehicleSpeedFactor(profile)
		limits.AverageSpeedKmh *= factor
		limits.MaxDailyDistanceKm *= factor

		// Towing demands more frequent rest stops.
		if profile.VehicleType == VehicleCaravan {
			limits.RecommendedBreakIntervalHours = 1.5
			limits.BreakDurationMinutes = 20
		}
	}

	factors := season.Factors(s, nil)
	limits.MaxDailyDistanceKm *= factors.DistanceMultiplier
	limits.AverageSpeedKmh *= factors.SpeedMultiplier

	return limits
}

// vehicleSpeedFactor returns a multiplier in (0, 1] reflecting how much
// slower a vehicle travels than the baseline. Larger and heavier
// vehicles drive slower, and their drivers tire faster, so the same
// factor also shrinks the daily distance budget.
func vehicleSpeedFactor(p *VehicleProfile) float64 {
	factor := 1.0

	if p.WeightT > nominalWeightT {
		factor -= 0.07
	}
	if p.LengthM > nominalLengthM {
		factor -= 0.05
	}
	if p.HeightM > nominalHeightM {
		factor -= 0.03
	}
	if p.VehicleType == VehicleCaravan {
		factor -= 0.10
	}

	if factor < 0.6 {
		factor = 0.6
	}
	return factor
}
