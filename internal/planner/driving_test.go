package planner_test

import (
	"testing"

	"github.com/camperplan/camperplan/internal/planner"
	"github.com/camperplan/camperplan/internal/season"
)

func defaultProfile() *planner.VehicleProfile {
	return &planner.VehicleProfile{
		HeightM:     3.2,
		WidthM:      2.3,
		LengthM:     7.0,
		WeightT:     3.5,
		VehicleType: planner.VehicleMotorhome,
		FuelType:    planner.FuelDiesel,
	}
}

func TestDeriveLimits_Base(t *testing.T) {
	limits := planner.DeriveLimits(nil, season.SeasonSummer)

	if limits.MaxDailyDistanceKm != 500 {
		t.Errorf("MaxDailyDistanceKm = %f, want 500", limits.MaxDailyDistanceKm)
	}
	if limits.MaxDailyDrivingTimeHours != 8 {
		t.Errorf("MaxDailyDrivingTimeHours = %f, want 8", limits.MaxDailyDrivingTimeHours)
	}
	if limits.AverageSpeedKmh != 70 {
		t.Errorf("AverageSpeedKmh = %f, want 70", limits.AverageSpeedKmh)
	}
	if limits.RecommendedBreakIntervalHours != 2 || limits.BreakDurationMinutes != 15 {
		t.Errorf("break policy = every %.1fh for %dmin, want every 2h for 15min",
			limits.RecommendedBreakIntervalHours, limits.BreakDurationMinutes)
	}
}

func TestDeriveLimits_NominalVehicleKeepsBase(t *testing.T) {
	limits := planner.DeriveLimits(defaultProfile(), season.SeasonSummer)

	if limits.AverageSpeedKmh != 70 {
		t.Errorf("nominal vehicle should keep base speed, got %f", limits.AverageSpeedKmh)
	}
	if limits.MaxDailyDistanceKm != 500 {
		t.Errorf("nominal vehicle should keep base distance, got %f", limits.MaxDailyDistanceKm)
	}
}

func TestDeriveLimits_HeavyVehicleSlower(t *testing.T) {
	heavy := &planner.VehicleProfile{
		HeightM: 3.6, WidthM: 2.4, LengthM: 8.5, WeightT: 4.5,
		VehicleType: planner.VehicleMotorhome,
	}

	base := planner.DeriveLimits(nil, season.SeasonSummer)
	limits := planner.DeriveLimits(heavy, season.SeasonSummer)

	if limits.AverageSpeedKmh >= base.AverageSpeedKmh {
		t.Errorf("heavy vehicle speed %f not below base %f", limits.AverageSpeedKmh, base.AverageSpeedKmh)
	}
	if limits.MaxDailyDistanceKm >= base.MaxDailyDistanceKm {
		t.Errorf("heavy vehicle distance %f not below base %f", limits.MaxDailyDistanceKm, base.MaxDailyDistanceKm)
	}
}

func TestDeriveLimits_CaravanBreakPolicy(t *testing.T) {
	caravan := &planner.VehicleProfile{
		HeightM: 2.8, WidthM: 2.3, LengthM: 6.0, WeightT: 2.0,
		VehicleType: planner.VehicleCaravan,
	}

	limits := planner.DeriveLimits(caravan, season.SeasonSummer)
	if limits.RecommendedBreakIntervalHours >= planner.BaseBreakIntervalHours {
		t.Errorf("towing should shorten break interval, got %f", limits.RecommendedBreakIntervalHours)
	}
	if limits.AverageSpeedKmh >= planner.BaseAverageSpeedKmh {
		t.Errorf("towing should reduce speed, got %f", limits.AverageSpeedKmh)
	}
}

func TestDeriveLimits_WinterBelowSummer(t *testing.T) {
	profiles := []*planner.VehicleProfile{nil, defaultProfile()}

	for _, profile := range profiles {
		winter := planner.DeriveLimits(profile, season.SeasonWinter)
		summer := planner.DeriveLimits(profile, season.SeasonSummer)

		if winter.MaxDailyDistanceKm >= summer.MaxDailyDistanceKm {
			t.Errorf("winter distance %f not below summer %f",
				winter.MaxDailyDistanceKm, summer.MaxDailyDistanceKm)
		}
		if winter.AverageSpeedKmh >= summer.AverageSpeedKmh {
			t.Errorf("winter speed %f not below summer %f",
				winter.AverageSpeedKmh, summer.AverageSpeedKmh)
		}
	}
}

func TestDeriveLimits_AlwaysUsable(t *testing.T) {
	seasons := []season.Season{season.SeasonSpring, season.SeasonSummer, season.SeasonAutumn, season.SeasonWinter, season.Season("")}
	profiles := []*planner.VehicleProfile{
		nil,
		defaultProfile(),
		{WeightT: 10, LengthM: 12, HeightM: 4, VehicleType: planner.VehicleCaravan},
	}

	for _, s := range seasons {
		for _, p := range profiles {
			limits := planner.DeriveLimits(p, s)
			if limits.MaxDailyDistanceKm <= 0 || limits.MaxDailyDrivingTimeHours <= 0 || limits.AverageSpeedKmh <= 0 {
				t.Errorf("season %q profile %+v: unusable limits %+v", s, p, limits)
			}
		}
	}
}
