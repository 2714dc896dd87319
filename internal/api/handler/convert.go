package handler

import (
	"time"

	"github.com/camperplan/camperplan/internal/api/models"
	"github.com/camperplan/camperplan/internal/optimizer"
	"github.com/camperplan/camperplan/internal/planner"
)

func waypointsFromAPI(in []models.Waypoint) []planner.Waypoint {
	out := make([]planner.Waypoint, 0, len(in))
	for _, w := range in {
		out = append(out, planner.Waypoint{
			ID:                w.ID,
			Lat:               w.Lat,
			Lng:               w.Lng,
			Name:              w.Name,
			Kind:              planner.WaypointKind(w.Kind),
			VisitDate:         dateFromAPI(w.VisitDate),
			StayDurationHours: w.StayDurationHours,
			Notes:             w.Notes,
		})
	}
	return out
}

func waypointsToAPI(in []planner.Waypoint) []models.Waypoint {
	out := make([]models.Waypoint, 0, len(in))
	for _, w := range in {
		out = append(out, waypointToAPI(w))
	}
	return out
}

func waypointToAPI(w planner.Waypoint) models.Waypoint {
	return models.Waypoint{
		ID:                w.ID,
		Lat:               w.Lat,
		Lng:               w.Lng,
		Name:              w.Name,
		Kind:              models.WaypointKind(w.Kind),
		VisitDate:         dateToAPI(w.VisitDate),
		StayDurationHours: w.StayDurationHours,
		Notes:             w.Notes,
	}
}

func profileFromAPI(p *models.VehicleProfile) *planner.VehicleProfile {
	if p == nil {
		return nil
	}
	return &planner.VehicleProfile{
		HeightM:     p.HeightM,
		WidthM:      p.WidthM,
		LengthM:     p.LengthM,
		WeightT:     p.WeightT,
		VehicleType: planner.VehicleType(p.VehicleType),
		FuelType:    planner.FuelType(p.FuelType),
	}
}

func limitsToAPI(l planner.DrivingLimits) models.DrivingLimits {
	return models.DrivingLimits{
		MaxDailyDistanceKm:            l.MaxDailyDistanceKm,
		MaxDailyDrivingTimeHours:      l.MaxDailyDrivingTimeHours,
		AverageSpeedKmh:               l.AverageSpeedKmh,
		RecommendedBreakIntervalHours: l.RecommendedBreakIntervalHours,
		BreakDurationMinutes:          l.BreakDurationMinutes,
	}
}

func planToAPI(plan *planner.TripPlan, limits planner.DrivingLimits) *models.TripPlan {
	stages := make([]models.DailyStage, 0, len(plan.DailyStages))
	for _, st := range plan.DailyStages {
		stages = append(stages, models.DailyStage{
			DayNumber:        st.DayNumber,
			Date:             dateToAPI(st.Date),
			StartWaypoint:    waypointToAPI(st.StartWaypoint),
			EndWaypoint:      waypointToAPI(st.EndWaypoint),
			DistanceKm:       st.DistanceKm,
			DrivingTimeHours: st.DrivingTimeHours,
			SegmentCount:     st.SegmentCount,
			Feasibility:      models.Feasibility(st.Feasibility),
			Warnings:         st.Warnings,
			Recommendations:  st.Recommendations,
		})
	}

	return &models.TripPlan{
		TotalDays:             plan.TotalDays,
		TotalDistanceKm:       plan.TotalDistanceKm,
		TotalDrivingTimeHours: plan.TotalDrivingTimeHours,
		DailyStages:           stages,
		FeasibilityScore:      plan.FeasibilityScore,
		OverallFeasibility:    models.Feasibility(plan.OverallFeasibility),
		Warnings:              plan.Warnings,
		StartDate:             dateToAPI(plan.StartDate),
		EndDate:               dateToAPI(plan.EndDate),
		DrivingLimits:         limitsToAPI(limits),
	}
}

func criteriaFromAPI(c *models.OptimizationCriteria) optimizer.Criteria {
	if c == nil {
		return optimizer.Criteria{Objective: optimizer.ObjectiveBalanced}
	}

	criteria := optimizer.Criteria{
		Objective:      optimizer.Objective(c.Objective),
		VehicleProfile: profileFromAPI(c.VehicleProfile),
	}
	if criteria.Objective == "" {
		criteria.Objective = optimizer.ObjectiveBalanced
	}
	if c.TimeConstraints != nil {
		criteria.TimeConstraints = optimizer.TimeConstraints{
			MaxDrivingTimeHours: c.TimeConstraints.MaxDrivingTimeHours,
			PreferredStartHour:  c.TimeConstraints.PreferredStartHour,
			AvoidNightDriving:   c.TimeConstraints.AvoidNightDriving,
		}
	}
	if c.CampsitePreferences != nil {
		criteria.CampsitePreferences = optimizer.CampsitePreferences{
			MaxDistanceBetweenStopsKm:  c.CampsitePreferences.MaxDistanceBetweenStopsKm,
			PreferredStopDurationHours: c.CampsitePreferences.PreferredStopDurationHours,
			RequireCampsiteOvernight:   c.CampsitePreferences.RequireCampsiteOvernight,
		}
	}
	if c.FuelCostPerKm != nil {
		criteria.FuelCostPerKm = *c.FuelCostPerKm
	}
	return criteria
}

func resultToAPI(id string, result *optimizer.Result) *models.OptimizationResult {
	return &models.OptimizationResult{
		ID:             id,
		OriginalRoute:  routeSummaryToAPI(result.OriginalRoute),
		OptimizedRoute: routeSummaryToAPI(result.OptimizedRoute),
		Improvements: models.OptimizationImprovements{
			DistanceSavedKm:       result.Improvements.DistanceSavedKm,
			TimeSavedMinutes:      result.Improvements.TimeSavedMinutes,
			PercentageImprovement: result.Improvements.PercentageImprovement,
			CostSaved:             result.Improvements.CostSaved,
		},
		Metadata: models.OptimizationMetadata{
			Algorithm:       result.Metadata.Algorithm,
			Iterations:      result.Metadata.Iterations,
			ExecutionTimeMs: result.Metadata.ExecutionTimeMs,
		},
	}
}

func routeSummaryToAPI(s optimizer.RouteSummary) models.RouteSummary {
	return models.RouteSummary{
		Waypoints:       waypointsToAPI(s.Waypoints),
		TotalDistanceKm: s.TotalDistanceKm,
		TotalTimeHours:  s.TotalTimeHours,
	}
}

func dateFromAPI(d *models.DateOnly) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time()
	return &t
}

func dateToAPI(t *time.Time) *models.DateOnly {
	if t == nil {
		return nil
	}
	d := models.DateOnly(*t)
	return &d
}
