package optimizer_test

import (
	"errors"
	"testing"

	"github.com/camperplan/camperplan/internal/optimizer"
	"github.com/camperplan/camperplan/internal/planner"
)

// A deliberately scrambled tour of French cities: visiting them in
// input order zig-zags across the country.
func scrambledFrance() []planner.Waypoint {
	return []planner.Waypoint{
		{ID: "paris", Name: "Paris", Lat: 48.8566, Lng: 2.3522, Kind: planner.KindStart},
		{ID: "marseille", Name: "Marseille", Lat: 43.2965, Lng: 5.3698, Kind: planner.KindIntermediate},
		{ID: "orleans", Name: "Orléans", Lat: 47.9029, Lng: 1.9039, Kind: planner.KindIntermediate},
		{ID: "avignon", Name: "Avignon", Lat: 43.9493, Lng: 4.8055, Kind: planner.KindIntermediate},
		{ID: "lyon", Name: "Lyon", Lat: 45.764, Lng: 4.8357, Kind: planner.KindIntermediate},
		{ID: "nice", Name: "Nice", Lat: 43.7102, Lng: 7.262, Kind: planner.KindEnd},
	}
}

func TestOptimize_RequiresThreeWaypoints(t *testing.T) {
	waypoints := []planner.Waypoint{
		{ID: "a", Lat: 48.8566, Lng: 2.3522, Kind: planner.KindStart},
		{ID: "b", Lat: 45.764, Lng: 4.8357, Kind: planner.KindEnd},
	}

	_, err := optimizer.Optimize(waypoints, optimizer.Criteria{Objective: optimizer.ObjectiveShortest})
	if err == nil {
		t.Fatal("expected error for 2-waypoint route")
	}

	var invalid *planner.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %T", err)
	}
	if invalid.Message != "at least 3 waypoints required" {
		t.Errorf("unexpected message: %q", invalid.Message)
	}
}

func TestOptimize_ImprovesScrambledRoute(t *testing.T) {
	result, err := optimizer.Optimize(scrambledFrance(), optimizer.Criteria{Objective: optimizer.ObjectiveShortest})
	if err != nil {
		t.Fatalf("optimize failed: %v", err)
	}

	if result.OptimizedRoute.TotalDistanceKm > result.OriginalRoute.TotalDistanceKm {
		t.Errorf("optimized distance %.1f exceeds original %.1f",
			result.OptimizedRoute.TotalDistanceKm, result.OriginalRoute.TotalDistanceKm)
	}
	if result.Improvements.DistanceSavedKm <= 0 {
		t.Errorf("expected positive savings on a scrambled route, got %.1f", result.Improvements.DistanceSavedKm)
	}
	if result.Improvements.PercentageImprovement < 0 {
		t.Errorf("percentage improvement must never be negative, got %.2f", result.Improvements.PercentageImprovement)
	}
}

func TestOptimize_PreservesFixedEndpoints(t *testing.T) {
	result, err := optimizer.Optimize(scrambledFrance(), optimizer.Criteria{Objective: optimizer.ObjectiveBalanced})
	if err != nil {
		t.Fatalf("optimize failed: %v", err)
	}

	route := result.OptimizedRoute.Waypoints
	if route[0].ID != "paris" {
		t.Errorf("start moved: first waypoint is %q", route[0].ID)
	}
	if route[len(route)-1].ID != "nice" {
		t.Errorf("fixed end moved: last waypoint is %q", route[len(route)-1].ID)
	}
	if len(route) != 6 {
		t.Fatalf("waypoint count changed: got %d, want 6", len(route))
	}

	seen := map[string]bool{}
	for _, w := range route {
		if seen[w.ID] {
			t.Errorf("waypoint %q appears twice", w.ID)
		}
		seen[w.ID] = true
	}
}

func TestOptimize_Deterministic(t *testing.T) {
	criteria := optimizer.Criteria{Objective: optimizer.ObjectiveShortest}

	first, err := optimizer.Optimize(scrambledFrance(), criteria)
	if err != nil {
		t.Fatalf("optimize failed: %v", err)
	}
	second, err := optimizer.Optimize(scrambledFrance(), criteria)
	if err != nil {
		t.Fatalf("optimize failed: %v", err)
	}

	for i := range first.OptimizedRoute.Waypoints {
		a := first.OptimizedRoute.Waypoints[i].ID
		b := second.OptimizedRoute.Waypoints[i].ID
		if a != b {
			t.Fatalf("orderings differ at position %d: %q vs %q", i, a, b)
		}
	}
}

func TestOptimize_Idempotent(t *testing.T) {
	criteria := optimizer.Criteria{Objective: optimizer.ObjectiveShortest}

	first, err := optimizer.Optimize(scrambledFrance(), criteria)
	if err != nil {
		t.Fatalf("optimize failed: %v", err)
	}

	second, err := optimizer.Optimize(first.OptimizedRoute.Waypoints, criteria)
	if err != nil {
		t.Fatalf("re-optimize failed: %v", err)
	}

	if second.Improvements.DistanceSavedKm != 0 {
		t.Errorf("re-optimizing an optimized route saved %.3f km, want 0",
			second.Improvements.DistanceSavedKm)
	}
	if second.Improvements.PercentageImprovement != 0 {
		t.Errorf("re-optimizing reported %.3f%% improvement, want 0",
			second.Improvements.PercentageImprovement)
	}
}

func TestOptimize_NeverWorseThanOriginal(t *testing.T) {
	// Already-ordered route: north to south. The heuristic must return
	// it unchanged rather than report a regression.
	ordered := []planner.Waypoint{
		{ID: "paris", Lat: 48.8566, Lng: 2.3522, Kind: planner.KindStart},
		{ID: "orleans", Lat: 47.9029, Lng: 1.9039, Kind: planner.KindIntermediate},
		{ID: "lyon", Lat: 45.764, Lng: 4.8357, Kind: planner.KindIntermediate},
		{ID: "marseille", Lat: 43.2965, Lng: 5.3698, Kind: planner.KindEnd},
	}

	result, err := optimizer.Optimize(ordered, optimizer.Criteria{Objective: optimizer.ObjectiveShortest})
	if err != nil {
		t.Fatalf("optimize failed: %v", err)
	}

	if result.OptimizedRoute.TotalDistanceKm > result.OriginalRoute.TotalDistanceKm {
		t.Errorf("optimizer made the route worse: %.1f > %.1f",
			result.OptimizedRoute.TotalDistanceKm, result.OriginalRoute.TotalDistanceKm)
	}
	if result.Improvements.PercentageImprovement < 0 {
		t.Errorf("negative improvement reported: %.2f", result.Improvements.PercentageImprovement)
	}
}

func TestOptimize_Metadata(t *testing.T) {
	result, err := optimizer.Optimize(scrambledFrance(), optimizer.Criteria{Objective: optimizer.ObjectiveShortest})
	if err != nil {
		t.Fatalf("optimize failed: %v", err)
	}

	if result.Metadata.Algorithm != optimizer.AlgorithmName {
		t.Errorf("algorithm = %q, want %q", result.Metadata.Algorithm, optimizer.AlgorithmName)
	}
	if result.Metadata.Iterations < 0 {
		t.Errorf("negative iteration count %d", result.Metadata.Iterations)
	}
	if result.Metadata.ExecutionTimeMs < 0 {
		t.Errorf("negative execution time %f", result.Metadata.ExecutionTimeMs)
	}
}

func TestOptimize_CostSaved(t *testing.T) {
	criteria := optimizer.Criteria{
		Objective:     optimizer.ObjectiveShortest,
		FuelCostPerKm: 0.25,
	}

	result, err := optimizer.Optimize(scrambledFrance(), criteria)
	if err != nil {
		t.Fatalf("optimize failed: %v", err)
	}

	if result.Improvements.CostSaved == nil {
		t.Fatal("expected cost saving when fuel cost is supplied")
	}
	want := result.Improvements.DistanceSavedKm * 0.25
	if got := *result.Improvements.CostSaved; got != want {
		t.Errorf("cost saved = %.2f, want %.2f", got, want)
	}
}

func TestOptimize_CampsitePreferencePenalty(t *testing.T) {
	// Two orderings tie on raw distance symmetry, but the campsite
	// preference should steer the result toward keeping stretches
	// between overnight stops short.
	waypoints := []planner.Waypoint{
		{ID: "start", Lat: 48.0, Lng: 2.0, Kind: planner.KindStart},
		{ID: "far", Lat: 44.0, Lng: 2.0, Kind: planner.KindIntermediate},
		{ID: "camp", Lat: 46.0, Lng: 2.0, Kind: planner.KindCampsite},
		{ID: "end", Lat: 43.0, Lng: 2.0, Kind: planner.KindEnd},
	}

	criteria := optimizer.Criteria{
		Objective: optimizer.ObjectiveShortest,
		CampsitePreferences: optimizer.CampsitePreferences{
			MaxDistanceBetweenStopsKm: 250,
			RequireCampsiteOvernight:  true,
		},
	}

	result, err := optimizer.Optimize(waypoints, criteria)
	if err != nil {
		t.Fatalf("optimize failed: %v", err)
	}

	route := result.OptimizedRoute.Waypoints
	if route[1].ID != "camp" {
		t.Errorf("expected campsite visited before the long stretch, got order %v",
			[]string{route[0].ID, route[1].ID, route[2].ID, route[3].ID})
	}
}
