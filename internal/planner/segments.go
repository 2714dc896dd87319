package planner

import (
	"github.com/camperplan/camperplan/pkg/geo"
)

// RoadFactor scales great-circle distances to approximate drivable
// distance. The engine has no road network; this constant stands in for
// the detour real roads add over the geodesic.
const RoadFactor = 1.2

// BuildSegments converts an ordered waypoint list into point-to-point
// route segments using pure great-circle distances and the base average
// speed. For n waypoints it returns n-1 segments (none for n <= 1).
func BuildSegments(waypoints []Waypoint) []RouteSegment {
	return buildSegments(waypoints, BaseAverageSpeedKmh, 1.0)
}

// BuildSegmentsWithLimits builds segments with road-factored distances
// and the average speed from the supplied driving limits. This is the
// variant the stage planner consumes.
func BuildSegmentsWithLimits(waypoints []Waypoint, limits DrivingLimits) []RouteSegment {
	speed := limits.AverageSpeedKmh
	if speed <= 0 {
		speed = BaseAverageSpeedKmh
	}
	return buildSegments(waypoints, speed, RoadFactor)
}

func buildSegments(waypoints []Waypoint, averageSpeedKmh, distanceFactor float64) []RouteSegment {
	if len(waypoints) < 2 {
		return nil
	}

	segments := make([]RouteSegment, 0, len(waypoints)-1)
	for i := 0; i < len(waypoints)-1; i++ {
		from := waypoints[i]
		to := waypoints[i+1]

		distance := geo.DistanceKm(from.Point(), to.Point()) * distanceFactor

		segmentType := SegmentDriving
		if to.IsOvernightStop() {
			segmentType = SegmentOvernight
		}

		segments = append(segments, RouteSegment{
			StartWaypoint:    from,
			EndWaypoint:      to,
			DistanceKm:       distance,
			DrivingTimeHours: distance / averageSpeedKmh,
			SegmentType:      segmentType,
		})
	}

	return segments
}
