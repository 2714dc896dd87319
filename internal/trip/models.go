// Package trip stores named waypoint snapshots per user and feeds them
// into the planning engine. The engine itself never reads storage; this
// package is the collaborator that owns trip state.
package trip

import (
	"errors"
	"time"

	"github.com/camperplan/camperplan/internal/planner"
	"github.com/camperplan/camperplan/internal/season"
)

// Storage errors.
var (
	ErrTripNotFound = errors.New("trip not found")
)

// Trip is a saved waypoint snapshot with the context needed to plan it.
type Trip struct {
	ID     string
	UserID string
	Name   string

	// Waypoints is the stored visiting order. Applying an optimization
	// replaces this ordering wholesale.
	Waypoints []planner.Waypoint

	VehicleProfile *planner.VehicleProfile
	StartDate      *time.Time
	Season         season.Season

	CreatedAt time.Time
	UpdatedAt time.Time
}
