package trip

import (
	"context"
	"sort"
	"sync"

	"github.com/camperplan/camperplan/internal/planner"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use PostgresRepository.
type InMemoryRepository struct {
	mu    sync.RWMutex
	trips map[string]*Trip
}

// NewInMemoryRepository creates a new in-memory trip repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		trips: make(map[string]*Trip),
	}
}

// GetByUserAndID retrieves a trip by user ID and trip ID.
func (r *InMemoryRepository) GetByUserAndID(_ context.Context, userID, tripID string) (*Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.trips[tripID]
	if !ok || t.UserID != userID {
		return nil, ErrTripNotFound
	}
	return copyTrip(t), nil
}

// List retrieves all trips for a user with pagination. Trips are
// ordered by creation time, newest first, for a stable listing.
func (r *InMemoryRepository) List(_ context.Context, userID string, opts ListOptions) (*ListResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var trips []*Trip
	for _, t := range r.trips {
		if t.UserID == userID {
			trips = append(trips, copyTrip(t))
		}
	}
	sort.Slice(trips, func(i, j int) bool {
		if trips[i].CreatedAt.Equal(trips[j].CreatedAt) {
			return trips[i].ID < trips[j].ID
		}
		return trips[i].CreatedAt.After(trips[j].CreatedAt)
	})

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	// The cursor is the ID of the last trip on the previous page.
	if opts.Cursor != "" {
		for i, t := range trips {
			if t.ID == opts.Cursor {
				trips = trips[i+1:]
				break
			}
		}
	}

	result := &ListResult{Items: trips}
	if len(trips) > limit {
		result.Items = trips[:limit]
		result.NextCursor = trips[limit-1].ID
	}
	return result, nil
}

// Create creates a new trip.
func (r *InMemoryRepository) Create(_ context.Context, t *Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.trips[t.ID] = copyTrip(t)
	return nil
}

// Update updates an existing trip.
func (r *InMemoryRepository) Update(_ context.Context, t *Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trips[t.ID]; !ok {
		return ErrTripNotFound
	}
	r.trips[t.ID] = copyTrip(t)
	return nil
}

// Delete deletes a trip by ID.
func (r *InMemoryRepository) Delete(_ context.Context, tripID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.trips, tripID)
	return nil
}

// copyTrip returns a deep enough copy that callers cannot mutate stored
// state through the returned value.
func copyTrip(t *Trip) *Trip {
	cpy := *t
	cpy.Waypoints = append([]planner.Waypoint(nil), t.Waypoints...)
	if t.VehicleProfile != nil {
		profile := *t.VehicleProfile
		cpy.VehicleProfile = &profile
	}
	if t.StartDate != nil {
		date := *t.StartDate
		cpy.StartDate = &date
	}
	return &cpy
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)
