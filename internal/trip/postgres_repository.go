package trip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/camperplan/camperplan/internal/planner"
	"github.com/camperplan/camperplan/internal/season"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
// Waypoint snapshots and the vehicle profile are stored as JSONB: the
// engine treats them as opaque snapshots and never queries into them.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL trip repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// storedWaypoint is the JSONB representation of a waypoint.
type storedWaypoint struct {
	ID                string     `json:"id"`
	Lat               float64    `json:"lat"`
	Lng               float64    `json:"lng"`
	Name              string     `json:"name"`
	Kind              string     `json:"kind"`
	VisitDate         *time.Time `json:"visitDate,omitempty"`
	StayDurationHours *float64   `json:"stayDurationHours,omitempty"`
	Notes             string     `json:"notes,omitempty"`
}

// storedProfile is the JSONB representation of a vehicle profile.
type storedProfile struct {
	HeightM     float64 `json:"heightM"`
	WidthM      float64 `json:"widthM"`
	LengthM     float64 `json:"lengthM"`
	WeightT     float64 `json:"weightT"`
	VehicleType string  `json:"vehicleType"`
	FuelType    string  `json:"fuelType"`
}

// GetByUserAndID retrieves a trip by user ID and trip ID.
func (r *PostgresRepository) GetByUserAndID(ctx context.Context, userID, tripID string) (*Trip, error) {
	query := `
		SELECT id, user_id, name, waypoints, vehicle_profile, start_date, season, created_at, updated_at
		FROM trips
		WHERE id = $1 AND user_id = $2
	`
	return r.scanTrip(r.pool.QueryRow(ctx, query, tripID, userID))
}

// List retrieves all trips for a user with pagination, newest first.
func (r *PostgresRepository) List(ctx context.Context, userID string, opts ListOptions) (*ListResult, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	// Fetch one extra to determine if there are more results.
	fetchLimit := limit + 1

	query := `
		SELECT id, user_id, name, waypoints, vehicle_profile, start_date, season, created_at, updated_at
		FROM trips
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if opts.Cursor != "" {
		query += ` AND (created_at, id) < (SELECT created_at, id FROM trips WHERE id = $2)`
		args = append(args, opts.Cursor)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT %d`, fetchLimit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()

	var trips []*Trip
	for rows.Next() {
		t, err := r.scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}

	result := &ListResult{Items: trips}
	if len(trips) > limit {
		result.Items = trips[:limit]
		result.NextCursor = trips[limit-1].ID
	}
	return result, nil
}

// Create creates a new trip.
func (r *PostgresRepository) Create(ctx context.Context, t *Trip) error {
	waypoints, profile, err := marshalSnapshot(t)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO trips (id, user_id, name, waypoints, vehicle_profile, start_date, season, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.pool.Exec(ctx, query,
		t.ID, t.UserID, t.Name, waypoints, profile, t.StartDate, string(t.Season), t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create trip: %w", err)
	}
	return nil
}

// Update updates an existing trip.
func (r *PostgresRepository) Update(ctx context.Context, t *Trip) error {
	waypoints, profile, err := marshalSnapshot(t)
	if err != nil {
		return err
	}

	query := `
		UPDATE trips
		SET name = $1, waypoints = $2, vehicle_profile = $3, start_date = $4, season = $5, updated_at = $6
		WHERE id = $7
	`
	tag, err := r.pool.Exec(ctx, query,
		t.Name, waypoints, profile, t.StartDate, string(t.Season), t.UpdatedAt, t.ID)
	if err != nil {
		return fmt.Errorf("update trip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTripNotFound
	}
	return nil
}

// Delete deletes a trip by ID.
func (r *PostgresRepository) Delete(ctx context.Context, tripID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM trips WHERE id = $1`, tripID)
	if err != nil {
		return fmt.Errorf("delete trip: %w", err)
	}
	return nil
}

// rowScanner abstracts pgx.Row and pgx.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PostgresRepository) scanTrip(row rowScanner) (*Trip, error) {
	var (
		t            Trip
		waypointsRaw []byte
		profileRaw   []byte
		seasonStr    string
	)

	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Name,
		&waypointsRaw,
		&profileRaw,
		&t.StartDate,
		&seasonStr,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTripNotFound
		}
		return nil, fmt.Errorf("scan trip: %w", err)
	}

	t.Season = season.Season(seasonStr)

	var stored []storedWaypoint
	if err := json.Unmarshal(waypointsRaw, &stored); err != nil {
		return nil, fmt.Errorf("decode waypoints for trip %s: %w", t.ID, err)
	}
	t.Waypoints = make([]planner.Waypoint, 0, len(stored))
	for _, w := range stored {
		t.Waypoints = append(t.Waypoints, planner.Waypoint{
			ID:                w.ID,
			Lat:               w.Lat,
			Lng:               w.Lng,
			Name:              w.Name,
			Kind:              planner.WaypointKind(w.Kind),
			VisitDate:         w.VisitDate,
			StayDurationHours: w.StayDurationHours,
			Notes:             w.Notes,
		})
	}

	if len(profileRaw) > 0 {
		var p storedProfile
		if err := json.Unmarshal(profileRaw, &p); err != nil {
			return nil, fmt.Errorf("decode vehicle profile for trip %s: %w", t.ID, err)
		}
		t.VehicleProfile = &planner.VehicleProfile{
			HeightM:     p.HeightM,
			WidthM:      p.WidthM,
			LengthM:     p.LengthM,
			WeightT:     p.WeightT,
			VehicleType: planner.VehicleType(p.VehicleType),
			FuelType:    planner.FuelType(p.FuelType),
		}
	}

	return &t, nil
}

func marshalSnapshot(t *Trip) (waypoints []byte, profile []byte, err error) {
	stored := make([]storedWaypoint, 0, len(t.Waypoints))
	for _, w := range t.Waypoints {
		stored = append(stored, storedWaypoint{
			ID:                w.ID,
			Lat:               w.Lat,
			Lng:               w.Lng,
			Name:              w.Name,
			Kind:              string(w.Kind),
			VisitDate:         w.VisitDate,
			StayDurationHours: w.StayDurationHours,
			Notes:             w.Notes,
		})
	}

	waypoints, err = json.Marshal(stored)
	if err != nil {
		return nil, nil, fmt.Errorf("encode waypoints: %w", err)
	}

	if t.VehicleProfile != nil {
		profile, err = json.Marshal(storedProfile{
			HeightM:     t.VehicleProfile.HeightM,
			WidthM:      t.VehicleProfile.WidthM,
			LengthM:     t.VehicleProfile.LengthM,
			WeightT:     t.VehicleProfile.WeightT,
			VehicleType: string(t.VehicleProfile.VehicleType),
			FuelType:    string(t.VehicleProfile.FuelType),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("encode vehicle profile: %w", err)
		}
	}

	return waypoints, profile, nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
