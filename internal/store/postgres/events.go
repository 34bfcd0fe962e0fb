package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planora/backend/internal/models"
	"github.com/planora/backend/internal/store"
)

// PlannedEventStore persists planned events in the planned_events table.
// The event_manager_id column is a plain integer on purpose: the domain
// layer owns referential checks, and deletes of referenced managers are
// not rejected here.
type PlannedEventStore struct {
	pool *pgxpool.Pool
}

// NewPlannedEventStore creates a planned event store.
func NewPlannedEventStore(pool *pgxpool.Pool) *PlannedEventStore {
	return &PlannedEventStore{pool: pool}
}

// Insert persists e and returns it with the assigned id.
func (s *PlannedEventStore) Insert(ctx context.Context, e models.PlannedEvent) (models.PlannedEvent, error) {
	const q = `INSERT INTO planned_events (event_manager_id, name, description, location, event_date)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := s.pool.QueryRow(ctx, q, e.EventManagerID, e.Name, e.Description, e.Location, e.Date.Time()).Scan(&e.ID); err != nil {
		return models.PlannedEvent{}, err
	}
	return e, nil
}

// FindByID returns the event with the given id.
func (s *PlannedEventStore) FindByID(ctx context.Context, id int) (models.PlannedEvent, error) {
	const q = `SELECT id, event_manager_id, name, description, location, event_date FROM planned_events WHERE id = $1`
	e, err := scanEvent(s.pool.QueryRow(ctx, q, id))
	if err != nil {
		return models.PlannedEvent{}, mapErr(err)
	}
	return e, nil
}

// FindAll returns all events.
func (s *PlannedEventStore) FindAll(ctx context.Context) ([]models.PlannedEvent, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, event_manager_id, name, description, location, event_date FROM planned_events`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.PlannedEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update overwrites the mutable fields of the row with e's id. The manager
// reference is written as-is; services never change it.
func (s *PlannedEventStore) Update(ctx context.Context, e models.PlannedEvent) error {
	const q = `UPDATE planned_events SET name = $2, description = $3, location = $4, event_date = $5 WHERE id = $1`
	tag, err := s.pool.Exec(ctx, q, e.ID, e.Name, e.Description, e.Location, e.Date.Time())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Delete removes the row with the given id.
func (s *PlannedEventStore) Delete(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM planned_events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Count returns the number of rows.
func (s *PlannedEventStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM planned_events`).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (models.PlannedEvent, error) {
	var (
		e models.PlannedEvent
		d time.Time
	)
	if err := row.Scan(&e.ID, &e.EventManagerID, &e.Name, &e.Description, &e.Location, &d); err != nil {
		return models.PlannedEvent{}, err
	}
	e.Date = models.DateOf(d)
	return e, nil
}
