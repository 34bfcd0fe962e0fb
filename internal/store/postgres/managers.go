package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planora/backend/internal/models"
	"github.com/planora/backend/internal/store"
)

// EventManagerStore persists event managers in the event_managers table.
type EventManagerStore struct {
	pool *pgxpool.Pool
}

// NewEventManagerStore creates an event manager store.
func NewEventManagerStore(pool *pgxpool.Pool) *EventManagerStore {
	return &EventManagerStore{pool: pool}
}

// Insert persists m and returns it with the assigned id.
func (s *EventManagerStore) Insert(ctx context.Context, m models.EventManager) (models.EventManager, error) {
	const q = `INSERT INTO event_managers (name) VALUES ($1) RETURNING id`
	if err := s.pool.QueryRow(ctx, q, m.Name).Scan(&m.ID); err != nil {
		return models.EventManager{}, err
	}
	return m, nil
}

// FindByID returns the manager with the given id.
func (s *EventManagerStore) FindByID(ctx context.Context, id int) (models.EventManager, error) {
	const q = `SELECT id, name FROM event_managers WHERE id = $1`
	var m models.EventManager
	if err := s.pool.QueryRow(ctx, q, id).Scan(&m.ID, &m.Name); err != nil {
		return models.EventManager{}, mapErr(err)
	}
	return m, nil
}

// FindAll returns all managers.
func (s *EventManagerStore) FindAll(ctx context.Context) ([]models.EventManager, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name FROM event_managers`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.EventManager
	for rows.Next() {
		var m models.EventManager
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Update overwrites the row with m's id.
func (s *EventManagerStore) Update(ctx context.Context, m models.EventManager) error {
	tag, err := s.pool.Exec(ctx, `UPDATE event_managers SET name = $2 WHERE id = $1`, m.ID, m.Name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Delete removes the row with the given id.
func (s *EventManagerStore) Delete(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM event_managers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Count returns the number of rows.
func (s *EventManagerStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM event_managers`).Scan(&n)
	return n, err
}
