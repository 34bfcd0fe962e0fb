package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planora/backend/internal/models"
	"github.com/planora/backend/internal/store"
)

// RegistrationStore persists registrations in the registrations table.
type RegistrationStore struct {
	pool *pgxpool.Pool
}

// NewRegistrationStore creates a registration store.
func NewRegistrationStore(pool *pgxpool.Pool) *RegistrationStore {
	return &RegistrationStore{pool: pool}
}

// Insert persists r and returns it with the assigned id.
func (s *RegistrationStore) Insert(ctx context.Context, r models.Registration) (models.Registration, error) {
	const q = `INSERT INTO registrations (planned_event_id, participant_id) VALUES ($1, $2) RETURNING id`
	if err := s.pool.QueryRow(ctx, q, r.PlannedEventID, r.ParticipantID).Scan(&r.ID); err != nil {
		return models.Registration{}, err
	}
	return r, nil
}

// FindByID returns the registration with the given id.
func (s *RegistrationStore) FindByID(ctx context.Context, id int) (models.Registration, error) {
	const q = `SELECT id, planned_event_id, participant_id FROM registrations WHERE id = $1`
	var r models.Registration
	if err := s.pool.QueryRow(ctx, q, id).Scan(&r.ID, &r.PlannedEventID, &r.ParticipantID); err != nil {
		return models.Registration{}, mapErr(err)
	}
	return r, nil
}

// FindAll returns all registrations.
func (s *RegistrationStore) FindAll(ctx context.Context) ([]models.Registration, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, planned_event_id, participant_id FROM registrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.Registration
	for rows.Next() {
		var r models.Registration
		if err := rows.Scan(&r.ID, &r.PlannedEventID, &r.ParticipantID); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	return list, rows.Err()
}

// Delete removes the row with the given id.
func (s *RegistrationStore) Delete(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Count returns the number of rows.
func (s *RegistrationStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&n)
	return n, err
}
