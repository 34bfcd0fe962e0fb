package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planora/backend/internal/models"
	"github.com/planora/backend/internal/store"
)

// GeneralUserStore persists general users in the general_users table.
type GeneralUserStore struct {
	pool *pgxpool.Pool
}

// NewGeneralUserStore creates a general user store.
func NewGeneralUserStore(pool *pgxpool.Pool) *GeneralUserStore {
	return &GeneralUserStore{pool: pool}
}

// Insert persists u and returns it with the assigned id.
func (s *GeneralUserStore) Insert(ctx context.Context, u models.GeneralUser) (models.GeneralUser, error) {
	const q = `INSERT INTO general_users (name) VALUES ($1) RETURNING id`
	if err := s.pool.QueryRow(ctx, q, u.Name).Scan(&u.ID); err != nil {
		return models.GeneralUser{}, err
	}
	return u, nil
}

// FindByID returns the user with the given id.
func (s *GeneralUserStore) FindByID(ctx context.Context, id int) (models.GeneralUser, error) {
	const q = `SELECT id, name FROM general_users WHERE id = $1`
	var u models.GeneralUser
	if err := s.pool.QueryRow(ctx, q, id).Scan(&u.ID, &u.Name); err != nil {
		return models.GeneralUser{}, mapErr(err)
	}
	return u, nil
}

// FindAll returns all users.
func (s *GeneralUserStore) FindAll(ctx context.Context) ([]models.GeneralUser, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name FROM general_users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.GeneralUser
	for rows.Next() {
		var u models.GeneralUser
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update overwrites the row with u's id.
func (s *GeneralUserStore) Update(ctx context.Context, u models.GeneralUser) error {
	tag, err := s.pool.Exec(ctx, `UPDATE general_users SET name = $2 WHERE id = $1`, u.ID, u.Name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Delete removes the row with the given id.
func (s *GeneralUserStore) Delete(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM general_users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Count returns the number of rows.
func (s *GeneralUserStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM general_users`).Scan(&n)
	return n, err
}
