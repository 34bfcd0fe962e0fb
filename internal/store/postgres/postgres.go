// Package postgres implements the storage ports over a pgx connection pool.
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planora/backend/internal/store"
)

// Stores returns a full set of Postgres-backed collections sharing pool.
func Stores(pool *pgxpool.Pool) store.Stores {
	return store.Stores{
		GeneralUsers:  NewGeneralUserStore(pool),
		EventManagers: NewEventManagerStore(pool),
		PlannedEvents: NewPlannedEventStore(pool),
		Registrations: NewRegistrationStore(pool),
	}
}

func mapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}
