// Package store declares the storage ports the domain services consume.
// Each entity gets an independent collection offering insert, lookup by id,
// full scan, delete and count. Implementations live in the memory and
// postgres subpackages.
package store

import (
	"context"
	"errors"

	"github.com/planora/backend/internal/models"
)

// ErrNotFound is returned by FindByID and Delete when no row matches the id.
var ErrNotFound = errors.New("store: not found")

// GeneralUserStore persists general users.
type GeneralUserStore interface {
	// Insert persists u, assigns its id and returns the stored value.
	Insert(ctx context.Context, u models.GeneralUser) (models.GeneralUser, error)
	FindByID(ctx context.Context, id int) (models.GeneralUser, error)
	FindAll(ctx context.Context) ([]models.GeneralUser, error)
	// Update overwrites the row with u's id.
	Update(ctx context.Context, u models.GeneralUser) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// EventManagerStore persists event managers.
type EventManagerStore interface {
	Insert(ctx context.Context, m models.EventManager) (models.EventManager, error)
	FindByID(ctx context.Context, id int) (models.EventManager, error)
	FindAll(ctx context.Context) ([]models.EventManager, error)
	Update(ctx context.Context, m models.EventManager) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// PlannedEventStore persists planned events.
type PlannedEventStore interface {
	Insert(ctx context.Context, e models.PlannedEvent) (models.PlannedEvent, error)
	FindByID(ctx context.Context, id int) (models.PlannedEvent, error)
	FindAll(ctx context.Context) ([]models.PlannedEvent, error)
	Update(ctx context.Context, e models.PlannedEvent) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// RegistrationStore persists registrations. Registrations are immutable
// after creation, so there is no update.
type RegistrationStore interface {
	Insert(ctx context.Context, r models.Registration) (models.Registration, error)
	FindByID(ctx context.Context, id int) (models.Registration, error)
	FindAll(ctx context.Context) ([]models.Registration, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// Stores bundles the four collections for wiring.
type Stores struct {
	GeneralUsers  GeneralUserStore
	EventManagers EventManagerStore
	PlannedEvents PlannedEventStore
	Registrations RegistrationStore
}
