// Package memory provides the in-memory reference implementation of the
// storage ports. It backs the test suites and serves as the storage layer
// when the server runs without a database.
package memory

import (
	"context"
	"sync"

	"github.com/planora/backend/internal/models"
	"github.com/planora/backend/internal/store"
)

// Stores returns a full set of in-memory collections.
func Stores() store.Stores {
	return store.Stores{
		GeneralUsers:  NewGeneralUserStore(),
		EventManagers: NewEventManagerStore(),
		PlannedEvents: NewPlannedEventStore(),
		Registrations: NewRegistrationStore(),
	}
}

// GeneralUserStore is a mutex-guarded map of general users.
type GeneralUserStore struct {
	mu     sync.RWMutex
	rows   map[int]models.GeneralUser
	nextID int
}

// NewGeneralUserStore creates an empty general user collection.
func NewGeneralUserStore() *GeneralUserStore {
	return &GeneralUserStore{rows: make(map[int]models.GeneralUser), nextID: 1}
}

// Insert stores u under a fresh id.
func (s *GeneralUserStore) Insert(_ context.Context, u models.GeneralUser) (models.GeneralUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextID
	s.nextID++
	s.rows[u.ID] = u
	return u, nil
}

// FindByID returns the user with the given id.
func (s *GeneralUserStore) FindByID(_ context.Context, id int) (models.GeneralUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.rows[id]
	if !ok {
		return models.GeneralUser{}, store.ErrNotFound
	}
	return u, nil
}

// FindAll returns every user in map iteration order.
func (s *GeneralUserStore) FindAll(_ context.Context) ([]models.GeneralUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.GeneralUser, 0, len(s.rows))
	for _, u := range s.rows {
		out = append(out, u)
	}
	return out, nil
}

// Update overwrites the row with u's id.
func (s *GeneralUserStore) Update(_ context.Context, u models.GeneralUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[u.ID]; !ok {
		return store.ErrNotFound
	}
	s.rows[u.ID] = u
	return nil
}

// Delete removes the row with the given id.
func (s *GeneralUserStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

// Count returns the number of rows.
func (s *GeneralUserStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows), nil
}

// EventManagerStore is a mutex-guarded map of event managers.
type EventManagerStore struct {
	mu     sync.RWMutex
	rows   map[int]models.EventManager
	nextID int
}

// NewEventManagerStore creates an empty event manager collection.
func NewEventManagerStore() *EventManagerStore {
	return &EventManagerStore{rows: make(map[int]models.EventManager), nextID: 1}
}

// Insert stores m under a fresh id.
func (s *EventManagerStore) Insert(_ context.Context, m models.EventManager) (models.EventManager, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.nextID
	s.nextID++
	s.rows[m.ID] = m
	return m, nil
}

// FindByID returns the manager with the given id.
func (s *EventManagerStore) FindByID(_ context.Context, id int) (models.EventManager, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.rows[id]
	if !ok {
		return models.EventManager{}, store.ErrNotFound
	}
	return m, nil
}

// FindAll returns every manager in map iteration order.
func (s *EventManagerStore) FindAll(_ context.Context) ([]models.EventManager, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.EventManager, 0, len(s.rows))
	for _, m := range s.rows {
		out = append(out, m)
	}
	return out, nil
}

// Update overwrites the row with m's id.
func (s *EventManagerStore) Update(_ context.Context, m models.EventManager) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[m.ID]; !ok {
		return store.ErrNotFound
	}
	s.rows[m.ID] = m
	return nil
}

// Delete removes the row with the given id.
func (s *EventManagerStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

// Count returns the number of rows.
func (s *EventManagerStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows), nil
}

// PlannedEventStore is a mutex-guarded map of planned events.
type PlannedEventStore struct {
	mu     sync.RWMutex
	rows   map[int]models.PlannedEvent
	nextID int
}

// NewPlannedEventStore creates an empty planned event collection.
func NewPlannedEventStore() *PlannedEventStore {
	return &PlannedEventStore{rows: make(map[int]models.PlannedEvent), nextID: 1}
}

// Insert stores e under a fresh id.
func (s *PlannedEventStore) Insert(_ context.Context, e models.PlannedEvent) (models.PlannedEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.nextID
	s.nextID++
	s.rows[e.ID] = e
	return e, nil
}

// FindByID returns the event with the given id.
func (s *PlannedEventStore) FindByID(_ context.Context, id int) (models.PlannedEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.rows[id]
	if !ok {
		return models.PlannedEvent{}, store.ErrNotFound
	}
	return e, nil
}

// FindAll returns every event in map iteration order.
func (s *PlannedEventStore) FindAll(_ context.Context) ([]models.PlannedEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PlannedEvent, 0, len(s.rows))
	for _, e := range s.rows {
		out = append(out, e)
	}
	return out, nil
}

// Update overwrites the row with e's id.
func (s *PlannedEventStore) Update(_ context.Context, e models.PlannedEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[e.ID]; !ok {
		return store.ErrNotFound
	}
	s.rows[e.ID] = e
	return nil
}

// Delete removes the row with the given id.
func (s *PlannedEventStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

// Count returns the number of rows.
func (s *PlannedEventStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows), nil
}

// RegistrationStore is a mutex-guarded map of registrations.
type RegistrationStore struct {
	mu     sync.RWMutex
	rows   map[int]models.Registration
	nextID int
}

// NewRegistrationStore creates an empty registration collection.
func NewRegistrationStore() *RegistrationStore {
	return &RegistrationStore{rows: make(map[int]models.Registration), nextID: 1}
}

// Insert stores r under a fresh id.
func (s *RegistrationStore) Insert(_ context.Context, r models.Registration) (models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.nextID
	s.nextID++
	s.rows[r.ID] = r
	return r, nil
}

// FindByID returns the registration with the given id.
func (s *RegistrationStore) FindByID(_ context.Context, id int) (models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rows[id]
	if !ok {
		return models.Registration{}, store.ErrNotFound
	}
	return r, nil
}

// FindAll returns every registration in map iteration order.
func (s *RegistrationStore) FindAll(_ context.Context) ([]models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Registration, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, r)
	}
	return out, nil
}

// Delete removes the row with the given id.
func (s *RegistrationStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

// Count returns the number of rows.
func (s *RegistrationStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows), nil
}
