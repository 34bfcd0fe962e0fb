// Package events implements the planned event domain service and its HTTP
// handlers.
package events

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/planora/backend/internal/apperr"
	"github.com/planora/backend/internal/models"
	"github.com/planora/backend/internal/store"
)

// Service owns validation and storage orchestration for planned events.
type Service struct {
	events   store.PlannedEventStore
	managers store.EventManagerStore
	logger   *zap.Logger
}

// NewService creates a planned event service.
func NewService(events store.PlannedEventStore, managers store.EventManagerStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{events: events, managers: managers, logger: logger}
}

// validateFields checks the mutable event fields in contract order: name,
// location, date set, date not before today. Description is never checked.
func validateFields(name, location string, date models.Date) error {
	if strings.TrimSpace(name) == "" {
		return apperr.Validation("Event name cannot be empty")
	}
	if strings.TrimSpace(location) == "" {
		return apperr.Validation("Location cannot be empty")
	}
	if date.IsZero() {
		return apperr.Validation("Date must be instantiated")
	}
	if date.Before(models.Today()) {
		return apperr.Validation("Date cannot be in the past")
	}
	return nil
}

// Create resolves the owning manager by id, validates the fields and
// persists a new planned event. The manager must exist first; field
// validation runs only after resolution.
func (s *Service) Create(ctx context.Context, managerID int, name, description, location string, date models.Date) (models.PlannedEvent, error) {
	m, err := s.managers.FindByID(ctx, managerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.PlannedEvent{}, apperr.NotFound("Event manager not found")
		}
		return models.PlannedEvent{}, apperr.Internal("Planned event could not be created", err)
	}
	return s.create(ctx, m.ID, name, description, location, date)
}

// CreateFor persists a new planned event owned by an already-resolved
// manager value. The manager is only nil-checked, not re-fetched.
func (s *Service) CreateFor(ctx context.Context, manager *models.EventManager, name, description, location string, date models.Date) (models.PlannedEvent, error) {
	if manager == nil {
		return models.PlannedEvent{}, apperr.Validation("Event manager must be instantiated")
	}
	return s.create(ctx, manager.ID, name, description, location, date)
}

func (s *Service) create(ctx context.Context, managerID int, name, description, location string, date models.Date) (models.PlannedEvent, error) {
	if err := validateFields(name, location, date); err != nil {
		return models.PlannedEvent{}, err
	}
	e, err := s.events.Insert(ctx, models.PlannedEvent{
		EventManagerID: managerID,
		Name:           name,
		Description:    description,
		Location:       location,
		Date:           date,
	})
	if err != nil {
		s.logger.Error("insert planned event", zap.Error(err))
		return models.PlannedEvent{}, apperr.Internal("Planned event could not be created", err)
	}
	return e, nil
}

// Update overwrites the four mutable fields of an existing event after
// re-validating them as if creating. The id and manager reference are
// never touched; a validation failure leaves the stored record unchanged.
func (s *Service) Update(ctx context.Context, id int, name, description, location string, date models.Date) (models.PlannedEvent, error) {
	e, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.PlannedEvent{}, apperr.NotFound("Planned event not found")
		}
		return models.PlannedEvent{}, apperr.Internal("Planned event could not be updated", err)
	}
	if err := validateFields(name, location, date); err != nil {
		return models.PlannedEvent{}, err
	}
	e.Name = name
	e.Description = description
	e.Location = location
	e.Date = date
	if err := s.events.Update(ctx, e); err != nil {
		s.logger.Error("update planned event", zap.Int("id", id), zap.Error(err))
		return models.PlannedEvent{}, apperr.Internal("Planned event could not be updated", err)
	}
	return e, nil
}

// Delete removes a planned event. Registrations referencing the event are
// left in place (no cascade check at this layer).
func (s *Service) Delete(ctx context.Context, id int) error {
	if _, err := s.events.FindByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("Planned event not found")
		}
		return apperr.Internal("Planned event could not be deleted", err)
	}
	if err := s.events.Delete(ctx, id); err != nil {
		s.logger.Error("delete planned event", zap.Int("id", id), zap.Error(err))
		return apperr.Internal("Planned event could not be deleted", err)
	}
	return nil
}

// GetByID returns the planned event with the given id.
func (s *Service) GetByID(ctx context.Context, id int) (models.PlannedEvent, error) {
	e, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.PlannedEvent{}, apperr.NotFound("Planned event not found")
		}
		return models.PlannedEvent{}, apperr.Internal("Planned event could not be loaded", err)
	}
	return e, nil
}

// GetAll returns all planned events in storage iteration order.
func (s *Service) GetAll(ctx context.Context) ([]models.PlannedEvent, error) {
	list, err := s.events.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("Planned events could not be listed", err)
	}
	return list, nil
}
