// Package managers implements the event manager domain service and its
// HTTP handlers. Managers share the display-name namespace with general
// users but live in their own collection.
package managers

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/planora/backend/internal/apperr"
	"github.com/planora/backend/internal/identity"
	"github.com/planora/backend/internal/models"
	"github.com/planora/backend/internal/store"
)

// Service owns validation and storage orchestration for event managers.
type Service struct {
	managers store.EventManagerStore
	names    *identity.Service
	logger   *zap.Logger
}

// NewService creates an event manager service.
func NewService(managers store.EventManagerStore, names *identity.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{managers: managers, names: names, logger: logger}
}

// Create validates name and persists a new event manager. The name must be
// free across both user collections, not just other managers.
func (s *Service) Create(ctx context.Context, name string) (models.EventManager, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.EventManager{}, apperr.Validation("Name cannot be empty")
	}
	available, err := s.names.NameAvailable(ctx, name, nil)
	if err != nil {
		return models.EventManager{}, apperr.Internal("Event manager could not be created", err)
	}
	if !available {
		return models.EventManager{}, apperr.Conflict("Name already exists")
	}
	m, err := s.managers.Insert(ctx, models.EventManager{Name: name})
	if err != nil {
		s.logger.Error("insert event manager", zap.Error(err))
		return models.EventManager{}, apperr.Internal("Event manager could not be created", err)
	}
	return m, nil
}

// Update renames an existing event manager, excluding its own row from the
// collision check.
func (s *Service) Update(ctx context.Context, id int, name string) (models.EventManager, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.EventManager{}, apperr.Validation("Name cannot be empty")
	}
	m, err := s.managers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.EventManager{}, apperr.NotFound("Event manager not found")
		}
		return models.EventManager{}, apperr.Internal("Event manager could not be updated", err)
	}
	exclude := &identity.Exclusion{Namespace: identity.NamespaceEventManager, ID: id}
	available, err := s.names.NameAvailable(ctx, name, exclude)
	if err != nil {
		return models.EventManager{}, apperr.Internal("Event manager could not be updated", err)
	}
	if !available {
		return models.EventManager{}, apperr.Conflict("Name already exists")
	}
	m.Name = name
	if err := s.managers.Update(ctx, m); err != nil {
		s.logger.Error("update event manager", zap.Int("id", id), zap.Error(err))
		return models.EventManager{}, apperr.Internal("Event manager could not be updated", err)
	}
	return m, nil
}

// Delete removes an event manager. Planned events owned by the manager are
// left in place (no cascade check at this layer).
func (s *Service) Delete(ctx context.Context, id int) error {
	if _, err := s.managers.FindByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("Event manager not found")
		}
		return apperr.Internal("Event manager cannot be deleted", err)
	}
	if err := s.managers.Delete(ctx, id); err != nil {
		s.logger.Error("delete event manager", zap.Int("id", id), zap.Error(err))
		return apperr.Internal("Event manager cannot be deleted", err)
	}
	return nil
}

// GetByID returns the event manager with the given id.
func (s *Service) GetByID(ctx context.Context, id int) (models.EventManager, error) {
	m, err := s.managers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.EventManager{}, apperr.NotFound("Event manager not found")
		}
		return models.EventManager{}, apperr.Internal("Event manager could not be loaded", err)
	}
	return m, nil
}

// GetAll returns all event managers in storage iteration order.
func (s *Service) GetAll(ctx context.Context) ([]models.EventManager, error) {
	list, err := s.managers.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("Event managers could not be listed", err)
	}
	return list, nil
}
