// Package users implements the general user domain service and its HTTP
// handlers.
package users

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

// Service owns validation and storage orchestration for general users.
type Service struct {
	users  store.GeneralUserStore
	names  *identity.Service
	logger *zap.Logger
}

// NewService creates a general user service.
func NewService(users store.GeneralUserStore, names *identity.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{users: users, names: names, logger: logger}
}

// Create validates name and persists a new general user.
func (s *Service) Create(ctx context.Context, name string) (models.GeneralUser, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.GeneralUser{}, apperr.Validation("Name cannot be empty")
	}
	available, err := s.names.NameAvailable(ctx, name, nil)
	if err != nil {
		return models.GeneralUser{}, apperr.Internal("General user could not be created", err)
	}
	if !available {
		return models.GeneralUser{}, apperr.Conflict("Name already exists")
	}
	u, err := s.users.Insert(ctx, models.GeneralUser{Name: name})
	if err != nil {
		s.logger.Error("insert general user", zap.Error(err))
		return models.GeneralUser{}, apperr.Internal("General user could not be created", err)
	}
	return u, nil
}

// Update renames an existing general user. The user's own row is excluded
// from the collision check, so renaming to the current name succeeds.
func (s *Service) Update(ctx context.Context, id int, name string) (models.GeneralUser, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.GeneralUser{}, apperr.Validation("Name cannot be empty")
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.GeneralUser{}, apperr.NotFound("General user not found")
		}
		return models.GeneralUser{}, apperr.Internal("General user could not be updated", err)
	}
	exclude := &identity.Exclusion{Namespace: identity.NamespaceGeneralUser, ID: id}
	available, err := s.names.NameAvailable(ctx, name, exclude)
	if err != nil {
		return models.GeneralUser{}, apperr.Internal("General user could not be updated", err)
	}
	if !available {
		return models.GeneralUser{}, apperr.Conflict("Name already exists")
	}
	u.Name = name
	if err := s.users.Update(ctx, u); err != nil {
		s.logger.Error("update general user", zap.Int("id", id), zap.Error(err))
		return models.GeneralUser{}, apperr.Internal("General user could not be updated", err)
	}
	return u, nil
}

// Delete removes a general user. Registrations referencing the user are
// left in place (no cascade check at this layer).
func (s *Service) Delete(ctx context.Context, id int) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("General user not found")
		}
		return apperr.Internal("General user cannot be deleted", err)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		s.logger.Error("delete general user", zap.Int("id", id), zap.Error(err))
		return apperr.Internal("General user cannot be deleted", err)
	}
	return nil
}

// GetByID returns the general user with the given id.
func (s *Service) GetByID(ctx context.Context, id int) (models.GeneralUser, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.GeneralUser{}, apperr.NotFound("General user not found")
		}
		return models.GeneralUser{}, apperr.Internal("General user could not be loaded", err)
	}
	return u, nil
}

// GetAll returns all general users in storage iteration order.
func (s *Service) GetAll(ctx context.Context) ([]models.GeneralUser, error) {
	list, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("General users could not be listed", err)
	}
	return list, nil
}
