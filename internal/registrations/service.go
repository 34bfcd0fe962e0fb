// Package registrations implements the registration domain service and its
// HTTP handlers.
package registrations

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/planora/backend/internal/apperr"
	"github.com/planora/backend/internal/models"
	"github.com/planora/backend/internal/store"
)

// Service owns validation and storage orchestration for registrations.
// Participants resolve against the general user collection first, then the
// event manager collection: managers are valid participants too.
type Service struct {
	regs     store.RegistrationStore
	events   store.PlannedEventStore
	users    store.GeneralUserStore
	managers store.EventManagerStore
	logger   *zap.Logger
}

// NewService creates a registration service.
func NewService(regs store.RegistrationStore, events store.PlannedEventStore, users store.GeneralUserStore, managers store.EventManagerStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{regs: regs, events: events, users: users, managers: managers, logger: logger}
}

// Create resolves both references by id and persists a new registration.
func (s *Service) Create(ctx context.Context, plannedEventID, participantID int) (models.Registration, error) {
	event, err := s.events.FindByID(ctx, plannedEventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Registration{}, apperr.NotFound("Planned event not found")
		}
		return models.Registration{}, apperr.Internal("Registration could not be created", err)
	}
	if err := s.resolveParticipant(ctx, participantID); err != nil {
		return models.Registration{}, err
	}
	r, err := s.regs.Insert(ctx, models.Registration{
		PlannedEventID: event.ID,
		ParticipantID:  participantID,
	})
	if err != nil {
		s.logger.Error("insert registration", zap.Error(err))
		return models.Registration{}, apperr.Internal("Registration could not be created", err)
	}
	return r, nil
}

// CreateFor persists a registration from already-resolved values. The
// arguments are only nil-checked, not re-fetched.
func (s *Service) CreateFor(ctx context.Context, event *models.PlannedEvent, participant *models.GeneralUser) (models.Registration, error) {
	if event == nil {
		return models.Registration{}, apperr.Validation("Planned event must be instantiated")
	}
	if participant == nil {
		return models.Registration{}, apperr.Validation("General user must be instantiated")
	}
	r, err := s.regs.Insert(ctx, models.Registration{
		PlannedEventID: event.ID,
		ParticipantID:  participant.ID,
	})
	if err != nil {
		s.logger.Error("insert registration", zap.Error(err))
		return models.Registration{}, apperr.Internal("Registration could not be created", err)
	}
	return r, nil
}

// resolveParticipant checks the general user namespace first, then the
// event manager namespace. Which one matched is not recorded.
func (s *Service) resolveParticipant(ctx context.Context, id int) error {
	_, err := s.users.FindByID(ctx, id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return apperr.Internal("Registration could not be created", err)
	}
	_, err = s.managers.FindByID(ctx, id)
	if err == nil {
		return nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("General user not found")
	}
	return apperr.Internal("Registration could not be created", err)
}

// Delete removes a registration. The referenced event and participant are
// untouched.
func (s *Service) Delete(ctx context.Context, id int) error {
	if _, err := s.regs.FindByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("Registration not found")
		}
		return apperr.Internal("Registration could not be deleted", err)
	}
	if err := s.regs.Delete(ctx, id); err != nil {
		s.logger.Error("delete registration", zap.Int("id", id), zap.Error(err))
		return apperr.Internal("Registration could not be deleted", err)
	}
	return nil
}

// GetByID returns the registration with the given id.
func (s *Service) GetByID(ctx context.Context, id int) (models.Registration, error) {
	r, err := s.regs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Registration{}, apperr.NotFound("Registration not found")
		}
		return models.Registration{}, apperr.Internal("Registration could not be loaded", err)
	}
	return r, nil
}

// GetAll returns all registrations in storage iteration order.
func (s *Service) GetAll(ctx context.Context) ([]models.Registration, error) {
	list, err := s.regs.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("Registrations could not be listed", err)
	}
	return list, nil
}
