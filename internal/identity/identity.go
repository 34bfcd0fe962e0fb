// Package identity enforces display-name uniqueness over the combined
// user namespace (general users plus event managers).
package identity

import (
	"context"

	"github.com/planora/backend/internal/store"
)

// Namespace distinguishes the two user collections. Ids are only unique
// within a namespace, so an exclusion must carry both.
type Namespace int

const (
	// NamespaceGeneralUser is the general user collection.
	NamespaceGeneralUser Namespace = iota
	// NamespaceEventManager is the event manager collection.
	NamespaceEventManager
)

// Exclusion identifies the entity whose own name should be ignored during
// a collision check (the entity being renamed).
type Exclusion struct {
	Namespace Namespace
	ID        int
}

// Service checks candidate names against both user collections.
type Service struct {
	users    store.GeneralUserStore
	managers store.EventManagerStore
}

// NewService creates an identity service over the two user stores.
func NewService(users store.GeneralUserStore, managers store.EventManagerStore) *Service {
	return &Service{users: users, managers: managers}
}

// NameAvailable reports whether name is free in the combined namespace.
// Comparison is exact and case-sensitive; callers trim input beforehand.
// A non-nil exclude skips the named entity, so renaming something to its
// current name does not collide with itself.
func (s *Service) NameAvailable(ctx context.Context, name string, exclude *Exclusion) (bool, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if exclude != nil && exclude.Namespace == NamespaceGeneralUser && exclude.ID == u.ID {
			continue
		}
		if u.Name == name {
			return false, nil
		}
	}
	managers, err := s.managers.FindAll(ctx)
	if err != nil {
		return false, err
	}
	for _, m := range managers {
		if exclude != nil && exclude.Namespace == NamespaceEventManager && exclude.ID == m.ID {
			continue
		}
		if m.Name == name {
			return false, nil
		}
	}
	return true, nil
}
