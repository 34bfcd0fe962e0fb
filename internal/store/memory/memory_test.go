package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/backend/internal/models"
	"github.com/planora/backend/internal/store"
	"github.com/planora/backend/internal/store/memory"
)

func TestGeneralUserStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := memory.NewGeneralUserStore()

	u, err := s.Insert(ctx, models.GeneralUser{Name: "alice"})
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)

	got, err := s.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestGeneralUserStoreAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	s := memory.NewGeneralUserStore()

	a, err := s.Insert(ctx, models.GeneralUser{Name: "a"})
	require.NoError(t, err)
	b, err := s.Insert(ctx, models.GeneralUser{Name: "b"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestGeneralUserStoreFindByIDMissing(t *testing.T) {
	s := memory.NewGeneralUserStore()
	_, err := s.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGeneralUserStoreUpdate(t *testing.T) {
	ctx := context.Background()
	s := memory.NewGeneralUserStore()

	u, err := s.Insert(ctx, models.GeneralUser{Name: "alice"})
	require.NoError(t, err)

	u.Name = "alicia"
	require.NoError(t, s.Update(ctx, u))

	got, err := s.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alicia", got.Name)

	err = s.Update(ctx, models.GeneralUser{ID: 99, Name: "ghost"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGeneralUserStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := memory.NewGeneralUserStore()

	u, err := s.Insert(ctx, models.GeneralUser{Name: "alice"})
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, u.ID))

	_, err = s.FindByID(ctx, u.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, u.ID), store.ErrNotFound)
}

func TestPlannedEventStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := memory.NewPlannedEventStore()

	e, err := s.Insert(ctx, models.PlannedEvent{
		EventManagerID: 7,
		Name:           "Gala",
		Description:    "annual",
		Location:       "Hall",
		Date:           models.NewDate(2030, time.January, 1),
	})
	require.NoError(t, err)

	got, err := s.FindByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e, got)

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRegistrationStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := memory.NewRegistrationStore()

	r, err := s.Insert(ctx, models.Registration{PlannedEventID: 1, ParticipantID: 2})
	require.NoError(t, err)

	got, err := s.FindByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r, got)

	require.NoError(t, s.Delete(ctx, r.ID))
	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestStoresBundle(t *testing.T) {
	stores := memory.Stores()
	assert.NotNil(t, stores.GeneralUsers)
	assert.NotNil(t, stores.EventManagers)
	assert.NotNil(t, stores.PlannedEvents)
	assert.NotNil(t, stores.Registrations)
}
