package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"satellite-monitor-backend/internal/db/dbtest"
	"satellite-monitor-backend/internal/model"
)

func TestGormUserStore_CRUD(t *testing.T) {
	ctx := context.Background()
	s := NewGormUserStore(dbtest.NewSQLite(t, &model.User{}))

	u := &model.User{Username: "ana", Email: "ana@example.com", FullName: "Ana", HashedPassword: "h", IsActive: true}
	require.NoError(t, s.Create(ctx, u))
	require.NotZero(t, u.ID)

	got, err := s.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", got.Email)

	got, err = s.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	got, err = s.FindByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	got.FullName = "Ana Maria"
	got.IsActive = false
	require.NoError(t, s.Update(ctx, &got))

	reloaded, err := s.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", reloaded.FullName)
	assert.False(t, reloaded.IsActive)

	require.NoError(t, s.Delete(ctx, u.ID))
	_, err = s.Get(ctx, u.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, u.ID), ErrNotFound)
}

func TestGormUserStore_DuplicateEmailRejected(t *testing.T) {
	ctx := context.Background()
	s := NewGormUserStore(dbtest.NewSQLite(t, &model.User{}))

	require.NoError(t, s.Create(ctx, &model.User{Username: "a", Email: "same@example.com", HashedPassword: "h"}))
	assert.Error(t, s.Create(ctx, &model.User{Username: "b", Email: "same@example.com", HashedPassword: "h"}))
}

func TestGormUserStore_ListPaging(t *testing.T) {
	ctx := context.Background()
	s := NewGormUserStore(dbtest.NewSQLite(t, &model.User{}))

	for _, name := range []string{"u1", "u2", "u3", "u4"} {
		require.NoError(t, s.Create(ctx, &model.User{Username: name, Email: name + "@example.com", HashedPassword: "h"}))
	}

	page, err := s.List(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "u2", page[0].Username)
	assert.Equal(t, "u3", page[1].Username)

	_, err = s.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
