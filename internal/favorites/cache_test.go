// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package favorites_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bugunapp/bugun-server/internal/bugundb"
	"github.com/bugunapp/bugun-server/internal/devicestate"
	"github.com/bugunapp/bugun-server/internal/favorites"
)

func newTestStore(t *testing.T) *devicestate.Store {
	t.Helper()
	store, err := devicestate.Open(t.TempDir(), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestAddListRemove(t *testing.T) {
	cache := favorites.NewCache(newTestStore(t))
	ctx := context.Background()

	tacos := bugundb.Recipe{ID: "r1", Name: bugundb.LocalizedText{"en": "Tacos"}}
	soup := bugundb.Recipe{ID: "r2", Name: bugundb.LocalizedText{"en": "Soup"}}

	assert.Empty(t, cache.List(ctx, "dev1"))
	assert.False(t, cache.Contains(ctx, "dev1", "r1"))

	require.NoError(t, cache.Add(ctx, "dev1", tacos))
	require.NoError(t, cache.Add(ctx, "dev1", soup))

	assert.Equal(t, []bugundb.Recipe{tacos, soup}, cache.List(ctx, "dev1"))
	assert.True(t, cache.Contains(ctx, "dev1", "r1"))

	require.NoError(t, cache.Remove(ctx, "dev1", "r1"))
	assert.Equal(t, []bugundb.Recipe{soup}, cache.List(ctx, "dev1"))
	assert.False(t, cache.Contains(ctx, "dev1", "r1"))
}

func TestAddSameIDTwiceKeepsOneEntry(t *testing.T) {
	cache := favorites.NewCache(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, cache.Add(ctx, "dev1", bugundb.Recipe{ID: "r1"}))
	// Saving again with a drifted snapshot keeps the original entry.
	require.NoError(t, cache.Add(ctx, "dev1", bugundb.Recipe{ID: "r1", Featured: true}))

	list := cache.List(ctx, "dev1")
	require.Len(t, list, 1)
	assert.False(t, list[0].Featured)
}

func TestRemoveUnsavedIsNoOp(t *testing.T) {
	cache := favorites.NewCache(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, cache.Add(ctx, "dev1", bugundb.Recipe{ID: "r1"}))
	require.NoError(t, cache.Remove(ctx, "dev1", "r2"))

	assert.Len(t, cache.List(ctx, "dev1"), 1)
}

func TestListsSurviveRestart(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	tacos := bugundb.Recipe{ID: "r1", Name: bugundb.LocalizedText{"en": "Tacos"}}

	first := favorites.NewCache(store)
	require.NoError(t, first.Add(ctx, "dev1", tacos))

	// A fresh cache over the same store hydrates the persisted list.
	second := favorites.NewCache(store)
	assert.Equal(t, []bugundb.Recipe{tacos}, second.List(ctx, "dev1"))
	assert.True(t, second.Contains(ctx, "dev1", "r1"))
}

func TestDevicesAreIsolated(t *testing.T) {
	cache := favorites.NewCache(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, cache.Add(ctx, "dev1", bugundb.Recipe{ID: "r1"}))

	assert.Empty(t, cache.List(ctx, "dev2"))
	assert.False(t, cache.Contains(ctx, "dev2", "r1"))
}

type failingStore struct {
	recipes []bugundb.Recipe
	loadErr error
	saveErr error
}

func (s *failingStore) SavedRecipes(context.Context, string) ([]bugundb.Recipe, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.recipes, nil
}

func (s *failingStore) SetSavedRecipes(_ context.Context, _ string, recipes []bugundb.Recipe) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.recipes = recipes
	return nil
}

func TestLoadFailureSeedsEmptyList(t *testing.T) {
	store := &failingStore{loadErr: errors.New("db closed")}
	cache := favorites.NewCache(store)
	ctx := context.Background()

	assert.Empty(t, cache.List(ctx, "dev1"))

	// The device can still save once the store recovers.
	store.loadErr = nil
	store.saveErr = nil
	require.NoError(t, cache.Add(ctx, "dev1", bugundb.Recipe{ID: "r1"}))
	assert.Len(t, cache.List(ctx, "dev1"), 1)
}

func TestFailedPersistLeavesCacheUnchanged(t *testing.T) {
	store := &failingStore{saveErr: errors.New("disk full")}
	cache := favorites.NewCache(store)
	ctx := context.Background()

	require.Error(t, cache.Add(ctx, "dev1", bugundb.Recipe{ID: "r1"}))
	assert.Empty(t, cache.List(ctx, "dev1"))
}
