// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package devicestate

import (
	"context"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bugunapp/bugun-server/internal/bugundb"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir(), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestSavedRecipesRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	recipes, err := store.SavedRecipes(ctx, "dev1")
	require.NoError(t, err)
	assert.Empty(t, recipes)

	want := []bugundb.Recipe{
		{ID: "r1", Name: bugundb.LocalizedText{"en": "Tacos"}},
		{ID: "r2", Name: bugundb.LocalizedText{"en": "Soup"}},
	}
	require.NoError(t, store.SetSavedRecipes(ctx, "dev1", want))

	recipes, err = store.SavedRecipes(ctx, "dev1")
	require.NoError(t, err)
	assert.Equal(t, want, recipes)

	// Devices do not see each other's state.
	recipes, err = store.SavedRecipes(ctx, "dev2")
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestRatedRecipeIDsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ids, err := store.RatedRecipeIDs(ctx, "dev1")
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, store.SetRatedRecipeIDs(ctx, "dev1", []string{"r1", "r2"}))

	ids, err = store.RatedRecipeIDs(ctx, "dev1")
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2"}, ids)
}

func TestLastRatingRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, found, err := store.LastRating(ctx, "dev1", "Tacos")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.SetLastRating(ctx, "dev1", "Tacos", 4.5))

	value, found, err := store.LastRating(ctx, "dev1", "Tacos")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 4.5, value)
}

func TestPreferencesRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	prefs, err := store.GetPreferences(ctx, "dev1")
	require.NoError(t, err)
	assert.Equal(t, Preferences{}, prefs)

	want := Preferences{DarkMode: true, Locale: "tr"}
	require.NoError(t, store.SetPreferences(ctx, "dev1", want))

	prefs, err = store.GetPreferences(ctx, "dev1")
	require.NoError(t, err)
	assert.Equal(t, want, prefs)
}

func TestCorruptValueTreatedAsAbsent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetSavedRecipes(ctx, "dev1", []bugundb.Recipe{{ID: "r1"}}))

	// Stomp the stored JSON directly.
	err := store.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(savedRecipesPrefix+"dev1"), []byte("{not json"))
	})
	require.NoError(t, err)

	recipes, err := store.SavedRecipes(ctx, "dev1")
	require.NoError(t, err)
	assert.Empty(t, recipes)

	// A fresh write recovers the key.
	require.NoError(t, store.SetSavedRecipes(ctx, "dev1", []bugundb.Recipe{{ID: "r2"}}))
	recipes, err = store.SavedRecipes(ctx, "dev1")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "r2", recipes[0].ID)
}

func TestMistypedValueTreatedAsAbsent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Valid JSON of the wrong shape fails mid-decode; the entries decoded
	// before the failure must not leak out.
	err := store.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(savedRecipesPrefix+"dev1"), []byte(`[{"id":"r1"},{"id":5}]`))
	})
	require.NoError(t, err)

	recipes, err := store.SavedRecipes(ctx, "dev1")
	require.NoError(t, err)
	assert.Empty(t, recipes)

	err = store.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(preferencesPrefix+"dev1"), []byte(`{"darkMode":"yes","locale":"tr"}`))
	})
	require.NoError(t, err)

	prefs, err := store.GetPreferences(ctx, "dev1")
	require.NoError(t, err)
	assert.Equal(t, Preferences{}, prefs)
}

func TestCancelledContextRejected(t *testing.T) {
	store := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, store.SetRatedRecipeIDs(ctx, "dev1", []string{"r1"}))
	_, err := store.RatedRecipeIDs(ctx, "dev1")
	assert.Error(t, err)
}
