// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

// Package devicestate persists per-device app state: saved recipes, the
// rated-recipe list, last submitted ratings, and UI preferences. Values
// are JSON under "concern:deviceID" keys in an embedded Badger database.
// The mobile app kept this state in device storage; the server keeps it
// here keyed by the device ID each request carries.
package devicestate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/dgraph-io/badger/v4"

	"github.com/bugunapp/bugun-server/internal/bugundb"
)

const (
	savedRecipesPrefix = "saved:"
	ratedPrefix        = "rated:"
	lastRatingPrefix   = "lastrating:"
	preferencesPrefix  = "prefs:"
)

// Preferences are the device's UI flags.
type Preferences struct {
	// DarkMode selects the dark theme.
	DarkMode bool `json:"darkMode"`

	// Locale is the selected language code, empty for the device default.
	Locale string `json:"locale"`
}

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// Open opens the device-state database at path.
func Open(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	opts.SyncWrites = true
	opts.CompactL0OnClose = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("devicestate: opening badger db: %w", err)
	}

	return &Store{
		db:     db,
		logger: logger,
	}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// get unmarshals the value at key into dest and reports whether a usable
// value was found. A missing key or an unparseable value both report
// false; corruption is logged and treated as absent rather than failing
// the caller.
func (s *Store) get(ctx context.Context, key string, dest any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var corrupt bool
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, dest); err != nil {
				// A failed decode may have partially filled dest; zero it
				// so the caller sees the value as absent, not garbage.
				corrupt = true
				reflect.ValueOf(dest).Elem().SetZero()
				if s.logger != nil {
					s.logger.Warn("devicestate: discarding corrupt value", "key", key, "error", err)
				}
			}
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("devicestate: reading %s: %w", key, err)
	}
	return !corrupt, nil
}

// set stores value at key, replacing any prior value whole.
func (s *Store) set(ctx context.Context, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("devicestate: marshalling %s: %w", key, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("devicestate: writing %s: %w", key, err)
	}
	return nil
}

// SavedRecipes returns the device's saved recipe snapshots. Missing or
// corrupt state yields an empty list.
func (s *Store) SavedRecipes(ctx context.Context, deviceID string) ([]bugundb.Recipe, error) {
	var recipes []bugundb.Recipe
	if _, err := s.get(ctx, savedRecipesPrefix+deviceID, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// SetSavedRecipes replaces the device's saved recipe list.
func (s *Store) SetSavedRecipes(ctx context.Context, deviceID string, recipes []bugundb.Recipe) error {
	if recipes == nil {
		recipes = []bugundb.Recipe{}
	}
	return s.set(ctx, savedRecipesPrefix+deviceID, recipes)
}

// RatedRecipeIDs returns the recipe IDs the device has voted on.
func (s *Store) RatedRecipeIDs(ctx context.Context, deviceID string) ([]string, error) {
	var ids []string
	if _, err := s.get(ctx, ratedPrefix+deviceID, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// SetRatedRecipeIDs replaces the device's rated recipe ID list.
func (s *Store) SetRatedRecipeIDs(ctx context.Context, deviceID string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return s.set(ctx, ratedPrefix+deviceID, ids)
}

// LastRating returns the last value the device submitted for a recipe
// display name, and whether one was recorded.
func (s *Store) LastRating(ctx context.Context, deviceID, recipeName string) (float64, bool, error) {
	var value float64
	found, err := s.get(ctx, lastRatingPrefix+deviceID+":"+recipeName, &value)
	if err != nil {
		return 0, false, err
	}
	return value, found, nil
}

// SetLastRating records the last value the device submitted for a
// recipe display name.
func (s *Store) SetLastRating(ctx context.Context, deviceID, recipeName string, value float64) error {
	return s.set(ctx, lastRatingPrefix+deviceID+":"+recipeName, value)
}

// GetPreferences returns the device's preferences, defaults when unset.
func (s *Store) GetPreferences(ctx context.Context, deviceID string) (Preferences, error) {
	var prefs Preferences
	if _, err := s.get(ctx, preferencesPrefix+deviceID, &prefs); err != nil {
		return Preferences{}, err
	}
	return prefs, nil
}

// SetPreferences replaces the device's preferences.
func (s *Store) SetPreferences(ctx context.Context, deviceID string, prefs Preferences) error {
	return s.set(ctx, preferencesPrefix+deviceID, prefs)
}
