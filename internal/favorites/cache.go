// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

// Package favorites maintains each device's saved-recipe list: an
// in-memory mirror for reads plus full persistence of every mutation.
package favorites

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/bugunapp/bugun-server/internal/bugundb"
)

// Store is the device-local persistence behind the cache.
type Store interface {
	SavedRecipes(ctx context.Context, deviceID string) ([]bugundb.Recipe, error)
	SetSavedRecipes(ctx context.Context, deviceID string, recipes []bugundb.Recipe) error
}

// Cache holds saved recipes per device. Entries are full snapshots, not
// references, so a saved recipe survives later edits to the corpus.
// Identity is the recipe ID. Every mutation writes the whole list back
// to the store; at dozens of saved recipes per device that is cheap,
// and it would need batching before it ever grew past that.
type Cache struct {
	store Store

	mu       sync.Mutex
	byDevice map[string][]bugundb.Recipe
}

// NewCache creates a Cache over the device store.
func NewCache(store Store) *Cache {
	return &Cache{
		store:    store,
		byDevice: make(map[string][]bugundb.Recipe),
	}
}

// load hydrates the device's list from the store on first touch.
// A failed read seeds an empty list instead of failing the caller.
// Callers must hold c.mu.
func (c *Cache) load(ctx context.Context, deviceID string) []bugundb.Recipe {
	if recipes, ok := c.byDevice[deviceID]; ok {
		return recipes
	}
	recipes, err := c.store.SavedRecipes(ctx, deviceID)
	if err != nil {
		slog.WarnContext(ctx, "favorites: loading saved recipes", "device", deviceID, "error", err)
		recipes = nil
	}
	c.byDevice[deviceID] = recipes
	return recipes
}

// Add appends a snapshot of the recipe to the device's list if it is
// not already saved, and persists the updated list.
func (c *Cache) Add(ctx context.Context, deviceID string, recipe bugundb.Recipe) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	recipes := c.load(ctx, deviceID)
	if slices.ContainsFunc(recipes, func(r bugundb.Recipe) bool { return r.ID == recipe.ID }) {
		return nil
	}

	updated := append(slices.Clone(recipes), recipe)
	if err := c.store.SetSavedRecipes(ctx, deviceID, updated); err != nil {
		return err
	}
	c.byDevice[deviceID] = updated
	return nil
}

// Remove drops the recipe with the given ID from the device's list and
// persists the result. Removing an unsaved recipe is a no-op.
func (c *Cache) Remove(ctx context.Context, deviceID, recipeID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	recipes := c.load(ctx, deviceID)
	updated := slices.DeleteFunc(slices.Clone(recipes), func(r bugundb.Recipe) bool {
		return r.ID == recipeID
	})
	if len(updated) == len(recipes) {
		return nil
	}

	if err := c.store.SetSavedRecipes(ctx, deviceID, updated); err != nil {
		return err
	}
	c.byDevice[deviceID] = updated
	return nil
}

// List returns a copy of the device's saved recipes in save order.
func (c *Cache) List(ctx context.Context, deviceID string) []bugundb.Recipe {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.load(ctx, deviceID))
}

// Contains reports whether the device has saved the recipe.
func (c *Cache) Contains(ctx context.Context, deviceID, recipeID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.ContainsFunc(c.load(ctx, deviceID), func(r bugundb.Recipe) bool {
		return r.ID == recipeID
	})
}
