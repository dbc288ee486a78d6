// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package rating

import (
	"context"
	"log/slog"
	"slices"
)

// DeviceStore is the device-local persistence the guard records votes in.
type DeviceStore interface {
	RatedRecipeIDs(ctx context.Context, deviceID string) ([]string, error)
	SetRatedRecipeIDs(ctx context.Context, deviceID string, ids []string) error
	SetLastRating(ctx context.Context, deviceID, recipeName string, value float64) error
}

// Guard prevents a device from submitting more than one vote for the
// same recipe. It is advisory and device-scoped: there is no server-side
// enforcement, and reinstalling the app resets it. Callers must check
// HasRated before submitting and call MarkRated only after the
// aggregator reports a committed write.
type Guard struct {
	store DeviceStore
}

// NewGuard creates a Guard backed by the device store.
func NewGuard(store DeviceStore) *Guard {
	return &Guard{
		store: store,
	}
}

// HasRated reports whether the device already voted on the recipe.
// Missing or unreadable state counts as not rated, so a broken store
// never blocks all future votes.
func (g *Guard) HasRated(ctx context.Context, deviceID, recipeID string) bool {
	ids, err := g.store.RatedRecipeIDs(ctx, deviceID)
	if err != nil {
		slog.WarnContext(ctx, "rating: reading rated list", "device", deviceID, "error", err)
		return false
	}
	return slices.Contains(ids, recipeID)
}

// MarkRated records the vote on the device. Marking the same recipe
// twice is a no-op; the rated list has set semantics.
func (g *Guard) MarkRated(ctx context.Context, deviceID, recipeID string) error {
	ids, err := g.store.RatedRecipeIDs(ctx, deviceID)
	if err != nil {
		return err
	}
	if slices.Contains(ids, recipeID) {
		return nil
	}
	return g.store.SetRatedRecipeIDs(ctx, deviceID, append(ids, recipeID))
}

// RecordLast stores the device's last submitted value keyed by recipe
// display name. Kept for local display only; the recipe ID list above is
// what actually guards repeat votes.
func (g *Guard) RecordLast(ctx context.Context, deviceID, recipeName string, value float64) {
	if err := g.store.SetLastRating(ctx, deviceID, recipeName, value); err != nil {
		slog.WarnContext(ctx, "rating: saving last rating", "device", deviceID, "error", err)
	}
}
