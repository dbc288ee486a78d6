// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

// Package rating implements vote submission for recipes: clamping,
// transactional aggregate updates against the document store, and the
// device-local guard that keeps a device from voting twice.
package rating

import (
	"context"
	"errors"
	"math"
	"time"
)

// ErrRecipeNotFound is returned when the voted recipe does not exist in
// the store at aggregation time.
var ErrRecipeNotFound = errors.New("rating: recipe not found")

// Aggregate is the (total, count, average) triple stored on a recipe.
type Aggregate struct {
	// Total is the cumulative sum of all votes.
	Total float64

	// Count is the number of votes.
	Count int64

	// Average is Total / Count, or 0 when Count is 0.
	Average float64
}

// applyVote folds one clamped vote into the aggregate.
func (a Aggregate) applyVote(value float64) Aggregate {
	a.Total += value
	a.Count++
	a.Average = a.Total / float64(a.Count)
	return a
}

// Clamp bounds a raw vote to [0, 5]. Out-of-range values are clamped,
// not rejected; NaN counts as 0.
func Clamp(raw float64) float64 {
	if math.IsNaN(raw) {
		return 0
	}
	return math.Min(5, math.Max(0, raw))
}

// Store applies an aggregate mutation to a recipe record. The mutation
// must be applied atomically with the read of the current aggregate; a
// conflicting concurrent write restarts the whole operation so that no
// vote is lost.
type Store interface {
	UpdateAggregate(ctx context.Context, recipeID string, apply func(Aggregate) Aggregate) (Aggregate, error)
}

// Aggregator submits votes to the store. It does not enforce
// one-vote-per-device; that is the Guard's job, layered on by callers
// before Submit.
type Aggregator struct {
	store   Store
	timeout time.Duration
}

// NewAggregator creates an Aggregator. timeout bounds a single
// submission at the store boundary; zero disables the bound.
func NewAggregator(store Store, timeout time.Duration) *Aggregator {
	return &Aggregator{
		store:   store,
		timeout: timeout,
	}
}

// Submit records one vote for the recipe and returns the new aggregate.
// The raw value is clamped to [0, 5] before storage. On failure the
// remote record is unchanged and the caller is free to retry; Submit
// itself never retries a failed attempt.
func (a *Aggregator) Submit(ctx context.Context, recipeID string, raw float64) (Aggregate, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	value := Clamp(raw)
	return a.store.UpdateAggregate(ctx, recipeID, func(cur Aggregate) Aggregate {
		return cur.applyVote(value)
	})
}
