// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package raterecipe

import (
	"context"
	"errors"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bugunapp/bugun-server/internal/appstate"
	"github.com/bugunapp/bugun-server/internal/device"
	"github.com/bugunapp/bugun-server/internal/i18n"
	"github.com/bugunapp/bugun-server/internal/ratelimit"
	"github.com/bugunapp/bugun-server/internal/rating"
)

// Reasons a vote was not counted. The client shows a transient failure
// icon for "failed" and disables the stars for "already_rated"; neither
// is an HTTP error.
const (
	ReasonAlreadyRated = "already_rated"
	ReasonFailed       = "failed"
)

type RateRecipeInput struct {
	ID   string `path:"id" doc:"Recipe ID"`
	Body struct {
		// Rating is the vote value. Values outside [0, 5] are clamped,
		// not rejected.
		Rating float64 `json:"rating" doc:"Vote value, clamped to [0, 5]"`
	}
}

type RateRecipeResponse struct {
	// Accepted reports whether the vote was counted.
	Accepted bool `json:"accepted" doc:"Whether the vote was counted"`

	// Reason is set when Accepted is false.
	Reason string `json:"reason,omitempty" doc:"Why the vote was not counted"`

	// Rating is the new running average after the vote.
	Rating float64 `json:"rating,omitempty" doc:"New average rating"`

	// RatingCount is the new vote count after the vote.
	RatingCount int64 `json:"ratingCount,omitempty" doc:"New vote count"`
}

type RateRecipeOutput struct {
	Body RateRecipeResponse
}

// Submitter is the vote path into the document store.
type Submitter interface {
	Submit(ctx context.Context, recipeID string, raw float64) (rating.Aggregate, error)
}

func NewHandler(aggregator Submitter, guard *rating.Guard, state *appstate.State, limiter *ratelimit.Keyed) *Handler {
	return &Handler{
		aggregator: aggregator,
		guard:      guard,
		state:      state,
		limiter:    limiter,
	}
}

type Handler struct {
	aggregator Submitter
	guard      *rating.Guard
	state      *appstate.State
	limiter    *ratelimit.Keyed
}

// RateRecipe records one vote for a recipe: guard check, transactional
// aggregate update, guard mark, state mirror, in that order. The guard
// is marked only after the store commit so a failed write leaves the
// device free to retry.
func (h *Handler) RateRecipe(ctx context.Context, req *RateRecipeInput) (*RateRecipeOutput, error) {
	deviceID := device.FromContext(ctx)
	if deviceID == "" {
		return nil, huma.Error400BadRequest("missing " + device.Header + " header")
	}
	if !h.limiter.Allow(deviceID) {
		return nil, huma.Error429TooManyRequests("too many votes, slow down")
	}

	if h.guard.HasRated(ctx, deviceID, req.ID) {
		return &RateRecipeOutput{Body: RateRecipeResponse{
			Accepted: false,
			Reason:   ReasonAlreadyRated,
		}}, nil
	}

	agg, err := h.aggregator.Submit(ctx, req.ID, req.Body.Rating)
	if err != nil {
		// Store failures surface as a declined vote, not an HTTP error.
		// The guard stays unmarked, so the device can re-tap the stars.
		if !errors.Is(err, rating.ErrRecipeNotFound) {
			slog.ErrorContext(ctx, "raterecipe: submitting vote", "recipe", req.ID, "error", err)
		}
		return &RateRecipeOutput{Body: RateRecipeResponse{
			Accepted: false,
			Reason:   ReasonFailed,
		}}, nil
	}

	if err := h.guard.MarkRated(ctx, deviceID, req.ID); err != nil {
		slog.WarnContext(ctx, "raterecipe: marking rated", "recipe", req.ID, "error", err)
	}
	if recipe, ok := h.state.RecipeByID(req.ID); ok {
		h.guard.RecordLast(ctx, deviceID, recipe.LocalizedName(i18n.UserLanguage(ctx)), rating.Clamp(req.Body.Rating))
	}
	h.state.SetRating(req.ID, agg)

	return &RateRecipeOutput{Body: RateRecipeResponse{
		Accepted:    true,
		Rating:      agg.Average,
		RatingCount: agg.Count,
	}}, nil
}
