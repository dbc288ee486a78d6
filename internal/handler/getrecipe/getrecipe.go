// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package getrecipe

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bugunapp/bugun-server/internal/appstate"
	"github.com/bugunapp/bugun-server/internal/device"
	"github.com/bugunapp/bugun-server/internal/favorites"
	"github.com/bugunapp/bugun-server/internal/i18n"
	"github.com/bugunapp/bugun-server/internal/rating"
)

type GetRecipeInput struct {
	ID string `path:"id" doc:"Recipe ID"`
}

type RecipeDetail struct {
	ID          string   `json:"id" doc:"Recipe ID"`
	Name        string   `json:"name" doc:"Localized name"`
	Ingredients []string `json:"ingredients" doc:"Localized ingredient list"`
	Steps       []string `json:"steps" doc:"Localized preparation steps, rendered 1-based"`
	ImageURL    string   `json:"imageUrl" doc:"Main image URL, empty for placeholder"`
	Category    string   `json:"category" doc:"Category code"`
	Countries   []string `json:"countries,omitempty" doc:"Country codes"`
	VideoURL    string   `json:"videoUrl,omitempty" doc:"Video recipe URL"`
	Rating      *float64 `json:"rating,omitempty" doc:"Average rating, absent when unrated"`
	RatingCount int64    `json:"ratingCount" doc:"Number of votes"`
}

type GetRecipeResponse struct {
	Recipe RecipeDetail `json:"recipe" doc:"The recipe"`

	// IsRated reports whether the calling device already voted; clients
	// render the stars muted and ignore taps when true.
	IsRated bool `json:"isRated" doc:"Whether this device already voted"`

	// IsSaved reports whether the recipe is in the device's favorites.
	IsSaved bool `json:"isSaved" doc:"Whether this device saved the recipe"`
}

type GetRecipeOutput struct {
	Body GetRecipeResponse
}

func NewHandler(state *appstate.State, favorites *favorites.Cache, guard *rating.Guard) *Handler {
	return &Handler{
		state:     state,
		favorites: favorites,
		guard:     guard,
	}
}

type Handler struct {
	state     *appstate.State
	favorites *favorites.Cache
	guard     *rating.Guard
}

// GetRecipe returns one recipe localized for the request language,
// together with the calling device's rated and saved flags.
func (h *Handler) GetRecipe(ctx context.Context, req *GetRecipeInput) (*GetRecipeOutput, error) {
	recipe, ok := h.state.RecipeByID(req.ID)
	if !ok {
		return nil, huma.Error404NotFound("recipe not found")
	}

	lang := i18n.UserLanguage(ctx)
	detail := RecipeDetail{
		ID:          recipe.ID,
		Name:        recipe.LocalizedName(lang),
		Ingredients: recipe.LocalizedIngredients(lang),
		Steps:       recipe.LocalizedSteps(lang),
		ImageURL:    recipe.ImageURL,
		Category:    recipe.Category,
		Countries:   recipe.Countries,
		VideoURL:    recipe.VideoURL,
		RatingCount: recipe.RatingCount,
	}
	if agg, ok := h.state.RatingFor(recipe.ID); ok {
		avg := agg.Average
		detail.Rating = &avg
		detail.RatingCount = agg.Count
	}

	res := GetRecipeResponse{Recipe: detail}
	if deviceID := device.FromContext(ctx); deviceID != "" {
		res.IsRated = h.guard.HasRated(ctx, deviceID, recipe.ID)
		res.IsSaved = h.favorites.Contains(ctx, deviceID, recipe.ID)
	}

	return &GetRecipeOutput{Body: res}, nil
}
