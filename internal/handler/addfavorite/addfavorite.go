// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package addfavorite

import (
	"context"
	"fmt"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bugunapp/bugun-server/internal/appstate"
	"github.com/bugunapp/bugun-server/internal/device"
	"github.com/bugunapp/bugun-server/internal/favorites"
)

type AddFavoriteInput struct {
	Body struct {
		RecipeID string `json:"recipeId" minLength:"1" doc:"Recipe ID to save"`
	}
}

type AddFavoriteOutput struct {
	Body struct{}
}

func NewHandler(state *appstate.State, favorites *favorites.Cache) *Handler {
	return &Handler{
		state:     state,
		favorites: favorites,
	}
}

type Handler struct {
	state     *appstate.State
	favorites *favorites.Cache
}

// AddFavorite saves a full snapshot of the recipe to the device's
// favorites. Saving an already-saved recipe is a no-op.
func (h *Handler) AddFavorite(ctx context.Context, req *AddFavoriteInput) (*AddFavoriteOutput, error) {
	deviceID := device.FromContext(ctx)
	if deviceID == "" {
		return nil, huma.Error400BadRequest("missing " + device.Header + " header")
	}

	recipe, ok := h.state.RecipeByID(req.Body.RecipeID)
	if !ok {
		return nil, huma.Error404NotFound("recipe not found")
	}

	if err := h.favorites.Add(ctx, deviceID, recipe); err != nil {
		return nil, fmt.Errorf("addfavorite: saving recipe: %w", err)
	}
	return &AddFavoriteOutput{}, nil
}
