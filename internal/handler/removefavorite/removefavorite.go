// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package removefavorite

import (
	"context"
	"fmt"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bugunapp/bugun-server/internal/device"
	"github.com/bugunapp/bugun-server/internal/favorites"
)

type RemoveFavoriteInput struct {
	RecipeID string `path:"recipeId" doc:"Recipe ID to unsave"`
}

type RemoveFavoriteOutput struct {
	Body struct{}
}

func NewHandler(favorites *favorites.Cache) *Handler {
	return &Handler{
		favorites: favorites,
	}
}

type Handler struct {
	favorites *favorites.Cache
}

// RemoveFavorite drops the recipe from the device's favorites.
func (h *Handler) RemoveFavorite(ctx context.Context, req *RemoveFavoriteInput) (*RemoveFavoriteOutput, error) {
	deviceID := device.FromContext(ctx)
	if deviceID == "" {
		return nil, huma.Error400BadRequest("missing " + device.Header + " header")
	}

	if err := h.favorites.Remove(ctx, deviceID, req.RecipeID); err != nil {
		return nil, fmt.Errorf("removefavorite: removing recipe: %w", err)
	}
	return &RemoveFavoriteOutput{}, nil
}
