// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package listfavorites

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bugunapp/bugun-server/internal/bugundb"
	"github.com/bugunapp/bugun-server/internal/device"
	"github.com/bugunapp/bugun-server/internal/favorites"
)

type ListFavoritesInput struct{}

type ListFavoritesResponse struct {
	// Recipes are the saved snapshots in save order. These are the
	// snapshots taken at save time, not the current corpus entries.
	Recipes []bugundb.Recipe `json:"recipes" doc:"Saved recipe snapshots in save order"`
}

type ListFavoritesOutput struct {
	Body ListFavoritesResponse
}

func NewHandler(favorites *favorites.Cache) *Handler {
	return &Handler{
		favorites: favorites,
	}
}

type Handler struct {
	favorites *favorites.Cache
}

// ListFavorites returns the device's saved recipes.
func (h *Handler) ListFavorites(ctx context.Context, _ *ListFavoritesInput) (*ListFavoritesOutput, error) {
	deviceID := device.FromContext(ctx)
	if deviceID == "" {
		return nil, huma.Error400BadRequest("missing " + device.Header + " header")
	}

	recipes := h.favorites.List(ctx, deviceID)
	if recipes == nil {
		recipes = []bugundb.Recipe{}
	}
	return &ListFavoritesOutput{Body: ListFavoritesResponse{Recipes: recipes}}, nil
}
