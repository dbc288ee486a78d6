// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package refreshdata

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
)

// Loader reloads the shared collections from the document store.
type Loader interface {
	Load(ctx context.Context) error
}

type RefreshDataInput struct{}

type RefreshDataOutput struct {
	Body struct{}
}

func NewHandler(loader Loader) *Handler {
	return &Handler{
		loader: loader,
	}
}

type Handler struct {
	loader Loader
}

// RefreshData re-fetches the recipe, category, and country collections.
// Backs the app's pull-to-refresh gesture.
func (h *Handler) RefreshData(ctx context.Context, _ *RefreshDataInput) (*RefreshDataOutput, error) {
	if err := h.loader.Load(ctx); err != nil {
		return nil, huma.Error502BadGateway("refreshing data from store", err)
	}
	return &RefreshDataOutput{}, nil
}
