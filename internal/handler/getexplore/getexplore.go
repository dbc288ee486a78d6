// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package getexplore

import (
	"context"

	"github.com/bugunapp/bugun-server/internal/appstate"
	"github.com/bugunapp/bugun-server/internal/i18n"
)

type GetExploreInput struct{}

type ExploreEntry struct {
	Code     string `json:"code" doc:"Category or country code"`
	Name     string `json:"name" doc:"Localized display name"`
	ImageURL string `json:"imageUrl" doc:"Display image URL"`
}

type FeaturedRecipe struct {
	ID          string   `json:"id" doc:"Recipe ID"`
	Name        string   `json:"name" doc:"Localized name"`
	ImageURL    string   `json:"imageUrl" doc:"Main image URL, empty for placeholder"`
	Rating      *float64 `json:"rating,omitempty" doc:"Average rating, absent when unrated"`
	RatingCount int64    `json:"ratingCount" doc:"Number of votes"`
}

type GetExploreResponse struct {
	Categories []ExploreEntry   `json:"categories" doc:"Browsable categories"`
	Countries  []ExploreEntry   `json:"countries" doc:"Browsable countries"`
	Featured   []FeaturedRecipe `json:"featured" doc:"Featured recipes"`
}

type GetExploreOutput struct {
	Body GetExploreResponse
}

func NewHandler(state *appstate.State) *Handler {
	return &Handler{
		state: state,
	}
}

type Handler struct {
	state *appstate.State
}

// GetExplore returns the explore screen's three carousels in one call.
func (h *Handler) GetExplore(ctx context.Context, _ *GetExploreInput) (*GetExploreOutput, error) {
	lang := i18n.UserLanguage(ctx)

	categories := h.state.Categories()
	countries := h.state.Countries()

	res := GetExploreResponse{
		Categories: make([]ExploreEntry, len(categories)),
		Countries:  make([]ExploreEntry, len(countries)),
		Featured:   []FeaturedRecipe{},
	}
	for i, c := range categories {
		res.Categories[i] = ExploreEntry{Code: c.Code, Name: c.Name[lang], ImageURL: c.ImageURL}
	}
	for i, c := range countries {
		res.Countries[i] = ExploreEntry{Code: c.Code, Name: c.Name[lang], ImageURL: c.ImageURL}
	}

	for _, r := range h.state.Recipes() {
		if !r.Featured {
			continue
		}
		featured := FeaturedRecipe{
			ID:          r.ID,
			Name:        r.LocalizedName(lang),
			ImageURL:    r.ImageURL,
			RatingCount: r.RatingCount,
		}
		if agg, ok := h.state.RatingFor(r.ID); ok {
			avg := agg.Average
			featured.Rating = &avg
			featured.RatingCount = agg.Count
		}
		res.Featured = append(res.Featured, featured)
	}

	return &GetExploreOutput{Body: res}, nil
}
