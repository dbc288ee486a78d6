// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package listrecipes

import (
	"context"

	"github.com/bugunapp/bugun-server/internal/appstate"
	"github.com/bugunapp/bugun-server/internal/i18n"
	"github.com/bugunapp/bugun-server/internal/query"
)

type ListRecipesInput struct {
	Category string   `query:"category" doc:"Restrict to a category code"`
	Country  string   `query:"country" doc:"Restrict to a country code"`
	Query    string   `query:"q" doc:"Free-text search term"`
	Chips    []string `query:"chip,explode" doc:"Confirmed search chips; a recipe must match all of them"`
	Sort     string   `query:"sort" enum:"none,asc,desc" default:"none" doc:"Name sort order"`
}

type RecipeSnippet struct {
	ID          string   `json:"id" doc:"Recipe ID"`
	Name        string   `json:"name" doc:"Localized name"`
	ImageURL    string   `json:"imageUrl" doc:"Main image URL, empty for placeholder"`
	Category    string   `json:"category" doc:"Category code"`
	Countries   []string `json:"countries,omitempty" doc:"Country codes"`
	VideoURL    string   `json:"videoUrl,omitempty" doc:"Video recipe URL"`
	Featured    bool     `json:"featured,omitempty" doc:"Featured on explore"`
	Rating      *float64 `json:"rating,omitempty" doc:"Average rating, absent when unrated"`
	RatingCount int64    `json:"ratingCount" doc:"Number of votes"`
}

type ListRecipesResponse struct {
	Recipes []RecipeSnippet `json:"recipes" doc:"Matching recipes in display order"`
}

type ListRecipesOutput struct {
	Body ListRecipesResponse
}

func NewHandler(state *appstate.State) *Handler {
	return &Handler{
		state: state,
	}
}

type Handler struct {
	state *appstate.State
}

// ListRecipes runs the query pipeline over the in-memory corpus:
// scope filter, then chip/term search, then locale-aware sort.
func (h *Handler) ListRecipes(ctx context.Context, req *ListRecipesInput) (*ListRecipesOutput, error) {
	lang := i18n.UserLanguage(ctx)

	recipes := h.state.Recipes()
	recipes = query.Filter(recipes, query.Scope{CategoryID: req.Category, Country: req.Country})
	recipes = query.Search(recipes, req.Query, req.Chips, lang)
	recipes = query.Sort(recipes, query.Order(req.Sort), lang)

	snippets := make([]RecipeSnippet, len(recipes))
	for i, r := range recipes {
		snippets[i] = RecipeSnippet{
			ID:          r.ID,
			Name:        r.LocalizedName(lang),
			ImageURL:    r.ImageURL,
			Category:    r.Category,
			Countries:   r.Countries,
			VideoURL:    r.VideoURL,
			Featured:    r.Featured,
			RatingCount: r.RatingCount,
		}
		if agg, ok := h.state.RatingFor(r.ID); ok {
			avg := agg.Average
			snippets[i].Rating = &avg
			snippets[i].RatingCount = agg.Count
		}
	}

	return &ListRecipesOutput{Body: ListRecipesResponse{Recipes: snippets}}, nil
}
