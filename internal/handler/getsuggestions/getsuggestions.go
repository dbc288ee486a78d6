// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package getsuggestions

import (
	"context"

	"github.com/bugunapp/bugun-server/internal/appstate"
	"github.com/bugunapp/bugun-server/internal/i18n"
)

type GetSuggestionsInput struct{}

type GetSuggestionsResponse struct {
	// Suggestions are search terms offered below the search bar; picking
	// one turns it into a chip.
	Suggestions []string `json:"suggestions" doc:"Suggested search terms"`
}

type GetSuggestionsOutput struct {
	Body GetSuggestionsResponse
}

func NewHandler(state *appstate.State) *Handler {
	return &Handler{
		state: state,
	}
}

type Handler struct {
	state *appstate.State
}

// GetSuggestions returns the suggestion list for the request language.
func (h *Handler) GetSuggestions(ctx context.Context, _ *GetSuggestionsInput) (*GetSuggestionsOutput, error) {
	return &GetSuggestionsOutput{Body: GetSuggestionsResponse{
		Suggestions: h.state.Suggestions(i18n.UserLanguage(ctx)),
	}}, nil
}
