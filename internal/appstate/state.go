// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

// Package appstate holds the process-wide application state: the
// read-mostly recipe, category, and country collections fetched at
// startup, the localization strings, the app settings, and a mirror of
// the rating aggregates that vote submissions keep fresh. The state is
// created once in main and passed to every component that needs it;
// there are no package-level globals.
package appstate

import (
	"slices"
	"sync"

	"github.com/bugunapp/bugun-server/internal/bugundb"
	"github.com/bugunapp/bugun-server/internal/rating"
)

// State is the shared application state. All accessors are safe for
// concurrent use and return copies, never internal slices.
type State struct {
	mu          sync.RWMutex
	recipes     []bugundb.Recipe
	categories  []bugundb.Category
	countries   []bugundb.Country
	suggestions []bugundb.Suggestion
	languages   map[string]map[string]string
	settings    bugundb.AppSettings
	ratings     map[string]rating.Aggregate
}

// New creates an empty State.
func New() *State {
	return &State{
		languages: make(map[string]map[string]string),
		ratings:   make(map[string]rating.Aggregate),
	}
}

// SetRecipes replaces the recipe collection and rebuilds the rating
// mirror from the stored counters, dropping entries for recipes that
// are no longer in the corpus or whose counters were reset.
func (s *State) SetRecipes(recipes []bugundb.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recipes = slices.Clone(recipes)
	s.ratings = make(map[string]rating.Aggregate, len(recipes))
	for _, r := range recipes {
		if avg, ok := r.AverageRating(); ok {
			s.ratings[r.ID] = rating.Aggregate{
				Total:   r.RatingTotal,
				Count:   r.RatingCount,
				Average: avg,
			}
		}
	}
}

// Recipes returns a copy of the recipe collection.
func (s *State) Recipes() []bugundb.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.recipes)
}

// RecipeByID returns the recipe with the given ID.
func (s *State) RecipeByID(id string) (bugundb.Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.recipes {
		if r.ID == id {
			return r, true
		}
	}
	return bugundb.Recipe{}, false
}

// SetCategories replaces the category collection.
func (s *State) SetCategories(categories []bugundb.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = slices.Clone(categories)
}

// Categories returns a copy of the category collection.
func (s *State) Categories() []bugundb.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories)
}

// SetCountries replaces the country collection.
func (s *State) SetCountries(countries []bugundb.Country) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countries = slices.Clone(countries)
}

// Countries returns a copy of the country collection.
func (s *State) Countries() []bugundb.Country {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.countries)
}

// SetSuggestions replaces the search suggestion collection.
func (s *State) SetSuggestions(suggestions []bugundb.Suggestion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suggestions = slices.Clone(suggestions)
}

// Suggestions returns the suggestion texts for a language, skipping
// suggestions with no entry for it.
func (s *State) Suggestions(lang string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.suggestions))
	for _, sug := range s.suggestions {
		if text := sug.Text[lang]; text != "" {
			out = append(out, text)
		}
	}
	return out
}

// SetLanguages replaces the localization strings.
func (s *State) SetLanguages(languages []bugundb.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.languages = make(map[string]map[string]string, len(languages))
	for _, l := range languages {
		s.languages[l.Code] = l.Strings
	}
}

// Strings returns the UI strings for a language code.
func (s *State) Strings(lang string) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.languages[lang]))
	for k, v := range s.languages[lang] {
		out[k] = v
	}
	return out
}

// SetSettings replaces the app settings.
func (s *State) SetSettings(settings bugundb.AppSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

// Settings returns the app settings.
func (s *State) Settings() bugundb.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// RatingFor returns the mirrored aggregate for a recipe and whether any
// votes are known for it.
func (s *State) RatingFor(recipeID string) (rating.Aggregate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	agg, ok := s.ratings[recipeID]
	return agg, ok
}

// SetRating mirrors a freshly committed aggregate for a recipe.
func (s *State) SetRating(recipeID string, agg rating.Aggregate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratings[recipeID] = agg
}
