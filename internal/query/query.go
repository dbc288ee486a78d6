// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

// Package query implements the in-memory recipe query pipeline: scope
// filtering, free-text and chip search, and locale-aware sorting. All
// functions are pure and return freshly allocated slices; caller-owned
// collections are never mutated.
package query

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bugunapp/bugun-server/internal/bugundb"
)

// Scope restricts a recipe collection to a category or a country.
// A zero Scope applies no restriction.
type Scope struct {
	// CategoryID matches recipes whose category equals it.
	CategoryID string

	// Country matches recipes whose country set contains it.
	Country string
}

// Order is a sort order for recipe names.
type Order string

const (
	// OrderNone preserves input order.
	OrderNone Order = "none"
	// OrderAsc sorts by localized name ascending.
	OrderAsc Order = "asc"
	// OrderDesc sorts by localized name descending.
	OrderDesc Order = "desc"
)

// Filter returns the recipes within scope. The result is a new slice.
func Filter(recipes []bugundb.Recipe, scope Scope) []bugundb.Recipe {
	out := make([]bugundb.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if scope.CategoryID != "" && r.Category != scope.CategoryID {
			continue
		}
		if scope.Country != "" && !slices.Contains(r.Countries, scope.Country) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Search returns the recipes matching the search input. When chips are
// selected, a recipe must match every chip against its localized name or
// any localized ingredient, case-insensitively. Without chips, the
// free-text term is matched against the name or the joined ingredient
// list; an empty term matches everything. Recipes without content for
// the language simply do not match.
func Search(recipes []bugundb.Recipe, term string, chips []string, lang string) []bugundb.Recipe {
	out := make([]bugundb.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if matches(&r, term, chips, lang) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r *bugundb.Recipe, term string, chips []string, lang string) bool {
	name := strings.ToLower(r.LocalizedName(lang))
	ings := r.LocalizedIngredients(lang)

	if len(chips) > 0 {
		for _, chip := range chips {
			if !matchesChip(name, ings, chip) {
				return false
			}
		}
		return true
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	if strings.Contains(name, term) {
		return true
	}
	return strings.Contains(strings.ToLower(strings.Join(ings, " ")), term)
}

func matchesChip(name string, ings []string, chip string) bool {
	chip = strings.ToLower(strings.TrimSpace(chip))
	if chip == "" {
		return true
	}
	if strings.Contains(name, chip) {
		return true
	}
	for _, ing := range ings {
		if strings.Contains(strings.ToLower(ing), chip) {
			return true
		}
	}
	return false
}

// Sort returns the recipes ordered by localized name using the
// language's collation rules. The sort is stable, so recipes with equal
// names keep their input order. OrderNone returns a copy in input order.
func Sort(recipes []bugundb.Recipe, order Order, lang string) []bugundb.Recipe {
	out := slices.Clone(recipes)
	if order != OrderAsc && order != OrderDesc {
		return out
	}

	c := collate.New(language.Make(lang))
	slices.SortStableFunc(out, func(a, b bugundb.Recipe) int {
		cmp := c.CompareString(a.LocalizedName(lang), b.LocalizedName(lang))
		if order == OrderDesc {
			return -cmp
		}
		return cmp
	})
	return out
}
