// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package bugundb

// Collection names in Firestore.
const (
	CollectionRecipes     = "recipes"
	CollectionCategories  = "categories"
	CollectionCountries   = "countries"
	CollectionSuggestions = "suggestions"
	CollectionLanguages   = "languages"
	CollectionSettings    = "appSettings"
	CollectionIssues      = "issueReports"
)

// LocalizedText maps a language code such as "en" or "tr" to a display
// string. The set of keys is open; a document may carry any subset.
type LocalizedText map[string]string

// LocalizedLines maps a language code to an ordered list of strings,
// used for ingredients and preparation steps.
type LocalizedLines map[string][]string

// Recipe represents a recipe stored in Firestore.
type Recipe struct {
	// ID is the unique identifier of the recipe, assigned by the store.
	ID string `firestore:"id" json:"id"`

	// Name is the localized display name of the dish.
	Name LocalizedText `firestore:"name" json:"name"`

	// Ingredients are the localized ingredient lists.
	Ingredients LocalizedLines `firestore:"ingredients" json:"ingredients"`

	// Steps are the localized preparation steps, rendered by clients
	// with a 1-based index.
	Steps LocalizedLines `firestore:"recipeSteps" json:"recipeSteps"`

	// ImageURL is the URL for the main image of the recipe. Empty means
	// clients show a placeholder asset.
	ImageURL string `firestore:"imageUrl" json:"imageUrl"`

	// Category is the code of the category the recipe belongs to.
	Category string `firestore:"category" json:"category"`

	// Countries are the country codes the dish is associated with.
	Countries []string `firestore:"country" json:"country"`

	// Featured marks recipes surfaced on the explore screen.
	Featured bool `firestore:"featured" json:"featured"`

	// VideoURL is the URL of a video version of the recipe, if any.
	VideoURL string `firestore:"videoUrl" json:"videoUrl"`

	// RatingTotal is the cumulative sum of all votes ever cast.
	RatingTotal float64 `firestore:"ratingTotal" json:"ratingTotal"`

	// RatingCount is the number of votes ever cast. It only grows.
	RatingCount int64 `firestore:"ratingCount" json:"ratingCount"`

	// Rating is the stored running average, ratingTotal / ratingCount.
	// It is derived, never written directly by clients.
	Rating float64 `firestore:"rating" json:"rating"`
}

// LocalizedName returns the display name for the language code, falling
// back to the English entry when the code has no value.
func (r *Recipe) LocalizedName(lang string) string {
	if name := r.Name[lang]; name != "" {
		return name
	}
	return r.Name["en"]
}

// LocalizedIngredients returns the ingredient list for the language
// code, or nil when the recipe has none for it.
func (r *Recipe) LocalizedIngredients(lang string) []string {
	if ings := r.Ingredients[lang]; ings != nil {
		return ings
	}
	return r.Ingredients["en"]
}

// LocalizedSteps returns the preparation steps for the language code.
func (r *Recipe) LocalizedSteps(lang string) []string {
	if steps := r.Steps[lang]; steps != nil {
		return steps
	}
	return r.Steps["en"]
}

// AverageRating returns the running average and whether any votes have
// been cast. The stored Rating field is a convenience copy; the counters
// are authoritative.
func (r *Recipe) AverageRating() (float64, bool) {
	if r.RatingCount == 0 {
		return 0, false
	}
	return r.RatingTotal / float64(r.RatingCount), true
}
