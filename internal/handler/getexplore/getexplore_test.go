// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package getexplore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bugunapp/bugun-server/internal/appstate"
	"github.com/bugunapp/bugun-server/internal/bugundb"
	"github.com/bugunapp/bugun-server/internal/handler/getexplore"
)

func TestGetExplore(t *testing.T) {
	state := appstate.New()
	state.SetCategories([]bugundb.Category{
		{Code: "dinner", Name: bugundb.LocalizedText{"en": "Dinner"}},
	})
	state.SetCountries([]bugundb.Country{
		{Code: "mx", Name: bugundb.LocalizedText{"en": "Mexico"}},
	})
	state.SetRecipes([]bugundb.Recipe{
		{ID: "r1", Name: bugundb.LocalizedText{"en": "Tacos"}, Featured: true, RatingTotal: 8, RatingCount: 2},
		{ID: "r2", Name: bugundb.LocalizedText{"en": "Soup"}},
	})

	resp, err := getexplore.NewHandler(state).GetExplore(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, []getexplore.ExploreEntry{{Code: "dinner", Name: "Dinner"}}, resp.Body.Categories)
	assert.Equal(t, []getexplore.ExploreEntry{{Code: "mx", Name: "Mexico"}}, resp.Body.Countries)

	require.Len(t, resp.Body.Featured, 1)
	assert.Equal(t, "r1", resp.Body.Featured[0].ID)
	require.NotNil(t, resp.Body.Featured[0].Rating)
	assert.Equal(t, float64(4), *resp.Body.Featured[0].Rating)
}

func TestGetExploreNoFeatured(t *testing.T) {
	state := appstate.New()
	state.SetRecipes([]bugundb.Recipe{{ID: "r1"}})

	resp, err := getexplore.NewHandler(state).GetExplore(context.Background(), nil)
	require.NoError(t, err)

	// An empty list, never null, so the client can range without a nil check.
	require.NotNil(t, resp.Body.Featured)
	assert.Empty(t, resp.Body.Featured)
}
