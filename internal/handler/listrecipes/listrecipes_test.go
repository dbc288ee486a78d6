// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package listrecipes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bugunapp/bugun-server/internal/appstate"
	"github.com/bugunapp/bugun-server/internal/bugundb"
	"github.com/bugunapp/bugun-server/internal/handler/listrecipes"
	"github.com/bugunapp/bugun-server/internal/i18n"
)

func setupAPI(t *testing.T, state *appstate.State) humatest.TestAPI {
	t.Helper()

	router := chi.NewRouter()
	router.Use(i18n.Middleware())

	api := humachi.New(router, huma.DefaultConfig("Bugun API Test", "1.0.0"))
	huma.Register(api, huma.Operation{
		OperationID: "listRecipes",
		Method:      http.MethodGet,
		Path:        "/api/recipes",
	}, listrecipes.NewHandler(state).ListRecipes)

	return humatest.Wrap(t, api)
}

func testState() *appstate.State {
	state := appstate.New()
	state.SetRecipes([]bugundb.Recipe{
		{
			ID:          "r1",
			Name:        bugundb.LocalizedText{"en": "Chicken Tacos", "tr": "Tavuklu Tako"},
			Ingredients: bugundb.LocalizedLines{"en": {"chicken", "tortilla"}},
			Category:    "dinner",
			Countries:   []string{"mx"},
			RatingTotal: 9,
			RatingCount: 3,
		},
		{
			ID:          "r2",
			Name:        bugundb.LocalizedText{"en": "Lentil Soup", "tr": "Mercimek Çorbası"},
			Ingredients: bugundb.LocalizedLines{"en": {"lentils", "onion"}},
			Category:    "dinner",
			Countries:   []string{"tr"},
		},
		{
			ID:       "r3",
			Name:     bugundb.LocalizedText{"en": "Pancakes"},
			Category: "breakfast",
		},
	})
	return state
}

func decode(t *testing.T, resp *httptest.ResponseRecorder) listrecipes.ListRecipesResponse {
	t.Helper()
	var body listrecipes.ListRecipesResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body
}

func names(body listrecipes.ListRecipesResponse) []string {
	out := make([]string, len(body.Recipes))
	for i, r := range body.Recipes {
		out[i] = r.Name
	}
	return out
}

func TestListRecipesAll(t *testing.T) {
	api := setupAPI(t, testState())

	resp := api.Get("/api/recipes")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	body := decode(t, resp)
	require.Len(t, body.Recipes, 3)
	require.NotNil(t, body.Recipes[0].Rating)
	assert.Equal(t, float64(3), *body.Recipes[0].Rating)
	assert.Equal(t, int64(3), body.Recipes[0].RatingCount)
	assert.Nil(t, body.Recipes[1].Rating)
}

func TestListRecipesScopeAndSearch(t *testing.T) {
	api := setupAPI(t, testState())

	resp := api.Get("/api/recipes?category=dinner")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []string{"Chicken Tacos", "Lentil Soup"}, names(decode(t, resp)))

	resp = api.Get("/api/recipes?country=mx")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []string{"Chicken Tacos"}, names(decode(t, resp)))

	// Term search reaches ingredients too.
	resp = api.Get("/api/recipes?q=onion")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []string{"Lentil Soup"}, names(decode(t, resp)))

	// Chips are conjunctive.
	resp = api.Get("/api/recipes?chip=chicken&chip=tortilla")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []string{"Chicken Tacos"}, names(decode(t, resp)))

	resp = api.Get("/api/recipes?chip=chicken&chip=onion")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, decode(t, resp).Recipes)
}

func TestListRecipesSorted(t *testing.T) {
	api := setupAPI(t, testState())

	resp := api.Get("/api/recipes?sort=asc")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []string{"Chicken Tacos", "Lentil Soup", "Pancakes"}, names(decode(t, resp)))

	resp = api.Get("/api/recipes?sort=desc")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []string{"Pancakes", "Lentil Soup", "Chicken Tacos"}, names(decode(t, resp)))
}

func TestListRecipesLocalized(t *testing.T) {
	api := setupAPI(t, testState())

	resp := api.Get("/api/recipes?country=tr", "Accept-Language: tr")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []string{"Mercimek Çorbası"}, names(decode(t, resp)))
}

func TestListRecipesRejectsUnknownSort(t *testing.T) {
	api := setupAPI(t, testState())

	resp := api.Get("/api/recipes?sort=upside-down")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
