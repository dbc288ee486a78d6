// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/curioswitch/go-curiostack/server"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"

	"github.com/bugunapp/bugun-server/internal/appstate"
	"github.com/bugunapp/bugun-server/internal/config"
	"github.com/bugunapp/bugun-server/internal/device"
	"github.com/bugunapp/bugun-server/internal/devicestate"
	"github.com/bugunapp/bugun-server/internal/favorites"
	"github.com/bugunapp/bugun-server/internal/handler/addfavorite"
	"github.com/bugunapp/bugun-server/internal/handler/getappsettings"
	"github.com/bugunapp/bugun-server/internal/handler/getexplore"
	"github.com/bugunapp/bugun-server/internal/handler/getrecipe"
	"github.com/bugunapp/bugun-server/internal/handler/getsuggestions"
	"github.com/bugunapp/bugun-server/internal/handler/listfavorites"
	"github.com/bugunapp/bugun-server/internal/handler/listrecipes"
	"github.com/bugunapp/bugun-server/internal/handler/preferences"
	"github.com/bugunapp/bugun-server/internal/handler/raterecipe"
	"github.com/bugunapp/bugun-server/internal/handler/refreshdata"
	"github.com/bugunapp/bugun-server/internal/handler/removefavorite"
	"github.com/bugunapp/bugun-server/internal/handler/reportissue"
	"github.com/bugunapp/bugun-server/internal/i18n"
	"github.com/bugunapp/bugun-server/internal/ratelimit"
	"github.com/bugunapp/bugun-server/internal/rating"
)

//go:embed conf/*.yaml
var confFiles embed.FS

func main() {
	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	mux := server.Mux(s)

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: conf.Google.Project})
	if err != nil {
		return fmt.Errorf("main: create firebase app: %w", err)
	}

	firestore, err := fbApp.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("main: create firestore client: %w", err)
	}
	defer func() {
		if err := firestore.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close firestore client", "error", err)
		}
	}()

	devices, err := devicestate.Open(conf.Device.DBPath, slog.Default())
	if err != nil {
		return fmt.Errorf("main: open device state db: %w", err)
	}
	defer func() {
		if err := devices.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close device state db", "error", err)
		}
	}()

	state := appstate.New()
	loader := appstate.NewLoader(firestore, state)
	if err := loader.Load(ctx); err != nil {
		// Serve whatever loaded; clients can pull-to-refresh later.
		slog.ErrorContext(ctx, "main: loading collections", "error", err)
	}

	guard := rating.NewGuard(devices)
	aggregator := rating.NewAggregator(
		rating.NewFirestoreStore(firestore),
		time.Duration(conf.Rating.TimeoutSeconds)*time.Second,
	)
	favs := favorites.NewCache(devices)
	voteLimiter := ratelimit.New(float64(conf.Rating.PerDevicePerMinute)/60, conf.Rating.PerDevicePerMinute)

	mux.Use(i18n.Middleware())
	mux.Use(device.Middleware())

	api := humachi.New(mux, huma.DefaultConfig("Bugun API", "1.0.0"))

	huma.Register(api, huma.Operation{
		OperationID: "listRecipes",
		Method:      http.MethodGet,
		Path:        "/api/recipes",
		Summary:     "List recipes",
		Description: "Filters, searches, and sorts the recipe corpus",
		Tags:        []string{"Recipes"},
	}, listrecipes.NewHandler(state).ListRecipes)

	huma.Register(api, huma.Operation{
		OperationID: "getRecipe",
		Method:      http.MethodGet,
		Path:        "/api/recipes/{id}",
		Summary:     "Get recipe",
		Description: "Returns one recipe with the device's rated and saved flags",
		Tags:        []string{"Recipes"},
	}, getrecipe.NewHandler(state, favs, guard).GetRecipe)

	huma.Register(api, huma.Operation{
		OperationID: "rateRecipe",
		Method:      http.MethodPost,
		Path:        "/api/recipes/{id}/rating",
		Summary:     "Rate recipe",
		Description: "Records one vote and returns the new average",
		Tags:        []string{"Recipes"},
	}, raterecipe.NewHandler(aggregator, guard, state, voteLimiter).RateRecipe)

	huma.Register(api, huma.Operation{
		OperationID: "listFavorites",
		Method:      http.MethodGet,
		Path:        "/api/favorites",
		Summary:     "List favorites",
		Tags:        []string{"Favorites"},
	}, listfavorites.NewHandler(favs).ListFavorites)

	huma.Register(api, huma.Operation{
		OperationID: "addFavorite",
		Method:      http.MethodPost,
		Path:        "/api/favorites",
		Summary:     "Add favorite",
		Tags:        []string{"Favorites"},
	}, addfavorite.NewHandler(state, favs).AddFavorite)

	huma.Register(api, huma.Operation{
		OperationID: "removeFavorite",
		Method:      http.MethodDelete,
		Path:        "/api/favorites/{recipeId}",
		Summary:     "Remove favorite",
		Tags:        []string{"Favorites"},
	}, removefavorite.NewHandler(favs).RemoveFavorite)

	huma.Register(api, huma.Operation{
		OperationID: "getExplore",
		Method:      http.MethodGet,
		Path:        "/api/explore",
		Summary:     "Get explore screen data",
		Tags:        []string{"Browse"},
	}, getexplore.NewHandler(state).GetExplore)

	huma.Register(api, huma.Operation{
		OperationID: "getSuggestions",
		Method:      http.MethodGet,
		Path:        "/api/suggestions",
		Summary:     "Get search suggestions",
		Tags:        []string{"Browse"},
	}, getsuggestions.NewHandler(state).GetSuggestions)

	huma.Register(api, huma.Operation{
		OperationID: "getAppSettings",
		Method:      http.MethodGet,
		Path:        "/api/settings",
		Summary:     "Get app settings",
		Tags:        []string{"App"},
	}, getappsettings.NewHandler(state).GetAppSettings)

	prefs := preferences.NewHandler(devices)
	huma.Register(api, huma.Operation{
		OperationID: "getPreferences",
		Method:      http.MethodGet,
		Path:        "/api/preferences",
		Summary:     "Get device preferences",
		Tags:        []string{"App"},
	}, prefs.GetPreferences)

	huma.Register(api, huma.Operation{
		OperationID: "updatePreferences",
		Method:      http.MethodPut,
		Path:        "/api/preferences",
		Summary:     "Update device preferences",
		Tags:        []string{"App"},
	}, prefs.UpdatePreferences)

	huma.Register(api, huma.Operation{
		OperationID: "reportIssue",
		Method:      http.MethodPost,
		Path:        "/api/issues",
		Summary:     "Report an issue",
		Tags:        []string{"App"},
	}, reportissue.NewHandler(firestore).ReportIssue)

	huma.Register(api, huma.Operation{
		OperationID: "refreshData",
		Method:      http.MethodPost,
		Path:        "/api/refresh",
		Summary:     "Refresh collections",
		Description: "Re-fetches the shared collections from the store",
		Tags:        []string{"App"},
	}, refreshdata.NewHandler(loader).RefreshData)

	if err := server.Start(ctx, s); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	return nil
}
