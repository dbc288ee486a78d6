// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package appstate

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/cenkalti/backoff/v5"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bugunapp/bugun-server/internal/bugundb"
)

// settingsDoc is the ID of the single app-settings document.
const settingsDoc = "default"

// Loader fetches the read-mostly collections from Firestore into State.
// It runs once at startup and again on explicit refresh.
type Loader struct {
	client *firestore.Client
	state  *State
}

// NewLoader creates a Loader.
func NewLoader(client *firestore.Client, state *State) *Loader {
	return &Loader{
		client: client,
		state:  state,
	}
}

// Load fetches all collections concurrently and replaces the state's
// copies. Each fetch retries transient failures with exponential
// backoff before giving up. On error the state keeps whatever loaded
// successfully; collections are swapped independently.
func (l *Loader) Load(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		recipes, err := fetchAll[bugundb.Recipe](gctx, l.client, bugundb.CollectionRecipes)
		if err != nil {
			return fmt.Errorf("appstate: loading recipes: %w", err)
		}
		l.state.SetRecipes(recipes)
		return nil
	})

	g.Go(func() error {
		categories, err := fetchAll[bugundb.Category](gctx, l.client, bugundb.CollectionCategories)
		if err != nil {
			return fmt.Errorf("appstate: loading categories: %w", err)
		}
		l.state.SetCategories(categories)
		return nil
	})

	g.Go(func() error {
		countries, err := fetchAll[bugundb.Country](gctx, l.client, bugundb.CollectionCountries)
		if err != nil {
			return fmt.Errorf("appstate: loading countries: %w", err)
		}
		l.state.SetCountries(countries)
		return nil
	})

	g.Go(func() error {
		suggestions, err := fetchAll[bugundb.Suggestion](gctx, l.client, bugundb.CollectionSuggestions)
		if err != nil {
			return fmt.Errorf("appstate: loading suggestions: %w", err)
		}
		l.state.SetSuggestions(suggestions)
		return nil
	})

	g.Go(func() error {
		languages, err := fetchAll[bugundb.Language](gctx, l.client, bugundb.CollectionLanguages)
		if err != nil {
			return fmt.Errorf("appstate: loading languages: %w", err)
		}
		l.state.SetLanguages(languages)
		return nil
	})

	g.Go(func() error {
		settings, err := l.fetchSettings(gctx)
		if err != nil {
			return fmt.Errorf("appstate: loading settings: %w", err)
		}
		l.state.SetSettings(settings)
		return nil
	})

	return g.Wait()
}

// fetchSettings reads the app-settings document. A missing document
// yields zero-value settings rather than an error.
func (l *Loader) fetchSettings(ctx context.Context) (bugundb.AppSettings, error) {
	doc, err := retry(ctx, func() (*firestore.DocumentSnapshot, error) {
		return l.client.Collection(bugundb.CollectionSettings).Doc(settingsDoc).Get(ctx)
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return bugundb.AppSettings{}, nil
		}
		return bugundb.AppSettings{}, err
	}

	var settings bugundb.AppSettings
	if err := doc.DataTo(&settings); err != nil {
		return bugundb.AppSettings{}, fmt.Errorf("unmarshalling settings: %w", err)
	}
	return settings, nil
}

// fetchAll reads every document of a collection into a typed slice.
func fetchAll[T any](ctx context.Context, client *firestore.Client, collection string) ([]T, error) {
	return retry(ctx, func() ([]T, error) {
		var out []T
		iter := client.Collection(collection).Documents(ctx)
		defer iter.Stop()
		for {
			doc, err := iter.Next()
			if errors.Is(err, iterator.Done) {
				return out, nil
			}
			if err != nil {
				return nil, err
			}
			var item T
			if err := doc.DataTo(&item); err != nil {
				return nil, fmt.Errorf("unmarshalling %s document %s: %w", collection, doc.Ref.ID, err)
			}
			out = append(out, item)
		}
	})
}

func retry[T any](ctx context.Context, op func() (T, error)) (T, error) {
	return backoff.Retry(ctx, op,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(3))
}
