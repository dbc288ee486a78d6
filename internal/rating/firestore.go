// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package rating

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bugunapp/bugun-server/internal/bugundb"
)

// FirestoreStore applies aggregate updates inside a Firestore
// transaction. Firestore restarts the transaction body on conflicting
// concurrent writes, so two devices voting at once both land.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a FirestoreStore.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{
		client: client,
	}
}

// UpdateAggregate implements Store.
func (s *FirestoreStore) UpdateAggregate(ctx context.Context, recipeID string, apply func(Aggregate) Aggregate) (Aggregate, error) {
	ref := s.client.Collection(bugundb.CollectionRecipes).Doc(recipeID)

	var next Aggregate
	err := s.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrRecipeNotFound
			}
			return fmt.Errorf("rating: reading recipe: %w", err)
		}

		var recipe bugundb.Recipe
		if err := doc.DataTo(&recipe); err != nil {
			return fmt.Errorf("rating: unmarshalling recipe: %w", err)
		}

		next = apply(Aggregate{
			Total:   recipe.RatingTotal,
			Count:   recipe.RatingCount,
			Average: recipe.Rating,
		})

		return tx.Update(ref, []firestore.Update{
			{Path: "ratingTotal", Value: next.Total},
			{Path: "ratingCount", Value: next.Count},
			{Path: "rating", Value: next.Average},
		})
	})
	if err != nil {
		return Aggregate{}, err
	}
	return next, nil
}
