// Package mongo implements the document-store repositories on MongoDB.
package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rushnrelax/storefront-api/internal/reviews"
)

// ReviewCacheRepository implements reviews.CacheRepository using MongoDB.
type ReviewCacheRepository struct {
	collection *mongo.Collection
}

// NewReviewCacheRepository creates a Mongo-backed review cache repository.
func NewReviewCacheRepository(db *mongo.Database, collectionName string) *ReviewCacheRepository {
	return &ReviewCacheRepository{collection: db.Collection(collectionName)}
}

// Upsert replaces the whole document at the place identifier, creating it
// on first refresh. No partial merge: the stored snapshot always mirrors
// the latest successful fetch.
func (r *ReviewCacheRepository) Upsert(ctx context.Context, cached reviews.CachedReviews) error {
	doc := mapCachedReviews(cached)
	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": cached.PlaceID},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}

// FindByPlaceID performs a point read of one cache document.
func (r *ReviewCacheRepository) FindByPlaceID(ctx context.Context, placeID string) (*reviews.CachedReviews, error) {
	var doc ReviewCacheDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": placeID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, reviews.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	cached := mapReviewCacheDocument(doc)
	return &cached, nil
}

func mapCachedReviews(cached reviews.CachedReviews) ReviewCacheDocument {
	snippets := make([]ReviewSnippetDocument, 0, len(cached.Reviews))
	for _, rev := range cached.Reviews {
		snippets = append(snippets, ReviewSnippetDocument{
			AuthorName:              rev.AuthorName,
			Rating:                  rev.Rating,
			Text:                    rev.Text,
			RelativeTimeDescription: rev.RelativeTimeDescription,
			PhotoURL:                rev.PhotoURL,
			UnixTime:                rev.Time,
		})
	}
	return ReviewCacheDocument{
		PlaceID:      cached.PlaceID,
		Rating:       cached.Rating,
		TotalRatings: cached.TotalRatings,
		Reviews:      snippets,
		CachedAt:     cached.CachedAt,
	}
}

func mapReviewCacheDocument(doc ReviewCacheDocument) reviews.CachedReviews {
	snippets := make([]reviews.Review, 0, len(doc.Reviews))
	for _, rev := range doc.Reviews {
		snippets = append(snippets, reviews.Review{
			AuthorName:              rev.AuthorName,
			Rating:                  rev.Rating,
			Text:                    rev.Text,
			RelativeTimeDescription: rev.RelativeTimeDescription,
			PhotoURL:                rev.PhotoURL,
			Time:                    rev.UnixTime,
		})
	}
	return reviews.CachedReviews{
		PlaceID:      doc.PlaceID,
		Rating:       doc.Rating,
		TotalRatings: doc.TotalRatings,
		Reviews:      snippets,
		CachedAt:     doc.CachedAt,
	}
}
