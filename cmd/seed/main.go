// Command seed populates a development database with sample data so the
// API can be exercised without live Google credentials.
package main

import (
	"context"
	"flag"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rushnrelax/storefront-api/internal/catalog"
	"github.com/rushnrelax/storefront-api/internal/config"
	"github.com/rushnrelax/storefront-api/internal/contact"
	mongodoc "github.com/rushnrelax/storefront-api/internal/infrastructure/mongo"
	"github.com/rushnrelax/storefront-api/internal/reviews"
)

func main() {
	withContacts := flag.Bool("contacts", false, "also insert sample contact submissions")
	flag.Parse()

	cfg := config.Load()
	logger := cfg.ServerLog

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	clientOpts := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(serverAPI)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		logger.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Printf("error while disconnecting from MongoDB: %v", err)
		}
	}()

	database := client.Database(cfg.MongoDatabase)

	if err := seedPing(ctx, database.Collection(cfg.PingCollection)); err != nil {
		logger.Fatalf("failed to seed the pings collection: %v", err)
	}
	logger.Printf("seeded the pings collection")

	reviewRepo := mongodoc.NewReviewCacheRepository(database, cfg.ReviewCacheCollection)
	seeded := 0
	for placeID := range catalog.PlaceIDs() {
		if err := reviewRepo.Upsert(ctx, sampleReviews(placeID)); err != nil {
			logger.Fatalf("failed to seed reviews for place %s: %v", placeID, err)
		}
		seeded++
	}
	logger.Printf("seeded cached reviews for %d places", seeded)

	if *withContacts {
		contactRepo := mongodoc.NewContactRepository(database, cfg.ContactCollection)
		for _, sub := range sampleContacts() {
			if _, err := contactRepo.Insert(ctx, sub); err != nil {
				logger.Fatalf("failed to seed contact submission: %v", err)
			}
		}
		logger.Printf("seeded sample contact submissions")
	}
}

func seedPing(ctx context.Context, pings *mongo.Collection) error {
	count, err := pings.CountDocuments(ctx, bson.D{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = pings.InsertOne(ctx, bson.M{
		"message":   "pong",
		"createdAt": time.Now(),
	})
	return err
}

func sampleReviews(placeID string) reviews.CachedReviews {
	now := time.Now()
	return reviews.CachedReviews{
		PlaceID:      placeID,
		Rating:       4.8,
		TotalRatings: 132,
		CachedAt:     now,
		Reviews: []reviews.Review{
			{
				AuthorName:              "Jordan P.",
				Rating:                  5,
				Text:                    "Friendly staff and a great selection. The budtenders took the time to walk me through the options.",
				RelativeTimeDescription: "a week ago",
				Time:                    now.Add(-7 * 24 * time.Hour).Unix(),
			},
			{
				AuthorName:              "Casey M.",
				Rating:                  5,
				Text:                    "Clean store, fair prices, quick checkout. Will be back.",
				RelativeTimeDescription: "2 weeks ago",
				Time:                    now.Add(-14 * 24 * time.Hour).Unix(),
			},
			{
				AuthorName:              "Riley T.",
				Rating:                  4,
				Text:                    "Good drink selection. Parking can be tight on weekends.",
				RelativeTimeDescription: "a month ago",
				Time:                    now.Add(-30 * 24 * time.Hour).Unix(),
			},
		},
	}
}

func sampleContacts() []contact.Submission {
	return []contact.Submission{
		{
			Name:    "Avery Sample",
			Email:   "avery@example.com",
			Phone:   "865-555-0134",
			Message: "Do you carry seltzers at the Maryville location?",
		},
		{
			Name:    "Quinn Sample",
			Email:   "quinn@example.com",
			Message: "What are your holiday hours?",
		},
	}
}
