// Command reviewsync refreshes the cached Google reviews for every listed
// storefront location. It is intended to run on a schedule (cron or a
// hosted scheduler) and performs a single pass per invocation.
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rushnrelax/storefront-api/internal/catalog"
	"github.com/rushnrelax/storefront-api/internal/config"
	mongodoc "github.com/rushnrelax/storefront-api/internal/infrastructure/mongo"
	"github.com/rushnrelax/storefront-api/internal/jobs"
	"github.com/rushnrelax/storefront-api/internal/reviews"
)

func main() {
	cfg := config.Load()
	logger := cfg.ServerLog

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	clientOpts := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(serverAPI)
	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		logger.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Printf("error while disconnecting from MongoDB: %v", err)
		}
	}()

	database := client.Database(cfg.MongoDatabase)
	repo := mongodoc.NewReviewCacheRepository(database, cfg.ReviewCacheCollection)

	metrics := jobs.NewMetrics()
	registry := prometheus.NewRegistry()
	if err := metrics.Register(registry); err != nil {
		logger.Printf("failed to register job metrics: %v", err)
	}

	fetcher := reviews.NewPlacesClient(cfg.PlacesEndpoint, &http.Client{Timeout: cfg.PlacesFetchTimeout})
	syncer := reviews.NewSyncer(reviews.SyncerConfig{
		Fetcher: fetcher,
		Repo:    repo,
		Logger:  logger,
		Metrics: metrics,
		APIKey:  cfg.PlacesAPIKey,
	})

	placeIDs := placeIDSet(cfg.PlaceIDs)
	logger.Printf("starting review refresh for %d places", len(placeIDs))
	syncer.RefreshAll(ctx, placeIDs)
	logger.Printf("review refresh finished")
}

// placeIDSet turns the configured override list into the unordered set the
// syncer expects, falling back to the catalog allow-list.
func placeIDSet(configured []string) map[string]struct{} {
	if len(configured) == 0 {
		return catalog.PlaceIDs()
	}
	ids := make(map[string]struct{}, len(configured))
	for _, id := range configured {
		ids[id] = struct{}{}
	}
	return ids
}
