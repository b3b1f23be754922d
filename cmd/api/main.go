package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rushnrelax/storefront-api/internal/config"
	"github.com/rushnrelax/storefront-api/internal/server"
)

func main() {
	cfg := config.Load()
	logger := cfg.ServerLog

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	clientOpts := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(serverAPI)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		logger.Fatalf("failed to connect to MongoDB: %v", err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		logger.Fatalf("failed to reach MongoDB: %v", err)
	}
	logger.Printf("connected to MongoDB database %q", cfg.MongoDatabase)

	app := server.New(cfg, client)
	if err := app.Run(); err != nil {
		logger.Fatalf("server stopped with error: %v", err)
	}
}
