package main

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	filestore "github.com/sohaum/nepalibazar/internal/adapter/kvstore/file"
	mongostore "github.com/sohaum/nepalibazar/internal/adapter/kvstore/mongodb"
	redisstore "github.com/sohaum/nepalibazar/internal/adapter/kvstore/redis"
	natspub "github.com/sohaum/nepalibazar/internal/adapter/messaging/nats"
	"github.com/sohaum/nepalibazar/internal/config"
	"github.com/sohaum/nepalibazar/internal/listing/domain"
	"github.com/sohaum/nepalibazar/internal/listing/usecase"
	"github.com/sohaum/nepalibazar/internal/platform/logger"
	"github.com/sohaum/nepalibazar/internal/seed"
)

// Seeds the configured store with the demo catalog. Listings that are
// already present keep their stored state; re-running is safe.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logg := logger.New()

	store, cleanup, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreBackend, err)
	}
	defer cleanup()

	var notifier domain.Notifier
	if cfg.NATSURL != "" {
		pub, err := natspub.NewPublisher(cfg.NATSURL)
		if err != nil {
			logg.Warn("NATS unavailable, seeding without change events", "url", cfg.NATSURL, "error", err.Error())
		} else {
			defer pub.Close()
			notifier = pub
		}
	}

	repo := usecase.NewListingUsecase(store, domain.Policy{Admin: cfg.AdminUser}, notifier, logg)

	ctx := context.Background()
	seeded := 0
	for _, in := range seed.Catalog() {
		if _, err := repo.Create(ctx, in); err != nil {
			if errors.Is(err, domain.ErrDuplicateID) {
				logg.Debug("listing already present, skipping", "listing_id", in.ID)
				continue
			}
			logg.Error("failed to seed listing", "listing_id", in.ID, "error", err.Error())
			continue
		}
		seeded++
	}
	logg.Info("seeding finished", "backend", cfg.StoreBackend, "seeded", seeded, "total", len(seed.Catalog()))
}

func openStore(cfg *config.Config) (domain.KVStore, func(), error) {
	switch cfg.StoreBackend {
	case "redis":
		store, err := redisstore.NewStore(cfg.RedisAddress)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	case "mongo":
		client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, nil, err
		}
		store := mongostore.NewStore(client.Database(cfg.MongoDB))
		return store, func() { client.Disconnect(context.Background()) }, nil
	default:
		store, err := filestore.NewStore(cfg.StoreDir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}
