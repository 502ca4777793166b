package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/almukhtar-edu/sitestore/internal/config"
	"github.com/almukhtar-edu/sitestore/internal/notify"
	"github.com/almukhtar-edu/sitestore/internal/storage"
	"github.com/almukhtar-edu/sitestore/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("app", cfg.AppName).Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend, cleanup, err := openBackend(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open storage backend: %v", err)
	}
	defer cleanup()

	broker, err := openBroker(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to set up notification broker: %v", err)
	}

	st, err := store.Open(ctx, backend, store.Options{
		Key:            cfg.StorageKey,
		IDs:            idSource(cfg),
		Logger:         logger,
		Publisher:      broker,
		Recovery:       recoveryPolicy(cfg),
		AdminRecipient: cfg.AdminRecipient,
	})
	if err != nil {
		log.Fatalf("failed to open document store: %v", err)
	}

	logSummary(ctx, st, logger)
}

func openBackend(ctx context.Context, cfg config.Config) (storage.Backend, func(), error) {
	noop := func() {}

	switch cfg.StorageBackend {
	case config.BackendMemory:
		return storage.NewMemory(), noop, nil
	case config.BackendFile:
		backend, err := storage.NewFile(cfg.StorageDir)
		return backend, noop, err
	case config.BackendRedis:
		backend, err := storage.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		return backend, func() { _ = backend.Close() }, nil
	case config.BackendSQLite:
		db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
		if err != nil {
			return nil, noop, err
		}
		backend, err := storage.NewSQL(db)
		return backend, noop, err
	}
	return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

// openBroker builds the notification broker, relaying over redis
// and/or NATS when configured. Both transports use cfg.NotifyChannel
// as the channel name.
func openBroker(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*notify.Broker, error) {
	var opts []notify.Option

	if cfg.RedisURL != "" {
		options, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		opts = append(opts, notify.WithRedisRelay(redis.NewClient(options), cfg.NotifyChannel))
	}

	if cfg.NATSURL != "" {
		conn, err := nats.Connect(cfg.NATSURL)
		if err != nil {
			return nil, err
		}
		opts = append(opts, notify.WithNATSRelay(conn, cfg.NotifyChannel))
	}

	broker := notify.NewBroker(logger, opts...)
	broker.Start(ctx)
	return broker, nil
}

func idSource(cfg config.Config) store.IDSource {
	if cfg.IDMode == "uuid" {
		return store.UUIDs{}
	}
	return store.TimestampIDs{}
}

func recoveryPolicy(cfg config.Config) store.RecoveryPolicy {
	if cfg.Recovery == "reseed" {
		return store.RecoverReseed
	}
	return store.RecoverFail
}

func logSummary(ctx context.Context, st *store.Store, logger zerolog.Logger) {
	visits, err := st.Visits(ctx)
	if err != nil {
		log.Fatalf("failed to read document: %v", err)
	}

	logger.Info().
		Int("enrollments", mustLen(st.Enrollments(ctx))).
		Int("news", mustLen(st.News(ctx))).
		Int("events", mustLen(st.Events(ctx))).
		Int("activities", mustLen(st.Activities(ctx))).
		Int("gallery_images", mustLen(st.GalleryImages(ctx))).
		Int("messages", mustLen(st.Messages(ctx))).
		Int("notifications", mustLen(st.Notifications(ctx))).
		Int("visits_total", visits.Total).
		Msg("document store ready")
}

func mustLen[T any](items []T, err error) int {
	if err != nil {
		log.Fatalf("failed to read document: %v", err)
	}
	return len(items)
}
