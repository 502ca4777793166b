package main

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/almukhtar-edu/sitestore/internal/config"
	"github.com/almukhtar-edu/sitestore/internal/models"
)

func TestOpenBrokerRelaysOverConfiguredChannel(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := config.Config{
		RedisURL:      "redis://" + mr.Addr(),
		NotifyChannel: "school:notifications",
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer, err := openBroker(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	publisher, err := openBroker(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)

	ch, unsubscribe := consumer.Subscribe("admin@example.com")
	defer unsubscribe()

	notification := models.Notification{
		ID:        "1741000000000",
		Type:      models.NotificationNewMessage,
		Title:     "رسالة جديدة",
		Message:   "رسالة جديدة من سمير",
		Recipient: "admin@example.com",
		CreatedAt: time.Now().UTC(),
	}

	// One process's publish reaches another process's subscribers over
	// the channel named in the config.
	require.Eventually(t, func() bool {
		publisher.Publish(ctx, notification)
		select {
		case got := <-ch:
			return got.ID == notification.ID
		default:
			return false
		}
	}, 2*time.Second, 50*time.Millisecond)
}

func TestOpenBrokerRejectsBadRedisURL(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := openBroker(ctx, config.Config{RedisURL: "not-a-url", NotifyChannel: "school:notifications"}, zerolog.Nop())
	require.Error(t, err)
}
