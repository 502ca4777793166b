package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/almukhtar-edu/sitestore/internal/models"
)

func sampleNotification(recipient string) models.Notification {
	return models.Notification{
		ID:        "1741000000000",
		Type:      models.NotificationNewMessage,
		Title:     "رسالة جديدة",
		Message:   "رسالة جديدة من سمير",
		Recipient: recipient,
		CreatedAt: time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC),
	}
}

func TestBrokerDeliversToRecipientSubscribers(t *testing.T) {
	broker := NewBroker(zerolog.Nop())

	adminCh, cancelAdmin := broker.Subscribe("admin@example.com")
	defer cancelAdmin()
	otherCh, cancelOther := broker.Subscribe("parent@example.com")
	defer cancelOther()

	broker.Publish(context.Background(), sampleNotification("admin@example.com"))

	select {
	case got := <-adminCh:
		require.Equal(t, "رسالة جديدة", got.Title)
	case <-time.After(time.Second):
		t.Fatal("admin subscriber received nothing")
	}

	select {
	case got := <-otherCh:
		t.Fatalf("unexpected delivery to other recipient: %+v", got)
	default:
	}
}

func TestBrokerCleanupClosesChannel(t *testing.T) {
	broker := NewBroker(zerolog.Nop())

	ch, cancel := broker.Subscribe("admin@example.com")
	cancel()

	_, open := <-ch
	require.False(t, open, "cleanup should close the subscriber channel")

	// Publishing after cleanup must not panic on a closed channel.
	broker.Publish(context.Background(), sampleNotification("admin@example.com"))
}

func TestBrokerDropsSlowSubscribers(t *testing.T) {
	broker := NewBroker(zerolog.Nop())

	ch, cancel := broker.Subscribe("admin@example.com")
	defer cancel()

	// Overfill the buffer; excess deliveries are dropped, not blocked on.
	for i := 0; i < subscriberBufferSize+5; i++ {
		broker.Publish(context.Background(), sampleNotification("admin@example.com"))
	}
	require.Len(t, ch, subscriberBufferSize)
}

func TestHandleEventIgnoresOwnEchoes(t *testing.T) {
	broker := NewBroker(zerolog.Nop())

	ch, cancel := broker.Subscribe("admin@example.com")
	defer cancel()

	own, err := json.Marshal(event{
		Source:       broker.nodeID,
		Notification: sampleNotification("admin@example.com"),
		SentAt:       time.Now().UTC(),
	})
	require.NoError(t, err)
	broker.handleEvent(own)
	require.Empty(t, ch, "events published by this node must not loop back")

	foreign, err := json.Marshal(event{
		Source:       "another-node",
		Notification: sampleNotification("admin@example.com"),
		SentAt:       time.Now().UTC(),
	})
	require.NoError(t, err)
	broker.handleEvent(foreign)
	require.Len(t, ch, 1)

	broker.handleEvent([]byte("not json"))
	require.Len(t, ch, 1)
}

func TestBrokerRelaysOverRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	publisherClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = publisherClient.Close() }()
	consumerClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = consumerClient.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	publisher := NewBroker(zerolog.Nop(), WithRedisRelay(publisherClient, "school:notifications"))
	consumer := NewBroker(zerolog.Nop(), WithRedisRelay(consumerClient, "school:notifications"))
	consumer.Start(ctx)

	ch, unsubscribe := consumer.Subscribe("admin@example.com")
	defer unsubscribe()

	// Give the consumer's pub/sub subscription a moment to register.
	require.Eventually(t, func() bool {
		publisher.Publish(ctx, sampleNotification("admin@example.com"))
		select {
		case <-ch:
			return true
		default:
			return false
		}
	}, 2*time.Second, 50*time.Millisecond)
}
