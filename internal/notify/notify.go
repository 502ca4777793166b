// Package notify fans derived notifications out to interested
// consumers: in-process subscribers (admin dashboard sessions) and,
// optionally, other processes over redis pub/sub or NATS.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/almukhtar-edu/sitestore/internal/models"
)

const subscriberBufferSize = 16

// Publisher receives every notification the store derives. The store
// tolerates a nil Publisher.
type Publisher interface {
	Publish(ctx context.Context, notification models.Notification)
}

// event is the cross-process envelope. Source carries the node id so a
// relay can drop its own echoes.
type event struct {
	Source       string              `json:"source"`
	Notification models.Notification `json:"notification"`
	SentAt       time.Time           `json:"sentAt"`
}

// Broker delivers notifications to per-recipient channel subscribers
// and relays them to optional redis/NATS transports.
type Broker struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan models.Notification]struct{}

	redis        *redis.Client
	redisChannel string
	nats         *nats.Conn
	natsSubject  string
	logger       zerolog.Logger
	nodeID       string
}

// Option configures a Broker.
type Option func(*Broker)

// WithRedisRelay relays notifications over a redis pub/sub channel.
func WithRedisRelay(client *redis.Client, channel string) Option {
	return func(b *Broker) {
		b.redis = client
		b.redisChannel = channel
	}
}

// WithNATSRelay relays notifications over a NATS subject.
func WithNATSRelay(conn *nats.Conn, subject string) Option {
	return func(b *Broker) {
		b.nats = conn
		b.natsSubject = subject
	}
}

// NewBroker constructs a notification broker.
func NewBroker(logger zerolog.Logger, opts ...Option) *Broker {
	b := &Broker{
		subscribers: make(map[string]map[chan models.Notification]struct{}),
		logger:      logger.With().Str("component", "notify_broker").Logger(),
		nodeID:      uuid.NewString(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Start begins consuming relayed notifications from the configured
// transports until ctx is cancelled. Safe to skip when no relay is set.
func (b *Broker) Start(ctx context.Context) {
	if b.redis != nil && b.redisChannel != "" {
		go b.consumeRedis(ctx)
	}
	if b.nats != nil && b.natsSubject != "" {
		b.consumeNATS(ctx)
	}
}

// Publish delivers the notification to local subscribers and relays it.
func (b *Broker) Publish(ctx context.Context, notification models.Notification) {
	b.broadcast(notification)

	if b.redis == nil && b.nats == nil {
		return
	}

	payload, err := json.Marshal(event{
		Source:       b.nodeID,
		Notification: notification,
		SentAt:       time.Now().UTC(),
	})
	if err != nil {
		b.logger.Warn().Err(err).Msg("failed to encode notification event")
		return
	}

	if b.redis != nil && b.redisChannel != "" {
		if err := b.redis.Publish(ctx, b.redisChannel, payload).Err(); err != nil {
			b.logger.Warn().Err(err).Msg("failed to relay notification to redis")
		}
	}

	if b.nats != nil && b.natsSubject != "" {
		if err := b.nats.Publish(b.natsSubject, payload); err != nil {
			b.logger.Warn().Err(err).Msg("failed to relay notification to nats")
		}
	}
}

// Subscribe registers a consumer for notifications addressed to the
// recipient. The returned cleanup must be called to release the channel.
func (b *Broker) Subscribe(recipient string) (<-chan models.Notification, func()) {
	channel := make(chan models.Notification, subscriberBufferSize)

	b.mu.Lock()
	if _, exists := b.subscribers[recipient]; !exists {
		b.subscribers[recipient] = make(map[chan models.Notification]struct{})
	}
	b.subscribers[recipient][channel] = struct{}{}
	b.mu.Unlock()

	cleanup := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if subscribers, ok := b.subscribers[recipient]; ok {
			delete(subscribers, channel)
			close(channel)
			if len(subscribers) == 0 {
				delete(b.subscribers, recipient)
			}
		}
	}

	return channel, cleanup
}

func (b *Broker) broadcast(notification models.Notification) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subscribers[notification.Recipient] {
		select {
		case ch <- notification:
		default:
		}
	}
}

func (b *Broker) consumeRedis(ctx context.Context) {
	pubsub := b.redis.Subscribe(ctx, b.redisChannel)
	defer func() { _ = pubsub.Close() }()

	for {
		msg, err := pubsub.ReceiveMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			b.logger.Error().Err(err).Msg("notification redis subscription closed")
			return
		}
		b.handleEvent([]byte(msg.Payload))
	}
}

func (b *Broker) consumeNATS(ctx context.Context) {
	sub, err := b.nats.Subscribe(b.natsSubject, func(msg *nats.Msg) {
		b.handleEvent(msg.Data)
	})
	if err != nil {
		b.logger.Error().Err(err).Msg("failed to subscribe to nats notifications subject")
		return
	}

	go func() {
		<-ctx.Done()
		if err := sub.Drain(); err != nil {
			b.logger.Warn().Err(err).Msg("failed to drain nats subscription")
		}
	}()
}

func (b *Broker) handleEvent(payload []byte) {
	var evt event
	if err := json.Unmarshal(payload, &evt); err != nil {
		b.logger.Warn().Err(err).Msg("invalid notification event payload")
		return
	}
	if evt.Source == b.nodeID {
		return
	}
	b.broadcast(evt.Notification)
}
