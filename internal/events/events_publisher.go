// Package events streams store activity to Kafka for downstream analytics.
// Publishing is fire-and-forget: a broker outage never fails a mutation.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/store"
)

const DefaultTopic = "storefront.store-activity"

type Event struct {
	Op            string `json:"op"`
	ProductID     string `json:"productId,omitempty"`
	CartCount     int    `json:"cartCount"`
	CartTotal     int64  `json:"cartTotal"`
	WishlistCount int    `json:"wishlistCount"`
	OccurredAt    string `json:"occurredAt"`
}

type Publisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewPublisher(writer *kafka.Writer, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{writer: writer, logger: logger.Named("events.publisher")}
}

// OnStoreChange is a store.Listener. It builds the event on the caller's
// goroutine and hands the write to a new one so the mutation path never
// waits on the broker.
func (p *Publisher) OnStoreChange(change store.Change, snap store.Snapshot) {
	count := 0
	var total int64
	for _, item := range snap.Cart {
		count += item.Quantity
		total += item.Product.Price * int64(item.Quantity)
	}

	event := Event{
		Op:            change.Op,
		ProductID:     change.ProductID,
		CartCount:     count,
		CartTotal:     total,
		WishlistCount: len(snap.Wishlist),
		OccurredAt:    time.Now().Format(time.RFC3339),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Warn("marshal event failed", zap.Error(err))
		return
	}

	key := change.ProductID
	if key == "" {
		key = store.DefaultKey
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		msg := kafka.Message{
			Key:   []byte(key),
			Value: payload,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(change.Op)},
			},
		}
		if err := p.writer.WriteMessages(ctx, msg); err != nil {
			p.logger.Warn("publish event failed",
				zap.String("op", change.Op),
				zap.Error(err),
			)
		}
	}()
}
