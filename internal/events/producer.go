package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/evgzln/iiko-transfer/internal/config"
	"github.com/evgzln/iiko-transfer/internal/domain"
)

// DeliveryStatusChanged is emitted when a reconciliation run observes forward
// progress on an order (new ordinal above the stored one, not closed).
type DeliveryStatusChanged struct {
	OrderID  int64              `json:"order_id"`
	Number   *string            `json:"number,omitempty"`
	Status   domain.OrderStatus `json:"status"`
	UserID   int64              `json:"user_id"`
	IsMobile bool               `json:"is_mobile"`
}

type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes progress events. A Producer built without brokers is a
// no-op, so deployments without Kafka keep working.
type Producer struct {
	w writer
}

func New(cfg *config.Config) *Producer {
	if len(cfg.KafkaBrokers) == 0 {
		return &Producer{}
	}
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			MaxAttempts:  5,
			WriteTimeout: 5 * time.Second,
			ReadTimeout:  5 * time.Second,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

// Publish writes one event keyed by order id, so per-order ordering holds.
func (p *Producer) Publish(ctx context.Context, event DeliveryStatusChanged) error {
	if p.w == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: payload,
	})
}

func (p *Producer) Close() error {
	if p.w == nil {
		return nil
	}
	return p.w.Close()
}
