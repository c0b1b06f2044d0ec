// Package kafka publishes order lifecycle events with franz-go.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"mota/internal/core/ports"
	"mota/internal/pkg/errs"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"
)

// EventTypeStatusChanged is written to the event_type record header.
const EventTypeStatusChanged = "order.status_changed"

// StatusChangedMessage is the JSON value of a status change record.
type StatusChangedMessage struct {
	OrderID    int64     `json:"order_id"`
	From       int       `json:"from"`
	To         int       `json:"to"`
	ActorID    int64     `json:"actor_id"`
	ActorRole  int       `json:"actor_role"`
	OccurredAt time.Time `json:"occurred_at"`
}

type producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

var _ ports.EventPublisher = (*Publisher)(nil)

// Publisher writes status change events to a single topic, keyed by order id
// so every event of an order lands on the same partition.
type Publisher struct {
	client producer
	topic  string
	logger *zap.Logger
}

// NewPublisher connects to the comma separated brokers.
func NewPublisher(brokers, topic string, logger *zap.Logger) (*Publisher, error) {
	seeds := splitBrokers(brokers)
	if len(seeds) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if strings.TrimSpace(topic) == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(seeds...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProduceRequestTimeout(10*time.Second),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ClientID("mota-gateway"),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	return newPublisher(client, topic, logger), nil
}

func newPublisher(client producer, topic string, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{
		client: client,
		topic:  topic,
		logger: logger.With(zap.String("component", "kafka_publisher"), zap.String("topic", topic)),
	}
}

// PublishStatusChanged blocks until the broker acknowledged the record.
func (p *Publisher) PublishStatusChanged(ctx context.Context, event ports.StatusChangedEvent) error {
	record, err := encodeStatusChanged(p.topic, event)
	if err != nil {
		return err
	}

	if err = p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce %s for order %s: %w", EventTypeStatusChanged, event.OrderID, err)
	}

	p.logger.Debug("event published",
		zap.Stringer("order_id", event.OrderID),
		zap.Stringer("to", event.To),
	)
	return nil
}

// Close releases the broker connections.
func (p *Publisher) Close() {
	p.client.Close()
}

func encodeStatusChanged(topic string, event ports.StatusChangedEvent) (*kgo.Record, error) {
	value, err := json.Marshal(StatusChangedMessage{
		OrderID:    event.OrderID.Int64(),
		From:       event.From.Code(),
		To:         event.To.Code(),
		ActorID:    event.ActorID.Int64(),
		ActorRole:  event.ActorRole.Code(),
		OccurredAt: event.OccurredAt.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", EventTypeStatusChanged, err)
	}

	return &kgo.Record{
		Topic: topic,
		Key:   []byte(event.OrderID.String()),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "event_type", Value: []byte(EventTypeStatusChanged)},
		},
	}, nil
}

func splitBrokers(brokers string) []string {
	var seeds []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			seeds = append(seeds, b)
		}
	}
	return seeds
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishStatusChanged(context.Context, ports.StatusChangedEvent) error {
	return nil
}
