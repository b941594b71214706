// Package kafka publishes order domain events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tailor/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var (
	errBrokerNotProvided = errors.New("kafka broker address not provided")
	errTopicNotProvided  = errors.New("kafka topic not provided")
)

// Writer is the part of *kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Config holds the broker connection settings.
type Config struct {
	Broker       string
	Topic        string
	BatchTimeout time.Duration
}

// StatusChangedMessage is the JSON body of an order status change event.
type StatusChangedMessage struct {
	EventID    string    `json:"event_id"`
	OrderID    int64     `json:"order_id"`
	CustomerID int64     `json:"customer_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderEventPublisher writes StatusChanged events keyed by order id, so every
// event of one order lands on the same partition.
type OrderEventPublisher struct {
	writer Writer
	topic  string
	logger *zap.Logger
}

// NewOrderEventPublisher connects a kafka-go writer to conf.Broker.
func NewOrderEventPublisher(conf Config, logger *zap.Logger) (*OrderEventPublisher, error) {
	if conf.Broker == "" {
		return nil, errBrokerNotProvided
	}
	if conf.Topic == "" {
		return nil, errTopicNotProvided
	}
	if conf.BatchTimeout <= 0 {
		conf.BatchTimeout = 10 * time.Millisecond
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(conf.Broker),
		Balancer:               &kafka.Hash{},
		BatchTimeout:           conf.BatchTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	return NewOrderEventPublisherWithWriter(writer, conf.Topic, logger), nil
}

// NewOrderEventPublisherWithWriter wraps an existing writer.
func NewOrderEventPublisherWithWriter(writer Writer, topic string, logger *zap.Logger) *OrderEventPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderEventPublisher{writer: writer, topic: topic, logger: logger}
}

// PublishStatusChanged encodes event and writes it synchronously.
func (p *OrderEventPublisher) PublishStatusChanged(ctx context.Context, event order.StatusChanged) error {
	ctx, span := otel.Tracer("tailor/kafka").Start(ctx, "kafka-publish")
	defer span.End()
	span.SetAttributes(
		attribute.String("messaging.destination", p.topic),
		attribute.Int64("order.id", event.OrderID.Int64()),
	)

	value, err := json.Marshal(NewStatusChangedMessage(event))
	if err != nil {
		return fmt.Errorf("encode status changed event: %w", err)
	}

	start := time.Now()
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.OrderID.String()),
		Value: value,
		Time:  event.OccurredAt,
	})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("publish status changed event: %w", err)
	}

	p.logger.Debug("published order event",
		zap.String("topic", p.topic),
		zap.Int64("order_id", event.OrderID.Int64()),
		zap.String("to", event.To.String()),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

// Close flushes pending messages and releases the connection.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

// NewStatusChangedMessage maps a domain event to its wire form.
func NewStatusChangedMessage(event order.StatusChanged) StatusChangedMessage {
	return StatusChangedMessage{
		EventID:    event.EventID.String(),
		OrderID:    event.OrderID.Int64(),
		CustomerID: event.CustomerID.Int64(),
		From:       event.From.String(),
		To:         event.To.String(),
		OccurredAt: event.OccurredAt.UTC(),
	}
}

// NopPublisher drops every event. It stands in when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishStatusChanged(context.Context, order.StatusChanged) error { return nil }

func (NopPublisher) Close() error { return nil }
