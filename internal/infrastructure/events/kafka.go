package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"spayway_checkout/internal/domain/entities"
	"spayway_checkout/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

const EventCheckoutCreated = "checkout.created"

// CheckoutEvent is the message value published for each checkout session.
type CheckoutEvent struct {
	Type       string                  `json:"type"`
	OccurredAt time.Time               `json:"occurred_at"`
	Checkout   entities.CheckoutRecord `json:"checkout"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes checkout events keyed by invoice token, so events of one
// invoice land on the same partition in order.
type KafkaPublisher struct {
	writer messageWriter
}

var _ interfaces.ICheckoutEventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}}
}

func (p *KafkaPublisher) PublishCheckoutCreated(ctx context.Context, record entities.CheckoutRecord) error {
	payload, err := json.Marshal(CheckoutEvent{
		Type:       EventCheckoutCreated,
		OccurredAt: time.Now().UTC(),
		Checkout:   record,
	})
	if err != nil {
		return fmt.Errorf("marshal checkout event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(record.InvoiceToken),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventCheckoutCreated)},
			{Key: "request_id", Value: []byte(record.RequestID)},
		},
		Time: time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops every event. Used when KAFKA_BROKERS is unset and by the CLI.
type NoopPublisher struct{}

var _ interfaces.ICheckoutEventPublisher = NoopPublisher{}

func (NoopPublisher) PublishCheckoutCreated(context.Context, entities.CheckoutRecord) error {
	return nil
}
