package notification

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	kafka "github.com/segmentio/kafka-go"
)

// Publisher delivers event notifications to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

type noopPublisher struct{}

func NewNoop() Publisher { return noopPublisher{} }

func (noopPublisher) Publish(context.Context, Message) error { return nil }
func (noopPublisher) Close() error                           { return nil }

// messageWriter is the subset of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	w       messageWriter
	timeout time.Duration
}

// NewKafka returns a publisher for the given brokers, or a no-op when none are configured.
func NewKafka(brokers []string, topic string) Publisher {
	if len(brokers) == 0 {
		return NewNoop()
	}
	if topic == "" {
		topic = "levelup.events"
	}
	// Writers are safe for concurrent use. In async mode delivery errors only
	// reach logCompletion.
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireOne,
		Balancer:     &kafka.Hash{},
		BatchSize:    1,
		Async:        true,
		Completion:   logCompletion,
	}
	log.Printf("[notification] kafka publisher enabled: brokers=%v topic=%s", brokers, topic)
	return &kafkaPublisher{w: w, timeout: 2 * time.Second}
}

// Publish keys messages by event id so one event's notifications stay ordered.
func (p *kafkaPublisher) Publish(ctx context.Context, msg Message) error {
	if msg.OccurredAt.IsZero() {
		msg.OccurredAt = time.Now().UTC()
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(msg.EventID), 10)),
		Value: b,
	})
}

func logCompletion(messages []kafka.Message, err error) {
	if err != nil {
		log.Printf("⚠️ [notification] kafka delivery of %d message(s) failed: %v", len(messages), err)
	}
}

func (p *kafkaPublisher) Close() error {
	return p.w.Close()
}
