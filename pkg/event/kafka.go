package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/shashiranjanraj/storefront/config"
	"github.com/shashiranjanraj/storefront/pkg/workerpool"
)

// MessageWriter is the subset of *kafka.Writer the sink needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSink publishes events as JSON messages keyed by Event.Key.
type KafkaSink struct {
	w       MessageWriter
	timeout time.Duration
}

// NewKafkaSink returns nil when KAFKA_BROKERS is empty.
func NewKafkaSink() *KafkaSink {
	brokers := config.KafkaBrokers()
	if len(brokers) == 0 {
		return nil
	}
	return NewKafkaSinkWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  config.KafkaTopic(),
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
	})
}

func NewKafkaSinkWithWriter(w MessageWriter) *KafkaSink {
	return &KafkaSink{w: w, timeout: 5 * time.Second}
}

// Handle is an event.Handler.
func (s *KafkaSink) Handle(ctx context.Context, e Event) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("event/kafka: encode %s: %w", e.Name, err)
	}

	// Publishing outlives the request: the order is already committed.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	err = s.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.Key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(e.Name)},
		},
		Time: e.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("event/kafka: publish %s: %w", e.Name, err)
	}
	return nil
}

// Subscribe registers the sink for every order event. With a non-nil pool
// messages are written asynchronously.
func (s *KafkaSink) Subscribe(d *Dispatcher, pool *workerpool.Pool) {
	h := Handler(s.Handle)
	if pool != nil {
		h = Async(pool, h)
	}
	for _, name := range []string{OrderPlaced, OrderUpdated, OrderDeleted} {
		d.Listen(name, h)
	}
}

func (s *KafkaSink) Close() error {
	if s == nil {
		return nil
	}
	return s.w.Close()
}
