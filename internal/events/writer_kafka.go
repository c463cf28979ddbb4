package events

import (
	"context"
	"encoding/json"
	"fmt"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter publishes events in structured JSON mode to a Kafka topic, keyed by event type.
type KafkaWriter struct {
	writer *kafka.Writer
}

func NewKafkaWriter(brokers []string, topic string) *KafkaWriter {
	return &KafkaWriter{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (k *KafkaWriter) Write(ctx context.Context, e cloudevents.Event) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", e.ID(), err)
	}

	msg := kafka.Message{
		Key:   []byte(e.Type()),
		Value: value,
		Time:  e.Time(),
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte(cloudevents.ApplicationCloudEventsJSON)},
		},
	}
	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", e.ID(), err)
	}
	return nil
}

func (k *KafkaWriter) Close(_ context.Context) error {
	return k.writer.Close()
}
