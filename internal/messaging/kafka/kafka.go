package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	kafkaGo "github.com/segmentio/kafka-go"

	"github.com/egannguyen/seller-dashboard/internal/messaging"
)

type kafkaBroker struct {
	writer *kafkaGo.Writer
}

// NewKafkaBroker creates a Kafka publisher writing to the given brokers.
// The topic is chosen per event.
func NewKafkaBroker(brokers []string) messaging.Publisher {
	return &kafkaBroker{
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(brokers...),
			Balancer:               &kafkaGo.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

func (k *kafkaBroker) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = k.writer.WriteMessages(ctx, kafkaGo.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("failed to write message to %s: %w", topic, err)
	}
	return nil
}

func (k *kafkaBroker) Close() error {
	return k.writer.Close()
}
