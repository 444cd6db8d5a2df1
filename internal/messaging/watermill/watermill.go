// Package watermill publishes events through Watermill's Kafka publisher, which
// drives a Sarama sync producer.
package watermill

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/egannguyen/seller-dashboard/internal/messaging"
)

const partitionKeyMetadata = "partition_key"

type publisher struct {
	pub message.Publisher
}

// SaramaConfig returns the producer settings used by the publisher.
func SaramaConfig(clientID string) *sarama.Config {
	cfg := kafka.DefaultSaramaSyncPublisherConfig()
	cfg.ClientID = clientID
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Partitioner = sarama.NewHashPartitioner
	return cfg
}

// NewPublisher creates a Watermill Kafka publisher. Events with the same key land
// on the same partition.
func NewPublisher(brokers []string, clientID string, logger *slog.Logger) (messaging.Publisher, error) {
	marshaler := kafka.NewWithPartitioningMarshaler(func(topic string, msg *message.Message) (string, error) {
		return msg.Metadata.Get(partitionKeyMetadata), nil
	})

	pub, err := kafka.NewPublisher(kafka.PublisherConfig{
		Brokers:               brokers,
		Marshaler:             marshaler,
		OverwriteSaramaConfig: SaramaConfig(clientID),
	}, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create watermill publisher: %w", err)
	}
	return &publisher{pub: pub}, nil
}

func (p *publisher) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	msg, err := newMessage(ctx, key, event)
	if err != nil {
		return err
	}
	if err := p.pub.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish message to %s: %w", topic, err)
	}
	return nil
}

func (p *publisher) Close() error {
	return p.pub.Close()
}

// newMessage marshals an event into a Watermill message using JSON.
func newMessage(ctx context.Context, key string, event any) (*message.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(uuid.New().String(), payload)
	msg.Metadata.Set(partitionKeyMetadata, key)
	msg.SetContext(ctx)
	return msg, nil
}
