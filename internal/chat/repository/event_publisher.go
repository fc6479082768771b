package repository

import (
	"context"
	"encoding/json"

	"workzup_backend/internal/chat/domain"
	"workzup_backend/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EventPublisher definition publish conversation activity to the event stream
type EventPublisher interface {
	Publish(ctx context.Context, event domain.ChatEvent) error
}

// KafkaEventPublisher publish chat activity onto a kafka topic
type KafkaEventPublisher struct {
	writer *kafka.Writer
}

// NewKafkaEventPublisher create a KafkaEventPublisher
func NewKafkaEventPublisher(writer *kafka.Writer) *KafkaEventPublisher {
	return &KafkaEventPublisher{writer: writer}
}

// Publish write one event, key is the conversation id so one conversation's
// events stay on one partition
func (p *KafkaEventPublisher) Publish(ctx context.Context, event domain.ChatEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ConversationID),
		Value: data,
	})
	if err != nil {
		logger.Log.Error("publish chat event failed",
			zap.String("kind", event.Kind),
			zap.String("conversation_id", event.ConversationID),
			zap.Error(err),
		)
	}
	return err
}
