package repository

import (
	"context"
	"encoding/json"
	"strconv"

	"workzup_backend/internal/job/domain"
	"workzup_backend/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// JobEventPublisher definition publish posting lifecycle events
type JobEventPublisher interface {
	Publish(ctx context.Context, event domain.JobEvent) error
}

// KafkaJobEventPublisher publish job events onto a kafka topic
type KafkaJobEventPublisher struct {
	writer *kafka.Writer
}

// NewKafkaJobEventPublisher create a KafkaJobEventPublisher
func NewKafkaJobEventPublisher(writer *kafka.Writer) *KafkaJobEventPublisher {
	return &KafkaJobEventPublisher{writer: writer}
}

// Publish key is the job id so one posting's events stay ordered
func (p *KafkaJobEventPublisher) Publish(ctx context.Context, event domain.JobEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.JobID), 10)),
		Value: data,
	})
	if err != nil {
		logger.Log.Error("publish job event failed",
			zap.String("kind", event.Kind),
			zap.Uint("job_id", event.JobID),
			zap.Error(err),
		)
	}
	return err
}
