package events

import (
	"context"
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events to one topic.
type KafkaPublisher struct {
	writer messageWriter
}

// NewKafkaWriter builds a writer for a comma separated broker list.
func NewKafkaWriter(brokers, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(brokers, ",")...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaPublisher(writer messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// Publish sends all events in one batch. Events that cannot be encoded are
// skipped and reported together with the write error.
func (p *KafkaPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	msgs := make([]kafka.Message, 0, len(events))
	var encodeErr error
	for _, e := range events {
		key, body, err := encode(e)
		if err != nil {
			encodeErr = errors.Join(encodeErr, err)
			continue
		}
		msgs = append(msgs, kafka.Message{
			Key:   key,
			Value: body,
			Headers: []kafka.Header{
				{Key: "event-name", Value: []byte(e.EventName())},
			},
		})
	}
	if len(msgs) == 0 {
		return encodeErr
	}
	return errors.Join(encodeErr, p.writer.WriteMessages(ctx, msgs...))
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
