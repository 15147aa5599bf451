package events

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"

	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpChannel is the part of *amqp.Channel the publisher uses.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher publishes every event to a topic exchange with the event
// name as routing key, so consumers bind to "order.#" or a single name.
type RabbitMQPublisher struct {
	conn     *amqp.Connection
	channel  amqpChannel
	exchange string
}

// DialRabbitMQ connects, opens a channel and declares the durable exchange.
func DialRabbitMQ(url, exchange string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, errors.Join(err, conn.Close())
	}

	if err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return nil, errors.Join(err, ch.Close(), conn.Close())
	}

	return &RabbitMQPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

// NewRabbitMQPublisher wraps an already opened channel.
func NewRabbitMQPublisher(channel amqpChannel, exchange string) *RabbitMQPublisher {
	return &RabbitMQPublisher{channel: channel, exchange: exchange}
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	var errs error
	for _, e := range events {
		key, body, err := encode(e)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		err = p.channel.PublishWithContext(ctx, p.exchange, e.EventName(), false, false, amqp.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp.Persistent,
			MessageId:     e.EventID().String(),
			CorrelationId: string(key),
			Timestamp:     e.OccurredAt(),
			Body:          body,
		})
		errs = errors.Join(errs, err)
	}
	return errs
}

func (p *RabbitMQPublisher) Close() error {
	err := p.channel.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
