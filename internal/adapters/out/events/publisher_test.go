package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"foodorder/internal/adapters/out/events"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	return m.Called(ctx, msgs).Error(0)
}

func (m *MockWriter) Close() error { return m.Called().Error(0) }

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	return m.Called(ctx, exchange, key, msg).Error(0)
}

func (m *MockChannel) Close() error { return m.Called().Error(0) }

type unknownEvent struct{ kernel.BaseEvent }

func placedEvent(t *testing.T) kernel.DomainEvent {
	t.Helper()
	price, err := kernel.MoneyFromString("125.50")
	require.NoError(t, err)
	item, err := order.NewLineItem(kernel.NewUUID(), 1, price)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.LineItem{item}, order.PaymentMethodCOD, time.Now())
	require.NoError(t, err)
	require.Len(t, o.DomainEvents(), 1)
	return o.DomainEvents()[0]
}

func TestNewMessage(t *testing.T) {
	previous := kernel.NewUUID()
	assigned := order.DeliveryPartnerAssignedEvent{
		BaseEvent:         kernel.NewBaseEvent(order.EventNameDeliveryPartnerAssigned, kernel.NewUUID(), time.Now()),
		PartnerID:         kernel.NewUUID(),
		PreviousPartnerID: &previous,
	}
	changed := order.StatusChangedEvent{
		BaseEvent:  kernel.NewBaseEvent(order.EventNameStatusChanged, kernel.NewUUID(), time.Now()),
		CustomerID: kernel.NewUUID(),
		From:       order.Pending,
		To:         order.Accepted,
		ChangedBy:  kernel.RoleVendor,
	}

	t.Run("placed", func(t *testing.T) {
		e := placedEvent(t)
		msg, err := events.NewMessage(e)
		require.NoError(t, err)

		body, err := json.Marshal(msg)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"name":"order.placed"`)
		assert.Contains(t, string(body), `"totalPrice":"125.50"`)
		assert.Equal(t, e.AggregateID().String(), msg.AggregateID)
	})

	t.Run("status changed", func(t *testing.T) {
		msg, err := events.NewMessage(changed)
		require.NoError(t, err)
		body, err := json.Marshal(msg.Payload)
		require.NoError(t, err)
		assert.JSONEq(t, `{"customerId":"`+changed.CustomerID.String()+`","from":"Pending","to":"Accepted","changedBy":"vendor"}`, string(body))
	})

	t.Run("partner assigned keeps previous partner", func(t *testing.T) {
		msg, err := events.NewMessage(assigned)
		require.NoError(t, err)
		body, err := json.Marshal(msg.Payload)
		require.NoError(t, err)
		assert.Contains(t, string(body), previous.String())
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := events.NewMessage(unknownEvent{kernel.NewBaseEvent("x", kernel.NewUUID(), time.Now())})
		require.Error(t, err)
	})
}

func TestKafkaPublisher_Publish(t *testing.T) {
	ctx := t.Context()
	e := placedEvent(t)
	writer := new(MockWriter)
	writer.On("WriteMessages", ctx, mock.MatchedBy(func(msgs []kafka.Message) bool {
		return len(msgs) == 1 && string(msgs[0].Key) == e.AggregateID().String()
	})).Return(nil).Once()

	err := events.NewKafkaPublisher(writer).Publish(ctx, e)

	require.NoError(t, err)
	writer.AssertExpectations(t)
}

func TestKafkaPublisher_SkipsUnencodableEvents(t *testing.T) {
	ctx := t.Context()
	writer := new(MockWriter)
	writer.On("WriteMessages", ctx, mock.MatchedBy(func(msgs []kafka.Message) bool {
		return len(msgs) == 1
	})).Return(nil).Once()

	err := events.NewKafkaPublisher(writer).Publish(ctx,
		unknownEvent{kernel.NewBaseEvent("x", kernel.NewUUID(), time.Now())}, placedEvent(t))

	require.Error(t, err)
	writer.AssertExpectations(t)
}

func TestRabbitMQPublisher_Publish(t *testing.T) {
	ctx := t.Context()
	e := placedEvent(t)
	brokerErr := errors.New("channel closed")
	channel := new(MockChannel)
	channel.On("PublishWithContext", ctx, "orders", order.EventNamePlaced, mock.MatchedBy(func(p amqp.Publishing) bool {
		return p.ContentType == "application/json" && p.MessageId == e.EventID().String()
	})).Return(brokerErr).Once()

	err := events.NewRabbitMQPublisher(channel, "orders").Publish(ctx, e)

	require.ErrorIs(t, err, brokerErr)
	channel.AssertExpectations(t)
}

func TestLogPublisher_NeverFails(t *testing.T) {
	p := events.NewLogPublisher(slog.New(slog.DiscardHandler))
	assert.NoError(t, p.Publish(t.Context(), placedEvent(t)))
}
