package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

// Publisher emits domain events for the notifier worker.
type Publisher interface {
	PublishOTPRequested(ctx context.Context, msg OTPRequestedMessage) error
	PublishLeadAssigned(ctx context.Context, msg LeadAssignedMessage) error
	PublishFollowUpDue(ctx context.Context, msg FollowUpDueMessage) error
}

type AMQPPublisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

// declareTopology sets up one delayed topic exchange carrying every event and
// the notifications queue bound to all of them.
func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		eventsExchange,      // name
		"x-delayed-message", // type
		true,                // durable
		false,               // auto-delete
		false,               // internal
		false,               // no-wait
		amqp091.Table{"x-delayed-type": "topic"}, // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		notificationsQueue, // name
		true,               // durable
		false,              // auto-delete
		false,              // exclusive
		false,              // no-wait
		nil,                // arguments
	)
	if err != nil {
		return err
	}

	for _, key := range []string{"password.*", "lead.*"} {
		if err := channel.QueueBind(notificationsQueue, key, eventsExchange, false, nil); err != nil {
			return err
		}
	}
	return nil
}

func NewPublisher(host string, port int, user, password string) (*AMQPPublisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &AMQPPublisher{conn: conn, channel: channel}, nil
}

func (p *AMQPPublisher) PublishOTPRequested(ctx context.Context, msg OTPRequestedMessage) error {
	return p.publish(ctx, RoutingOTPRequested, msg, 0)
}

func (p *AMQPPublisher) PublishLeadAssigned(ctx context.Context, msg LeadAssignedMessage) error {
	return p.publish(ctx, RoutingLeadAssigned, msg, 0)
}

// PublishFollowUpDue is delivered once DueAt is reached.
func (p *AMQPPublisher) PublishFollowUpDue(ctx context.Context, msg FollowUpDueMessage) error {
	return p.publish(ctx, RoutingFollowUpDue, msg, DelayUntil(msg.DueAt, time.Now()))
}

// DelayUntil returns the x-delay header value in milliseconds, never negative.
func DelayUntil(at, now time.Time) int64 {
	delayMs := at.Sub(now).Milliseconds()
	if delayMs < 0 {
		delayMs = 0
	}
	return delayMs
}

func (p *AMQPPublisher) publish(ctx context.Context, routingKey string, msg any, delayMs int64) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		eventsExchange, // exchange
		routingKey,     // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
			Headers: amqp091.Table{
				"x-delay": delayMs,
			},
		},
	)
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishOTPRequested(context.Context, OTPRequestedMessage) error { return nil }
func (NopPublisher) PublishLeadAssigned(context.Context, LeadAssignedMessage) error { return nil }
func (NopPublisher) PublishFollowUpDue(context.Context, FollowUpDueMessage) error   { return nil }
