package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/muhammadheryan/lead-crm/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Handler reacts to the events published by the API.
type Handler interface {
	HandleOTPRequested(ctx context.Context, msg OTPRequestedMessage) error
	HandleLeadAssigned(ctx context.Context, msg LeadAssignedMessage) error
	HandleFollowUpDue(ctx context.Context, msg FollowUpDueMessage) error
}

// ErrUnknownEvent is returned by Dispatch for routing keys with no handler.
var ErrUnknownEvent = errors.New("unknown event")

// errMalformed marks payloads that will never decode; they are dropped, not requeued.
type errMalformed struct{ err error }

func (e errMalformed) Error() string { return "malformed message: " + e.err.Error() }
func (e errMalformed) Unwrap() error { return e.err }

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	handler Handler
}

func NewConsumer(host string, port int, user, password string, handler Handler) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		handler: handler,
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		notificationsQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				err := Dispatch(ctx, c.handler, msg.RoutingKey, msg.Body)
				switch {
				case err == nil:
					msg.Ack(false)
				case isPermanent(err):
					logger.Error("[Consumer] dropping message",
						zap.String("routing_key", msg.RoutingKey), zap.String("error", err.Error()))
					msg.Ack(false)
				default:
					logger.Error("[Consumer] err handle message, requeue",
						zap.String("routing_key", msg.RoutingKey), zap.String("error", err.Error()))
					msg.Nack(false, true)
				}
			}
		}
	}()

	return nil
}

func isPermanent(err error) bool {
	var malformed errMalformed
	return errors.As(err, &malformed) || errors.Is(err, ErrUnknownEvent)
}

// Dispatch decodes body according to routingKey and calls the matching handler.
func Dispatch(ctx context.Context, h Handler, routingKey string, body []byte) error {
	switch routingKey {
	case RoutingOTPRequested:
		var m OTPRequestedMessage
		if err := json.Unmarshal(body, &m); err != nil {
			return errMalformed{err}
		}
		return h.HandleOTPRequested(ctx, m)
	case RoutingLeadAssigned:
		var m LeadAssignedMessage
		if err := json.Unmarshal(body, &m); err != nil {
			return errMalformed{err}
		}
		return h.HandleLeadAssigned(ctx, m)
	case RoutingFollowUpDue:
		var m FollowUpDueMessage
		if err := json.Unmarshal(body, &m); err != nil {
			return errMalformed{err}
		}
		return h.HandleFollowUpDue(ctx, m)
	default:
		return ErrUnknownEvent
	}
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
