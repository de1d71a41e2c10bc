package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/tuba-user/model"
	"github.com/muhammadheryan/tuba-user/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// EventHandler processes one user event. A returned error requeues the message.
type EventHandler func(ctx context.Context, event model.UserEvent) error

// bindingKeys routes every user and account event to the queue
var bindingKeys = []string{"user.#", "account.#"}

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	queue   string
}

func NewConsumer(url, exchange, queue string) (*Consumer, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := declareExchange(channel, exchange); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	_, err = channel.QueueDeclare(
		queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	for _, key := range bindingKeys {
		if err := channel.QueueBind(queue, key, exchange, false, nil); err != nil {
			channel.Close()
			conn.Close()
			return nil, err
		}
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		queue:   queue,
	}, nil
}

func (c *Consumer) Start(ctx context.Context, handler EventHandler) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		c.queue,
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
				ack, requeue := handleDelivery(ctx, msg.Body, handler)
				if ack {
					_ = msg.Ack(false)
				} else {
					_ = msg.Nack(false, requeue)
				}
			}
		}
	}()

	return nil
}

// handleDelivery decodes and dispatches one message. Malformed payloads are acked
// and dropped, handler failures are requeued.
func handleDelivery(ctx context.Context, body []byte, handler EventHandler) (ack bool, requeue bool) {
	var event model.UserEvent
	if err := json.Unmarshal(body, &event); err != nil || event.Name == "" {
		logger.Error("[Consumer] dropping malformed message", zap.ByteString("body", body))
		return true, false
	}

	if err := handler(ctx, event); err != nil {
		logger.Error("[Consumer] err handler",
			zap.String("event", string(event.Name)),
			zap.Uint64("user_id", event.UserID),
			zap.String("error", err.Error()),
		)
		return false, true
	}
	return true, false
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
