package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/muhammadheryan/tuba-user/model"
	"github.com/rabbitmq/amqp091-go"
)

// EventPublisher publishes user lifecycle events
type EventPublisher interface {
	PublishUserEvent(ctx context.Context, event model.UserEvent) error
}

type Publisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	mu       sync.Mutex
}

func NewPublisher(url, exchange string) (*Publisher, error) {
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

	return &Publisher{conn: conn, channel: channel, exchange: exchange}, nil
}

func declareExchange(channel *amqp091.Channel, exchange string) error {
	return channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-delete
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
}

// PublishUserEvent sends the event with its name as routing key
func (p *Publisher) PublishUserEvent(ctx context.Context, event model.UserEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.channel.PublishWithContext(ctx,
		p.exchange,         // exchange
		string(event.Name), // routing key
		false,              // mandatory
		false,              // immediate
		amqp091.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp091.Persistent,
			CorrelationId: event.RequestID,
			Timestamp:     event.OccurredAt,
			Body:          body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s for user %d: %w", event.Name, event.UserID, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
