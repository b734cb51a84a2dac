// Package events publishes domain events for downstream consumers.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/guttosm/hogpulse/internal/domain/models"
	"github.com/guttosm/hogpulse/internal/logger"
)

// TypePriceSubmitted is the event type written to the message headers.
const TypePriceSubmitted = "price.submitted"

// PriceSubmitted is emitted after a new observation is committed.
type PriceSubmitted struct {
	Type               string       `json:"type"`
	ID                 string       `json:"id"`
	UserID             *string      `json:"userId"`
	VerificationStatus string       `json:"verificationStatus"`
	Region             string       `json:"region"`
	City               string       `json:"city"`
	PricePerKg         models.Price `json:"pricePerKg"`
	DateObserved       time.Time    `json:"dateObserved"`
	CreatedAt          time.Time    `json:"createdAt"`
}

// NewPriceSubmitted builds the event for a stored observation.
func NewPriceSubmitted(o models.PriceObservation) PriceSubmitted {
	return PriceSubmitted{
		Type:               TypePriceSubmitted,
		ID:                 o.ID,
		UserID:             o.UserID,
		VerificationStatus: string(o.VerificationStatus),
		Region:             o.Region,
		City:               o.City,
		PricePerKg:         o.PricePerKg,
		DateObserved:       o.DateObserved,
		CreatedAt:          o.CreatedAt,
	}
}

// Publisher sends domain events.
type Publisher interface {
	PublishPriceSubmitted(ctx context.Context, evt PriceSubmitted) error
	Close() error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishPriceSubmitted(context.Context, PriceSubmitted) error { return nil }
func (NopPublisher) Close() error                                               { return nil }

// channel is the subset of *amqp.Channel used by the publisher.
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publishes JSON events to a durable RabbitMQ queue.
type AMQPPublisher struct {
	conn  *amqp.Connection
	ch    channel
	queue string
	mu    sync.Mutex
}

// dial is an indirection for unit testing; defaults to amqp.Dial.
var dial = amqp.Dial

// NewAMQPPublisher connects to url, opens a channel and declares queue.
func NewAMQPPublisher(url, queue string) (*AMQPPublisher, error) {
	conn, err := dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open amqp channel: %w", err)
	}
	p, err := newAMQPPublisher(ch, queue)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	logger.L().Info().Str("queue", queue).Msg("amqp publisher ready")
	return p, nil
}

func newAMQPPublisher(ch channel, queue string) (*AMQPPublisher, error) {
	if _, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}
	return &AMQPPublisher{ch: ch, queue: queue}, nil
}

// PublishPriceSubmitted sends evt as a persistent JSON message.
func (p *AMQPPublisher) PublishPriceSubmitted(ctx context.Context, evt PriceSubmitted) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", evt.Type, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(
		ctx,
		"",      // exchange
		p.queue, // routing key (queue name)
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Type:         evt.Type,
			MessageId:    evt.ID,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", evt.Type, err)
	}
	return nil
}

// Close releases the channel and the connection.
func (p *AMQPPublisher) Close() error {
	if p.ch != nil {
		if err := p.ch.Close(); err != nil {
			logger.L().Warn().Err(err).Msg("failed to close amqp channel")
		}
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
