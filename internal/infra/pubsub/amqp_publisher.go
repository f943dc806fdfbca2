package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"coffeeshop/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// amqpChannel is the subset of *amqp.Channel the publisher needs
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// amqpPublisher implements EventPublisher on a RabbitMQ topic exchange.
// Events are routed by their type, e.g. "order.placed".
type amqpPublisher struct {
	conn     *amqp.Connection
	channel  amqpChannel
	exchange string
	logger   *slog.Logger
}

// NewAMQPPublisher dials the broker and declares a durable topic exchange
func NewAMQPPublisher(url, exchange string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to RabbitMQ")
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to open channel")
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()

		return nil, errors.Wrapf(err, "failed to declare exchange %s", exchange)
	}

	logger.Info("AMQP publisher initialized", slog.String("exchange", exchange))

	return &amqpPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		logger:   logger,
	}, nil
}

// PublishOrderEvent publishes a persistent JSON message routed by event type
func (p *amqpPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	publishing := amqp.Publishing{
		ContentType:   "application/json",
		Body:          body,
		DeliveryMode:  amqp.Persistent,
		Timestamp:     event.OccurredAt,
		MessageId:     event.EventID,
		CorrelationId: event.RequestID,
		Headers:       headers,
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	routingKey := string(event.Type)
	if err := p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, publishing); err != nil {
		return errors.Wrapf(err, "failed to publish to exchange %s", p.exchange)
	}

	p.logger.Debug("[AMQP] Event published",
		slog.String("exchange", p.exchange),
		slog.String("routing_key", routingKey),
		slog.Int("message_size", len(body)),
	)

	return nil
}

// Close closes the channel and the connection
func (p *amqpPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return errors.WithStack(p.conn.Close())
	}

	return nil
}
