package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"lifeline/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// rabbitMQPublisher implements EventPublisher on an AMQP topic exchange
type rabbitMQPublisher struct {
	mu         sync.Mutex
	url        string
	exchange   string
	routingKey string
	conn       *amqp.Connection
	channel    *amqp.Channel
	logger     *slog.Logger
}

// NewRabbitMQPublisher dials the broker and declares a durable topic exchange
func NewRabbitMQPublisher(url, exchange, routingKey string, logger *slog.Logger) (service.EventPublisher, error) {
	p := &rabbitMQPublisher{
		url:        url,
		exchange:   exchange,
		routingKey: routingKey,
		logger:     logger,
	}

	if err := p.connect(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *rabbitMQPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errors.Wrap(err, "failed to connect to RabbitMQ")
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()

		return errors.Wrap(err, "failed to open channel")
	}

	err = channel.ExchangeDeclare(
		p.exchange, // name
		"topic",    // type
		true,       // durable
		false,      // auto-deleted
		false,      // internal
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()

		return errors.Wrap(err, "failed to declare exchange")
	}

	p.conn = conn
	p.channel = channel

	return nil
}

// routingKeyFor yields e.g. "alert.alert.raised" for the default key "alert"
func (p *rabbitMQPublisher) routingKeyFor(event *service.AlertEvent) string {
	if p.routingKey == "" {
		return string(event.Type)
	}

	return p.routingKey + "." + string(event.Type)
}

// PublishAlertEvent publishes a persistent JSON message. A closed connection
// is redialed once.
func (p *rabbitMQPublisher) PublishAlertEvent(ctx context.Context, event *service.AlertEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	msg := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     uuid.NewString(),
		CorrelationId: event.RequestID,
		Timestamp:     time.Now().UTC(),
		Headers:       headers,
		Body:          body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		p.logger.WarnContext(ctx, "[RabbitMQ] Connection closed, reconnecting")
		if err := p.connect(); err != nil {
			return err
		}
	}

	if err := p.channel.PublishWithContext(ctx, p.exchange, p.routingKeyFor(event), false, false, msg); err != nil {
		return errors.Wrap(err, "failed to publish alert event")
	}

	p.logger.InfoContext(ctx, "[RabbitMQ] Alert event published",
		slog.String("type", string(event.Type)),
		slog.String("family_id", event.FamilyID),
	)

	return nil
}

// Close closes the channel and connection
func (p *rabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	if p.conn != nil && !p.conn.IsClosed() {
		if err := p.conn.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Errorf("close rabbitmq publisher: %v", errs)
	}

	return nil
}
