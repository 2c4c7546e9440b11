package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// Publisher издатель доменных событий в NATS
// Subject формируется как <prefix>.<eventType>, например yoga.booking.created
type Publisher struct {
	conn   Conn
	prefix string
	log    Logger
}

// Connect подключается к NATS и создает издателя
func Connect(url, clientName, subjectPrefix string, timeout time.Duration, log Logger) (*Publisher, error) {
	nc, err := nats.Connect(url,
		nats.Name(clientName),
		nats.Timeout(timeout),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("NATS disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info("NATS reconnected to %s", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConnect, url, err)
	}

	log.Info("Connected to NATS at %s", nc.ConnectedUrl())
	return NewPublisher(nc, subjectPrefix, log), nil
}

// NewPublisher создает издателя поверх существующего соединения
func NewPublisher(conn Conn, subjectPrefix string, log Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		prefix: subjectPrefix,
		log:    log,
	}
}

// PublishBookingCreated публикует событие booking.created
func (p *Publisher) PublishBookingCreated(ctx context.Context, event BookingCreatedEvent) error {
	return p.publish(ctx, TypeBookingCreated, event)
}

// PublishBookingCancelled публикует событие booking.cancelled
func (p *Publisher) PublishBookingCancelled(ctx context.Context, event BookingCancelledEvent) error {
	return p.publish(ctx, TypeBookingCancelled, event)
}

// Close дожидается отправки буфера и закрывает соединение
func (p *Publisher) Close() error {
	return p.conn.Drain()
}

func (p *Publisher) publish(ctx context.Context, eventType string, event interface{}) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPublish, eventType, err)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMarshal, eventType, err)
	}

	subject := p.subject(eventType)
	if err := p.conn.Publish(subject, payload); err != nil {
		p.log.Error("Failed to publish to NATS subject '%s': %v", subject, err)
		return fmt.Errorf("%w: %s: %v", ErrPublish, subject, err)
	}

	p.log.Info("Published event to NATS on subject '%s'", subject)
	return nil
}

func (p *Publisher) subject(eventType string) string {
	if p.prefix == "" {
		return eventType
	}
	return p.prefix + "." + eventType
}

// NopPublisher используется, когда публикация событий отключена в конфигурации
type NopPublisher struct{}

// PublishBookingCreated ничего не делает
func (NopPublisher) PublishBookingCreated(context.Context, BookingCreatedEvent) error {
	return nil
}

// PublishBookingCancelled ничего не делает
func (NopPublisher) PublishBookingCancelled(context.Context, BookingCancelledEvent) error {
	return nil
}

// Close ничего не делает
func (NopPublisher) Close() error { return nil }
