package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// DefaultDialTimeout bounds how long a write request waits for the broker.
const DefaultDialTimeout = 2 * time.Second

// Publisher sends activity events to a durable RabbitMQ queue.  Each call
// dials its own connection.
type Publisher struct {
	URL         string
	Queue       string
	DialTimeout time.Duration
	log         *logrus.Entry
}

// NewPublisher returns a Publisher for the given broker URL and queue.
func NewPublisher(url, queue string) *Publisher {
	return &Publisher{
		URL:         url,
		Queue:       queue,
		DialTimeout: DefaultDialTimeout,
		log:         logrus.WithField("component", "activity-publisher"),
	}
}

// dialTimeout is DialTimeout, shortened to the time left on ctx.
func (p *Publisher) dialTimeout(ctx context.Context) time.Duration {
	d := p.DialTimeout
	if d <= 0 {
		d = DefaultDialTimeout
	}
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < d {
			d = max(left, time.Millisecond)
		}
	}
	return d
}

// Publish marshals ev and publishes it as a persistent JSON message.  The
// error is returned so the caller can decide whether to ignore it.
func (p *Publisher) Publish(ctx context.Context, ev ActivityEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	conn, err := amqp.DialConfig(p.URL, amqp.Config{Dial: amqp.DefaultDial(p.dialTimeout(ctx))})
	if err != nil {
		p.log.WithError(err).Debug("dial failed")
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// durable, not auto-deleted, not exclusive
	if _, err := ch.QueueDeclare(p.Queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Type:         ev.Type,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	// default exchange, routing key = queue name
	if err := ch.PublishWithContext(ctx, "", p.Queue, false, false, msg); err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	return nil
}
