package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// ActivityLogFile is the file name the consumer appends to inside its
// log directory.
const ActivityLogFile = "activity.log"

// ActivityConsumer drains the activity queue into an append-only log file.
type ActivityConsumer struct {
	URL    string
	Queue  string
	LogDir string
	log    *logrus.Entry
}

// NewActivityConsumer returns a consumer writing to dir/activity.log.
func NewActivityConsumer(url, queue, dir string) *ActivityConsumer {
	return &ActivityConsumer{
		URL:    url,
		Queue:  queue,
		LogDir: dir,
		log:    logrus.WithField("component", "activity-consumer"),
	}
}

// Run connects to RabbitMQ and consumes until ctx is cancelled.  Broker
// failures are retried with exponential backoff capped at 30s.  Messages
// that cannot be handled are rejected without requeue.
func (c *ActivityConsumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(c.URL)
		if err != nil {
			c.log.WithError(err).Warnf("dial failed; retrying in %s", backoff)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = c.consume(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.WithError(err).Warn("consume loop ended; reconnecting")
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (c *ActivityConsumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		c.log.WithError(err).Warn("set QoS failed")
	}
	if _, err := ch.QueueDeclare(c.Queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.ConsumeWithContext(ctx, c.Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := c.Handle(d.Body); err != nil {
			c.log.WithError(err).WithField("message_id", d.MessageId).Error("handle message failed")
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

// Handle decodes one message body and appends it to the activity log.
func (c *ActivityConsumer) Handle(body []byte) error {
	var ev ActivityEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if ev.Type == "" {
		return errors.New("event without type")
	}
	if err := os.MkdirAll(c.LogDir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", c.LogDir, err)
	}
	f, err := os.OpenFile(filepath.Join(c.LogDir, ActivityLogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(FormatActivity(ev)); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

// FormatActivity renders ev as one newline-terminated log line.
func FormatActivity(ev ActivityEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s | id=%d", ev.OccurredAt.UTC().Format(time.RFC3339), ev.Type, ev.EntityID)
	if ev.Name != "" {
		fmt.Fprintf(&b, " | name=%q", ev.Name)
	}
	if ev.ArtistID != 0 {
		fmt.Fprintf(&b, " | artist_id=%d", ev.ArtistID)
	}
	if ev.VenueID != 0 {
		fmt.Fprintf(&b, " | venue_id=%d", ev.VenueID)
	}
	if !ev.StartTime.IsZero() {
		fmt.Fprintf(&b, " | start_time=%s", ev.StartTime.UTC().Format(time.RFC3339))
	}
	b.WriteByte('\n')
	return b.String()
}
