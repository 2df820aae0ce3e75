package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/alimentify/pkg/cleanup"
	"github.com/limbo/alimentify/pkg/entity"
	"github.com/streadway/amqp"
)

type AMQPConfig struct {
	URL   string
	Queue string
}

// Channel is the subset of *amqp.Channel used by the publisher.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// DeliveryMessage is the body consumed by the report mailer.
type DeliveryMessage struct {
	UserID   uuid.UUID            `json:"uid"`
	Report   entity.ReportSummary `json:"report"`
	QueuedAt time.Time            `json:"queued_at"`
}

// Publisher hands report summaries to a durable queue for delivery.
// A publisher built with a dialer reopens its channel once when the broker has closed it.
type Publisher struct {
	mu     sync.Mutex
	ch     Channel
	queue  string
	redial Dialer
}

// Dialer opens a fresh channel to the broker.
type Dialer func() (Channel, error)

func NewPublisher(cfg AMQPConfig) (*Publisher, error) {
	var conn *amqp.Connection
	dial := func() (Channel, error) {
		c, err := amqp.Dial(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("creating amqp connection error: %w", err)
		}
		ch, err := c.Channel()
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("opening amqp channel error: %w", err)
		}
		if conn != nil {
			conn.Close()
		}
		conn = c
		return ch, nil
	}
	p, err := NewPublisherWithDialer(dial, cfg.Queue)
	if err != nil {
		if conn != nil {
			conn.Close()
		}
		return nil, err
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing amqp connection",
		F: func() error {
			p.mu.Lock()
			defer p.mu.Unlock()
			p.ch.Close()
			return conn.Close()
		},
	})
	return p, nil
}

func NewPublisherWithDialer(dial Dialer, queue string) (*Publisher, error) {
	ch, err := dial()
	if err != nil {
		return nil, err
	}
	p, err := NewPublisherWithChannel(ch, queue)
	if err != nil {
		return nil, err
	}
	p.redial = dial
	return p, nil
}

// NewPublisherWithChannel never reconnects: the caller owns the channel.
func NewPublisherWithChannel(ch Channel, queue string) (*Publisher, error) {
	if queue == "" {
		queue = "report_delivery"
	}
	if err := declare(ch, queue); err != nil {
		return nil, err
	}
	return &Publisher{
		ch:    ch,
		queue: queue,
	}, nil
}

func declare(ch Channel, queue string) error {
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declaring queue %s error: %w", queue, err)
	}
	return nil
}

func (p *Publisher) Notify(ctx context.Context, uid uuid.UUID, summary entity.ReportSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := sonic.Marshal(DeliveryMessage{
		UserID:   uid,
		Report:   summary,
		QueuedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encoding delivery message error: %w", err)
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    summary.ReportID.String(),
		Timestamp:    time.Now(),
		Body:         body,
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.Publish("", p.queue, false, false, msg)
	if errors.Is(err, amqp.ErrClosed) && p.redial != nil {
		if err = p.reopen(); err != nil {
			return fmt.Errorf("reconnecting to broker error: %w", err)
		}
		err = p.ch.Publish("", p.queue, false, false, msg)
	}
	if err != nil {
		return fmt.Errorf("publishing to %s error: %w", p.queue, err)
	}
	return nil
}

func (p *Publisher) reopen() error {
	ch, err := p.redial()
	if err != nil {
		return err
	}
	if err = declare(ch, p.queue); err != nil {
		ch.Close()
		return err
	}
	p.ch.Close()
	p.ch = ch
	return nil
}
