package facades

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sbilibin2017/gw-threat-intel/internal/models"
	"go.uber.org/zap"
)

//go:generate mockgen -source=threat_report_amqp.go -destination=threat_report_amqp_mock.go -package=facades

const (
	ThreatReportExchange   = "threat_report_exchange"
	ThreatReportRoutingKey = "threat_report.new"
	contentTypeJSON        = "application/json"
)

var (
	ErrPublishNacked  = errors.New("broker rejected the message")
	ErrNoConfirmation = errors.New("channel is not in confirm mode")
)

// AMQPConfirmation is the broker's pending answer to one publish.
type AMQPConfirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

// AMQPChannel is the part of *amqp.Channel used for publishing.
type AMQPChannel interface {
	Confirm(noWait bool) error
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithDeferredConfirmWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) (AMQPConfirmation, error)
	Close() error
}

// AMQPConnection is the part of *amqp.Connection used for publishing.
type AMQPConnection interface {
	Channel() (AMQPChannel, error)
	Close() error
}

// AMQPDialer opens a broker connection.
type AMQPDialer func(url string) (AMQPConnection, error)

// NewAMQPDialer returns a dialer whose TCP connect and handshake are bounded by timeout.
func NewAMQPDialer(timeout time.Duration) AMQPDialer {
	return func(url string) (AMQPConnection, error) {
		conn, err := amqp.DialConfig(url, amqp.Config{
			Heartbeat: 10 * time.Second,
			Locale:    "en_US",
			Dial:      amqp.DefaultDial(timeout),
		})
		if err != nil {
			return nil, err
		}
		return &amqpConnection{conn: conn}, nil
	}
}

type amqpConnection struct {
	conn *amqp.Connection
}

func (c *amqpConnection) Channel() (AMQPChannel, error) {
	ch, err := c.conn.Channel()
	if err != nil {
		return nil, err
	}
	return &amqpChannel{Channel: ch}, nil
}

func (c *amqpConnection) Close() error {
	return c.conn.Close()
}

type amqpChannel struct {
	*amqp.Channel
}

func (c *amqpChannel) PublishWithDeferredConfirmWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) (AMQPConfirmation, error) {
	confirm, err := c.Channel.PublishWithDeferredConfirmWithContext(ctx, exchange, key, mandatory, immediate, msg)
	if err != nil {
		return nil, err
	}
	// amqp091 returns a nil confirmation outside confirm mode.
	if confirm == nil {
		return nil, ErrNoConfirmation
	}
	return confirm, nil
}

// ThreatReportAMQPPublisher announces new threat reports on RabbitMQ.
// A connection and channel are opened for every message and closed afterwards.
// The channel runs in confirm mode and Publish waits for the broker's ack.
type ThreatReportAMQPPublisher struct {
	url  string
	dial AMQPDialer
	log  *zap.SugaredLogger
}

// NewThreatReportAMQPPublisher creates a publisher for the broker at url.
func NewThreatReportAMQPPublisher(url string, dial AMQPDialer, log *zap.SugaredLogger) *ThreatReportAMQPPublisher {
	return &ThreatReportAMQPPublisher{url: url, dial: dial, log: log}
}

// Publish declares the exchange and sends report as a persistent JSON message.
// It returns ErrPublishNacked when the broker refuses the message.
func (p *ThreatReportAMQPPublisher) Publish(ctx context.Context, report *models.ThreatReportDB) error {
	body, err := report.ToBytes()
	if err != nil {
		return fmt.Errorf("encode threat report: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	conn, err := p.dial(p.url)
	if err != nil {
		p.log.Errorw("failed to connect to RabbitMQ", "error", err)
		return fmt.Errorf("amqp dial: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Errorw("failed to open RabbitMQ channel", "error", err)
		return fmt.Errorf("amqp channel: %w", err)
	}
	defer ch.Close()

	if err := ch.Confirm(false); err != nil {
		p.log.Errorw("failed to enable publisher confirms", "error", err)
		return fmt.Errorf("amqp confirm: %w", err)
	}

	if err := ch.ExchangeDeclare(ThreatReportExchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		p.log.Errorw("failed to declare exchange", "exchange", ThreatReportExchange, "error", err)
		return fmt.Errorf("amqp exchange declare: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  contentTypeJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    strconv.FormatInt(report.ID, 10),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	confirm, err := ch.PublishWithDeferredConfirmWithContext(ctx, ThreatReportExchange, ThreatReportRoutingKey, false, false, msg)
	if err != nil {
		p.log.Errorw("failed to publish threat report", "report_id", report.ID, "error", err)
		return fmt.Errorf("amqp publish: %w", err)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		p.log.Errorw("no publish confirmation", "report_id", report.ID, "error", err)
		return fmt.Errorf("amqp confirm wait: %w", err)
	}
	if !acked {
		p.log.Errorw("broker nacked threat report", "report_id", report.ID)
		return ErrPublishNacked
	}

	p.log.Infow("threat report published to RabbitMQ", "report_id", report.ID, "routing_key", ThreatReportRoutingKey)
	return nil
}
