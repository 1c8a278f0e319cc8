package facades

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sbilibin2017/gw-threat-intel/internal/models"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

//go:generate mockgen -source=threat_report_kafka.go -destination=threat_report_kafka_mock.go -package=facades

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// NewKafkaWriter returns a writer for topic that keys messages by hash.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

// ThreatReportKafkaPublisher mirrors new threat reports to a Kafka topic.
type ThreatReportKafkaPublisher struct {
	writer KafkaWriter
	log    *zap.SugaredLogger
}

func NewThreatReportKafkaPublisher(writer KafkaWriter, log *zap.SugaredLogger) *ThreatReportKafkaPublisher {
	return &ThreatReportKafkaPublisher{writer: writer, log: log}
}

// Publish writes report keyed by its id.
func (p *ThreatReportKafkaPublisher) Publish(ctx context.Context, report *models.ThreatReportDB) error {
	body, err := report.ToBytes()
	if err != nil {
		return fmt.Errorf("encode threat report: %w", err)
	}

	msg := kafka.Message{
		Key:     []byte(strconv.FormatInt(report.ID, 10)),
		Value:   body,
		Headers: []kafka.Header{{Key: "content-type", Value: []byte(contentTypeJSON)}},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Errorw("failed to publish threat report to Kafka", "report_id", report.ID, "error", err)
		return fmt.Errorf("kafka write: %w", err)
	}

	p.log.Infow("threat report published to Kafka", "report_id", report.ID)
	return nil
}

// Close flushes and closes the underlying writer.
func (p *ThreatReportKafkaPublisher) Close() error {
	return p.writer.Close()
}
