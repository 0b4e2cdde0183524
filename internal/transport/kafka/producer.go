package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/prometheus/client_golang/prometheus"

	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/logx"
)

var newSyncProducer = sarama.NewSyncProducer

// Producer publishes freight events to a topic.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	logger   logx.Logger
	events   *prometheus.CounterVec
}

// NewProducer connects a synchronous producer that waits for all in-sync replicas.
func NewProducer(logger logx.Logger, brokers []string, topic string, events *prometheus.CounterVec) (*Producer, error) {
	if len(brokers) == 0 || topic == "" {
		return nil, errors.New("kafka producer: brokers and topic are required")
	}
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = 3

	p, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return newProducer(p, topic, logger, events), nil
}

func newProducer(p sarama.SyncProducer, topic string, logger logx.Logger, events *prometheus.CounterVec) *Producer {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Producer{producer: p, topic: topic, logger: logger, events: events}
}

// Publish sends e and waits for the broker acknowledgement.
func (p *Producer) Publish(ctx context.Context, e domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(FromDomain(e))
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(partitionKey(e)),
		Value: sarama.ByteEncoder(body),
	})
	if err != nil {
		p.count(e.Type, "failed")
		return fmt.Errorf("publish %s: %w", e.Type, err)
	}
	p.count(e.Type, "published")
	p.logger.Debug("event published",
		logx.String("event", "kafka_published"),
		logx.String("type", string(e.Type)),
		logx.Int64("entity_id", e.EntityID),
		logx.Int("partition", int(partition)),
		logx.Int64("offset", offset),
	)
	return nil
}

// Close flushes and closes the producer.
func (p *Producer) Close() error {
	return p.producer.Close()
}

func (p *Producer) count(typ domain.EventType, result string) {
	if p.events != nil {
		p.events.WithLabelValues(string(typ), result).Inc()
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
