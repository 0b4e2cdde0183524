package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/prometheus/client_golang/prometheus"

	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/logx"
)

// HandleFunc processes a single domain.Event from Kafka
type HandleFunc func(context.Context, domain.Event) error

var newConsumerGroup = sarama.NewConsumerGroup

const retryDelay = time.Second

// Consumer wraps a Sarama consumer group and dispatches events to a handler
type Consumer struct {
	group   sarama.ConsumerGroup
	topic   string
	handler HandleFunc
	logger  logx.Logger
	events  *prometheus.CounterVec
}

// NewConsumer creates a new Kafka consumer. It returns nil when Kafka is not configured.
func NewConsumer(
	logger logx.Logger,
	brokers []string,
	groupID, topic string,
	h HandleFunc,
	events *prometheus.CounterVec,
) (*Consumer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" || strings.TrimSpace(groupID) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	group, err := newConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group:   group,
		topic:   topic,
		handler: h,
		logger:  logger,
		events:  events,
	}, nil
}

// Run consumes until ctx is done.
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}

	h := &groupHandler{c: c}
	for {
		if err := c.group.Consume(ctx, []string{c.topic}, h); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error("kafka consume error",
				logx.String("event", "kafka_consume_error"),
				logx.String("topic", c.topic),
				logx.Err(err),
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryDelay):
			}
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Close closes the consumer group.
func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

func (c *Consumer) count(typ domain.EventType, result string) {
	if c.events == nil {
		return
	}
	if typ == "" {
		typ = "unknown"
	}
	c.events.WithLabelValues(string(typ), result).Inc()
}

type groupHandler struct{ c *Consumer }

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim hands each message to the handler. Malformed messages and
// permanent handler errors are logged and skipped; any other handler error
// ends the claim so the message is delivered again.
func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log := h.c.logger
	for msg := range claim.Messages() {
		var dto EventDTO
		if err := json.Unmarshal(msg.Value, &dto); err != nil {
			log.Warn("kafka bad json",
				logx.String("event", "kafka_bad_json"),
				logx.Int64("offset", msg.Offset),
				logx.Err(err),
			)
			h.c.count("", "malformed")
			sess.MarkMessage(msg, "")
			continue
		}
		ev := ToDomain(dto)
		if ev.Type == "" || ev.EntityID <= 0 {
			log.Warn("kafka invalid event",
				logx.String("event", "kafka_invalid_event"),
				logx.String("type", string(ev.Type)),
				logx.Int64("entity_id", ev.EntityID),
			)
			h.c.count(ev.Type, "malformed")
			sess.MarkMessage(msg, "")
			continue
		}

		if err := h.c.handler(sess.Context(), ev); err != nil {
			if IsPermanent(err) {
				log.Error("kafka handle failed, skipping message",
					logx.String("event", "kafka_handle_skipped"),
					logx.String("type", string(ev.Type)),
					logx.Int64("entity_id", ev.EntityID),
					logx.Err(err),
				)
				h.c.count(ev.Type, "skipped")
				sess.MarkMessage(msg, "")
				continue
			}
			log.Error("kafka handle failed, retrying",
				logx.String("event", "kafka_handle_failed"),
				logx.String("type", string(ev.Type)),
				logx.Int64("entity_id", ev.EntityID),
				logx.Err(err),
			)
			h.c.count(ev.Type, "failed")
			return err
		}

		h.c.count(ev.Type, "consumed")
		sess.MarkMessage(msg, "")
	}
	return nil
}
