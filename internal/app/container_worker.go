package app

import (
	"context"
	"errors"

	"go.uber.org/dig"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/config"
	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/logx"
	"freight-matching-platform/internal/metrics"
	"freight-matching-platform/internal/service/automatch"
	"freight-matching-platform/internal/service/events"
	"freight-matching-platform/internal/service/match"
	"freight-matching-platform/internal/transport/kafka"
)

var newConsumer = kafka.NewConsumer

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(
			matcher *automatch.Service,
			reproposer *match.Service,
			cfg *config.Config,
			logger logx.Logger,
		) *events.Processor {
			return events.NewProcessor(matcher, reproposer, cfg.Matching.ReproposeRejected, logger)
		},
		func(
			cfg *config.Config,
			logger logx.Logger,
			p *events.Processor,
			m *metrics.Registry,
		) (*kafka.Consumer, error) {
			return newConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, rejectionsArePermanent(p.Handle), m.KafkaEvents)
		},
	)
}

// rejectionsArePermanent marks domain rejections as permanent so the consumer
// skips the event. Storage and timeout errors stay retryable.
func rejectionsArePermanent(h kafka.HandleFunc) kafka.HandleFunc {
	return func(ctx context.Context, e domain.Event) error {
		err := h(ctx, e)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, apperr.Invalid),
			errors.Is(err, apperr.MissingReason),
			errors.Is(err, apperr.Unauthorized),
			errors.Is(err, apperr.NotFound),
			errors.Is(err, apperr.InvalidTransition):
			return kafka.Permanent(err)
		default:
			return err
		}
	}
}
