package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"freight-matching-platform/internal/auth"
	"freight-matching-platform/internal/config"
	"freight-matching-platform/internal/logx"
	"freight-matching-platform/internal/metrics"
	"freight-matching-platform/internal/ports/eventbus"
	"freight-matching-platform/internal/repository"
	"freight-matching-platform/internal/transport/kafka"
)

var migrate = repository.Migrate

// migrateSchema applies pending migrations; an empty directory disables it.
func migrateSchema(cfg *config.Config, logger logx.Logger) error {
	dir := strings.TrimSpace(cfg.MigrationsDir)
	if dir == "" {
		return nil
	}
	changed, err := migrate(cfg.DB.DSN(), dir)
	if err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	logger.Info("schema migrated",
		logx.String("event", "db_migrated"),
		logx.String("dir", dir),
		logx.Bool("changed", changed),
	)
	return nil
}

// provideRedis returns nil when no address is configured.
func provideRedis(ctx context.Context, cfg *config.Config, logger logx.Logger) (*redis.Client, error) {
	if strings.TrimSpace(cfg.Redis.Addr) == "" {
		logger.Info("redis not configured, token blacklist kept in memory")
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
	}
	logger.Info("redis connected", logx.String("addr", cfg.Redis.Addr))
	return client, nil
}

func provideBlacklist(client *redis.Client) auth.Blacklist {
	if client == nil {
		return auth.NewMemoryBlacklist()
	}
	return auth.NewRedisBlacklist(client)
}

var newProducer = func(logger logx.Logger, cfg config.Kafka, m *metrics.Registry) (eventbus.Publisher, error) {
	p, err := kafka.NewProducer(logger, cfg.Brokers, cfg.Topic, m.KafkaEvents)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// providePublisher connects the Kafka producer, or discards events when no brokers are set.
func providePublisher(cfg *config.Config, logger logx.Logger, m *metrics.Registry) (eventbus.Publisher, error) {
	if !cfg.Kafka.Enabled() {
		logger.Info("kafka not configured, domain events are discarded")
		return eventbus.Nop{}, nil
	}
	p, err := newProducer(logger, cfg.Kafka, m)
	if err != nil {
		return nil, err
	}
	logger.Info("kafka producer ready",
		logx.String("topic", cfg.Kafka.Topic),
		logx.Any("brokers", cfg.Kafka.Brokers),
	)
	return p, nil
}
