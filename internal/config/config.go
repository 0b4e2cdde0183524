package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
)

// Config stores service settings shared by the API and the worker.
type Config struct {
	Port          int
	DB            DB
	Auth          Auth
	Redis         Redis
	Kafka         Kafka
	RateLimit     RateLimit
	Pprof         Pprof
	Log           Log
	Matching      Matching
	HealthPort    int
	MigrationsDir string
}

// DB stores PostgreSQL connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN returns a postgres:// connection string usable by pgx and golang-migrate.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Auth stores access token settings.
type Auth struct {
	Secret string
	TTL    time.Duration
}

// Redis stores the token blacklist connection; empty Addr keeps the blacklist in memory.
type Redis struct {
	Addr     string
	Password string
	DB       int
}

// Kafka stores event bus settings; no brokers disables publishing and the worker.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Enabled reports whether brokers are configured.
func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }

// RateLimit stores per-client token bucket settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof stores the debug server settings.
type Pprof struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Log stores logger settings.
type Log struct {
	Backend string
	Level   string
}

// Matching stores lifecycle policy settings.
type Matching struct {
	ReproposeRejected bool
	Currency          string
	OperationTimeout  time.Duration
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := Default()
	if err := fromEnv(cfg); err != nil {
		return nil, err
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug, info, warn, error")
	pflag.StringVar(&cfg.MigrationsDir, "migrations", cfg.MigrationsDir, "directory with SQL migrations, empty to skip")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv(cfg *Config) error {
	var err error
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return err
	}
	if cfg.HealthPort, err = envInt("GRPC_HEALTH_PORT", cfg.HealthPort); err != nil {
		return err
	}
	cfg.MigrationsDir = envString("MIGRATIONS_DIR", cfg.MigrationsDir)

	cfg.DB.Host = envString("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = envString("POSTGRES_PORT", cfg.DB.Port)
	if _, err := cast.ToUint16E(cfg.DB.Port); err != nil {
		return fmt.Errorf("invalid POSTGRES_PORT %q: %w", cfg.DB.Port, err)
	}
	cfg.DB.User = envString("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = envString("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = envString("POSTGRES_DB", cfg.DB.Name)

	cfg.Auth.Secret = envString("JWT_SECRET", cfg.Auth.Secret)
	if cfg.Auth.TTL, err = envDuration("JWT_TTL", cfg.Auth.TTL); err != nil {
		return err
	}

	cfg.Redis.Addr = envString("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = envString("REDIS_PASSWORD", cfg.Redis.Password)
	if cfg.Redis.DB, err = envInt("REDIS_DB", cfg.Redis.DB); err != nil {
		return err
	}

	if v := envString("KAFKA_BROKERS", ""); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	cfg.Kafka.Topic = envString("KAFKA_TOPIC", cfg.Kafka.Topic)
	cfg.Kafka.GroupID = envString("KAFKA_GROUP_ID", cfg.Kafka.GroupID)

	if cfg.RateLimit.Enabled, err = envBool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled); err != nil {
		return err
	}
	if cfg.RateLimit.Rate, err = envFloat("RATE_LIMIT_RPS", cfg.RateLimit.Rate); err != nil {
		return err
	}
	if cfg.RateLimit.Burst, err = envInt("RATE_LIMIT_BURST", cfg.RateLimit.Burst); err != nil {
		return err
	}
	if cfg.RateLimit.TTL, err = envDuration("RATE_LIMIT_TTL", cfg.RateLimit.TTL); err != nil {
		return err
	}
	if cfg.RateLimit.MaxBuckets, err = envInt("RATE_LIMIT_MAX_BUCKETS", cfg.RateLimit.MaxBuckets); err != nil {
		return err
	}

	if cfg.Pprof.Enabled, err = envBool("PPROF_ENABLED", cfg.Pprof.Enabled); err != nil {
		return err
	}
	cfg.Pprof.Addr = envString("PPROF_ADDR", cfg.Pprof.Addr)
	cfg.Pprof.User = envString("PPROF_USER", cfg.Pprof.User)
	cfg.Pprof.Pass = envString("PPROF_PASS", cfg.Pprof.Pass)

	cfg.Log.Backend = envString("LOG_BACKEND", cfg.Log.Backend)
	cfg.Log.Level = envString("LOG_LEVEL", cfg.Log.Level)

	if cfg.Matching.ReproposeRejected, err = envBool("MATCH_REPROPOSE_REJECTED", cfg.Matching.ReproposeRejected); err != nil {
		return err
	}
	cfg.Matching.Currency = strings.ToUpper(envString("MATCH_CURRENCY", cfg.Matching.Currency))
	if cfg.Matching.OperationTimeout, err = envDuration("OPERATION_TIMEOUT", cfg.Matching.OperationTimeout); err != nil {
		return err
	}
	return nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.HealthPort < 0 || c.HealthPort > 65535 {
		return fmt.Errorf("invalid grpc health port: %d", c.HealthPort)
	}
	if strings.TrimSpace(c.Auth.Secret) == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.Auth.TTL <= 0 {
		return fmt.Errorf("invalid JWT_TTL: %s", c.Auth.TTL)
	}
	if len(c.Matching.Currency) != 3 {
		return fmt.Errorf("invalid MATCH_CURRENCY %q", c.Matching.Currency)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Rate <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("invalid rate limit: rate=%v burst=%d", c.RateLimit.Rate, c.RateLimit.Burst)
	}
	return nil
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := envString(key, "")
	if v == "" {
		return def, nil
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := envString(key, "")
	if v == "" {
		return def, nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func envBool(key string, def bool) (bool, error) {
	v := envString(key, "")
	if v == "" {
		return def, nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := envString(key, "")
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
