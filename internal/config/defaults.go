package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "freight",
	Pass: "freight",
	Name: "freight",
}

var defaultAuth = Auth{
	Secret: "change-me",
	TTL:    24 * time.Hour,
}

var defaultKafka = Kafka{
	Topic:   "freight.events",
	GroupID: "freight-worker",
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       20,
	Burst:      40,
	TTL:        5 * time.Minute,
	MaxBuckets: 10000,
}

var defaultMatching = Matching{
	ReproposeRejected: false,
	Currency:          "KRW",
	OperationTimeout:  3 * time.Second,
}

// Default returns a configuration with every default applied.
func Default() *Config {
	return &Config{
		Port:          defaultPort,
		DB:            defaultDB,
		Auth:          defaultAuth,
		Kafka:         defaultKafka,
		RateLimit:     defaultRateLimit,
		Pprof:         Pprof{Addr: "127.0.0.1:6060"},
		Log:           Log{Backend: "slog", Level: "info"},
		Matching:      defaultMatching,
		HealthPort:    9090,
		MigrationsDir: "migrations",
	}
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}
