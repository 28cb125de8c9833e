package config

import "time"

const defaultDotEnvFile = ".env"

// Defaults applied after every other source.
const (
	DefaultPollInterval           = time.Second
	DefaultBackgroundPollInterval = 5 * time.Second
	DefaultMaxAttempts            = 10
	DefaultRequestTimeout         = 15 * time.Second
	DefaultBackoffBase            = 200 * time.Millisecond
	DefaultBackoffCap             = 5 * time.Second
	DefaultBackoffJitterPercent   = 20
	DefaultRefreshInterval        = 15 * time.Minute
	DefaultSessionIdleTimeout     = 30 * time.Minute
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:       "dev",
			LogLevel:      "debug",
			TokenIssuer:   "flight-search",
			TokenDuration: 30 * 24 * time.Hour,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
		},
		Search: Search{
			PollInterval:           DefaultPollInterval,
			BackgroundPollInterval: DefaultBackgroundPollInterval,
			MaxAttempts:            DefaultMaxAttempts,
			BackoffBase:            DefaultBackoffBase,
			BackoffCap:             DefaultBackoffCap,
			BackoffJitterPercent:   DefaultBackoffJitterPercent,
		},
		Storage: Storage{
			DB: DB{DSN: "search_history.db"},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Workers: Workers{
			RefreshInterval:    DefaultRefreshInterval,
			SessionIdleTimeout: DefaultSessionIdleTimeout,
		},
	}
}
