// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of both binaries. It is
// assembled from a .env file, environment variables, command-line flags, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds versioning, logging and viewer token settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote flight API address and per-request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Search tunes the create/poll lifecycle of every search client.
	Search Search `envPrefix:"SEARCH_"`

	// Storage holds the search history database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings of the search server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds the dashboard trip watcher settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// TokenSignKey signs viewer tokens issued by the HTTP API.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of viewer tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a viewer token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Adapter holds the outbound connection to the flight API.
type Adapter struct {
	// APIAddress is the base URL of the flight API, e.g.
	// "https://api.example.com/v1/prices/search". The scheme defaults to http.
	// Env: ADAPTER_API_ADDRESS
	APIAddress string `env:"API_ADDRESS"`

	// RequestTimeout bounds a single create or poll request. A request that
	// times out counts as one failed attempt.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Search tunes the search lifecycle.
type Search struct {
	// PollInterval is the delay before each poll of an interactive search.
	// Env: SEARCH_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// BackgroundPollInterval is the poll delay used by dashboard searches.
	// Env: SEARCH_BACKGROUND_POLL_INTERVAL
	BackgroundPollInterval time.Duration `env:"BACKGROUND_POLL_INTERVAL"`

	// MaxAttempts is the number of failed requests per phase after which the
	// search ends in the error state.
	// Env: SEARCH_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// BackoffBase is the first retry delay; later delays grow exponentially.
	// Env: SEARCH_BACKOFF_BASE
	BackoffBase time.Duration `env:"BACKOFF_BASE"`

	// BackoffCap caps a single retry delay.
	// Env: SEARCH_BACKOFF_CAP
	BackoffCap time.Duration `env:"BACKOFF_CAP"`

	// BackoffJitterPercent randomises each retry delay by up to this share,
	// 0..100. Zero falls back to the default.
	// Env: SEARCH_BACKOFF_JITTER_PERCENT
	BackoffJitterPercent int `env:"BACKOFF_JITTER_PERCENT"`
}

// Storage groups persistence settings.
type Storage struct {
	// DB holds the history database connection.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the history database. A DSN starting with
// postgres:// or postgresql:// selects PostgreSQL, anything else is treated
// as a SQLite file path.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds inbound HTTP settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// TripsFile is a YAML file listing dashboard trips. Empty disables the
	// dashboard.
	// Env: WORKERS_TRIPS_FILE
	TripsFile string `env:"TRIPS_FILE"`

	// RefreshInterval is how often every dashboard trip is searched again.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// SessionIdleTimeout closes a viewer's search client after this long
	// without requests.
	// Env: WORKERS_SESSION_IDLE_TIMEOUT
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT"`
}

// GetStructuredConfig loads, merges and validates the configuration. Sources
// are merged with mergo, so the first source that sets a field wins:
//  1. Environment variables (after loading the .env file)
//  2. Command-line flags from args
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
