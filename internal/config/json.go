package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly
// durations.
type StructuredJSONConfig struct {
	App struct {
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"app,omitempty"`

	Adapter struct {
		APIAddress     string   `json:"api_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Search struct {
		PollInterval           Duration `json:"poll_interval"`
		BackgroundPollInterval Duration `json:"background_poll_interval"`
		MaxAttempts            int      `json:"max_attempts"`
		BackoffBase            Duration `json:"backoff_base"`
		BackoffCap             Duration `json:"backoff_cap"`
		BackoffJitterPercent   int      `json:"backoff_jitter_percent"`
	} `json:"search,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		TripsFile          string   `json:"trips_file"`
		RefreshInterval    Duration `json:"refresh_interval"`
		SessionIdleTimeout Duration `json:"session_idle_timeout"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
		},
		Adapter: Adapter{
			APIAddress:     jsonCfg.Adapter.APIAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Search: Search{
			PollInterval:           time.Duration(jsonCfg.Search.PollInterval),
			BackgroundPollInterval: time.Duration(jsonCfg.Search.BackgroundPollInterval),
			MaxAttempts:            jsonCfg.Search.MaxAttempts,
			BackoffBase:            time.Duration(jsonCfg.Search.BackoffBase),
			BackoffCap:             time.Duration(jsonCfg.Search.BackoffCap),
			BackoffJitterPercent:   jsonCfg.Search.BackoffJitterPercent,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Workers: Workers{
			TripsFile:          jsonCfg.Workers.TripsFile,
			RefreshInterval:    time.Duration(jsonCfg.Workers.RefreshInterval),
			SessionIdleTimeout: time.Duration(jsonCfg.Workers.SessionIdleTimeout),
		},
	}

	return cfg, nil
}

// Duration accepts both "1h30m" strings and integer nanoseconds in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
