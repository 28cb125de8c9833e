// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// validate checks the settings every binary needs: the flight API, the
// search lifecycle and the history database.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.APIAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	s := cfg.Search
	if s.PollInterval <= 0 || s.BackgroundPollInterval <= 0 || s.MaxAttempts <= 0 ||
		s.BackoffBase <= 0 || s.BackoffCap < s.BackoffBase ||
		s.BackoffJitterPercent < 0 || s.BackoffJitterPercent > 100 {
		return ErrInvalidSearchConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	return nil
}

// ValidateServer checks the additional settings of the HTTP server binary.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if (cfg.Workers.TripsFile != "" && cfg.Workers.RefreshInterval <= 0) || cfg.Workers.SessionIdleTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
