package config

import (
	"fmt"
)

// ClientConfig is the view of [StructuredConfig] used by the terminal client.
type ClientConfig struct {
	App     App
	Adapter Adapter
	Search  Search
	Storage Storage
	// ExportDir is where CSV exports are written. Defaults to the working
	// directory.
	ExportDir string
}

// GetClientConfig builds the client view from the merged configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return &ClientConfig{
		App:       cfg.App,
		Adapter:   cfg.Adapter,
		Search:    cfg.Search,
		Storage:   cfg.Storage,
		ExportDir: ".",
	}, nil
}
