package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *IngesterConfig) Validate() error {
	providers := map[string]*ProviderConfig{
		"providers.history": &c.Providers.History,
		"providers.index":   &c.Providers.Index,
		"providers.bank_fx": &c.Providers.BankFX,
		"providers.macro":   &c.Providers.Macro,
		"providers.spot":    &c.Providers.Spot,
	}
	for name, p := range providers {
		if p.BaseURL == "" {
			return fmt.Errorf("%s.base_url is required", name)
		}
		if p.RatePerSec < 0 {
			return fmt.Errorf("%s.rate_per_sec must be >= 0", name)
		}
	}

	if c.Database.Host == "" {
		return errors.New("database.host is required")
	}
	if c.Database.Name == "" {
		return errors.New("database.name is required")
	}
	if c.Database.User == "" {
		return errors.New("database.user is required")
	}

	if c.Ingest.Workers < 1 {
		return errors.New("ingest.workers must be >= 1")
	}
	if c.Ingest.HistoryYears < 1 {
		return errors.New("ingest.history_years must be >= 1")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	return nil
}
