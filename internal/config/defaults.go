package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultProviderTimeout = 30 * time.Second
	DefaultMaxRetries      = 3
	DefaultRatePerSec      = 2.0
	DefaultDBPort          = 5432
	DefaultDBSSLMode       = "prefer"
	DefaultMaxConns        = 10
	DefaultMinConns        = 2
	DefaultWorkers         = 3
	DefaultHistoryYears    = 3
	DefaultFetchTimeout    = 2 * time.Minute
	DefaultLogLevel        = "info"
	DefaultLogMaxSizeMB    = 50
	DefaultLogMaxBackups   = 5
)

// DefaultDedupPriority is the cross-source resolution order when the config
// does not name one: ticker history wins over bank FX quotes, everything
// else shares the lowest rank.
var DefaultDedupPriority = []string{"history", "forex"}

func (c *IngesterConfig) applyDefaults() {
	applyProviderDefaults(&c.Providers.History)
	applyProviderDefaults(&c.Providers.Index)
	applyProviderDefaults(&c.Providers.BankFX)
	applyProviderDefaults(&c.Providers.Macro)
	applyProviderDefaults(&c.Providers.Spot)

	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	if c.Ingest.Workers == 0 {
		c.Ingest.Workers = DefaultWorkers
	}
	if c.Ingest.HistoryYears == 0 {
		c.Ingest.HistoryYears = DefaultHistoryYears
	}
	if c.Ingest.FetchTimeout == 0 {
		c.Ingest.FetchTimeout = DefaultFetchTimeout
	}

	if len(c.Dedup.Priority) == 0 {
		c.Dedup.Priority = append([]string(nil), DefaultDedupPriority...)
	}

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = DefaultLogMaxSizeMB
	}
	if c.Logging.MaxBackups == 0 {
		c.Logging.MaxBackups = DefaultLogMaxBackups
	}
}

func applyProviderDefaults(p *ProviderConfig) {
	if p.Timeout == 0 {
		p.Timeout = DefaultProviderTimeout
	}
	if p.MaxRetries == 0 {
		p.MaxRetries = DefaultMaxRetries
	}
	if p.RatePerSec == 0 {
		p.RatePerSec = DefaultRatePerSec
	}
}
