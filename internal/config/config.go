package config

import "time"

// IngesterConfig is the root configuration for an ingestion run.
type IngesterConfig struct {
	Providers ProvidersConfig `yaml:"providers"`
	Database  DBConfig        `yaml:"database"`
	Ingest    IngestConfig    `yaml:"ingest"`
	Dedup     DedupConfig     `yaml:"dedup"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ProvidersConfig holds one entry per upstream provider family.
type ProvidersConfig struct {
	History ProviderConfig `yaml:"history"` // generic ticker/price-history API
	Index   ProviderConfig `yaml:"index"`   // exchange-index daily series API
	BankFX  ProviderConfig `yaml:"bank_fx"` // central-bank FX quote API
	Macro   ProviderConfig `yaml:"macro"`   // macro-indicator API
	Spot    ProviderConfig `yaml:"spot"`    // spot-exchange historical API
}

// ProviderConfig holds the HTTP settings for a single upstream service.
type ProviderConfig struct {
	BaseURL    string        `yaml:"base_url"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
	RatePerSec float64       `yaml:"rate_per_sec"` // request budget toward the upstream
	GB18030    bool          `yaml:"gb18030"`      // decode responses from GB18030
}

// DBConfig holds the canonical store connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// IngestConfig holds batch orchestration settings.
type IngestConfig struct {
	Workers      int           `yaml:"workers"`       // bounded worker pool size
	HistoryYears int           `yaml:"history_years"` // full backfill window
	FetchTimeout time.Duration `yaml:"fetch_timeout"` // per-asset fetch bound
}

// DedupConfig holds the cross-source resolution order.
type DedupConfig struct {
	// Priority is the ordered list of source tags; earlier wins. Sources
	// absent from the list share the lowest rank.
	Priority []string `yaml:"priority"`
}

// LoggingConfig holds process logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	File       string `yaml:"file"`  // optional rotated JSON log file
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}
