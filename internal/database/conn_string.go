package database

import (
	"fmt"
	"net/url"

	"github.com/yxchen/macro-data/internal/config"
)

// BuildConnString renders the store config as a postgres:// URL. The
// password is query-escaped so credentials with reserved characters
// survive, and sslmode falls back to prefer when unset.
func BuildConnString(cfg config.DBConfig) string {
	ssl := cfg.SSLMode
	if ssl == "" {
		ssl = "prefer"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, url.QueryEscape(cfg.Password), cfg.Host, cfg.Port, cfg.Name, ssl)
}
