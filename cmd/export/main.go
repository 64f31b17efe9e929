// Command export dumps the authoritative series for one symbol as JSON.
//
// The canonical store may hold several sources' rows for the same symbol
// and date; export applies the configured cross-source priority so the
// output carries exactly one observation per date.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/yxchen/macro-data/internal/config"
	"github.com/yxchen/macro-data/internal/database"
	"github.com/yxchen/macro-data/internal/dedup"
	"github.com/yxchen/macro-data/internal/logging"
	"github.com/yxchen/macro-data/internal/store"
	"github.com/yxchen/macro-data/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/ingester.yaml", "path to config file")
	symbol := flag.String("symbol", "", "symbol to export (required)")
	from := flag.String("from", "", "start date YYYY-MM-DD (default: 1 year ago)")
	to := flag.String("to", "", "end date YYYY-MM-DD (default: today)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	if *symbol == "" {
		fmt.Fprintln(os.Stderr, "-symbol is required")
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser := logging.New(cfg.Logging)
	defer logCloser.Close()

	now := time.Now()
	fromDate := now.AddDate(-1, 0, 0)
	toDate := now
	if *from != "" {
		if fromDate, err = time.Parse("2006-01-02", *from); err != nil {
			fmt.Fprintf(os.Stderr, "bad -from date: %v\n", err)
			os.Exit(2)
		}
	}
	if *to != "" {
		if toDate, err = time.Parse("2006-01-02", *to); err != nil {
			fmt.Fprintf(os.Stderr, "bad -to date: %v\n", err)
			os.Exit(2)
		}
	}

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	st := store.New(pool, logger)
	rows, err := st.QueryRange(ctx, *symbol, fromDate, toDate)
	if err != nil {
		logger.Error("query failed", "symbol", *symbol, "error", err)
		os.Exit(1)
	}

	resolver := dedup.NewResolver(cfg.Dedup.Priority)
	series := resolver.Resolve(rows)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(series); err != nil {
		logger.Error("encode failed", "error", err)
		os.Exit(1)
	}
}
