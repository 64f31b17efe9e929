// Package normalize maps raw provider frames into canonical observations
// and persists them.
//
// The processor owns the last line of defense for idempotence: even if an
// adapter's incremental filter lets an already-stored date through, the
// existence check skips it before the write.
package normalize

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/yxchen/macro-data/internal/asset"
	"github.com/yxchen/macro-data/internal/model"
)

// Store is the persistence surface the processor writes through.
type Store interface {
	Exists(ctx context.Context, typeCode, symbol string, date time.Time) (bool, error)
	Upsert(ctx context.Context, obs model.Observation) (created bool, err error)
}

// Processor converts frames to observations and upserts them.
type Processor struct {
	store  Store
	logger *slog.Logger
}

// New creates a Processor.
func New(store Store, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{store: store, logger: logger}
}

// Process normalizes and persists every row of the frame for the given
// asset. Rows with no parseable date are skipped; rows already stored are
// skipped when incremental. Returns counts of newly inserted and updated
// records.
func (p *Processor) Process(ctx context.Context, a asset.Descriptor, frame model.Frame, incremental bool) (newCount, updatedCount int, err error) {
	aliases := aliasesFor(a.Source)

	var firstWriteErr error
	for _, row := range frame.Rows {
		date, ok := resolveDate(row, aliases.date)
		if !ok {
			p.logger.Debug("skipping row with unparseable date", "asset", a.Name)
			continue
		}

		if incremental {
			exists, err := p.store.Exists(ctx, string(a.Class), a.Name, date)
			if err != nil {
				return newCount, updatedCount, err
			}
			if exists {
				continue
			}
		}

		obs := buildObservation(a, date, row, aliases)

		created, err := p.store.Upsert(ctx, obs)
		if err != nil {
			p.logger.Error("upsert failed",
				"asset", a.Name,
				"date", date.Format("2006-01-02"),
				"error", err,
			)
			if firstWriteErr == nil {
				firstWriteErr = err
			}
			continue
		}
		if created {
			newCount++
		} else {
			updatedCount++
		}
	}

	// A row-level write failure is not fatal while other rows landed; an
	// asset whose every write failed is.
	if firstWriteErr != nil && newCount == 0 && updatedCount == 0 {
		return 0, 0, firstWriteErr
	}
	return newCount, updatedCount, nil
}

// buildObservation resolves canonical fields from a raw row. Rows with a
// close price become OHLCV records (missing open/high/low fall back to
// close); rows with only an indicator value persist that scalar; rows with
// neither persist value = null. The full row always lands in
// AdditionalData with NaN normalized to explicit nulls.
func buildObservation(a asset.Descriptor, date time.Time, row model.Row, aliases fieldAliases) model.Observation {
	obs := model.Observation{
		TypeCode:       string(a.Class),
		Source:         string(a.Source),
		Symbol:         a.Name,
		Date:           date,
		AdditionalData: sanitize(row),
	}

	closeVal := resolveFloat(row, aliases.close)
	if closeVal != nil {
		open := resolveFloat(row, aliases.open)
		high := resolveFloat(row, aliases.high)
		low := resolveFloat(row, aliases.low)
		if open == nil {
			open = closeVal
		}
		if high == nil {
			high = closeVal
		}
		if low == nil {
			low = closeVal
		}
		obs.Value = closeVal
		obs.Open = open
		obs.High = high
		obs.Low = low
		obs.Close = closeVal
		obs.Volume = resolveInt(row, aliases.volume)
		return obs
	}

	// Indicator snapshot row: no price axis, a single reported value at
	// best.
	obs.Value = resolveFloat(row, aliases.value)
	return obs
}

func resolveDate(row model.Row, aliases []string) (time.Time, bool) {
	for _, key := range aliases {
		if v, ok := row[key]; ok {
			if d, ok := model.ParseDate(v); ok {
				return d, true
			}
		}
	}
	return time.Time{}, false
}

func resolveFloat(row model.Row, aliases []string) *float64 {
	for _, key := range aliases {
		if v, ok := row[key]; ok {
			if f, ok := asFloat(v); ok {
				return &f
			}
		}
	}
	return nil
}

func resolveInt(row model.Row, aliases []string) *int64 {
	if f := resolveFloat(row, aliases); f != nil {
		n := int64(*f)
		return &n
	}
	return nil
}

// asFloat coerces a raw cell to float64. NaN, nil, and unparseable values
// report false.
func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(x), ",", "")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// sanitize copies a row, replacing NaN/Inf with explicit nulls so the
// persisted JSON payload keeps a stable shape.
func sanitize(row model.Row) map[string]any {
	out := make(map[string]any, len(row))
	for k, v := range row {
		if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			out[k] = nil
			continue
		}
		out[k] = v
	}
	return out
}
