package model

import "time"

// Row is one raw provider row: column name to value, as decoded from the
// provider payload. Missing and NaN values are represented as nil.
type Row map[string]any

// Frame is a normalized-enough tabular result returned by a source adapter:
// a sequence of rows sharing a date axis and one or more value columns.
type Frame struct {
	Rows []Row
}

// Empty reports whether the frame carries no rows.
func (f Frame) Empty() bool { return len(f.Rows) == 0 }

// Len returns the number of rows.
func (f Frame) Len() int { return len(f.Rows) }

// Observation is one canonical time-series record destined for the store.
// The tuple (TypeCode, Symbol, Date) is the uniqueness key.
type Observation struct {
	TypeCode string    // Data class code (e.g., "INDEX", "CPI")
	Source   string    // Source adapter tag (e.g., "history", "forex")
	Symbol   string    // Canonical symbol (registry asset name)
	Date     time.Time // Calendar date, no time component

	Value  *float64 // Primary scalar (close price or indicator value)
	Open   *float64
	High   *float64
	Low    *float64
	Close  *float64
	Volume *int64

	// AdditionalData holds the full provider row for fields that have no
	// canonical column (indicator snapshots, bid/ask quotes, ...).
	AdditionalData map[string]any
}

// StoredObservation is one row read back from the canonical store.
type StoredObservation struct {
	ID       int64
	TypeCode string
	Source   string
	Symbol   string
	Date     time.Time

	Value  *float64
	Open   *float64
	High   *float64
	Low    *float64
	Close  *float64
	Volume *int64

	AdditionalData map[string]any

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Day truncates t to UTC midnight. All date comparisons in the engine
// operate on day granularity.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
