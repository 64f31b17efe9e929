// Package source implements one fetch adapter per upstream provider family.
//
// Adapters translate an asset descriptor into provider requests and return
// a raw tabular frame. They never panic past their own boundary: every
// network, schema, or configuration problem surfaces as a typed *Error so
// one broken feed cannot abort a batch.
package source

import (
	"context"
	"fmt"
	"time"

	"github.com/yxchen/macro-data/internal/asset"
	"github.com/yxchen/macro-data/internal/model"
)

// Kind classifies adapter failures for reporting.
type Kind string

const (
	// KindConfig marks configuration errors (unknown code, unsupported
	// currency). Retrying will not help until the catalog changes.
	KindConfig Kind = "config"

	// KindUpstream marks transient upstream failures (network, empty
	// payload). The next scheduled run retries naturally.
	KindUpstream Kind = "upstream"

	// KindSchema marks unexpected payload shapes (missing required column).
	KindSchema Kind = "schema"
)

// Error is a typed adapter failure.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func configf(format string, args ...any) *Error {
	return &Error{Kind: KindConfig, Msg: fmt.Sprintf(format, args...)}
}

func schemaf(format string, args ...any) *Error {
	return &Error{Kind: KindSchema, Msg: fmt.Sprintf(format, args...)}
}

func upstream(msg string, err error) *Error {
	return &Error{Kind: KindUpstream, Msg: msg, Err: err}
}

// Adapter fetches raw rows for one asset.
//
// When incremental is true and lastObserved is non-zero, implementations
// narrow the request (or filter the response) to dates strictly after
// lastObserved. An empty frame with a nil error means "no new data".
type Adapter interface {
	// Name returns the source tag recorded in the store.
	Name() string

	Fetch(ctx context.Context, a asset.Descriptor, incremental bool, lastObserved time.Time) (model.Frame, error)
}

// filterAfter keeps rows whose date (under dateKey) falls strictly after
// the day-normalized cutoff. Rows without a parseable date are kept for the
// normalizer to deal with.
func filterAfter(rows []model.Row, dateKey string, cutoff time.Time) []model.Row {
	day := model.Day(cutoff)
	out := rows[:0]
	for _, r := range rows {
		d, ok := model.ParseDate(r[dateKey])
		if ok && !d.After(day) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// filterWindow keeps rows whose date falls inside [from, to].
func filterWindow(rows []model.Row, dateKey string, from, to time.Time) []model.Row {
	lo, hi := model.Day(from), model.Day(to)
	out := rows[:0]
	for _, r := range rows {
		d, ok := model.ParseDate(r[dateKey])
		if !ok {
			out = append(out, r)
			continue
		}
		if d.Before(lo) || d.After(hi) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func hasColumn(rows []model.Row, key string) bool {
	if len(rows) == 0 {
		return false
	}
	_, ok := rows[0][key]
	return ok
}
