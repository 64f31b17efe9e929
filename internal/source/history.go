package source

import (
	"context"
	"time"

	"github.com/yxchen/macro-data/internal/asset"
	"github.com/yxchen/macro-data/internal/model"
	"github.com/yxchen/macro-data/internal/provider"
)

// HistoryAdapter wraps the generic price-history provider.
type HistoryAdapter struct {
	client *provider.Client
	years  int // full backfill window
}

// NewHistoryAdapter creates the ticker-history adapter. years is the full
// backfill window in years.
func NewHistoryAdapter(client *provider.Client, years int) *HistoryAdapter {
	return &HistoryAdapter{client: client, years: years}
}

func (h *HistoryAdapter) Name() string { return string(asset.SourceHistory) }

// Fetch requests [lastObserved-1d, now] when incremental, else a full
// backfill window. The one-day look-back tolerates late-arriving same-day
// bars and boundary timezone skew; the normalizer's existence check makes
// the overlap harmless.
func (h *HistoryAdapter) Fetch(ctx context.Context, a asset.Descriptor, incremental bool, lastObserved time.Time) (model.Frame, error) {
	end := time.Now()
	var start time.Time
	if incremental && !lastObserved.IsZero() {
		start = lastObserved.AddDate(0, 0, -1)
	} else {
		start = end.AddDate(-h.years, 0, 0)
	}

	rows, err := h.client.HistoryCandles(ctx, a.Code, start, end)
	if err != nil {
		return model.Frame{}, upstream("fetch candles", err)
	}
	if len(rows) == 0 {
		return model.Frame{}, upstream("empty payload", nil)
	}

	return model.Frame{Rows: rows}, nil
}
