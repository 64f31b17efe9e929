package source

import (
	"context"
	"time"

	"github.com/yxchen/macro-data/internal/asset"
	"github.com/yxchen/macro-data/internal/model"
	"github.com/yxchen/macro-data/internal/provider"
)

// SpotAdapter wraps the spot-exchange historical series provider, keyed by
// product code. Same filtering pattern as the index adapter.
type SpotAdapter struct {
	client *provider.Client
	years  int
}

// NewSpotAdapter creates the spot-commodity adapter.
func NewSpotAdapter(client *provider.Client, years int) *SpotAdapter {
	return &SpotAdapter{client: client, years: years}
}

func (s *SpotAdapter) Name() string { return string(asset.SourceSpot) }

func (s *SpotAdapter) Fetch(ctx context.Context, a asset.Descriptor, incremental bool, lastObserved time.Time) (model.Frame, error) {
	rows, err := s.client.SpotHistory(ctx, a.Code)
	if err != nil {
		return model.Frame{}, upstream("fetch spot series", err)
	}
	if len(rows) == 0 {
		return model.Frame{}, upstream("empty payload", nil)
	}
	if !hasColumn(rows, "date") {
		return model.Frame{}, schemaf("spot series for %s has no date column", a.Code)
	}

	if incremental && !lastObserved.IsZero() {
		rows = filterAfter(rows, "date", lastObserved)
	} else {
		now := time.Now()
		rows = filterWindow(rows, "date", now.AddDate(-s.years, 0, 0), now)
	}

	return model.Frame{Rows: rows}, nil
}
