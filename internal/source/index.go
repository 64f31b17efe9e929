package source

import (
	"context"
	"time"

	"github.com/yxchen/macro-data/internal/asset"
	"github.com/yxchen/macro-data/internal/model"
	"github.com/yxchen/macro-data/internal/provider"
)

// IndexAdapter wraps the exchange-index daily series provider. The service
// cannot filter by date server-side, so the adapter fetches the full series
// and filters client-side.
type IndexAdapter struct {
	client *provider.Client
	years  int
}

// NewIndexAdapter creates the exchange-index adapter.
func NewIndexAdapter(client *provider.Client, years int) *IndexAdapter {
	return &IndexAdapter{client: client, years: years}
}

func (i *IndexAdapter) Name() string { return string(asset.SourceIndex) }

func (i *IndexAdapter) Fetch(ctx context.Context, a asset.Descriptor, incremental bool, lastObserved time.Time) (model.Frame, error) {
	rows, err := i.client.IndexDaily(ctx, a.Code)
	if err != nil {
		return model.Frame{}, upstream("fetch index series", err)
	}
	if len(rows) == 0 {
		return model.Frame{}, upstream("empty payload", nil)
	}
	if !hasColumn(rows, "date") {
		return model.Frame{}, schemaf("index series for %s has no date column", a.Code)
	}

	if incremental && !lastObserved.IsZero() {
		rows = filterAfter(rows, "date", lastObserved)
	} else {
		now := time.Now()
		rows = filterWindow(rows, "date", now.AddDate(-i.years, 0, 0), now)
	}

	// Nothing past lastObserved is not a failure; the feed simply has no
	// new trading days yet.
	return model.Frame{Rows: rows}, nil
}
