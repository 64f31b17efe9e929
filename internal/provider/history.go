package provider

import (
	"context"
	"net/url"
	"time"

	"github.com/yxchen/macro-data/internal/model"
)

// HistoryCandles fetches daily candles for a ticker over [start, end].
// The history service reports capitalized column names
// (Date/Open/High/Low/Close/Volume).
func (c *Client) HistoryCandles(ctx context.Context, symbol string, start, end time.Time) ([]model.Row, error) {
	query := url.Values{
		"symbol": {symbol},
		"start":  {start.Format("2006-01-02")},
		"end":    {end.Format("2006-01-02")},
	}

	var rows []model.Row
	if err := c.get(ctx, "/v1/history", query, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
