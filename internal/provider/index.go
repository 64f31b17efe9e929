package provider

import (
	"context"
	"net/url"

	"github.com/yxchen/macro-data/internal/model"
)

// IndexDaily fetches the full daily series for an exchange index code.
// The service does not support server-side date filtering; callers filter
// client-side. Columns are lowercase (date/open/high/low/close/volume).
func (c *Client) IndexDaily(ctx context.Context, symbol string) ([]model.Row, error) {
	query := url.Values{"symbol": {symbol}}

	var rows []model.Row
	if err := c.get(ctx, "/v1/index/daily", query, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
