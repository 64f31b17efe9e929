package provider

import (
	"context"
	"net/url"

	"github.com/yxchen/macro-data/internal/model"
)

// SpotHistory fetches the historical series for a spot-exchange product
// code (e.g. Au99.99). Same contract as IndexDaily: full series, lowercase
// columns, client-side date filtering.
func (c *Client) SpotHistory(ctx context.Context, product string) ([]model.Row, error) {
	query := url.Values{"symbol": {product}}

	var rows []model.Row
	if err := c.get(ctx, "/v1/spot/history", query, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
