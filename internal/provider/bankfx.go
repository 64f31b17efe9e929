package provider

import (
	"context"
	"net/url"
	"time"

	"github.com/yxchen/macro-data/internal/model"
)

// BankFXRates fetches central-bank FX quotes for a currency over
// [start, end]. The currency is addressed by its localized display name
// (e.g. 美元 for USD) and rows carry localized quote columns:
// 日期, 中行汇买价, 中行钞买价, 中行钞卖价/汇卖价, 央行中间价.
func (c *Client) BankFXRates(ctx context.Context, currencyName string, start, end time.Time) ([]model.Row, error) {
	query := url.Values{
		"currency": {currencyName},
		"start":    {start.Format("20060102")},
		"end":      {end.Format("20060102")},
	}

	var rows []model.Row
	if err := c.get(ctx, "/v1/fx/quotes", query, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
