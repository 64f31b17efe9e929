package provider

import (
	"context"

	"github.com/yxchen/macro-data/internal/model"
)

// The macro-indicator service exposes one snapshot table per named
// indicator. Tables are small, not date-filterable, and carry localized
// columns (日期, 今值, 前值, 预测值) or indicator-specific layouts such as
// the M0/M1/M2 money supply breakdown.

func (c *Client) indicator(ctx context.Context, name string) ([]model.Row, error) {
	var rows []model.Row
	if err := c.get(ctx, "/v1/indicator/"+name, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ChinaCPIMonthly fetches the CN CPI month-over-month table.
func (c *Client) ChinaCPIMonthly(ctx context.Context) ([]model.Row, error) {
	return c.indicator(ctx, "china_cpi_monthly")
}

// USACPIMonthly fetches the US CPI month-over-month table.
func (c *Client) USACPIMonthly(ctx context.Context) ([]model.Row, error) {
	return c.indicator(ctx, "usa_cpi_monthly")
}

// ChinaLPR fetches the CN loan prime rate table.
func (c *Client) ChinaLPR(ctx context.Context) ([]model.Row, error) {
	return c.indicator(ctx, "china_lpr")
}

// EuroInterestRate fetches the ECB main refinancing rate table.
func (c *Client) EuroInterestRate(ctx context.Context) ([]model.Row, error) {
	return c.indicator(ctx, "euro_interest_rate")
}

// USAInterestRate fetches the federal funds target rate table.
func (c *Client) USAInterestRate(ctx context.Context) ([]model.Row, error) {
	return c.indicator(ctx, "usa_interest_rate")
}

// ChinaInterbankRate fetches the CN interbank offered rate table.
func (c *Client) ChinaInterbankRate(ctx context.Context) ([]model.Row, error) {
	return c.indicator(ctx, "china_interbank_rate")
}

// ChinaPPIYearly fetches the CN PPI year-over-year table.
func (c *Client) ChinaPPIYearly(ctx context.Context) ([]model.Row, error) {
	return c.indicator(ctx, "china_ppi_yearly")
}

// USAPPI fetches the US PPI table.
func (c *Client) USAPPI(ctx context.Context) ([]model.Row, error) {
	return c.indicator(ctx, "usa_ppi")
}

// ChinaGDPYearly fetches the CN GDP year-over-year table.
func (c *Client) ChinaGDPYearly(ctx context.Context) ([]model.Row, error) {
	return c.indicator(ctx, "china_gdp_yearly")
}

// ChinaMoneySupply fetches the CN money supply (M0/M1/M2) table.
func (c *Client) ChinaMoneySupply(ctx context.Context) ([]model.Row, error) {
	return c.indicator(ctx, "china_money_supply")
}

// GoldETFHoldings fetches the global gold ETF holdings report.
func (c *Client) GoldETFHoldings(ctx context.Context) ([]model.Row, error) {
	return c.indicator(ctx, "gold_etf_holdings")
}
