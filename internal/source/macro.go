package source

import (
	"context"
	"time"

	"github.com/yxchen/macro-data/internal/asset"
	"github.com/yxchen/macro-data/internal/model"
	"github.com/yxchen/macro-data/internal/provider"
)

// IndicatorFunc fetches one named macro-indicator table.
type IndicatorFunc func(context.Context) ([]model.Row, error)

// MacroAdapter dispatches asset codes to typed indicator fetchers. The
// registry is fixed at construction; codes without a binding are rejected
// there rather than failing at run time.
type MacroAdapter struct {
	indicators map[string]IndicatorFunc
}

// NewMacroAdapter builds the macro-indicator adapter and verifies every
// code in use has a registry binding.
func NewMacroAdapter(client *provider.Client, codes []string) (*MacroAdapter, error) {
	indicators := map[string]IndicatorFunc{
		"china_cpi_monthly":    client.ChinaCPIMonthly,
		"usa_cpi_monthly":      client.USACPIMonthly,
		"china_lpr":            client.ChinaLPR,
		"euro_interest_rate":   client.EuroInterestRate,
		"usa_interest_rate":    client.USAInterestRate,
		"china_interbank_rate": client.ChinaInterbankRate,
		"china_ppi_yearly":     client.ChinaPPIYearly,
		"usa_ppi":              client.USAPPI,
		"china_gdp_yearly":     client.ChinaGDPYearly,
		"china_money_supply":   client.ChinaMoneySupply,
		"gold_etf_holdings":    client.GoldETFHoldings,
	}

	for _, code := range codes {
		if _, ok := indicators[code]; !ok {
			return nil, configf("no indicator binding for asset code %q", code)
		}
	}

	return &MacroAdapter{indicators: indicators}, nil
}

func (m *MacroAdapter) Name() string { return string(asset.SourceMacro) }

// Fetch returns the provider's snapshot table as-is. These services give no
// date-filtering guarantee; their row set is the answer for the indicator,
// and the normalizer's existence check handles overlap with prior runs.
func (m *MacroAdapter) Fetch(ctx context.Context, a asset.Descriptor, incremental bool, lastObserved time.Time) (model.Frame, error) {
	fn, ok := m.indicators[a.Code]
	if !ok {
		return model.Frame{}, configf("no indicator binding for asset code %q", a.Code)
	}

	rows, err := fn(ctx)
	if err != nil {
		return model.Frame{}, upstream("fetch indicator table", err)
	}
	if len(rows) == 0 {
		return model.Frame{}, upstream("empty payload", nil)
	}

	return model.Frame{Rows: rows}, nil
}
