package source

import (
	"context"
	"strings"
	"time"

	"github.com/yxchen/macro-data/internal/asset"
	"github.com/yxchen/macro-data/internal/model"
	"github.com/yxchen/macro-data/internal/provider"
)

// bankCurrencyNames maps base currency codes to the localized display
// names the central-bank FX service is addressed by. Pairs quoted against
// CNY outside this set are a configuration error.
var bankCurrencyNames = map[string]string{
	"USD": "美元",
	"EUR": "欧元",
	"GBP": "英镑",
	"JPY": "日元",
	"HKD": "港币",
	"AUD": "澳元",
	"CAD": "加元",
}

// bankQuoteColumns renames the bank quote columns to canonical OHLC. The
// remittance buy price opens the day's band, banknote buy/sell bound it,
// and the central parity rate stands in for close.
var bankQuoteColumns = map[string]string{
	"日期":        "date",
	"中行汇买价":     "open",
	"中行钞买价":     "low",
	"中行钞卖价/汇卖价": "high",
	"央行中间价":     "close",
}

// historyPairColumns renames history-provider candles to the shared
// lowercase shape both forex branches funnel into.
var historyPairColumns = map[string]string{
	"Date":   "date",
	"Open":   "open",
	"High":   "high",
	"Low":    "low",
	"Close":  "close",
	"Volume": "volume",
}

var forexRequiredColumns = []string{"date", "open", "high", "low", "close"}

// ForexAdapter fetches currency pairs. CNY-quoted pairs come from the
// central-bank FX service; all other pairs from the generic history
// provider under a synthesized pair ticker.
type ForexAdapter struct {
	bank    *provider.Client
	history *provider.Client
	years   int
}

// NewForexAdapter creates the foreign-exchange adapter.
func NewForexAdapter(bank, history *provider.Client, years int) *ForexAdapter {
	return &ForexAdapter{bank: bank, history: history, years: years}
}

func (f *ForexAdapter) Name() string { return string(asset.SourceForex) }

func (f *ForexAdapter) Fetch(ctx context.Context, a asset.Descriptor, incremental bool, lastObserved time.Time) (model.Frame, error) {
	base, quote, err := splitPair(a.Code)
	if err != nil {
		return model.Frame{}, err
	}

	var (
		rows    []model.Row
		columns map[string]string
	)
	if quote == "CNY" {
		name, ok := bankCurrencyNames[base]
		if !ok {
			return model.Frame{}, configf("unsupported base currency %q for bank FX quotes", base)
		}

		end := time.Now()
		var start time.Time
		if incremental && !lastObserved.IsZero() {
			start = lastObserved.AddDate(0, 0, 1)
		} else {
			start = end.AddDate(-f.years, 0, 0)
		}

		rows, err = f.bank.BankFXRates(ctx, name, start, end)
		if err != nil {
			return model.Frame{}, upstream("fetch bank FX quotes", err)
		}
		columns = bankQuoteColumns
	} else {
		end := time.Now()
		var start time.Time
		if incremental && !lastObserved.IsZero() {
			start = lastObserved.AddDate(0, 0, 1)
		} else {
			start = end.AddDate(-f.years, 0, 0)
		}

		// Synthesized pair ticker, e.g. EURUSD=X.
		rows, err = f.history.HistoryCandles(ctx, base+quote+"=X", start, end)
		if err != nil {
			return model.Frame{}, upstream("fetch pair candles", err)
		}
		columns = historyPairColumns
	}

	if len(rows) == 0 {
		return model.Frame{}, upstream("empty payload", nil)
	}

	return f.postProcess(rows, columns, incremental, lastObserved)
}

// postProcess is the shared funnel for both branches: rename provider
// columns to canonical OHLC, verify the required set, and apply the
// incremental date filter.
func (f *ForexAdapter) postProcess(rows []model.Row, columns map[string]string, incremental bool, lastObserved time.Time) (model.Frame, error) {
	renamed := make([]model.Row, 0, len(rows))
	for _, r := range rows {
		nr := make(model.Row, len(r))
		for k, v := range r {
			if canonical, ok := columns[k]; ok {
				nr[canonical] = v
			} else {
				nr[k] = v
			}
		}
		renamed = append(renamed, nr)
	}

	for _, col := range forexRequiredColumns {
		if !hasColumn(renamed, col) {
			return model.Frame{}, schemaf("missing required column %q", col)
		}
	}

	if incremental && !lastObserved.IsZero() {
		renamed = filterAfter(renamed, "date", lastObserved)
	}

	return model.Frame{Rows: renamed}, nil
}

// splitPair parses a pair code in "USDCNY" or "USD CNY" form.
func splitPair(code string) (base, quote string, err error) {
	if len(code) == 6 && !strings.Contains(code, " ") {
		return code[:3], code[3:], nil
	}
	parts := strings.Fields(code)
	if len(parts) != 2 || len(parts[0]) != 3 || len(parts[1]) != 3 {
		return "", "", configf("malformed currency pair %q, want 'USDCNY' or 'USD CNY'", code)
	}
	return parts[0], parts[1], nil
}
