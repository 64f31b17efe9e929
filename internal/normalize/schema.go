package normalize

import (
	"github.com/yxchen/macro-data/internal/asset"
)

// fieldAliases is the per-source-family schema mapping: for each canonical
// field, the ordered list of provider column names to try. Upstream naming
// is inconsistent (case, language, aliases); resolving through one table
// per family avoids per-asset special-casing.
type fieldAliases struct {
	date   []string
	open   []string
	high   []string
	low    []string
	close  []string
	value  []string
	volume []string
}

// localizedAliases serves the localized provider families (index, forex,
// macro, spot): lowercase and native names first, capitalized fallbacks
// second.
var localizedAliases = fieldAliases{
	date:   []string{"date", "Date", "日期"},
	open:   []string{"open", "Open", "开盘价", "开盘"},
	high:   []string{"high", "High", "最高价", "最高"},
	low:    []string{"low", "Low", "最低价", "最低"},
	close:  []string{"close", "Close", "收盘价", "收盘"},
	value:  []string{"今值", "value", "数值"},
	volume: []string{"volume", "Volume", "成交量"},
}

// capitalizedAliases serves the history family, which reports capitalized
// column names.
var capitalizedAliases = fieldAliases{
	date:   []string{"Date", "date", "日期"},
	open:   []string{"Open", "open", "开盘价"},
	high:   []string{"High", "high", "最高价"},
	low:    []string{"Low", "low", "最低价"},
	close:  []string{"Close", "close", "收盘价"},
	value:  []string{"value", "今值", "数值"},
	volume: []string{"Volume", "volume", "成交量"},
}

// aliasesFor picks the alias table for a source family. Evaluated once per
// asset, not per row.
func aliasesFor(src asset.Source) fieldAliases {
	if src == asset.SourceHistory {
		return capitalizedAliases
	}
	return localizedAliases
}
