package asset

// Catalog returns the built-in asset list: CN/US equity indexes, global
// commodities, FX pairs, policy rates and macro indicators, and SGE gold
// spot products.
func Catalog() []Descriptor {
	return []Descriptor{
		// CN equity indexes (exchange-index provider)
		{Name: "CSI300", Code: "sh000300", Source: SourceIndex, Class: ClassIndex, Description: "CSI 300 index"},
		{Name: "SSE", Code: "sh000001", Source: SourceIndex, Class: ClassIndex, Description: "Shanghai composite index"},
		{Name: "SZSE", Code: "sz399001", Source: SourceIndex, Class: ClassIndex, Description: "Shenzhen component index"},
		{Name: "CSI500", Code: "sh000905", Source: SourceIndex, Class: ClassIndex, Description: "CSI 500 index"},

		// Global indexes and commodities (ticker-history provider)
		{Name: "SP500", Code: "^GSPC", Source: SourceHistory, Class: ClassIndex, Description: "S&P 500 index"},
		{Name: "NASDAQ", Code: "^IXIC", Source: SourceHistory, Class: ClassIndex, Description: "Nasdaq composite index"},
		{Name: "DOWJONES", Code: "^DJI", Source: SourceHistory, Class: ClassIndex, Description: "Dow Jones industrial average"},
		{Name: "GOLD", Code: "GC=F", Source: SourceHistory, Class: ClassCommodity, Description: "COMEX gold futures"},
		{Name: "CRUDEOIL", Code: "CL=F", Source: SourceHistory, Class: ClassCommodity, Description: "WTI crude oil futures"},
		{Name: "SILVER", Code: "SI=F", Source: SourceHistory, Class: ClassCommodity},
		{Name: "BTC", Code: "BTC-USD", Source: SourceHistory, Class: ClassCrypto, Description: "Bitcoin / USD"},
		{Name: "DXY", Code: "DX-Y.NYB", Source: SourceHistory, Class: ClassCurrency, Description: "US dollar index"},
		{Name: "GLD", Code: "GLD", Source: SourceHistory, Class: ClassCommodity, Description: "SPDR Gold Shares ETF"},
		{Name: "IAU", Code: "IAU", Source: SourceHistory, Class: ClassCommodity, Description: "iShares Gold Trust ETF"},

		// FX pairs (bank rates for CNY quotes, pair history otherwise)
		{Name: "USDCNY", Code: "USDCNY", Source: SourceForex, Class: ClassCurrency, Description: "USD/CNY bank mid rate"},
		{Name: "EURCNY", Code: "EURCNY", Source: SourceForex, Class: ClassCurrency, Description: "EUR/CNY bank mid rate"},
		{Name: "GBPCNY", Code: "GBPCNY", Source: SourceForex, Class: ClassCurrency, Description: "GBP/CNY bank mid rate"},
		{Name: "JPYCNY", Code: "JPYCNY", Source: SourceForex, Class: ClassCurrency, Description: "JPY/CNY bank mid rate"},
		{Name: "EURUSD", Code: "EURUSD", Source: SourceForex, Class: ClassCurrency},
		{Name: "GBPUSD", Code: "GBPUSD", Source: SourceForex, Class: ClassCurrency},
		{Name: "USDJPY", Code: "USDJPY", Source: SourceForex, Class: ClassCurrency},

		// Interest rates
		{Name: "US13W", Code: "^IRX", Source: SourceHistory, Class: ClassRate, Description: "13-week treasury bill yield"},
		{Name: "FEDFUNDS", Code: "usa_interest_rate", Source: SourceMacro, Class: ClassRate, Description: "Federal funds target rate"},
		{Name: "SHIBOR", Code: "china_interbank_rate", Source: SourceMacro, Class: ClassRate, Description: "CN interbank offered rate"},
		{Name: "ECBRATE", Code: "euro_interest_rate", Source: SourceMacro, Class: ClassRate, Description: "ECB main refinancing rate"},
		{Name: "CNLPR", Code: "china_lpr", Source: SourceMacro, Class: ClassRate, Description: "CN loan prime rate"},

		// Price and activity indicators
		{Name: "CN_CPI", Code: "china_cpi_monthly", Source: SourceMacro, Class: ClassCPI},
		{Name: "US_CPI", Code: "usa_cpi_monthly", Source: SourceMacro, Class: ClassCPI},
		{Name: "CN_PPI", Code: "china_ppi_yearly", Source: SourceMacro, Class: ClassPPI},
		{Name: "US_PPI", Code: "usa_ppi", Source: SourceMacro, Class: ClassPPI},
		{Name: "CN_GDP", Code: "china_gdp_yearly", Source: SourceMacro, Class: ClassGDP},
		{Name: "CN_M2", Code: "china_money_supply", Source: SourceMacro, Class: ClassMoneySupply, Description: "CN money supply (M0/M1/M2)"},
		{Name: "GOLD_ETF_HOLDINGS", Code: "gold_etf_holdings", Source: SourceMacro, Class: ClassCommodity, Description: "Global gold ETF holdings report"},

		// SGE spot gold (spot-exchange provider)
		{Name: "SGE_AU9999", Code: "Au99.99", Source: SourceSpot, Class: ClassCommodity, Description: "SGE Au99.99 spot"},
	}
}
