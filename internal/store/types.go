package store

// TypeCatalogEntry describes one data class in the type catalog.
type TypeCatalogEntry struct {
	Code        string
	Name        string
	Description string
	Unit        string
	Frequency   string // daily, weekly, monthly
}

// typeCatalog seeds macro_data_types. Codes and cadence labels match the
// gate's update frequency table.
var typeCatalog = []TypeCatalogEntry{
	{Code: "INDEX", Name: "Equity index", Unit: "points", Frequency: "daily"},
	{Code: "CURRENCY", Name: "Currency rate", Unit: "rate", Frequency: "daily"},
	{Code: "COMMODITY", Name: "Commodity price", Unit: "price", Frequency: "daily"},
	{Code: "CRYPTO", Name: "Crypto asset", Unit: "price", Frequency: "daily"},
	{Code: "INTEREST_RATE", Name: "Interest rate", Unit: "percent", Frequency: "weekly"},
	{Code: "MONEY_SUPPLY", Name: "Money supply", Unit: "percent", Frequency: "weekly"},
	{Code: "CPI", Name: "Consumer price index", Unit: "percent", Frequency: "monthly"},
	{Code: "PPI", Name: "Producer price index", Unit: "percent", Frequency: "monthly"},
	{Code: "GDP", Name: "Gross domestic product", Unit: "percent", Frequency: "monthly"},
}

// Catalog returns the seeded type catalog entries.
func Catalog() []TypeCatalogEntry {
	out := make([]TypeCatalogEntry, len(typeCatalog))
	copy(out, typeCatalog)
	return out
}
