// Package asset holds the static catalog of trackable instruments.
//
// Each descriptor names the source adapter responsible for fetching it and
// the data class that drives its update cadence. Descriptors are created at
// process start and never mutated.
package asset

import "fmt"

// Source selects the adapter family responsible for an asset.
type Source string

const (
	SourceHistory Source = "history" // generic ticker/price-history provider
	SourceIndex   Source = "index"   // exchange-index daily series provider
	SourceForex   Source = "forex"   // FX provider (bank rates or pair history)
	SourceMacro   Source = "macro"   // named macro-indicator provider
	SourceSpot    Source = "spot"    // spot-exchange historical series provider
)

// Class is the data class of an asset. It determines the update cadence and
// maps to a type catalog entry in the store.
type Class string

const (
	ClassIndex       Class = "INDEX"
	ClassCurrency    Class = "CURRENCY"
	ClassCommodity   Class = "COMMODITY"
	ClassCrypto      Class = "CRYPTO"
	ClassRate        Class = "INTEREST_RATE"
	ClassMoneySupply Class = "MONEY_SUPPLY"
	ClassCPI         Class = "CPI"
	ClassPPI         Class = "PPI"
	ClassGDP         Class = "GDP"
)

var validSources = map[Source]bool{
	SourceHistory: true,
	SourceIndex:   true,
	SourceForex:   true,
	SourceMacro:   true,
	SourceSpot:    true,
}

var validClasses = map[Class]bool{
	ClassIndex:       true,
	ClassCurrency:    true,
	ClassCommodity:   true,
	ClassCrypto:      true,
	ClassRate:        true,
	ClassMoneySupply: true,
	ClassCPI:         true,
	ClassPPI:         true,
	ClassGDP:         true,
}

// Descriptor is one immutable catalog entry.
type Descriptor struct {
	Name        string // Canonical symbol, unique within the registry
	Code        string // Provider-specific identifier
	Source      Source
	Class       Class
	Description string // Optional human-readable description
}

// Registry is a validated, immutable set of descriptors.
type Registry struct {
	assets []Descriptor
	byName map[string]Descriptor
}

// NewRegistry validates descriptors and builds a registry. Unknown sources
// or classes and duplicate names are configuration errors surfaced at
// construction, not at run time.
func NewRegistry(assets []Descriptor) (*Registry, error) {
	byName := make(map[string]Descriptor, len(assets))
	for _, a := range assets {
		if a.Name == "" {
			return nil, fmt.Errorf("asset with code %q has empty name", a.Code)
		}
		if !validSources[a.Source] {
			return nil, fmt.Errorf("asset %q: unknown source %q", a.Name, a.Source)
		}
		if !validClasses[a.Class] {
			return nil, fmt.Errorf("asset %q: unknown class %q", a.Name, a.Class)
		}
		if _, dup := byName[a.Name]; dup {
			return nil, fmt.Errorf("duplicate asset name %q", a.Name)
		}
		byName[a.Name] = a
	}
	return &Registry{assets: assets, byName: byName}, nil
}

// All returns every descriptor in catalog order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.assets))
	copy(out, r.assets)
	return out
}

// Get returns the descriptor for name.
func (r *Registry) Get(name string) (Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Len returns the number of registered assets.
func (r *Registry) Len() int { return len(r.assets) }
