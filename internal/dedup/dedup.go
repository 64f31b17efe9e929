// Package dedup resolves cross-source collisions at read time.
//
// The store legitimately holds several sources' rows for the same symbol
// and date (a gold future from the history provider and a bank FX quote
// can overlap). When a caller needs one authoritative series, the resolver
// picks a winner per (symbol, date) by a fixed provider priority.
package dedup

import (
	"sort"

	"github.com/yxchen/macro-data/internal/model"
)

// Resolver selects one observation per (symbol, date) group.
type Resolver struct {
	rank map[string]int
	low  int
}

// NewResolver builds a resolver from an ordered priority list; earlier
// entries win. Sources absent from the list share the lowest rank, where
// ties are broken by input order.
func NewResolver(priority []string) *Resolver {
	rank := make(map[string]int, len(priority))
	for i, src := range priority {
		if _, dup := rank[src]; !dup {
			rank[src] = i
		}
	}
	return &Resolver{rank: rank, low: len(priority)}
}

func (r *Resolver) rankOf(source string) int {
	if n, ok := r.rank[source]; ok {
		return n
	}
	return r.low
}

// Resolve returns one observation per (symbol, date), highest priority
// first. The sort is stable, so within a rank the input order decides.
func (r *Resolver) Resolve(observations []model.StoredObservation) []model.StoredObservation {
	if len(observations) == 0 {
		return nil
	}

	sorted := make([]model.StoredObservation, len(observations))
	copy(sorted, observations)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Symbol != b.Symbol {
			return a.Symbol < b.Symbol
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return r.rankOf(a.Source) < r.rankOf(b.Source)
	})

	out := sorted[:0]
	for i, o := range sorted {
		if i > 0 {
			prev := out[len(out)-1]
			if prev.Symbol == o.Symbol && prev.Date.Equal(o.Date) {
				continue
			}
		}
		out = append(out, o)
	}
	return out
}
