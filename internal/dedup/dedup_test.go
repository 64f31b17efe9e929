package dedup

import (
	"testing"
	"time"

	"github.com/yxchen/macro-data/internal/model"
)

func obs(symbol, source string, date string) model.StoredObservation {
	d, _ := time.Parse("2006-01-02", date)
	return model.StoredObservation{Symbol: symbol, Source: source, Date: d}
}

func TestResolve_PriorityWins(t *testing.T) {
	r := NewResolver([]string{"history", "forex"})

	// Same (symbol, date) from three sources, deliberately out of order.
	in := []model.StoredObservation{
		obs("GOLD", "spot", "2025-01-02"),
		obs("GOLD", "forex", "2025-01-02"),
		obs("GOLD", "history", "2025-01-02"),
	}

	out := r.Resolve(in)
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].Source != "history" {
		t.Errorf("winner = %q, want history", out[0].Source)
	}
}

func TestResolve_InputOrderIrrelevant(t *testing.T) {
	r := NewResolver([]string{"history", "forex"})

	orders := [][]model.StoredObservation{
		{obs("USDCNY", "forex", "2025-01-02"), obs("USDCNY", "history", "2025-01-02")},
		{obs("USDCNY", "history", "2025-01-02"), obs("USDCNY", "forex", "2025-01-02")},
	}

	for i, in := range orders {
		out := r.Resolve(in)
		if len(out) != 1 || out[0].Source != "history" {
			t.Errorf("order %d: got %+v, want single history row", i, out)
		}
	}
}

func TestResolve_UnlistedSourcesLose(t *testing.T) {
	r := NewResolver([]string{"history"})

	in := []model.StoredObservation{
		obs("BTC", "macro", "2025-01-02"),
		obs("BTC", "history", "2025-01-02"),
	}

	out := r.Resolve(in)
	if len(out) != 1 || out[0].Source != "history" {
		t.Fatalf("got %+v, want history row", out)
	}
}

func TestResolve_DistinctKeysAllKept(t *testing.T) {
	r := NewResolver([]string{"history", "forex"})

	in := []model.StoredObservation{
		obs("GOLD", "history", "2025-01-02"),
		obs("GOLD", "history", "2025-01-03"),
		obs("SILVER", "forex", "2025-01-02"),
	}

	out := r.Resolve(in)
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3 (no collisions)", len(out))
	}
}

func TestResolve_SortedBySymbolThenDate(t *testing.T) {
	r := NewResolver(nil)

	in := []model.StoredObservation{
		obs("SILVER", "spot", "2025-01-03"),
		obs("GOLD", "spot", "2025-01-05"),
		obs("GOLD", "spot", "2025-01-02"),
	}

	out := r.Resolve(in)
	want := []struct{ symbol, date string }{
		{"GOLD", "2025-01-02"},
		{"GOLD", "2025-01-05"},
		{"SILVER", "2025-01-03"},
	}
	for i, w := range want {
		if out[i].Symbol != w.symbol || out[i].Date.Format("2006-01-02") != w.date {
			t.Errorf("out[%d] = %s %s, want %s %s",
				i, out[i].Symbol, out[i].Date.Format("2006-01-02"), w.symbol, w.date)
		}
	}
}

func TestResolve_Empty(t *testing.T) {
	r := NewResolver([]string{"history"})
	if out := r.Resolve(nil); out != nil {
		t.Errorf("Resolve(nil) = %v, want nil", out)
	}
}
