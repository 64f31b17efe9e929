package gate

import (
	"testing"
	"time"

	"github.com/yxchen/macro-data/internal/asset"
)

func TestShouldUpdateAt_Cadence(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		class   asset.Class
		elapsed time.Duration
		want    bool
	}{
		{"daily at 23h", asset.ClassIndex, 23 * time.Hour, false},
		{"daily at 24h", asset.ClassIndex, 24 * time.Hour, true},
		{"daily at 25h", asset.ClassCurrency, 25 * time.Hour, true},
		{"crypto at 12h", asset.ClassCrypto, 12 * time.Hour, false},
		{"weekly at 6d", asset.ClassRate, 6 * 24 * time.Hour, false},
		{"weekly at 7d", asset.ClassRate, 7 * 24 * time.Hour, true},
		{"money supply at 8d", asset.ClassMoneySupply, 8 * 24 * time.Hour, true},
		{"monthly at 29d", asset.ClassCPI, 29 * 24 * time.Hour, false},
		{"monthly at 30d", asset.ClassCPI, 30 * 24 * time.Hour, true},
		{"gdp at 31d", asset.ClassGDP, 31 * 24 * time.Hour, true},
		{"ppi at 15d", asset.ClassPPI, 15 * 24 * time.Hour, false},
		{"unknown class defaults daily", asset.Class("SENTIMENT"), 24 * time.Hour, true},
		{"unknown class under a day", asset.Class("SENTIMENT"), 20 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last := now.Add(-tt.elapsed)
			if got := ShouldUpdateAt(now, tt.class, last, false); got != tt.want {
				t.Errorf("ShouldUpdateAt(%s, -%v) = %v, want %v", tt.class, tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestShouldUpdateAt_Force(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// Force bypasses the cadence check even minutes after the last update.
	last := now.Add(-5 * time.Minute)
	if !ShouldUpdateAt(now, asset.ClassCPI, last, true) {
		t.Error("force=true should always update")
	}
}

func TestShouldUpdateAt_NoPriorObservation(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	if !ShouldUpdateAt(now, asset.ClassIndex, time.Time{}, false) {
		t.Error("zero lastObserved should always update")
	}
}

func TestShouldUpdateAt_SameDayRerun(t *testing.T) {
	// A date-only observation scans as midnight. Re-running later the same
	// day must not pass a daily gate.
	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)
	last := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	if ShouldUpdateAt(now, asset.ClassIndex, last, false) {
		t.Error("same-day rerun should not update a daily class")
	}
}
