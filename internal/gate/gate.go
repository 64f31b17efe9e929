// Package gate decides whether an asset is due for a fetch.
//
// Each data class has an update cadence: daily market data, weekly rates and
// money supply, monthly price indexes and GDP. The gate compares the elapsed
// time since the last stored observation against the cadence threshold, so a
// scheduled run touches only the feeds that can actually have new data.
package gate

import (
	"time"

	"github.com/yxchen/macro-data/internal/asset"
)

// Cadence thresholds in whole days.
const (
	dailyDays   = 1
	weeklyDays  = 7
	monthlyDays = 30
)

// cadence maps each data class to its minimum refresh interval in days.
// Classes absent from the table fall back to the daily rule.
var cadence = map[asset.Class]int{
	asset.ClassIndex:       dailyDays,
	asset.ClassCurrency:    dailyDays,
	asset.ClassCommodity:   dailyDays,
	asset.ClassCrypto:      dailyDays,
	asset.ClassRate:        weeklyDays,
	asset.ClassMoneySupply: weeklyDays,
	asset.ClassCPI:         monthlyDays,
	asset.ClassPPI:         monthlyDays,
	asset.ClassGDP:         monthlyDays,
}

// ShouldUpdate reports whether an asset of the given class needs a fetch.
// A zero lastObserved means no prior observation exists and the first fetch
// is always due. force bypasses the cadence check entirely.
func ShouldUpdate(class asset.Class, lastObserved time.Time, force bool) bool {
	return ShouldUpdateAt(time.Now(), class, lastObserved, force)
}

// ShouldUpdateAt is ShouldUpdate evaluated against an explicit clock.
func ShouldUpdateAt(now time.Time, class asset.Class, lastObserved time.Time, force bool) bool {
	if force || lastObserved.IsZero() {
		return true
	}

	// Stored observation dates carry no time component; the store scans them
	// as start-of-day timestamps, so a same-day rerun sees less than one
	// elapsed day and never passes a daily gate spuriously.
	days := int(now.Sub(lastObserved) / (24 * time.Hour))

	threshold, ok := cadence[class]
	if !ok {
		threshold = dailyDays
	}
	return days >= threshold
}
