package normalize

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/yxchen/macro-data/internal/asset"
	"github.com/yxchen/macro-data/internal/model"
)

// fakeStore records upserts in memory, keyed like the real store.
type fakeStore struct {
	records map[string]model.Observation
	failOn  string // symbol whose writes fail
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]model.Observation)}
}

func (f *fakeStore) key(typeCode, symbol string, date time.Time) string {
	return fmt.Sprintf("%s|%s|%s", typeCode, symbol, date.Format("2006-01-02"))
}

func (f *fakeStore) Exists(_ context.Context, typeCode, symbol string, date time.Time) (bool, error) {
	_, ok := f.records[f.key(typeCode, symbol, date)]
	return ok, nil
}

func (f *fakeStore) Upsert(_ context.Context, obs model.Observation) (bool, error) {
	if obs.Symbol == f.failOn {
		return false, errors.New("store rejected write")
	}
	k := f.key(obs.TypeCode, obs.Symbol, obs.Date)
	_, existed := f.records[k]
	f.records[k] = obs
	return !existed, nil
}

var histAsset = asset.Descriptor{
	Name: "SP500", Code: "^GSPC", Source: asset.SourceHistory, Class: asset.ClassIndex,
}

var macroAsset = asset.Descriptor{
	Name: "CN_CPI", Code: "china_cpi_monthly", Source: asset.SourceMacro, Class: asset.ClassCPI,
}

func TestProcess_CapitalizedFamily(t *testing.T) {
	st := newFakeStore()
	p := New(st, nil)

	frame := model.Frame{Rows: []model.Row{
		{"Date": "2025-01-02", "Open": 100.0, "High": 105.0, "Low": 99.0, "Close": 104.0, "Volume": 1000.0},
		{"Date": "2025-01-03", "Open": 104.0, "High": 106.0, "Low": 103.0, "Close": 105.5, "Volume": 1100.0},
	}}

	newCount, updated, err := p.Process(context.Background(), histAsset, frame, true)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if newCount != 2 || updated != 0 {
		t.Errorf("counts = (%d, %d), want (2, 0)", newCount, updated)
	}

	obs := st.records[st.key("INDEX", "SP500", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))]
	if obs.Close == nil || *obs.Close != 104.0 {
		t.Errorf("Close = %v, want 104", obs.Close)
	}
	if obs.Value == nil || *obs.Value != 104.0 {
		t.Errorf("Value = %v, want close value 104", obs.Value)
	}
	if obs.Volume == nil || *obs.Volume != 1000 {
		t.Errorf("Volume = %v, want 1000", obs.Volume)
	}
}

func TestProcess_OHLCFallback(t *testing.T) {
	st := newFakeStore()
	p := New(st, nil)

	// Only a close field: open/high/low fall back to it.
	frame := model.Frame{Rows: []model.Row{
		{"date": "2025-03-10", "close": 7.25},
	}}
	fx := asset.Descriptor{Name: "USDCNY", Code: "USDCNY", Source: asset.SourceForex, Class: asset.ClassCurrency}

	if _, _, err := p.Process(context.Background(), fx, frame, true); err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	obs := st.records[st.key("CURRENCY", "USDCNY", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))]
	for name, got := range map[string]*float64{
		"Open": obs.Open, "High": obs.High, "Low": obs.Low, "Close": obs.Close,
	} {
		if got == nil || *got != 7.25 {
			t.Errorf("%s = %v, want 7.25", name, got)
		}
	}
}

func TestProcess_IndicatorSnapshotRow(t *testing.T) {
	st := newFakeStore()
	p := New(st, nil)

	frame := model.Frame{Rows: []model.Row{
		{"日期": "2025-02-01", "今值": 0.3, "前值": 0.2, "预测值": 0.25},
	}}

	if _, _, err := p.Process(context.Background(), macroAsset, frame, true); err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	obs := st.records[st.key("CPI", "CN_CPI", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))]
	if obs.Value == nil || *obs.Value != 0.3 {
		t.Errorf("Value = %v, want 0.3", obs.Value)
	}
	if obs.Close != nil {
		t.Errorf("Close = %v, want nil for indicator row", obs.Close)
	}
	if obs.AdditionalData["前值"] != 0.2 {
		t.Errorf("AdditionalData[前值] = %v, want 0.2", obs.AdditionalData["前值"])
	}
}

func TestProcess_NoValueRow(t *testing.T) {
	st := newFakeStore()
	p := New(st, nil)

	// Multi-column table with no resolvable value field at all.
	frame := model.Frame{Rows: []model.Row{
		{"日期": "2025-02-01", "M0": 11.2, "M1": 3.1, "M2": 8.7},
	}}
	m2 := asset.Descriptor{Name: "CN_M2", Code: "china_money_supply", Source: asset.SourceMacro, Class: asset.ClassMoneySupply}

	if _, _, err := p.Process(context.Background(), m2, frame, true); err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	obs := st.records[st.key("MONEY_SUPPLY", "CN_M2", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))]
	if obs.Value != nil {
		t.Errorf("Value = %v, want nil", obs.Value)
	}
	if obs.AdditionalData["M2"] != 8.7 {
		t.Errorf("AdditionalData[M2] = %v, want 8.7", obs.AdditionalData["M2"])
	}
}

func TestProcess_SkipsUnparseableDates(t *testing.T) {
	st := newFakeStore()
	p := New(st, nil)

	frame := model.Frame{Rows: []model.Row{
		{"Date": "not-a-date", "Close": 1.0},
		{"Close": 2.0},
		{"Date": "2025-01-02", "Close": 3.0},
	}}

	newCount, _, err := p.Process(context.Background(), histAsset, frame, true)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if newCount != 1 {
		t.Errorf("newCount = %d, want 1 (bad-date rows skipped)", newCount)
	}
}

func TestProcess_IncrementalIdempotence(t *testing.T) {
	st := newFakeStore()
	p := New(st, nil)

	frame := model.Frame{Rows: []model.Row{
		{"Date": "2025-01-02", "Close": 104.0},
		{"Date": "2025-01-03", "Close": 105.5},
	}}

	// First pass inserts, second pass over the identical frame is a no-op.
	if n, _, _ := p.Process(context.Background(), histAsset, frame, true); n != 2 {
		t.Fatalf("first pass newCount = %d, want 2", n)
	}
	n, u, err := p.Process(context.Background(), histAsset, frame, true)
	if err != nil {
		t.Fatalf("second pass failed: %v", err)
	}
	if n != 0 || u != 0 {
		t.Errorf("second pass counts = (%d, %d), want (0, 0)", n, u)
	}
	if len(st.records) != 2 {
		t.Errorf("store holds %d records, want 2", len(st.records))
	}
}

func TestProcess_FullModeUpdates(t *testing.T) {
	st := newFakeStore()
	p := New(st, nil)

	frame := model.Frame{Rows: []model.Row{
		{"Date": "2025-01-02", "Close": 104.0},
	}}

	if _, _, err := p.Process(context.Background(), histAsset, frame, true); err != nil {
		t.Fatal(err)
	}

	// Full mode re-writes the same key as an update, not a duplicate.
	n, u, err := p.Process(context.Background(), histAsset, frame, false)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 || u != 1 {
		t.Errorf("full-mode counts = (%d, %d), want (0, 1)", n, u)
	}
	if len(st.records) != 1 {
		t.Errorf("store holds %d records, want 1", len(st.records))
	}
}

func TestProcess_NaNBecomesNull(t *testing.T) {
	st := newFakeStore()
	p := New(st, nil)

	frame := model.Frame{Rows: []model.Row{
		{"Date": "2025-01-02", "Close": 104.0, "Volume": math.NaN()},
	}}

	if _, _, err := p.Process(context.Background(), histAsset, frame, true); err != nil {
		t.Fatal(err)
	}

	obs := st.records[st.key("INDEX", "SP500", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))]
	if obs.Volume != nil {
		t.Errorf("Volume = %v, want nil for NaN", obs.Volume)
	}
	if v, present := obs.AdditionalData["Volume"]; !present || v != nil {
		t.Errorf("AdditionalData[Volume] = %v (present=%v), want explicit null", v, present)
	}
}

func TestProcess_AllWritesFailing(t *testing.T) {
	st := newFakeStore()
	st.failOn = "SP500"
	p := New(st, nil)

	frame := model.Frame{Rows: []model.Row{
		{"Date": "2025-01-02", "Close": 104.0},
	}}

	if _, _, err := p.Process(context.Background(), histAsset, frame, true); err == nil {
		t.Error("expected error when every write fails")
	}
}

func TestProcess_StringNumbers(t *testing.T) {
	st := newFakeStore()
	p := New(st, nil)

	frame := model.Frame{Rows: []model.Row{
		{"date": "2025-01-02", "close": "1,234.5"},
	}}
	spot := asset.Descriptor{Name: "SGE_AU9999", Code: "Au99.99", Source: asset.SourceSpot, Class: asset.ClassCommodity}

	if _, _, err := p.Process(context.Background(), spot, frame, true); err != nil {
		t.Fatal(err)
	}

	obs := st.records[st.key("COMMODITY", "SGE_AU9999", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))]
	if obs.Close == nil || *obs.Close != 1234.5 {
		t.Errorf("Close = %v, want 1234.5 parsed from string", obs.Close)
	}
}
