package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"

	"github.com/yxchen/macro-data/internal/model"
)

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]model.Row{{"Date": "2025-01-02", "Close": 1.0}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithRetries(3, 10*time.Millisecond))
	rows, err := c.HistoryCandles(context.Background(), "TEST", time.Now().AddDate(0, -1, 0), time.Now())
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want 1", len(rows))
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestClient_RetriesRateLimitResponses(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]model.Row{{"date": "2025-01-02"}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithRetries(2, 10*time.Millisecond))
	if _, err := c.IndexDaily(context.Background(), "sh000300"); err != nil {
		t.Fatalf("expected success after 429 retry, got %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestClient_ClientErrorsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "no such symbol", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithRetries(3, 10*time.Millisecond))
	_, err := c.IndexDaily(context.Background(), "nope")
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %v is not an *APIError", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1 (404 is terminal)", got)
	}
}

func TestClient_ExhaustedRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithRetries(1, 5*time.Millisecond))
	_, err := c.IndexDaily(context.Background(), "sh000300")
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("cause %v is not an *APIError", err)
	}
	if !apiErr.IsRetryable() {
		t.Error("502 should report retryable")
	}
}

func TestClient_ContextCancelDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithRetries(5, 10*time.Second))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.IndexDaily(ctx, "sh000300")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want context deadline", err)
	}
}

func TestClient_GB18030Decoding(t *testing.T) {
	rows := []model.Row{
		{"日期": "2025-06-03", "央行中间价": 7.23},
	}
	plain, err := json.Marshal(rows)
	if err != nil {
		t.Fatal(err)
	}

	// Serve the payload in GB18030, the way the localized services do.
	var encoded bytes.Buffer
	w := transform.NewWriter(&encoded, simplifiedchinese.GB18030.NewEncoder())
	if _, err := w.Write(plain); err != nil {
		t.Fatal(err)
	}
	w.Close()
	if bytes.Equal(encoded.Bytes(), plain) {
		t.Fatal("test payload did not change under GB18030 encoding")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.Write(encoded.Bytes())
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithGB18030())
	got, err := c.BankFXRates(context.Background(), "美元", time.Now().AddDate(0, 0, -7), time.Now())
	if err != nil {
		t.Fatalf("BankFXRates failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("rows = %d, want 1", len(got))
	}
	if got[0]["日期"] != "2025-06-03" {
		t.Errorf("日期 = %v, want 2025-06-03", got[0]["日期"])
	}
	if got[0]["央行中间价"] != 7.23 {
		t.Errorf("央行中间价 = %v, want 7.23", got[0]["央行中间价"])
	}
}

func TestClient_RateLimitSpacing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	// 20 req/s allows the second request only after ~50ms.
	c := NewClient(srv.URL, WithRateLimit(20))

	start := time.Now()
	for i := 0; i < 2; i++ {
		if _, err := c.IndexDaily(context.Background(), "sh000300"); err != nil {
			t.Fatal(err)
		}
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("two limited requests took %v, want >= ~50ms", elapsed)
	}
}
