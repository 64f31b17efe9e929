package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status classifies the outcome of one asset's ingestion.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped" // gate closed or no new data
)

// RunResult is the outcome for a single asset.
type RunResult struct {
	Name           string `json:"name"`
	Code           string `json:"code"`
	Source         string `json:"source"`
	Class          string `json:"class"`
	Status         Status `json:"status"`
	Message        string `json:"message"`
	NewRecords     int    `json:"new_records"`
	UpdatedRecords int    `json:"updated_records"`
}

// Summary aggregates counts over a whole batch.
type Summary struct {
	Total          int `json:"total"`
	Succeeded      int `json:"succeeded"`
	Failed         int `json:"failed"`
	Skipped        int `json:"skipped"`
	NewRecords     int `json:"new_records"`
	UpdatedRecords int `json:"updated_records"`
}

// Report is the machine-readable batch report; Text renders the
// human-readable summary.
type Report struct {
	RunID       uuid.UUID   `json:"run_id"`
	Incremental bool        `json:"incremental"`
	StartedAt   time.Time   `json:"started_at"`
	FinishedAt  time.Time   `json:"finished_at"`
	Summary     Summary     `json:"summary"`
	Results     []RunResult `json:"results"`
}

func newReport(incremental bool) Report {
	return Report{
		RunID:       uuid.New(),
		Incremental: incremental,
		StartedAt:   time.Now(),
	}
}

func (r *Report) add(res RunResult) {
	r.Results = append(r.Results, res)
	r.Summary.Total++
	switch res.Status {
	case StatusSuccess:
		r.Summary.Succeeded++
	case StatusFailed:
		r.Summary.Failed++
	case StatusSkipped:
		r.Summary.Skipped++
	}
	r.Summary.NewRecords += res.NewRecords
	r.Summary.UpdatedRecords += res.UpdatedRecords
}

func (r *Report) finish() {
	r.FinishedAt = time.Now()
	sort.Slice(r.Results, func(i, j int) bool {
		if r.Results[i].Source != r.Results[j].Source {
			return r.Results[i].Source < r.Results[j].Source
		}
		return r.Results[i].Name < r.Results[j].Name
	})
}

// Text renders the human-readable report, grouped by source family.
func (r *Report) Text() string {
	var b strings.Builder

	mode := "incremental"
	if !r.Incremental {
		mode = "full"
	}

	fmt.Fprintln(&b, strings.Repeat("=", 72))
	fmt.Fprintln(&b, "Ingestion report")
	fmt.Fprintln(&b, strings.Repeat("=", 72))
	fmt.Fprintf(&b, "Run:       %s (%s)\n", r.RunID, mode)
	fmt.Fprintf(&b, "Started:   %s\n", r.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Duration:  %s\n", r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond))
	fmt.Fprintf(&b, "Assets:    %d total, %d succeeded, %d failed, %d skipped\n",
		r.Summary.Total, r.Summary.Succeeded, r.Summary.Failed, r.Summary.Skipped)
	fmt.Fprintf(&b, "Records:   %d new, %d updated\n",
		r.Summary.NewRecords, r.Summary.UpdatedRecords)

	// Results arrive pre-sorted by (source, name); emit one section per
	// source family.
	var current string
	for _, res := range r.Results {
		if res.Source != current {
			current = res.Source
			fmt.Fprintf(&b, "\n[%s]\n%s\n", strings.ToUpper(current), strings.Repeat("-", 40))
		}
		switch res.Status {
		case StatusSuccess:
			fmt.Fprintf(&b, "  ok      %-20s %s\n", res.Name, res.Message)
		case StatusSkipped:
			fmt.Fprintf(&b, "  skip    %-20s %s\n", res.Name, res.Message)
		case StatusFailed:
			fmt.Fprintf(&b, "  FAILED  %-20s %s\n", res.Name, res.Message)
		}
	}

	return b.String()
}

// WriteJSON writes the detailed report to path.
func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
