package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yxchen/macro-data/internal/asset"
	"github.com/yxchen/macro-data/internal/gate"
	"github.com/yxchen/macro-data/internal/model"
	"github.com/yxchen/macro-data/internal/source"
)

// ObservationStore is the read surface the runner needs from the store.
type ObservationStore interface {
	LatestObservation(ctx context.Context, symbol, sourceTag string) (time.Time, int, error)
}

// Normalizer persists a fetched frame and reports row counts.
type Normalizer interface {
	Process(ctx context.Context, a asset.Descriptor, frame model.Frame, incremental bool) (newCount, updatedCount int, err error)
}

// Config holds runner configuration.
type Config struct {
	Workers      int           // bounded pool size (default: 3)
	FetchTimeout time.Duration // per-asset bound covering fetch and persist
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Workers:      3,
		FetchTimeout: 2 * time.Minute,
	}
}

// Runner executes ingestion batches.
type Runner struct {
	cfg        Config
	registry   *asset.Registry
	adapters   map[asset.Source]source.Adapter
	store      ObservationStore
	normalizer Normalizer
	logger     *slog.Logger
}

// NewRunner creates a Runner.
func NewRunner(
	cfg Config,
	registry *asset.Registry,
	adapters map[asset.Source]source.Adapter,
	store ObservationStore,
	normalizer Normalizer,
	logger *slog.Logger,
) *Runner {
	if cfg.Workers < 1 {
		cfg.Workers = DefaultConfig().Workers
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultConfig().FetchTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		cfg:        cfg,
		registry:   registry,
		adapters:   adapters,
		store:      store,
		normalizer: normalizer,
		logger:     logger,
	}
}

// RunAll ingests every registered asset with bounded parallelism and
// returns the aggregated report. Incremental mode fetches only past the
// last stored observation; full mode forces a complete backfill window.
func (r *Runner) RunAll(ctx context.Context, incremental bool) Report {
	assets := r.registry.All()
	report := newReport(incremental)

	r.logger.Info("starting ingestion batch",
		"assets", len(assets),
		"incremental", incremental,
		"workers", r.cfg.Workers,
	)

	results := make(chan RunResult, len(assets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for _, a := range assets {
		g.Go(func() error {
			results <- r.runAsset(gctx, a, incremental)
			return nil
		})
	}
	// Tasks never return errors; failures travel inside RunResults.
	_ = g.Wait()
	close(results)

	for res := range results {
		report.add(res)
	}
	report.finish()

	r.logger.Info("ingestion batch complete",
		"total", report.Summary.Total,
		"succeeded", report.Summary.Succeeded,
		"failed", report.Summary.Failed,
		"skipped", report.Summary.Skipped,
		"new_records", report.Summary.NewRecords,
		"updated_records", report.Summary.UpdatedRecords,
		"duration", report.FinishedAt.Sub(report.StartedAt),
	)

	return report
}

// runAsset executes the gate -> fetch -> normalize pipeline for one asset.
// Panics inside adapters or the normalizer are contained here so one bad
// feed cannot take down the batch.
func (r *Runner) runAsset(ctx context.Context, a asset.Descriptor, incremental bool) (res RunResult) {
	res = RunResult{
		Name:   a.Name,
		Code:   a.Code,
		Source: string(a.Source),
		Class:  string(a.Class),
	}

	defer func() {
		if p := recover(); p != nil {
			res.Status = StatusFailed
			res.Message = fmt.Sprintf("panic: %v", p)
			r.logger.Error("asset task panicked", "asset", a.Name, "panic", p)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, r.cfg.FetchTimeout)
	defer cancel()

	adapter, ok := r.adapters[a.Source]
	if !ok {
		res.Status = StatusFailed
		res.Message = fmt.Sprintf("no adapter registered for source %q", a.Source)
		return res
	}

	lastObserved, existing, err := r.store.LatestObservation(ctx, a.Name, string(a.Source))
	if err != nil {
		res.Status = StatusFailed
		res.Message = fmt.Sprintf("lookup last observation: %v", err)
		return res
	}

	force := !incremental
	if !gate.ShouldUpdate(a.Class, lastObserved, force) {
		res.Status = StatusSkipped
		res.Message = fmt.Sprintf("not due for update (last observed %s)", lastObserved.Format("2006-01-02"))
		r.logger.Debug("gate closed", "asset", a.Name, "last_observed", lastObserved)
		return res
	}

	frame, err := adapter.Fetch(ctx, a, incremental, lastObserved)
	if err != nil {
		res.Status = StatusFailed
		res.Message = err.Error()
		r.logger.Warn("fetch failed", "asset", a.Name, "source", a.Source, "error", err)
		return res
	}

	if frame.Empty() {
		res.Status = StatusSkipped
		res.Message = "no new data"
		return res
	}

	newCount, updatedCount, err := r.normalizer.Process(ctx, a, frame, incremental)
	if err != nil {
		res.Status = StatusFailed
		res.Message = fmt.Sprintf("normalize: %v", err)
		r.logger.Warn("normalize failed", "asset", a.Name, "error", err)
		return res
	}

	res.NewRecords = newCount
	res.UpdatedRecords = updatedCount
	if newCount == 0 && updatedCount == 0 {
		res.Status = StatusSkipped
		res.Message = "no new data"
		return res
	}

	res.Status = StatusSuccess
	res.Message = fmt.Sprintf("%d new, %d updated", newCount, updatedCount)
	r.logger.Info("asset ingested",
		"asset", a.Name,
		"source", a.Source,
		"new", newCount,
		"updated", updatedCount,
		"previously_stored", existing,
	)
	return res
}
