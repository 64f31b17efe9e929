// Package ingest orchestrates one ingestion batch.
//
// The runner dispatches one task per registered asset into a bounded
// worker pool. Each task runs gate check, adapter fetch, and normalization
// independently; failures are captured as per-asset results and never
// propagate to sibling tasks. Results flow back over a channel and are
// aggregated into a run report after all tasks finish, so no counters are
// shared between workers.
package ingest
