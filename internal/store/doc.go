// Package store owns persistence for canonical observations.
//
// Uniqueness is enforced on (type_id, symbol, data_date): a colliding write
// updates the mutable fields in place instead of inserting a duplicate, so
// re-running a batch is idempotent. The store may hold several sources'
// rows for the same symbol and date; cross-source resolution happens at
// read time (package dedup), never at write time.
package store
