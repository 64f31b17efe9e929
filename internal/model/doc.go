// Package model defines shared data types used across the ingestion engine.
//
// Conventions:
//   - Dates: calendar days, stored as time.Time truncated to UTC midnight
//   - Values: float64 pointers, nil means "not reported by the provider"
//   - AdditionalData: the raw provider row, serialized to JSONB at write time
package model
