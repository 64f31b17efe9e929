// Package provider implements HTTP clients for the upstream data services.
//
// One Client per provider family:
//   - price-history service (daily candles per ticker)
//   - exchange-index service (full daily series per index code)
//   - central-bank FX service (buy/sell/mid quotes per currency)
//   - macro-indicator service (named snapshot tables)
//   - spot-exchange service (historical series per product code)
//
// All requests go through a shared GET helper with a per-client rate
// limiter, bounded timeout, and exponential backoff retry on 5xx/429.
// Localized services deliver GB18030-encoded payloads; clients constructed
// with WithGB18030 transparently decode them.
package provider
