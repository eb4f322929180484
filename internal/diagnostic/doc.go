// Package diagnostic provides structured per-document and per-field
// outcome reporting for the batch pipeline.
//
// Key capabilities:
//   - Non-fatal skips (missing documents, missing fields)
//   - Hard per-document failures (malformed content, failed writes)
//   - Aggregation across a batch without aborting it
//
// No outcome is silently swallowed: every skip or failure is recorded and
// distinguishable from success.
package diagnostic
