// Package driver runs the composition and typed-reference pipelines over
// a configured batch of schema documents.
//
// Resolution pipeline per document:
//  1. Resolve the target name against the store (absence is a skip)
//  2. Parse into the ordered document model (parse failure is a hard
//     per-document failure)
//  3. Classify properties, compose references, rebuild required, merge
//     provenance metadata (or apply typed-reference rewrites)
//  4. Persist in apply mode; preview mode performs the identical
//     analysis and reporting but suppresses every write
//
// The batch never aborts on a per-document outcome; only configuration
// errors, detected in New before any document is read, stop a run.
package driver
