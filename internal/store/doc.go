// Package store provides the backing schema repository: named schema
// documents under a root directory.
//
// Names are slash-separated paths relative to the root. Reads classify a
// missing file as ErrNotFound so callers can treat absence as a skip
// rather than a failure. Writes are atomic per document (temp file plus
// rename in the same directory): either the whole rewritten document
// lands or none of it does.
package store
