// Package schemadoc provides an order-preserving JSON document model for
// schema files.
//
// Standard map-based decoding loses member order, but persisted schema output
// must be byte-stable across runs so diffs stay reviewable. This package keeps
// every object as an explicit association list and re-encodes documents
// deterministically (two-space indent, trailing newline).
//
// Key types:
//   - Value: one node of a decoded document tree
//   - Object: ordered members, with by-key access
//   - Document: a schema file with properties/required helpers
package schemadoc
