// Package classify partitions a document's top-level properties against
// the configured field groups.
//
// Classification is a pure function: for each property, group membership
// is tested in group declaration order and the first match wins, so the
// result is deterministic even if configuration validation was bypassed
// with overlapping groups (a configuration error, not a crash). Properties
// matching no group are own fields, preserved in their original relative
// order.
package classify
