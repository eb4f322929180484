// Package compose rewrites a classified schema document so that composed
// group fields collapse behind shared component references.
//
// Rewriting pipeline for one document:
//  1. Emit direct-kept group fields first, in original property order
//  2. Emit one reference property per composed group that matched at
//     least one field, in group declaration order
//  3. Emit own fields, in original property order
//  4. Rebuild required in final property order; a composed reference is
//     required once present (unless the group is marked optional)
//  5. Merge provenance metadata under the x-composition key
//
// The rewrite is idempotent: once fields are absorbed they no longer
// classify, so a second pass changes nothing.
package compose
