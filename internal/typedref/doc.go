// Package typedref replaces scalar identifier fields with references to
// typed-identifier schemas.
//
// The replacement is total: the field's previous schema fragment (type,
// format, description) is discarded, because the typed-identifier schema
// is authoritative for that field. A nullable rewrite wraps the reference
// in an anyOf with null so the field still admits absent relationships.
package typedref
