package typedref

import (
	"schema-composer/internal/config"
	"schema-composer/internal/schemadoc"
)

// FieldOutcome records the result of rewriting one configured field.
type FieldOutcome struct {
	// Field is the configured property name.
	Field string
	// Ref is the typed-identifier schema path.
	Ref string
	// Nullable indicates the reference was wrapped with null.
	Nullable bool
	// Found is false when the field is absent from the document's
	// properties; the rewrite is skipped, not failed.
	Found bool
}

// Rewrite replaces each configured field's schema fragment with a typed
// reference, in configuration order. Missing fields are reported as
// not-found outcomes and do not stop remaining fields.
func Rewrite(doc *schemadoc.Document, fields []config.TypedRef) []FieldOutcome {
	props := doc.Properties()

	outcomes := make([]FieldOutcome, 0, len(fields))
	for _, tr := range fields {
		outcome := FieldOutcome{Field: tr.Field, Ref: tr.Ref, Nullable: tr.Nullable}

		if props.Has(tr.Field) {
			props.Set(tr.Field, referenceValue(tr))
			outcome.Found = true
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

// referenceValue builds {"$ref": P} or, when nullable,
// {"anyOf": [{"$ref": P}, {"type": "null"}]}.
func referenceValue(tr config.TypedRef) *schemadoc.Object {
	ref := schemadoc.NewObject(
		schemadoc.Member{Key: "$ref", Value: schemadoc.NewString(tr.Ref)},
	)

	if !tr.Nullable {
		return ref
	}

	return schemadoc.NewObject(
		schemadoc.Member{Key: "anyOf", Value: schemadoc.NewArray(
			ref,
			schemadoc.NewObject(schemadoc.Member{Key: "type", Value: schemadoc.NewString("null")}),
		)},
	)
}
