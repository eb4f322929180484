package compose

import (
	"schema-composer/internal/schemadoc"
)

// KeyComposition is the vendor-extension key recording which fields each
// component reference absorbed.
const KeyComposition = "x-composition"

const noteKey = "note"

// Annotate records provenance for this run's absorbed fields under the
// x-composition key. An existing record is merged, not overwritten, so
// repeated runs accumulate a consistent trail: absorbed field lists are
// unioned per group and the note is kept once.
func Annotate(doc *schemadoc.Document, absorbed []GroupFields, note string) {
	if len(absorbed) == 0 {
		return
	}

	record, ok := existingRecord(doc)
	if !ok {
		record = schemadoc.NewObject()
		doc.Root().Set(KeyComposition, record)
	}

	for _, gf := range absorbed {
		record.Set(gf.Group, mergeFieldList(record, gf))
	}

	if !record.Has(noteKey) {
		record.Append(noteKey, schemadoc.NewString(note))
	}
}

func existingRecord(doc *schemadoc.Document) (*schemadoc.Object, bool) {
	v, ok := doc.Root().Get(KeyComposition)
	if !ok {
		return nil, false
	}

	obj, ok := v.(*schemadoc.Object)
	return obj, ok
}

func mergeFieldList(record *schemadoc.Object, gf GroupFields) *schemadoc.Array {
	seen := make(map[string]bool)
	merged := schemadoc.NewArray()

	if prev, ok := record.Get(gf.Group); ok {
		if arr, ok := prev.(*schemadoc.Array); ok {
			for _, item := range arr.Items {
				merged.Items = append(merged.Items, item)

				if s, ok := item.(schemadoc.Scalar); ok {
					if name, ok := s.AsString(); ok {
						seen[name] = true
					}
				}
			}
		}
	}

	for _, name := range gf.Fields {
		if seen[name] {
			continue
		}

		merged.Items = append(merged.Items, schemadoc.NewString(name))
	}

	return merged
}
