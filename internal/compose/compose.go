package compose

import (
	"schema-composer/internal/classify"
	"schema-composer/internal/config"
	"schema-composer/internal/schemadoc"
)

// GroupFields pairs a group name with field names, keeping report output
// ordered.
type GroupFields struct {
	Group  string
	Fields []string
}

// Outcome reports what one composition pass did to a document.
type Outcome struct {
	// Absorbed lists, per composed group that matched, the fields moved
	// behind its reference property, in group declaration order.
	Absorbed []GroupFields

	// Kept lists, per direct group that matched, the fields left inline.
	Kept []GroupFields

	// Own lists the fields matching no group.
	Own []string
}

// Apply rewrites the document's properties and required list according to
// the classification. Top-level keys other than properties and required
// are not touched here; provenance metadata is handled by Annotate.
func Apply(doc *schemadoc.Document, res classify.Result, cfg *config.Config) *Outcome {
	out := &Outcome{Own: res.Own.Keys()}

	if !doc.Root().Has(schemadoc.KeyProperties) {
		return out
	}

	origRequired := make(map[string]bool)
	for _, name := range doc.Required() {
		origRequired[name] = true
	}

	newProps := schemadoc.NewObject()

	// Direct-kept fields first, in original property order even when
	// several direct groups interleave.
	direct := make(map[string]bool)
	for _, g := range cfg.Groups {
		if g.IsCompose() {
			continue
		}

		matched := res.Matched[g.Name]
		if matched == nil || matched.Len() == 0 {
			continue
		}

		for _, name := range matched.Keys() {
			direct[name] = true
		}

		out.Kept = append(out.Kept, GroupFields{Group: g.Name, Fields: matched.Keys()})
	}

	for _, m := range doc.Properties().Members() {
		if direct[m.Key] {
			newProps.Append(m.Key, m.Value)
		}
	}

	// One reference property per composed group that matched anything.
	// A group matching zero fields contributes nothing; not every
	// document uses every group.
	composedRefs := make(map[string]bool)
	for _, g := range cfg.Groups {
		if !g.IsCompose() {
			continue
		}

		matched := res.Matched[g.Name]
		if matched == nil || matched.Len() == 0 {
			continue
		}

		newProps.Append(g.Name, referenceValue(g))
		composedRefs[g.Name] = true

		out.Absorbed = append(out.Absorbed, GroupFields{Group: g.Name, Fields: matched.Keys()})
	}

	// Own fields last. A pre-existing reference property from an earlier
	// run classifies as an own field; if this run re-introduced the same
	// reference, the new one is authoritative.
	for _, m := range res.Own.Members() {
		if newProps.Has(m.Key) {
			continue
		}

		newProps.Append(m.Key, m.Value)
	}

	doc.SetProperties(newProps)
	rebuildRequired(doc, newProps, origRequired, composedRefs, cfg)

	return out
}

// rebuildRequired recomputes the required list in final property order.
// Fields keep their original required-ness; a reference introduced this
// run is required regardless of whether its constituent fields were,
// unless its group opts out.
func rebuildRequired(doc *schemadoc.Document, props *schemadoc.Object, origRequired map[string]bool, composedRefs map[string]bool, cfg *config.Config) {
	optional := make(map[string]bool)
	for _, g := range cfg.Groups {
		if g.Optional {
			optional[g.Name] = true
		}
	}

	var required []string
	for _, key := range props.Keys() {
		switch {
		case composedRefs[key]:
			if !optional[key] {
				required = append(required, key)
			}
		case origRequired[key]:
			required = append(required, key)
		}
	}

	// Avoid introducing a required key on documents that never had one
	// and gained no required fields.
	if len(required) == 0 && !doc.Root().Has(schemadoc.KeyRequired) {
		return
	}

	doc.SetRequired(required)
}

func referenceValue(g config.Group) *schemadoc.Object {
	ref := schemadoc.NewObject(
		schemadoc.Member{Key: "$ref", Value: schemadoc.NewString(g.Ref)},
	)

	if g.Description != "" {
		ref.Append("description", schemadoc.NewString(g.Description))
	}

	return ref
}
