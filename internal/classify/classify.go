package classify

import (
	"schema-composer/internal/config"
	"schema-composer/internal/schemadoc"
)

// Result partitions a property set by group membership.
type Result struct {
	// Matched maps group name to the subset of properties belonging to
	// that group, in original property order.
	Matched map[string]*schemadoc.Object

	// Own holds the properties matching no group, in original order.
	Own *schemadoc.Object
}

// Fields returns the matched field names for the named group, in original
// property order.
func (r Result) Fields(group string) []string {
	obj, ok := r.Matched[group]
	if !ok {
		return nil
	}

	return obj.Keys()
}

// Classify partitions properties against groups. First match in group
// declaration order wins. The input object is not modified.
func Classify(props *schemadoc.Object, groups []config.Group) Result {
	res := Result{
		Matched: make(map[string]*schemadoc.Object, len(groups)),
		Own:     schemadoc.NewObject(),
	}

	for i := range groups {
		res.Matched[groups[i].Name] = schemadoc.NewObject()
	}

	for _, m := range props.Members() {
		if g := matchGroup(m.Key, groups); g != nil {
			res.Matched[g.Name].Append(m.Key, m.Value)
			continue
		}

		res.Own.Append(m.Key, m.Value)
	}

	return res
}

func matchGroup(field string, groups []config.Group) *config.Group {
	for i := range groups {
		if groups[i].Has(field) {
			return &groups[i]
		}
	}

	return nil
}
