package config

import (
	"fmt"
)

// Validate checks the configuration eagerly, before any document is read.
// It returns a *ConfigurationError listing every problem found, or nil.
func Validate(cfg *Config) error {
	var problems []string

	problems = append(problems, validateGroups(cfg.Groups)...)
	problems = append(problems, validateTypedRefs(cfg.TypedRefs)...)

	if len(problems) > 0 {
		return &ConfigurationError{Problems: problems}
	}

	return nil
}

func validateGroups(groups []Group) []string {
	var problems []string

	seenNames := make(map[string]bool)
	// fieldOwner tracks which group first claimed each field, to report
	// disjointness violations with both group names.
	fieldOwner := make(map[string]string)

	for _, g := range groups {
		if g.Name == "" {
			problems = append(problems, "group with empty name")
			continue
		}

		if seenNames[g.Name] {
			problems = append(problems, fmt.Sprintf("duplicate group name %q", g.Name))
		}
		seenNames[g.Name] = true

		if !g.Action.IsValid() {
			problems = append(problems, fmt.Sprintf("group %q: unknown action %q", g.Name, g.Action))
		}

		if len(g.Fields) == 0 {
			problems = append(problems, fmt.Sprintf("group %q: no member fields", g.Name))
		}

		if g.IsCompose() && g.Ref == "" {
			problems = append(problems, fmt.Sprintf("group %q: compose group without ref", g.Name))
		}

		seenFields := make(map[string]bool)
		for _, f := range g.Fields {
			if f == "" {
				problems = append(problems, fmt.Sprintf("group %q: empty field name", g.Name))
				continue
			}

			if seenFields[f] {
				problems = append(problems, fmt.Sprintf("group %q: duplicate field %q", g.Name, f))
				continue
			}
			seenFields[f] = true

			if owner, ok := fieldOwner[f]; ok {
				problems = append(problems, fmt.Sprintf("field %q belongs to both group %q and group %q", f, owner, g.Name))
				continue
			}
			fieldOwner[f] = g.Name
		}
	}

	return problems
}

func validateTypedRefs(docs []DocumentRefs) []string {
	var problems []string

	seenDocs := make(map[string]bool)

	for _, d := range docs {
		if d.Document == "" {
			problems = append(problems, "typed_refs entry with empty document name")
			continue
		}

		if seenDocs[d.Document] {
			problems = append(problems, fmt.Sprintf("duplicate typed_refs entry for document %q", d.Document))
		}
		seenDocs[d.Document] = true

		if len(d.Fields) == 0 {
			problems = append(problems, fmt.Sprintf("typed_refs for %q: no fields", d.Document))
		}

		seenFields := make(map[string]TypedRef)
		for _, tr := range d.Fields {
			if tr.Field == "" {
				problems = append(problems, fmt.Sprintf("typed_refs for %q: empty field name", d.Document))
				continue
			}

			if tr.Ref == "" {
				problems = append(problems, fmt.Sprintf("typed_refs for %q: field %q without ref", d.Document, tr.Field))
			}

			if prev, ok := seenFields[tr.Field]; ok {
				if prev.Ref != tr.Ref || prev.Nullable != tr.Nullable {
					problems = append(problems, fmt.Sprintf("typed_refs for %q: contradictory entries for field %q", d.Document, tr.Field))
				} else {
					problems = append(problems, fmt.Sprintf("typed_refs for %q: duplicate entry for field %q", d.Document, tr.Field))
				}
				continue
			}
			seenFields[tr.Field] = tr
		}
	}

	return problems
}
