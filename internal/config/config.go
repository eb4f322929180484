package config

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root of a YAML composition configuration file.
type Config struct {
	// Version of the configuration schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Groups is the ordered list of field groups. Declaration order is
	// the tie-break order for classification and the emission order for
	// composed reference properties.
	Groups []Group `yaml:"groups"`

	// Targets lists the schema document names the composition pipeline
	// processes, resolved against the store root.
	Targets StringList `yaml:"targets,omitempty"`

	// Note is the provenance note recorded with composition metadata.
	// Defaults to a description of the direct-kept groups.
	Note string `yaml:"note,omitempty"`

	// TypedRefs configures the typed-reference rewriter, one entry per
	// schema document.
	TypedRefs []DocumentRefs `yaml:"typed_refs,omitempty"`
}

// Action indicates what the pipeline does with a group's fields.
type Action string

const (
	// ActionCompose absorbs the group's fields behind one reference
	// property pointing at a shared component schema.
	ActionCompose Action = "compose"
	// ActionDirect keeps the group's fields inline, ahead of composed
	// references. Used for identity-like fields whose schemas are typed
	// per entity and must not collapse into a generic component.
	ActionDirect Action = "direct"
)

// IsValid returns true if the action is a recognized value.
func (a Action) IsValid() bool {
	return a == ActionCompose || a == ActionDirect
}

// Group is a named, immutable set of candidate field names.
type Group struct {
	// Name of the group; also the reference property name for composed
	// groups (e.g., "physics").
	Name string `yaml:"name"`

	// Action selects compose or direct handling. Defaults to compose.
	Action Action `yaml:"action,omitempty"`

	// Fields are the member field names. Groups must be disjoint.
	Fields StringList `yaml:"fields"`

	// Ref is the component schema path a composed group points at.
	// Required for compose groups, unused for direct groups.
	Ref string `yaml:"ref,omitempty"`

	// Description, when set, is attached verbatim alongside the
	// reference.
	Description string `yaml:"description,omitempty"`

	// Optional disables the default policy of marking the composed
	// reference required whenever it is present.
	Optional bool `yaml:"optional,omitempty"`
}

// Has returns true if field is a member of the group.
func (g *Group) Has(field string) bool {
	return slices.Contains(g.Fields, field)
}

// IsCompose returns true if the group's fields are absorbed into a
// component reference.
func (g *Group) IsCompose() bool {
	return g.Action == ActionCompose
}

// DocumentRefs configures typed-reference rewrites for one document.
type DocumentRefs struct {
	// Document is the schema name resolved against the store root.
	Document string `yaml:"document"`

	// Fields are the per-field rewrites, applied in order.
	Fields []TypedRef `yaml:"fields"`
}

// TypedRef replaces one scalar field's schema with a reference to a
// typed-identifier schema.
type TypedRef struct {
	// Field is the property name to rewrite.
	Field string `yaml:"field"`

	// Ref is the typed-identifier schema path.
	Ref string `yaml:"ref"`

	// Nullable wraps the reference in an anyOf with null.
	Nullable bool `yaml:"nullable,omitempty"`
}

// StringList is a []string that can be unmarshaled from either a single
// YAML scalar or a sequence.
type StringList []string

// UnmarshalYAML implements custom YAML unmarshaling for StringList.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringList{str}
		} else {
			*s = StringList{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// ConfigurationError reports every problem found during validation.
// It is fatal: no document is touched when validation fails.
type ConfigurationError struct {
	Problems []string
}

// Error returns all problems joined into one message.
func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}
