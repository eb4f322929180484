package schemadoc

import (
	"fmt"
)

// Well-known schema document keys.
const (
	KeyProperties = "properties"
	KeyRequired   = "required"
)

// Document is a single schema file. The root object keeps every top-level
// key in its original order; keys other than properties and required pass
// through transformations untouched.
type Document struct {
	root *Object
}

// Parse decodes data into a Document. The top-level value must be a JSON
// object.
func Parse(data []byte) (*Document, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parsing schema document: %w", err)
	}

	root, ok := v.(*Object)
	if !ok {
		return nil, fmt.Errorf("schema document root is not an object")
	}

	return &Document{root: root}, nil
}

// NewDocument wraps an existing root object.
func NewDocument(root *Object) *Document {
	return &Document{root: root}
}

// Root returns the document's top-level object.
func (d *Document) Root() *Object {
	return d.root
}

// Encode serializes the document with stable ordering and a trailing
// newline.
func (d *Document) Encode() []byte {
	return Encode(d.root)
}

// Properties returns the properties object, or an empty object if the key
// is absent or not an object. The returned object is live: mutations are
// visible in the document only when the key was present.
func (d *Document) Properties() *Object {
	v, ok := d.root.Get(KeyProperties)
	if !ok {
		return &Object{}
	}

	obj, ok := v.(*Object)
	if !ok {
		return &Object{}
	}

	return obj
}

// SetProperties replaces the properties object, keeping the key's
// original position when present.
func (d *Document) SetProperties(props *Object) {
	d.root.Set(KeyProperties, props)
}

// Required returns the required field names in declaration order. Entries
// that are not strings are ignored.
func (d *Document) Required() []string {
	v, ok := d.root.Get(KeyRequired)
	if !ok {
		return nil
	}

	arr, ok := v.(*Array)
	if !ok {
		return nil
	}

	var names []string
	for _, item := range arr.Items {
		s, ok := item.(Scalar)
		if !ok {
			continue
		}

		if name, ok := s.AsString(); ok {
			names = append(names, name)
		}
	}

	return names
}

// SetRequired replaces the required list, keeping the key's original
// position when present.
func (d *Document) SetRequired(names []string) {
	items := make([]Value, len(names))
	for i, name := range names {
		items[i] = NewString(name)
	}

	d.root.Set(KeyRequired, &Array{Items: items})
}
