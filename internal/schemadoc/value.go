package schemadoc

import (
	"github.com/goccy/go-json"
)

// Value is one node of a decoded JSON document tree.
// It is implemented by *Object, *Array, and Scalar.
type Value interface {
	isValue()
}

// Member is a single key/value pair inside an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object whose members keep their declaration order.
type Object struct {
	members []Member
}

// Array is a JSON array.
type Array struct {
	Items []Value
}

// Scalar is a JSON string, number, boolean, or null, held as its
// serialized form.
type Scalar struct {
	raw string
}

func (*Object) isValue() {}
func (*Array) isValue()  {}
func (Scalar) isValue()  {}

// NewObject builds an object from members in the given order.
func NewObject(members ...Member) *Object {
	return &Object{members: members}
}

// Len returns the number of members.
func (o *Object) Len() int {
	return len(o.members)
}

// Members returns the members in order. The slice is shared; callers
// must not modify it.
func (o *Object) Members() []Member {
	return o.members
}

// Keys returns the member keys in order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}

	return keys
}

// Get returns the value for key and whether it is present.
func (o *Object) Get(key string) (Value, bool) {
	for _, m := range o.members {
		if m.Key == key {
			return m.Value, true
		}
	}

	return nil, false
}

// Has returns true if key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set replaces the value for key in place, or appends a new member if the
// key is absent. Existing keys keep their position.
func (o *Object) Set(key string, v Value) {
	for i, m := range o.members {
		if m.Key == key {
			o.members[i].Value = v
			return
		}
	}

	o.members = append(o.members, Member{Key: key, Value: v})
}

// Append adds a member at the end without checking for duplicates.
func (o *Object) Append(key string, v Value) {
	o.members = append(o.members, Member{Key: key, Value: v})
}

// Delete removes the member with the given key, if present.
func (o *Object) Delete(key string) {
	for i, m := range o.members {
		if m.Key == key {
			o.members = append(o.members[:i], o.members[i+1:]...)
			return
		}
	}
}

// NewArray builds an array from items in the given order.
func NewArray(items ...Value) *Array {
	return &Array{Items: items}
}

// NewString returns a string scalar.
func NewString(s string) Scalar {
	b, _ := json.Marshal(s)
	return Scalar{raw: string(b)}
}

// Null returns the JSON null scalar.
func Null() Scalar {
	return Scalar{raw: "null"}
}

// Raw returns the scalar's serialized form.
func (s Scalar) Raw() string {
	return s.raw
}

// AsString returns the decoded string value and true if the scalar is a
// JSON string.
func (s Scalar) AsString() (string, bool) {
	var str string
	if err := json.Unmarshal([]byte(s.raw), &str); err != nil {
		return "", false
	}

	return str, true
}
