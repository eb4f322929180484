package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-composer/internal/config"
	"schema-composer/internal/schemadoc"
)

func testGroups() []config.Group {
	return []config.Group{
		{Name: "identity", Action: config.ActionDirect, Fields: config.StringList{"id", "tenant_id", "created_at"}},
		{Name: "physics", Action: config.ActionCompose, Ref: "../components/FieldExcitation.schema.json",
			Fields: config.StringList{"amplitude", "energy", "position", "velocity", "temperature"}},
	}
}

func props(names ...string) *schemadoc.Object {
	obj := schemadoc.NewObject()
	for _, n := range names {
		obj.Append(n, schemadoc.NewObject(schemadoc.Member{Key: "type", Value: schemadoc.NewString("string")}))
	}

	return obj
}

func TestClassify_Partition(t *testing.T) {
	in := props("id", "tenant_id", "created_at", "amplitude", "energy", "name")

	res := Classify(in, testGroups())

	assert.Equal(t, []string{"id", "tenant_id", "created_at"}, res.Fields("identity"))
	assert.Equal(t, []string{"amplitude", "energy"}, res.Fields("physics"))
	assert.Equal(t, []string{"name"}, res.Own.Keys())

	// Input unchanged.
	assert.Equal(t, []string{"id", "tenant_id", "created_at", "amplitude", "energy", "name"}, in.Keys())
}

func TestClassify_NoMatches(t *testing.T) {
	in := props("name", "description")

	res := Classify(in, testGroups())

	assert.Empty(t, res.Fields("identity"))
	assert.Empty(t, res.Fields("physics"))
	assert.Equal(t, []string{"name", "description"}, res.Own.Keys())
}

func TestClassify_PreservesRelativeOrder(t *testing.T) {
	// Matched subsets keep the original property order, not group
	// declaration order of fields.
	in := props("energy", "name", "amplitude", "id")

	res := Classify(in, testGroups())

	assert.Equal(t, []string{"energy", "amplitude"}, res.Fields("physics"))
	assert.Equal(t, []string{"id"}, res.Fields("identity"))
	assert.Equal(t, []string{"name"}, res.Own.Keys())
}

func TestClassify_FirstMatchWinsOnOverlap(t *testing.T) {
	// Overlapping groups are rejected by config validation; if that is
	// bypassed, classification must still be deterministic.
	groups := []config.Group{
		{Name: "a", Action: config.ActionDirect, Fields: config.StringList{"id"}},
		{Name: "b", Action: config.ActionDirect, Fields: config.StringList{"id"}},
	}

	res := Classify(props("id"), groups)

	assert.Equal(t, []string{"id"}, res.Fields("a"))
	assert.Empty(t, res.Fields("b"))
}

func TestClassify_EmptyProperties(t *testing.T) {
	res := Classify(schemadoc.NewObject(), testGroups())

	require.NotNil(t, res.Own)
	assert.Zero(t, res.Own.Len())
}

func TestResult_FieldsUnknownGroup(t *testing.T) {
	res := Classify(props("id"), testGroups())

	assert.Nil(t, res.Fields("nope"))
}
