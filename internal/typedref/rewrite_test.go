package typedref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-composer/internal/config"
	"schema-composer/internal/schemadoc"
)

func mustParse(t *testing.T, data string) *schemadoc.Document {
	t.Helper()

	doc, err := schemadoc.Parse([]byte(data))
	require.NoError(t, err)

	return doc
}

func TestRewrite_NullableReference(t *testing.T) {
	doc := mustParse(t, `{"properties": {"sender_id": {"type": "string"}}}`)

	outcomes := Rewrite(doc, []config.TypedRef{
		{Field: "sender_id", Ref: "UserId.schema.json", Nullable: true},
	})

	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].Found)

	want := `{
  "properties": {
    "sender_id": {
      "anyOf": [
        {
          "$ref": "UserId.schema.json"
        },
        {
          "type": "null"
        }
      ]
    }
  }
}
`
	assert.Equal(t, want, string(doc.Encode()))
}

func TestRewrite_NonNullableReference(t *testing.T) {
	doc := mustParse(t, `{"properties": {"id": {"type": "string", "format": "uuid", "description": "old"}}}`)

	Rewrite(doc, []config.TypedRef{{Field: "id", Ref: "../primitives/EntityId.schema.json"}})

	// Full replacement: the previous fragment is discarded entirely.
	v, ok := doc.Properties().Get("id")
	require.True(t, ok)

	obj := v.(*schemadoc.Object)
	assert.Equal(t, []string{"$ref"}, obj.Keys())
}

func TestRewrite_FieldNotFound(t *testing.T) {
	doc := mustParse(t, `{"properties": {"owner_id": {"type": "string"}}}`)
	before := string(doc.Encode())

	outcomes := Rewrite(doc, []config.TypedRef{
		{Field: "missing_id", Ref: "UserId.schema.json", Nullable: true},
		{Field: "owner_id", Ref: "UserId.schema.json", Nullable: true},
	})

	// The missing field is reported and skipped; later fields still
	// rewrite.
	require.Len(t, outcomes, 2)
	assert.False(t, outcomes[0].Found)
	assert.True(t, outcomes[1].Found)
	assert.NotEqual(t, before, string(doc.Encode()))
}

func TestRewrite_PreservesPropertyOrder(t *testing.T) {
	doc := mustParse(t, `{"properties": {"a": {"type": "string"}, "sender_id": {"type": "string"}, "z": {"type": "string"}}}`)

	Rewrite(doc, []config.TypedRef{{Field: "sender_id", Ref: "UserId.schema.json"}})

	assert.Equal(t, []string{"a", "sender_id", "z"}, doc.Properties().Keys())
}

func TestRewrite_Idempotent(t *testing.T) {
	doc := mustParse(t, `{"properties": {"sender_id": {"type": "string"}}}`)
	fields := []config.TypedRef{{Field: "sender_id", Ref: "UserId.schema.json", Nullable: true}}

	Rewrite(doc, fields)
	once := string(doc.Encode())

	Rewrite(doc, fields)
	assert.Equal(t, once, string(doc.Encode()))
}
