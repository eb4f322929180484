package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := rootCmd()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return buf.String(), err
}

func TestList(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "entities", "Thread.schema.json"), "{}\n")
	writeFile(t, filepath.Join(root, "notes.txt"), "not a schema\n")

	out, err := run(t, "list", "--schema-root", root)
	require.NoError(t, err)

	assert.Contains(t, out, "entities/Thread.schema.json")
	assert.NotContains(t, out, "notes.txt")
}

func TestCompose_DryRun(t *testing.T) {
	root := t.TempDir()

	schemaPath := filepath.Join(root, "entities", "Thread.schema.json")
	writeFile(t, schemaPath, `{
  "properties": {
    "id": {"type": "string"},
    "amplitude": {"type": "number"},
    "name": {"type": "string"}
  },
  "required": ["id"]
}
`)

	configPath := filepath.Join(root, "schema-composer.yaml")
	writeFile(t, configPath, `
groups:
  - name: identity
    action: direct
    fields: [id]
  - name: physics
    ref: ../components/FieldExcitation.schema.json
    fields: [amplitude, energy]
targets:
  - entities/Thread.schema.json
`)

	before, err := os.ReadFile(schemaPath)
	require.NoError(t, err)

	out, err := run(t, "compose", "--dry-run", "--config", configPath, "--schema-root", root)
	require.NoError(t, err)

	assert.Contains(t, out, "physics fields composed: amplitude")
	assert.Contains(t, out, "would update")

	after, err := os.ReadFile(schemaPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCompose_InvalidConfigAborts(t *testing.T) {
	root := t.TempDir()

	configPath := filepath.Join(root, "schema-composer.yaml")
	writeFile(t, configPath, `
groups:
  - name: a
    action: direct
    fields: [id]
  - name: b
    action: direct
    fields: [id]
`)

	_, err := run(t, "compose", "--config", configPath, "--schema-root", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
