package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir_ReadWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()

	st, err := NewDir(dir)
	require.NoError(t, err)

	data := []byte("{\"title\": \"Thread\"}\n")
	require.NoError(t, st.Write("entities/Thread.schema.json", data))

	got, err := st.Read("entities/Thread.schema.json")
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestDir_ReadNotFound(t *testing.T) {
	st, err := NewDir(t.TempDir())
	require.NoError(t, err)

	_, err = st.Read("entities/Missing.schema.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDir_WriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()

	st, err := NewDir(dir)
	require.NoError(t, err)

	require.NoError(t, st.Write("Thread.schema.json", []byte("{}\n")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Thread.schema.json", entries[0].Name())
}

func TestDir_List(t *testing.T) {
	dir := t.TempDir()

	st, err := NewDir(dir)
	require.NoError(t, err)

	for _, name := range []string{
		"entities/Thread.schema.json",
		"entities/Moment.schema.json",
		"components/FieldExcitation.schema.json",
		"README.md",
	} {
		require.NoError(t, st.Write(name, []byte("{}\n")))
	}

	names, err := st.List("**/*.schema.json")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"components/FieldExcitation.schema.json",
		"entities/Moment.schema.json",
		"entities/Thread.schema.json",
	}, names)
}

func TestNewDir_MissingRoot(t *testing.T) {
	_, err := NewDir(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
