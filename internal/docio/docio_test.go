package docio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDocumentMissingFile(t *testing.T) {
	_, err := ReadDocument(filepath.Join(t.TempDir(), "nope.txt"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestReadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("机器学习 is fun"), 0o644))

	text, err := ReadDocument(path)

	require.NoError(t, err)
	assert.Equal(t, "机器学习 is fun", text)
}

func TestWriteResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.txt")

	require.NoError(t, WriteResult(path, 0.8748, DefaultPrecision))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0.87", string(data))
}

func TestWriteResultPrecision(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.txt")

	require.NoError(t, WriteResult(path, 0.8748, 3))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0.875", string(data))
}

func TestWriteResultNegativePrecisionDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.txt")

	require.NoError(t, WriteResult(path, 1.0, -1))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1.00", string(data))
}

func TestWriteResultBadDirectory(t *testing.T) {
	err := WriteResult(filepath.Join(t.TempDir(), "missing", "result.txt"), 0.5, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
}
