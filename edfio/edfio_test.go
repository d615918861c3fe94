package edfio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ltick/edf"
	"github.com/ltick/edf/edfio"
)

func TestReadAll(t *testing.T) {
	buf, err := edfio.ReadAll(strings.NewReader("A=1\n"))
	require.NoError(t, err)
	require.Equal(t, []byte("A=1\n"), buf)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("A=1\nB=2\n"), 0o644))

	entries, err := edfio.ParseFile(path, edf.Fast())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "A", entries[0].Pair.Key)
}

func TestParseFile_MissingFile(t *testing.T) {
	_, err := edfio.ParseFile(filepath.Join(t.TempDir(), "missing.env"), edf.Fast())
	require.Error(t, err)
}

func TestLoad_DiscoversAndParses(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("A=1\n"), 0o644))

	child := filepath.Join(root, "nested")
	require.NoError(t, os.MkdirAll(child, 0o755))

	wd, err := os.Getwd()
	require.NoError(t, err)
	defer func() { require.NoError(t, os.Chdir(wd)) }()
	require.NoError(t, os.Chdir(child))

	m, err := edfio.Load(".env", edf.Fast())
	require.NoError(t, err)
	v, ok := m.Get("A")
	require.True(t, ok)
	require.Equal(t, "1", v)
}
