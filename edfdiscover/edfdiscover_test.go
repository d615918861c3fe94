package edfdiscover_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ltick/edf/edfdiscover"
)

func TestFind_LocatesFileInStartDir(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(target, []byte("A=1\n"), 0o644))

	got, err := edfdiscover.Find(dir, ".env")
	require.NoError(t, err)
	require.Equal(t, target, got)
}

func TestFind_AscendsToParent(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, ".env")
	require.NoError(t, os.WriteFile(target, []byte("A=1\n"), 0o644))

	child := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(child, 0o755))

	got, err := edfdiscover.Find(child, ".env")
	require.NoError(t, err)
	require.Equal(t, target, got)
}

func TestFind_NotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := edfdiscover.Find(dir, "does-not-exist.env")
	require.ErrorIs(t, err, edfdiscover.ErrNotFound)
}

func TestFind_DoesNotMatchDirectoryOfSameName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".env"), 0o755))

	_, err := edfdiscover.Find(dir, ".env")
	require.ErrorIs(t, err, edfdiscover.ErrNotFound)
}
