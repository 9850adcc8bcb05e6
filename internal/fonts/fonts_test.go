package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, n := range names {
		p := filepath.Join(root, filepath.FromSlash(n))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, nil, 0644))
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.TTF", "Mono.otf", "README.md")

	got, err := ScanDir(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Inter/Inter-Bold.ttf", "Inter/Inter-Regular.TTF", "Mono.otf"}, got)

	got, err = ScanDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindPrefersRegular(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf", "Segoe_UI/segoe-ui.ttf")

	got, err := Find("inter", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"), got)

	got, err = Find("Segoe UI", filepath.Join(dir, "missing"), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Segoe_UI", "segoe-ui.ttf"), got)
}

func TestFindDirectPath(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "x.otf")
	p := filepath.Join(dir, "x.otf")
	got, err := Find(p)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestFindNotFound(t *testing.T) {
	_, err := Find("Comic", t.TempDir())
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = Find("")
	assert.ErrorIs(t, err, ErrNotFound)
}
