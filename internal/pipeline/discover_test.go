package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "button_buy_bonus.png"))
	writeFile(t, filepath.Join(dir, "ambient.skel"))
	writeFile(t, filepath.Join(dir, "ambient.atlas"))
	writeFile(t, filepath.Join(dir, "notes.txt"))  // not an asset
	writeFile(t, filepath.Join(dir, "export.psd")) // not an asset
	writeFile(t, filepath.Join(dir, "sub", "symbol_1.PNG"))
	writeFile(t, filepath.Join(dir, "refs", "pose.png"))  // ignored folder
	writeFile(t, filepath.Join(dir, "Unused", "old.png")) // ignored, case-insensitive

	files, err := Discover(dir)
	require.NoError(t, err)

	require.Equal(t, []string{
		filepath.Join(dir, "ambient.atlas"),
		filepath.Join(dir, "ambient.skel"),
		filepath.Join(dir, "button_buy_bonus.png"),
		filepath.Join(dir, "sub", "symbol_1.PNG"),
	}, files)
}

func TestDiscoverMissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
