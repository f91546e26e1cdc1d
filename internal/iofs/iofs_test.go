package iofs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesNewDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	newDir := filepath.Join(tmpDir, "test", "subdir")

	err := EnsureDir(newDir)
	require.NoError(t, err)

	info, err := os.Stat(newDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureDir_ExistingDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	existingDir := filepath.Join(tmpDir, "existing")
	require.NoError(t, os.MkdirAll(existingDir, 0755))

	require.NoError(t, EnsureDir(existingDir))

	info, err := os.Stat(existingDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestBackupIfExists_NoPriorTarget(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "target")

	err := BackupIfExists(target)
	require.NoError(t, err)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestBackupIfExists_RenamesExistingTarget(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "target")
	require.NoError(t, os.MkdirAll(target, 0755))

	marker := filepath.Join(target, "marker.txt")
	require.NoError(t, os.WriteFile(marker, []byte("prior build"), 0644))

	require.NoError(t, BackupIfExists(target))

	// The new target exists and is empty.
	entries, err := os.ReadDir(target)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// A backup directory with a timestamp suffix holds the old content.
	matches, err := filepath.Glob(target + "_*")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	backedUpMarker := filepath.Join(matches[0], "marker.txt")
	content, err := os.ReadFile(backedUpMarker)
	require.NoError(t, err)
	assert.Equal(t, "prior build", string(content))

	// Suffix parses as the documented timestamp format.
	suffix := filepath.Base(matches[0])[len(filepath.Base(target))+1:]
	_, err = time.Parse("2006-01-02_15-04-05", suffix)
	assert.NoError(t, err)
}
