// Package iofs provides the filesystem helpers the driver needs:
// creating index directories and backing up an existing target
// directory before a fresh search-index build (spec.md §3, §4.7).
package iofs

import (
	"fmt"
	"os"
	"time"
)

// EnsureDir creates dir (and any missing parents) if it does not
// already exist as a directory.
func EnsureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}
	return nil
}

// BackupIfExists renames dir to "<dir>_<YYYY-MM-DD_HH-MM-SS>" when it
// exists, then recreates dir empty. It is a no-op when dir does not
// exist. This mirrors the source tool's target-directory backup
// (spec.md §3 "Lifecycles", §4.7, original lines 517-524) so that a
// fresh `search`/`all` build never silently clobbers a prior good
// index.
func BackupIfExists(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		// Nothing to back up; make sure dir exists for the new build.
		return EnsureDir(dir)
	}

	suffix := time.Now().Format("2006-01-02_15-04-05")
	backupPath := fmt.Sprintf("%s_%s", dir, suffix)

	if err := os.Rename(dir, backupPath); err != nil {
		return BackupDirError(dir, backupPath, err)
	}

	return EnsureDir(dir)
}
