package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnindexer/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDirError_Structure(t *testing.T) {
	testDir := "/test/dir"
	originalErr := errors.New("permission denied")

	err := CreateDirError(testDir, originalErr)

	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.CreateDirError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
	assert.Contains(t, gnErr.Msg, "%s")

	require.Len(t, gnErr.Vars, 1)
	assert.Equal(t, testDir, gnErr.Vars[0])

	assert.NotNil(t, gnErr.Err)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

func TestCreateDirError_Message(t *testing.T) {
	originalErr := errors.New("disk full")

	err := CreateDirError("/test/create", originalErr)
	gnErr := err.(*gn.Error)

	assert.Contains(t, gnErr.Err.Error(), "cannot create")
	assert.Contains(t, gnErr.Err.Error(), originalErr.Error())
}

func TestBackupDirError_Structure(t *testing.T) {
	dir := "/data/target"
	backupPath := "/data/target_2026-08-06_17-51-00"
	originalErr := errors.New("permission denied")

	err := BackupDirError(dir, backupPath, originalErr)

	require.NotNil(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.BackupDirError, gnErr.Code)
	require.Len(t, gnErr.Vars, 2)
	assert.Equal(t, dir, gnErr.Vars[0])
	assert.Equal(t, backupPath, gnErr.Vars[1])
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

func TestReadFileError_Structure(t *testing.T) {
	testPath := "/test/data.json"
	originalErr := errors.New("file not found")

	err := ReadFileError(testPath, originalErr)

	require.NotNil(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.ReadFileError, gnErr.Code)
	assert.Contains(t, gnErr.Msg, "<em>")
	require.Len(t, gnErr.Vars, 1)
	assert.Equal(t, testPath, gnErr.Vars[0])
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

func TestErrorFunctions_CallerInfo(t *testing.T) {
	tests := []struct {
		name    string
		errorFn func() error
	}{
		{"CreateDirError", func() error { return CreateDirError("/test", errors.New("t")) }},
		{"BackupDirError", func() error { return BackupDirError("/a", "/b", errors.New("t")) }},
		{"ReadFileError", func() error { return ReadFileError("/data", errors.New("t")) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr := tt.errorFn().(*gn.Error)
			assert.Contains(t, gnErr.Err.Error(), "from")
		})
	}
}
