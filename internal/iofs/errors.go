package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnindexer/pkg/errcode"
)

func CreateDirError(dir string, err error) error {
	msg := "Cannot create %s"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create directory: %w",
			fn, err),
	}
}

func BackupDirError(dir, backupPath string, err error) error {
	msg := "Cannot back up existing target %s to %s"
	vars := []any{dir, backupPath}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BackupDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot rename %s to %s: %w",
			fn, dir, backupPath, err),
	}
}

func ReadFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn, path, err),
		Msg:  msg,
		Vars: vars,
	}
}

