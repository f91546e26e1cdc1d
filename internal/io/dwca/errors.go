package dwca

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnindexer/pkg/errcode"
)

func DwcaNotFound(dir string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DwcaNotFoundError,
		Msg:  "Cannot find a Darwin Core Archive at %s",
		Vars: []any{dir},
		Err:  fmt.Errorf("from %s: cannot read meta.xml in %s: %w", fn, dir, err),
	}
}

func DwcaReadErr(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DwcaReadError,
		Msg:  "Cannot read Darwin Core Archive file %s",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn, path, err),
	}
}

func VernacularFileErr(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.VernacularFileError,
		Msg:  "Cannot read vernacular name file %s",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn, path, err),
	}
}
