package driver

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnindexer/pkg/errcode"
)

func LoadIndexMissing(dir string) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LoadIndexMissingError,
		Msg:  "No loading index found at %s -- run with -load (or -all) first",
		Vars: []any{dir},
		Err:  fmt.Errorf("from %s: missing loading index at %s", fn, dir),
	}
}

func TargetUnwritable(dir string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TargetUnwritableError,
		Msg:  "Cannot write to target directory %s",
		Vars: []any{dir},
		Err:  fmt.Errorf("from %s: cannot prepare %s: %w", fn, dir, err),
	}
}

func NoTestSearchMatch(name string) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NoTestSearchMatchError,
		Msg:  "No match found for %s",
		Vars: []any{name},
		Err:  fmt.Errorf("from %s: no match for %q", fn, name),
	}
}
