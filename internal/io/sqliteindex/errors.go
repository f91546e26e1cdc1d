package sqliteindex

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnindexer/pkg/errcode"
)

func IndexOpenError(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.IndexOpenError,
		Msg:  "Cannot open index at %s",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: cannot open index %s: %w", fn, path, err),
	}
}

func IndexWriteError(err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.IndexWriteError,
		Msg:  "Cannot write document to index",
		Err:  fmt.Errorf("from %s: cannot write document: %w", fn, err),
	}
}

func IndexCommitError(err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.IndexCommitError,
		Msg:  "Cannot finalize index",
		Err:  fmt.Errorf("from %s: cannot commit/compact index: %w", fn, err),
	}
}

func IndexQueryError(field, value string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.IndexQueryError,
		Msg:  "Cannot query %s = %s",
		Vars: []any{field, value},
		Err:  fmt.Errorf("from %s: cannot query %s=%s: %w", fn, field, value, err),
	}
}
