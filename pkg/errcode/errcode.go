package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File system errors
	CreateDirError
	BackupDirError
	ReadFileError

	// Archive errors
	DwcaNotFoundError
	DwcaReadError
	VernacularFileError

	// Index errors
	IndexOpenError
	IndexWriteError
	IndexCommitError
	IndexQueryError

	// Driver errors
	LoadIndexMissingError
	TargetUnwritableError
	NoTestSearchMatchError
)
