package store

import (
	"errors"
	"fmt"
)

// Store errors. Each names the step that failed; the underlying OS error
// is wrapped alongside.
var (
	ErrNoFile     = errors.New("contacts file does not exist")
	ErrOpenRead   = errors.New("cannot open contacts file for reading")
	ErrOpenWrite  = errors.New("cannot open contacts file for writing")
	ErrRead       = errors.New("cannot read contacts file")
	ErrWrite      = errors.New("cannot write contacts file")
	ErrCreateTemp = errors.New("cannot create temporary file")
	ErrWriteTemp  = errors.New("cannot write temporary file")
	ErrReplace    = errors.New("cannot replace contacts file")
)

// ReplaceError reports that a rewrite produced a complete temporary file
// but could not move it over the contacts file. The temporary file is left
// on disk for manual recovery.
type ReplaceError struct {
	Path     string
	TempPath string
	Err      error
}

func (e *ReplaceError) Error() string {
	return fmt.Sprintf("%v %s: %v (rewritten data kept in %s)", ErrReplace, e.Path, e.Err, e.TempPath)
}

// Unwrap matches both [ErrReplace] and the underlying error.
func (e *ReplaceError) Unwrap() []error {
	return []error{ErrReplace, e.Err}
}
