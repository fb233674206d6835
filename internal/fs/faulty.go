package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"sync"
	"syscall"
)

// Op names an [FS] operation that [Faulty] can fail.
type Op string

// Operations understood by [Faulty].
const (
	OpOpen       Op = "open"
	OpOpenFile   Op = "openfile"
	OpCreateTemp Op = "createtemp"
	OpWrite      Op = "write"
	OpSync       Op = "sync"
	OpReadFile   Op = "readfile"
	OpWriteFile  Op = "writefile"
	OpStat       Op = "stat"
	OpRemove     Op = "remove"
	OpReplace    Op = "replace"
)

// Faulty wraps an [FS] and fails selected operations with a fixed errno.
//
// Unlike random fault injection, every call to a failed operation fails
// until [Faulty.Heal] is called, so tests can target one failure point
// (say, the final replace of a rewrite) and assert on the exact outcome.
// Failures are [*Fault] values wrapping real OS error shapes
// (*fs.PathError or *os.LinkError around a syscall.Errno), so errors.Is
// against the errno or fs.ErrPermission and friends keeps working.
type Faulty struct {
	fs FS

	mu     sync.Mutex
	faults map[Op]syscall.Errno
	calls  map[Op]int
}

// NewFaulty returns a [Faulty] that passes everything through to fsys
// until told to fail.
func NewFaulty(fsys FS) *Faulty {
	return &Faulty{
		fs:     fsys,
		faults: make(map[Op]syscall.Errno),
		calls:  make(map[Op]int),
	}
}

// Fail makes every subsequent op fail with errno.
func (f *Faulty) Fail(op Op, errno syscall.Errno) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.faults[op] = errno
}

// Heal stops failing op.
func (f *Faulty) Heal(op Op) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.faults, op)
}

// Calls returns how many times op was attempted, failed or not.
func (f *Faulty) Calls(op Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[op]
}

// check records a call to op and returns the errno to fail it with, or 0.
func (f *Faulty) check(op Op) syscall.Errno {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[op]++

	return f.faults[op]
}

// Fault is the error returned by an operation [Faulty] was told to fail.
type Fault struct {
	Op  Op
	Err error
}

func (f *Fault) Error() string {
	return f.Err.Error()
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// IsInjected reports whether err (or any error it wraps) is a [*Fault].
func IsInjected(err error) bool {
	var fault *Fault

	return errors.As(err, &fault)
}

func pathError(op Op, path string, errno syscall.Errno) error {
	return &Fault{Op: op, Err: &iofs.PathError{Op: string(op), Path: path, Err: errno}}
}

// --- File Operations ---

func (f *Faulty) Open(path string) (File, error) {
	if errno := f.check(OpOpen); errno != 0 {
		return nil, pathError(OpOpen, path, errno)
	}

	file, err := f.fs.Open(path)
	if err != nil {
		return nil, err
	}

	return &faultyFile{File: file, faulty: f}, nil
}

func (f *Faulty) OpenFile(path string, flag int, perm os.FileMode) (File, error) {
	if errno := f.check(OpOpenFile); errno != 0 {
		return nil, pathError(OpOpenFile, path, errno)
	}

	file, err := f.fs.OpenFile(path, flag, perm)
	if err != nil {
		return nil, err
	}

	return &faultyFile{File: file, faulty: f}, nil
}

func (f *Faulty) CreateTemp(dir, pattern string) (File, error) {
	if errno := f.check(OpCreateTemp); errno != 0 {
		return nil, pathError(OpCreateTemp, dir, errno)
	}

	file, err := f.fs.CreateTemp(dir, pattern)
	if err != nil {
		return nil, err
	}

	return &faultyFile{File: file, faulty: f}, nil
}

// --- Convenience Methods ---

func (f *Faulty) ReadFile(path string) ([]byte, error) {
	if errno := f.check(OpReadFile); errno != 0 {
		return nil, pathError(OpReadFile, path, errno)
	}

	return f.fs.ReadFile(path)
}

func (f *Faulty) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if errno := f.check(OpWriteFile); errno != 0 {
		return pathError(OpWriteFile, path, errno)
	}

	return f.fs.WriteFileAtomic(path, data, perm)
}

// --- Metadata ---

func (f *Faulty) Exists(path string) (bool, error) {
	if errno := f.check(OpStat); errno != 0 {
		return false, pathError(OpStat, path, errno)
	}

	return f.fs.Exists(path)
}

// --- Mutations ---

func (f *Faulty) Remove(path string) error {
	if errno := f.check(OpRemove); errno != 0 {
		return pathError(OpRemove, path, errno)
	}

	return f.fs.Remove(path)
}

func (f *Faulty) Replace(source, destination string) error {
	if errno := f.check(OpReplace); errno != 0 {
		return &Fault{Op: OpReplace, Err: &os.LinkError{Op: "rename", Old: source, New: destination, Err: errno}}
	}

	return f.fs.Replace(source, destination)
}

// faultyFile fails writes and syncs on behalf of its [Faulty].
type faultyFile struct {
	File

	faulty *Faulty
}

func (ff *faultyFile) Write(p []byte) (int, error) {
	if errno := ff.faulty.check(OpWrite); errno != 0 {
		return 0, pathError(OpWrite, ff.Name(), errno)
	}

	return ff.File.Write(p)
}

func (ff *faultyFile) Sync() error {
	if errno := ff.faulty.check(OpSync); errno != 0 {
		return pathError(OpSync, ff.Name(), errno)
	}

	return ff.File.Sync()
}

// Compile-time interface check.
var _ FS = (*Faulty)(nil)
