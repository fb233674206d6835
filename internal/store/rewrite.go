package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/calvinalkan/contacts/internal/contact"
)

// Transform maps a stored record to its replacement line. Returning
// keep=false drops the record from the rewritten file.
type Transform func(rec Record) (line string, keep bool)

// RewriteStats counts what a rewrite did.
type RewriteStats struct {
	Kept    int
	Dropped int
}

// Rewrite streams every non-blank line of the file through transform into
// a sibling temporary file, then replaces the original with it.
//
// A missing file returns [ErrNoFile] and creates nothing. Failures before
// the replace remove the temporary file and leave the original untouched.
// If the replace itself fails, a [*ReplaceError] is returned and the
// temporary file, which holds the complete rewritten data, stays on disk.
func (s *Store) Rewrite(transform Transform) (RewriteStats, error) {
	var stats RewriteStats

	src, err := s.open()
	if err != nil {
		return stats, err
	}

	srcMode := os.FileMode(filePerms)
	if info, statErr := src.Stat(); statErr == nil {
		srcMode = info.Mode().Perm()
	}

	dir, base := filepath.Split(s.path)
	if dir == "" {
		dir = "."
	}

	tmp, err := s.fs.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		_ = src.Close()

		return stats, fmt.Errorf("%w: %w", ErrCreateTemp, err)
	}

	tmpPath := tmp.Name()

	// abort discards the temporary file after a failure before the replace.
	abort := func(cause error) (RewriteStats, error) {
		_ = src.Close()
		_ = tmp.Close()

		if rmErr := s.fs.Remove(tmpPath); rmErr != nil {
			s.log.Warn("removing temp file", zap.String("temp", tmpPath), zap.Error(rmErr))
		}

		return stats, cause
	}

	w := bufio.NewWriter(tmp)

	var writeErr error

	scanErr := s.scan(src, func(rec Record) bool {
		line, keep := transform(rec)
		if !keep {
			stats.Dropped++

			return true
		}

		stats.Kept++

		if _, err := w.WriteString(line + "\n"); err != nil {
			writeErr = err

			return false
		}

		return true
	})

	if writeErr != nil {
		return abort(fmt.Errorf("%w %s: %w", ErrWriteTemp, tmpPath, writeErr))
	}

	if scanErr != nil {
		return abort(scanErr)
	}

	if err := errors.Join(w.Flush(), tmp.Chmod(srcMode), tmp.Sync()); err != nil {
		return abort(fmt.Errorf("%w %s: %w", ErrWriteTemp, tmpPath, err))
	}

	if err := tmp.Close(); err != nil {
		return abort(fmt.Errorf("%w %s: %w", ErrWriteTemp, tmpPath, err))
	}

	if err := src.Close(); err != nil {
		return abort(fmt.Errorf("%w: %w", ErrRead, err))
	}

	if err := s.fs.Replace(tmpPath, s.path); err != nil {
		s.log.Warn("replace failed, temp file kept", zap.String("temp", tmpPath), zap.Error(err))

		return stats, &ReplaceError{Path: s.path, TempPath: tmpPath, Err: err}
	}

	s.log.Debug("rewrote file", zap.Int("kept", stats.Kept), zap.Int("dropped", stats.Dropped))

	return stats, nil
}

// DeleteLine removes the first line byte-identical to raw. It reports
// whether a line was removed.
func (s *Store) DeleteLine(raw string) (bool, error) {
	done := false

	_, err := s.Rewrite(func(rec Record) (string, bool) {
		if !done && rec.Raw == raw {
			done = true

			return "", false
		}

		return rec.Raw, true
	})
	if err != nil {
		return false, err
	}

	return done, nil
}

// ReplaceLine substitutes c for the first line byte-identical to raw. It
// reports whether a line was replaced.
func (s *Store) ReplaceLine(raw string, c contact.Contact) (bool, error) {
	done := false
	replacement := s.codec.FormatLine(c.Fields())

	_, err := s.Rewrite(func(rec Record) (string, bool) {
		if !done && rec.Raw == raw {
			done = true

			return replacement, true
		}

		return rec.Raw, true
	})
	if err != nil {
		return false, err
	}

	return done, nil
}
