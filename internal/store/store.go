// Package store reads and rewrites the contacts file.
//
// The file holds one contact per line, serialized by [csvrec]. The store
// keeps no state between calls: every read reopens the file and scans it
// from the top, and every mutation either appends one line or rewrites the
// whole file through a sibling temporary file that replaces the original.
//
// There is no locking. Concurrent writers can lose updates.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"iter"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/calvinalkan/contacts/internal/contact"
	"github.com/calvinalkan/contacts/internal/csvrec"
	"github.com/calvinalkan/contacts/internal/fs"
)

const filePerms = 0o644

// Record is one non-blank line of the contacts file.
type Record struct {
	// Line is the 1-based position among non-blank lines.
	Line int
	// Raw is the line exactly as stored, without its line terminator.
	// Delete and update locate their target by comparing against it.
	Raw string
	// Contact holds the parsed field values.
	Contact contact.Contact
}

// Store gives access to one contacts file.
type Store struct {
	fs    fs.FS
	path  string
	codec csvrec.Codec
	log   *zap.Logger
}

// Option configures a [Store].
type Option func(*Store)

// WithCodec sets the codec used to parse and serialize rows.
func WithCodec(codec csvrec.Codec) Option {
	return func(s *Store) {
		s.codec = codec
	}
}

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// New returns a Store for the contacts file at path. The file does not
// need to exist yet.
func New(fsys fs.FS, path string, opts ...Option) *Store {
	s := &Store{
		fs:    fsys,
		path:  path,
		codec: csvrec.New(csvrec.DefaultMaxField),
		log:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.log = s.log.With(zap.String("path", path))

	return s
}

// Append adds c as a new line at the end of the file, creating the file
// if needed.
func (s *Store) Append(c contact.Contact) error {
	f, err := s.fs.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerms)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpenWrite, err)
	}

	line := s.codec.FormatLine(c.Fields())

	_, writeErr := io.WriteString(f, line+"\n")
	closeErr := f.Close()

	if err := errors.Join(writeErr, closeErr); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	s.log.Debug("appended record", zap.String("line", line))

	return nil
}

// Records returns a lazy sequence over the non-blank lines of the file.
//
// Every iteration reopens the file, so the sequence can be ranged over
// repeatedly and always reflects the current contents. A missing file
// yields a single [ErrNoFile] error; read failures yield one error and end
// the sequence. Rows are never rejected: short rows parse with empty
// trailing fields.
func (s *Store) Records() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		f, err := s.open()
		if err != nil {
			yield(Record{}, err)

			return
		}

		defer f.Close()

		var stopped bool

		scanErr := s.scan(f, func(rec Record) bool {
			if !yield(rec, nil) {
				stopped = true

				return false
			}

			return true
		})

		if scanErr != nil && !stopped {
			yield(Record{}, scanErr)
		}
	}
}

// Find returns every record whose contact satisfies match, in file order.
func (s *Store) Find(match func(contact.Contact) bool) ([]Record, error) {
	var found []Record

	for rec, err := range s.Records() {
		if err != nil {
			return nil, err
		}

		if match(rec.Contact) {
			found = append(found, rec)
		}
	}

	return found, nil
}

// FindFirst returns the first record whose contact satisfies match.
// ok is false when no record matches.
func (s *Store) FindFirst(match func(contact.Contact) bool) (Record, bool, error) {
	for rec, err := range s.Records() {
		if err != nil {
			return Record{}, false, err
		}

		if match(rec.Contact) {
			return rec, true, nil
		}
	}

	return Record{}, false, nil
}

func (s *Store) open() (fs.File, error) {
	f, err := s.fs.Open(s.path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoFile, s.path)
		}

		return nil, fmt.Errorf("%w: %w", ErrOpenRead, err)
	}

	return f, nil
}

// scan calls fn for each non-blank line of r until fn returns false.
func (s *Store) scan(r io.Reader, fn func(Record) bool) error {
	br := bufio.NewReader(r)
	n := 0

	for {
		line, err := br.ReadString('\n')

		line = strings.TrimRight(line, "\r\n")
		if line != "" {
			n++

			if !fn(s.parse(n, line)) {
				return nil
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("%w: %w", ErrRead, err)
		}
	}
}

func (s *Store) parse(n int, line string) Record {
	if got := csvrec.CountFields(line); got < csvrec.NumFields {
		s.log.Debug("short row", zap.Int("line", n), zap.Int("fields", got))
	}

	return Record{
		Line:    n,
		Raw:     line,
		Contact: contact.FromFields(s.codec.ParseLine(line)),
	}
}
