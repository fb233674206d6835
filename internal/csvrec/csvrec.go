// Package csvrec encodes and decodes the four-field rows of the contacts file.
//
// The dialect is a simplified RFC 4180:
//
//	Alpha "Inc",Alice,090-000-0000,alice@alpha.com   raw values
//	"Alpha ""Inc""",Alice,090-000-0000,alice@alpha.com   serialized line
//
// A field is quoted only when it contains a comma, a double quote, or a line
// break. Quotes inside a quoted field are doubled. There is no header row and
// no support for records spanning several lines.
//
// The reader is lenient: it never fails. Quote characters toggle an
// "inside quotes" state, commas split fields only outside quotes, and every
// field is unescaped afterwards. Malformed input is split on a best-effort
// basis, which can leave fewer populated fields than expected.
package csvrec

import (
	"strings"
	"unicode/utf8"
)

// NumFields is the number of fields in every row.
const NumFields = 4

// DefaultMaxField is the default cap on the length of a single raw field,
// in characters.
const DefaultMaxField = 99

// Codec escapes and parses rows with a bounded field length.
type Codec struct {
	// MaxField caps the number of characters kept per raw field.
	MaxField int
}

// New returns a Codec capping fields at maxField characters.
// Non-positive values select [DefaultMaxField].
func New(maxField int) Codec {
	if maxField <= 0 {
		maxField = DefaultMaxField
	}

	return Codec{MaxField: maxField}
}

// Escape serializes a raw field value.
//
// The value is first capped at MaxField characters, the same bound
// [Codec.ParseLine] applies, so every escaped field reads back unchanged.
// Values containing a comma, double quote, CR or LF are then wrapped in
// quotes with internal quotes doubled; other values are returned as is.
func (c Codec) Escape(field string) string {
	field = c.capField(field)

	if !needsQuoting(field) {
		return field
	}

	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// Unescape reverses [Codec.Escape] for a single serialized field.
//
// Only fields wrapped in a matching pair of quotes are decoded: the outer
// pair is removed and each doubled quote collapses to one. Any other field
// is returned unchanged, so a literal `""` inside an unquoted field survives.
func Unescape(field string) string {
	if len(field) < 2 || field[0] != '"' || field[len(field)-1] != '"' {
		return field
	}

	return strings.ReplaceAll(field[1:len(field)-1], `""`, `"`)
}

// ParseLine splits a serialized line (without its newline) into the four
// raw field values.
//
// Fields after the fourth are discarded and missing trailing fields are
// empty. Each value is capped at MaxField characters.
func (c Codec) ParseLine(line string) [NumFields]string {
	var fields [NumFields]string

	idx := 0
	start := 0
	inQuotes := false

	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if inQuotes {
				continue
			}

			fields[idx] = c.capField(Unescape(line[start:i]))
			idx++
			start = i + 1

			if idx == NumFields {
				return fields
			}
		}
	}

	fields[idx] = c.capField(Unescape(line[start:]))

	return fields
}

// FormatLine serializes the four raw values as one line, without the
// trailing newline.
func (c Codec) FormatLine(fields [NumFields]string) string {
	var b strings.Builder

	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteString(c.Escape(f))
	}

	return b.String()
}

// CountFields reports how many comma-separated fields the line holds
// outside quotes. Used to detect short rows, which parse with empty
// trailing fields.
func CountFields(line string) int {
	n := 1
	inQuotes := false

	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				n++
			}
		}
	}

	return n
}

func (c Codec) maxField() int {
	if c.MaxField <= 0 {
		return DefaultMaxField
	}

	return c.MaxField
}

func (c Codec) capField(s string) string {
	return truncateRunes(s, c.maxField())
}

func needsQuoting(s string) bool {
	return strings.ContainsAny(s, ",\"\n\r")
}

// truncateRunes returns at most n runes of s.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}

	if utf8.RuneCountInString(s) <= n {
		return s
	}

	i := 0

	for pos := range s {
		if i == n {
			return s[:pos]
		}

		i++
	}

	return s
}
