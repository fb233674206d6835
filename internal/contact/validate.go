package contact

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// phoneSymbols are the non-digit characters a phone number may contain.
const phoneSymbols = "+-(). "

// formulaPrefixes start a spreadsheet formula when a CSV is opened in
// Excel, LibreOffice and friends.
const formulaPrefixes = "=+-@\t"

// ValidateEmail reports whether s looks like an email address.
//
// The local part must be non-empty. The domain (everything after the first
// '@') must be non-empty, must not start with '.', and must contain a '.'.
// The address must not contain ".." and must not end with '.'.
func ValidateEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 {
		return false
	}

	domain := s[at+1:]

	switch {
	case domain == "":
		return false
	case domain[0] == '.':
		return false
	case strings.Contains(s, ".."):
		return false
	case !strings.Contains(domain, "."):
		return false
	case strings.HasSuffix(s, "."):
		return false
	}

	return true
}

// ValidatePhone reports whether s contains only digits and the symbols
// "+ - ( ) ." and space, with at least one digit.
func ValidatePhone(s string) bool {
	digits := 0

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case strings.ContainsRune(phoneSymbols, r):
		default:
			return false
		}
	}

	return digits > 0
}

// NormalizePhone returns the digits of s in order.
//
// The comparison this enables is literal: "+66 90 000 0000" and
// "090-000-0000" differ because their digits differ.
func NormalizePhone(s string) string {
	var b strings.Builder

	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}

	return b.String()
}

// NormalizeKey folds a company or person name into a comparison key:
// lowercase letters and digits, words separated by single spaces, every
// other character dropped. `Alpha "Inc"` and " alpha  inc" share the key
// "alpha inc".
func NormalizeKey(s string) string {
	var b strings.Builder

	pendingSpace := false

	for _, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = b.Len() > 0
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSpace {
				b.WriteByte(' ')

				pendingSpace = false
			}

			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}

// SanitizeInput strips the line terminator and surrounding whitespace from
// a line of user input. Leading symbols are kept; see [StripFormulaPrefix].
func SanitizeInput(s string) string {
	return strings.TrimSpace(strings.TrimRight(s, "\r\n"))
}

// StripFormulaPrefix removes leading characters that would make a
// spreadsheet evaluate the cell as a formula ('=', '+', '-', '@', tab),
// along with any whitespace they expose.
func StripFormulaPrefix(s string) string {
	return strings.TrimLeft(s, formulaPrefixes+" ")
}

// ValidateField checks a value entered for field f.
//
// Every field must be non-empty, at most maxLen characters (when maxLen is
// positive) and free of line breaks. Phone and email values must also pass
// [ValidatePhone] and [ValidateEmail].
func ValidateField(f Field, value string, maxLen int) error {
	if value == "" {
		return fmt.Errorf("%s: %w", f, ErrEmptyField)
	}

	if maxLen > 0 && utf8.RuneCountInString(value) > maxLen {
		return fmt.Errorf("%s: %w (max %d characters)", f, ErrFieldTooLong, maxLen)
	}

	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%s: %w", f, ErrLineBreak)
	}

	switch f {
	case FieldPhone:
		if !ValidatePhone(value) {
			return fmt.Errorf("%s: %w", f, ErrInvalidPhone)
		}
	case FieldEmail:
		if !ValidateEmail(value) {
			return fmt.Errorf("%s: %w", f, ErrInvalidEmail)
		}
	}

	return nil
}

// Validate runs [ValidateField] on every field and returns the first error.
func (c Contact) Validate(maxLen int) error {
	for _, f := range Fields {
		if err := ValidateField(f, c.Get(f), maxLen); err != nil {
			return err
		}
	}

	return nil
}
