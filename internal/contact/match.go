package contact

import (
	"fmt"
	"strings"
)

// KeywordKind is the apparent type of a user keyword.
type KeywordKind int

// KeywordKind values.
const (
	KindText KeywordKind = iota
	KindPhone
	KindEmail
)

func (k KeywordKind) String() string {
	switch k {
	case KindPhone:
		return "phone"
	case KindEmail:
		return "email"
	default:
		return "text"
	}
}

// Classify decides how a keyword is compared against contacts.
//
// A keyword containing '@' is an email. Otherwise a keyword with at least
// one digit is a phone number. Everything else is text. Email wins over
// phone because addresses often contain digits.
func Classify(keyword string) KeywordKind {
	switch {
	case strings.Contains(keyword, "@"):
		return KindEmail
	case NormalizePhone(keyword) != "":
		return KindPhone
	default:
		return KindText
	}
}

// SearchMode selects how text keywords match company and person names.
type SearchMode string

// SearchMode values.
const (
	SearchPrefix    SearchMode = "prefix"
	SearchSubstring SearchMode = "substring"
)

// ParseSearchMode validates a configured search mode. Empty selects
// [SearchPrefix].
func ParseSearchMode(s string) (SearchMode, error) {
	switch SearchMode(s) {
	case "", SearchPrefix:
		return SearchPrefix, nil
	case SearchSubstring:
		return SearchSubstring, nil
	default:
		return "", fmt.Errorf("%w: %q (want %q or %q)", ErrSearchMode, s, SearchPrefix, SearchSubstring)
	}
}

// Query is a keyword prepared for matching. Build one per operation with
// [NewQuery] and test each scanned contact against it.
type Query struct {
	Raw    string
	Kind   KeywordKind
	lower  string
	digits string
	key    string
}

// NewQuery trims and classifies keyword.
func NewQuery(keyword string) Query {
	raw := strings.TrimSpace(keyword)

	return Query{
		Raw:    raw,
		Kind:   Classify(raw),
		lower:  strings.ToLower(raw),
		digits: NormalizePhone(raw),
		key:    NormalizeKey(raw),
	}
}

// Search reports whether c satisfies a search for q.
//
//   - phone: q's digits appear anywhere in c's normalized phone
//   - email: c's email starts with q, ignoring case
//   - text: c's company or person starts with (or, in substring mode,
//     contains) q, ignoring case
func (q Query) Search(c Contact, mode SearchMode) bool {
	switch q.Kind {
	case KindPhone:
		phone := NormalizePhone(c.Phone)

		return phone != "" && strings.Contains(phone, q.digits)
	case KindEmail:
		return strings.HasPrefix(strings.ToLower(c.Email), q.lower)
	default:
		match := strings.HasPrefix
		if mode == SearchSubstring {
			match = strings.Contains
		}

		return match(strings.ToLower(c.Company), q.lower) || match(strings.ToLower(c.Person), q.lower)
	}
}

// List reports whether c passes the list filter q: an empty filter keeps
// everything, otherwise company or person must contain q, ignoring case.
func (q Query) List(c Contact) bool {
	if q.Raw == "" {
		return true
	}

	return strings.Contains(strings.ToLower(c.Company), q.lower) ||
		strings.Contains(strings.ToLower(c.Person), q.lower)
}

// Delete reports whether c is a delete candidate for q.
//
//   - phone: normalized phones are equal
//   - email: emails are equal, ignoring case
//   - text: the normalized key of company or person equals q's key
//
// Keywords that normalize to nothing match no contact.
func (q Query) Delete(c Contact) bool {
	switch q.Kind {
	case KindPhone:
		return q.digits != "" && NormalizePhone(c.Phone) == q.digits
	case KindEmail:
		return q.Raw != "" && strings.EqualFold(strings.TrimSpace(c.Email), q.Raw)
	default:
		return q.key != "" && (NormalizeKey(c.Company) == q.key || NormalizeKey(c.Person) == q.key)
	}
}

// Update reports whether c is the update target for q. Updates are keyed
// on the company only, compared by normalized key.
func (q Query) Update(c Contact) bool {
	return q.key != "" && NormalizeKey(c.Company) == q.key
}
