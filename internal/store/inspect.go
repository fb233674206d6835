package store

import (
	"errors"
	"strings"

	"github.com/calvinalkan/contacts/internal/contact"
)

// Count returns the number of non-blank lines. A missing file counts as
// zero.
func (s *Store) Count() (int, error) {
	n := 0

	for _, err := range s.Records() {
		if err != nil {
			if errors.Is(err, ErrNoFile) {
				return 0, nil
			}

			return 0, err
		}

		n++
	}

	return n, nil
}

// HasCompany reports whether a record's company equals name, ignoring case.
func (s *Store) HasCompany(name string) (bool, error) {
	return s.has(func(c contact.Contact) bool {
		return strings.EqualFold(c.Company, name)
	})
}

// HasEmail reports whether a record's email equals addr, ignoring case.
func (s *Store) HasEmail(addr string) (bool, error) {
	addr = strings.TrimSpace(addr)

	return s.has(func(c contact.Contact) bool {
		return strings.EqualFold(strings.TrimSpace(c.Email), addr)
	})
}

// HasPhone reports whether a record's phone has the same digits as phone.
// A phone without digits matches nothing.
func (s *Store) HasPhone(phone string) (bool, error) {
	want := contact.NormalizePhone(phone)
	if want == "" {
		return false, nil
	}

	return s.has(func(c contact.Contact) bool {
		return contact.NormalizePhone(c.Phone) == want
	})
}

func (s *Store) has(match func(contact.Contact) bool) (bool, error) {
	_, ok, err := s.FindFirst(match)
	if errors.Is(err, ErrNoFile) {
		return false, nil
	}

	return ok, err
}
