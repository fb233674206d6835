package cli

import (
	"context"
	"fmt"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/contacts/internal/contact"
	"github.com/calvinalkan/contacts/internal/store"
)

// DeleteCmd returns the delete command.
func DeleteCmd(s *session) *Command {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	index := fs.IntP("index", "i", 0, "Pick the Nth match when several contacts match (1-based)")
	yes := fs.BoolP("yes", "y", false, "Delete without asking for confirmation")

	return &Command{
		Flags:   fs,
		Usage:   "delete [keyword] [flags]",
		Short:   "Delete a contact",
		Prompts: true,
		Long: `Delete one contact. The keyword must equal the phone number (ignoring
punctuation), the email (ignoring case), or the company or contact person
(ignoring case and punctuation). When several contacts match you pick
one from a numbered list, or with --index.`,
		Exec: func(ctx context.Context, _ *IO, args []string) error {
			if len(args) > 1 {
				return errTooManyArgs
			}

			keyword := ""
			if len(args) == 1 {
				keyword = args[0]
			}

			return s.canceled(execDelete(ctx, s, keyword, *index, *yes))
		},
	}
}

func execDelete(ctx context.Context, s *session, keyword string, index int, yes bool) error {
	if contact.SanitizeInput(keyword) == "" {
		var err error

		keyword, err = s.askKeyword(ctx, "Delete by company, person, phone or email")
		if err != nil {
			return err
		}
	}

	q := contact.NewQuery(keyword)

	matches, err := s.records(q.Delete, false)
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		return fmt.Errorf("%w: %q", errNoMatch, q.Raw)
	}

	target, err := s.pick(ctx, matches, index)
	if err != nil {
		return err
	}

	s.io.Println("Contact to delete:")
	s.printDetails(target.Contact)

	if !yes {
		ok, err := s.confirm(ctx, "Delete this contact?")
		if err != nil {
			return err
		}

		if !ok {
			return errCanceled
		}
	}

	removed, err := s.store.DeleteLine(target.Raw)
	if err != nil {
		return err
	}

	if !removed {
		return fmt.Errorf("%w: contact changed on disk", errNoMatch)
	}

	s.io.Println("Contact deleted.")

	return nil
}

// pick selects one of several matches, by index when given and by
// prompting otherwise.
func (s *session) pick(ctx context.Context, matches []store.Record, index int) (store.Record, error) {
	if index != 0 {
		if index < 1 || index > len(matches) {
			return store.Record{}, fmt.Errorf("%w: %d (have %d matches)", errIndexRange, index, len(matches))
		}

		return matches[index-1], nil
	}

	if len(matches) == 1 {
		return matches[0], nil
	}

	s.io.Printf("Found %d matching contacts:\n", len(matches))

	for i, rec := range matches {
		s.printRow(i+1, rec.Contact)
	}

	for {
		line, err := s.ask(ctx, fmt.Sprintf("Select a contact (1-%d, 0 to cancel): ", len(matches)))
		if err != nil {
			return store.Record{}, err
		}

		answer := contact.SanitizeInput(line)
		if answer == "0" {
			return store.Record{}, errCanceled
		}

		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(matches) {
			s.io.ErrPrintln("error: enter a number between 1 and", len(matches))

			continue
		}

		return matches[n-1], nil
	}
}
