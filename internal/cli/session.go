package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/calvinalkan/contacts/internal/config"
	"github.com/calvinalkan/contacts/internal/contact"
	"github.com/calvinalkan/contacts/internal/fs"
	"github.com/calvinalkan/contacts/internal/store"
)

// session is the state shared by the interactive flows of one run.
type session struct {
	io     *IO
	prompt Prompter
	store  *store.Store
	fs     fs.FS
	cfg    config.Config
	log    *zap.Logger
}

// ask shows label and returns the raw answer. End of input and a
// canceled context both surface as errCanceled.
func (s *session) ask(ctx context.Context, label string) (string, error) {
	if ctx.Err() != nil {
		return "", errCanceled
	}

	line, err := s.prompt.Prompt(label)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", errCanceled
		}

		return "", err
	}

	if ctx.Err() != nil {
		return "", errCanceled
	}

	return line, nil
}

// askKeyword prompts until a non-blank keyword is entered. "0" cancels.
func (s *session) askKeyword(ctx context.Context, label string) (string, error) {
	for {
		line, err := s.ask(ctx, label+" (0 to cancel): ")
		if err != nil {
			return "", err
		}

		keyword := contact.SanitizeInput(line)

		switch keyword {
		case "0":
			return "", errCanceled
		case "":
			s.io.ErrPrintln("error: keyword cannot be empty")
		default:
			return keyword, nil
		}
	}
}

// askField prompts until a valid value for f is entered. "0" cancels.
func (s *session) askField(ctx context.Context, f contact.Field) (string, error) {
	for {
		line, err := s.ask(ctx, fmt.Sprintf("%s (0 to cancel): ", f))
		if err != nil {
			return "", err
		}

		if contact.SanitizeInput(line) == "0" {
			return "", errCanceled
		}

		value, err := s.acceptField(f, line)
		if err != nil {
			s.io.ErrPrintln("error:", err)

			continue
		}

		return value, nil
	}
}

// acceptField cleans raw input for f and validates it.
func (s *session) acceptField(f contact.Field, raw string) (string, error) {
	value := contact.SanitizeInput(raw)

	if s.cfg.SanitizeFormulas && (f == contact.FieldCompany || f == contact.FieldPerson) {
		value = contact.StripFormulaPrefix(value)
	}

	if err := contact.ValidateField(f, value, s.cfg.MaxFieldLen); err != nil {
		return "", err
	}

	return value, nil
}

// confirm asks a yes/no question. Only "y" or "yes" count as yes.
func (s *session) confirm(ctx context.Context, label string) (bool, error) {
	line, err := s.ask(ctx, label+" (y/n): ")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(contact.SanitizeInput(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// records returns all records matching match. A missing file is an empty
// result when missingOK is set and an error otherwise.
func (s *session) records(match func(contact.Contact) bool, missingOK bool) ([]store.Record, error) {
	recs, err := s.store.Find(match)
	if err != nil {
		if missingOK && errors.Is(err, store.ErrNoFile) {
			s.log.Debug("contacts file missing, treating as empty")

			return nil, nil
		}

		return nil, err
	}

	return recs, nil
}

func (s *session) printDetails(c contact.Contact) {
	for _, f := range contact.Fields {
		s.io.Printf("  %-15s %s\n", f.String()+":", c.Get(f))
	}
}

func (s *session) printRow(n int, c contact.Contact) {
	s.io.Printf("%3d. %s | %s | %s | %s\n", n, c.Company, c.Person, c.Phone, c.Email)
}

// canceled reports a canceled flow and swallows errCanceled.
func (s *session) canceled(err error) error {
	if errors.Is(err, errCanceled) {
		s.io.Println("Canceled.")

		return nil
	}

	return err
}
