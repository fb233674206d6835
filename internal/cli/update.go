package cli

import (
	"context"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/contacts/internal/contact"
)

// UpdateCmd returns the update command.
func UpdateCmd(s *session) *Command {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	field := fs.StringP("field", "F", "", "Field to change: company, person, phone, email or 1-4")
	value := fs.String("value", "", "New value for --field")
	yes := fs.BoolP("yes", "y", false, "Save without asking for confirmation")

	return &Command{
		Flags:   fs,
		Usage:   "update [company] [flags]",
		Short:   "Update one field of a contact",
		Prompts: true,
		Long: `Update one field of the first contact whose company equals the given
name (ignoring case and punctuation). Missing company, field or value
are prompted for. The new value is validated like typed input.`,
		Exec: func(ctx context.Context, _ *IO, args []string) error {
			if len(args) > 1 {
				return errTooManyArgs
			}

			in := updateInput{value: *value, yes: *yes}
			if len(args) == 1 {
				in.company = args[0]
			}

			if *field != "" {
				f, err := parseFieldName(*field)
				if err != nil {
					return err
				}

				in.field = f
			}

			return s.canceled(execUpdate(ctx, s, in))
		},
	}
}

type updateInput struct {
	company string
	field   contact.Field
	value   string
	yes     bool
}

func execUpdate(ctx context.Context, s *session, in updateInput) error {
	company := in.company
	if contact.SanitizeInput(company) == "" {
		var err error

		company, err = s.askKeyword(ctx, "Company to update")
		if err != nil {
			return err
		}
	}

	q := contact.NewQuery(company)

	rec, ok, err := s.store.FindFirst(q.Update)
	if err != nil {
		return err
	}

	if !ok {
		return fmt.Errorf("%w: %q", errNoMatch, q.Raw)
	}

	s.io.Println("Current contact:")
	s.printDetails(rec.Contact)

	f := in.field
	if !f.Valid() {
		f, err = s.askFieldChoice(ctx)
		if err != nil {
			return err
		}
	}

	newValue := ""

	if in.value != "" {
		v, err := s.acceptField(f, in.value)
		if err != nil {
			s.io.ErrPrintln("error:", err)
		}

		newValue = v
	}

	if newValue == "" {
		newValue, err = s.askField(ctx, f)
		if err != nil {
			return err
		}
	}

	updated := rec.Contact.With(f, newValue)

	s.io.Println("Updated contact:")
	s.printDetails(updated)

	if !in.yes {
		ok, err := s.confirm(ctx, "Save changes?")
		if err != nil {
			return err
		}

		if !ok {
			return errCanceled
		}
	}

	replaced, err := s.store.ReplaceLine(rec.Raw, updated)
	if err != nil {
		return err
	}

	if !replaced {
		return fmt.Errorf("%w: contact changed on disk", errNoMatch)
	}

	s.io.Println("Contact updated.")

	return nil
}

func (s *session) askFieldChoice(ctx context.Context) (contact.Field, error) {
	for _, f := range contact.Fields {
		s.io.Printf("  %d. %s\n", int(f), f)
	}

	for {
		line, err := s.ask(ctx, "Field to update (0 to cancel): ")
		if err != nil {
			return 0, err
		}

		answer := contact.SanitizeInput(line)
		if answer == "0" {
			return 0, errCanceled
		}

		f, err := contact.ParseField(answer)
		if err != nil {
			s.io.ErrPrintln("error:", err)

			continue
		}

		return f, nil
	}
}

// parseFieldName accepts a field number or name.
func parseFieldName(name string) (contact.Field, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "company":
		return contact.FieldCompany, nil
	case "person", "contact-person", "contact person":
		return contact.FieldPerson, nil
	case "phone":
		return contact.FieldPhone, nil
	case "email":
		return contact.FieldEmail, nil
	}

	f, err := contact.ParseField(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errFieldName, name)
	}

	return f, nil
}
