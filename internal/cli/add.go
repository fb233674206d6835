package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/contacts/internal/contact"
)

// AddCmd returns the add command.
func AddCmd(s *session) *Command {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	company := fs.String("company", "", "Company name")
	person := fs.String("person", "", "Contact person")
	phone := fs.String("phone", "", "Phone number")
	email := fs.String("email", "", "Email address")
	yes := fs.BoolP("yes", "y", false, "Save without asking for confirmation")

	return &Command{
		Flags:   fs,
		Usage:   "add [flags]",
		Short:   "Add a contact",
		Prompts: true,
		Long: `Add a contact. Values given as flags are validated like typed input;
missing or invalid ones are prompted for.`,
		Exec: func(ctx context.Context, _ *IO, args []string) error {
			if len(args) > 0 {
				return errTooManyArgs
			}

			preset := contact.Contact{Company: *company, Person: *person, Phone: *phone, Email: *email}

			return s.canceled(execAdd(ctx, s, preset, *yes))
		},
	}
}

func execAdd(ctx context.Context, s *session, preset contact.Contact, yes bool) error {
	var c contact.Contact

	for _, f := range contact.Fields {
		value := ""

		if raw := preset.Get(f); raw != "" {
			v, err := s.acceptField(f, raw)
			if err != nil {
				s.io.ErrPrintln("error:", err)
			}

			value = v
		}

		if value == "" {
			v, err := s.askField(ctx, f)
			if err != nil {
				return err
			}

			value = v
		}

		c = c.With(f, value)
	}

	if err := c.Validate(s.cfg.MaxFieldLen); err != nil {
		return err
	}

	s.io.Println("New contact:")
	s.printDetails(c)

	if dup, err := s.store.HasCompany(c.Company); err == nil && dup {
		s.io.Notef("a contact for company %q already exists", c.Company)
	}

	if !yes {
		ok, err := s.confirm(ctx, "Save contact?")
		if err != nil {
			return err
		}

		if !ok {
			return errCanceled
		}
	}

	if err := s.store.Append(c); err != nil {
		return err
	}

	s.io.Println("Contact added.")

	return nil
}
