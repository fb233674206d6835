package cli

import (
	"context"
	"errors"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/contacts/internal/contact"
	"github.com/calvinalkan/contacts/internal/store"
)

// MenuCmd returns the menu command. It also runs when no command is given.
func MenuCmd(s *session) *Command {
	return &Command{
		Flags:   flag.NewFlagSet("menu", flag.ContinueOnError),
		Usage:   "menu",
		Short:   "Interactive menu (default)",
		Prompts: true,
		Exec: func(ctx context.Context, _ *IO, _ []string) error {
			return execMenu(ctx, s)
		},
	}
}

func execMenu(ctx context.Context, s *session) error {
	for {
		s.io.Println()
		s.io.Println("Business Contact Management System")
		s.io.Println("1. Add Contact")
		s.io.Println("2. Contact List")
		s.io.Println("3. Delete Contact")
		s.io.Println("4. Search Contact")
		s.io.Println("5. Update Contact")
		s.io.Println("0. Exit")
		s.io.Println()

		line, err := s.ask(ctx, "Enter your choice: ")
		if err != nil {
			if errors.Is(err, errCanceled) {
				s.io.Println("Exiting.")

				return nil
			}

			return err
		}

		var flowErr error

		switch contact.SanitizeInput(line) {
		case "1":
			flowErr = execAdd(ctx, s, contact.Contact{}, false)
		case "2":
			flowErr = listInteractive(ctx, s)
		case "3":
			flowErr = execDelete(ctx, s, "", 0, false)
		case "4":
			flowErr = execSearch(ctx, s, "")
		case "5":
			flowErr = execUpdate(ctx, s, updateInput{})
		case "0":
			s.io.Println("Exiting.")

			return nil
		default:
			s.io.ErrPrintln("error: invalid choice")

			continue
		}

		if err := s.canceled(flowErr); err != nil {
			var replaceErr *store.ReplaceError
			if errors.As(err, &replaceErr) {
				return err
			}

			s.io.ErrPrintln("error:", err)
		}
	}
}
