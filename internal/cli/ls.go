package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/contacts/internal/contact"
)

// LsCmd returns the ls command.
func LsCmd(s *session) *Command {
	return &Command{
		Flags: flag.NewFlagSet("ls", flag.ContinueOnError),
		Usage: "ls [filter]",
		Short: "List contacts",
		Long: `List contacts in file order. With a filter, only contacts whose company
or contact person contains it (ignoring case) are shown.`,
		Exec: func(_ context.Context, _ *IO, args []string) error {
			if len(args) > 1 {
				return errTooManyArgs
			}

			filter := ""
			if len(args) == 1 {
				filter = args[0]
			}

			return execList(s, filter)
		},
	}
}

// listInteractive asks for a filter before listing. Blank lists all.
func listInteractive(ctx context.Context, s *session) error {
	line, err := s.ask(ctx, "Filter by company or person (blank for all, 0 to cancel): ")
	if err != nil {
		return err
	}

	filter := contact.SanitizeInput(line)
	if filter == "0" {
		return errCanceled
	}

	return execList(s, filter)
}

func execList(s *session, filter string) error {
	q := contact.NewQuery(filter)

	recs, err := s.records(q.List, true)
	if err != nil {
		return err
	}

	shown, skipped := 0, 0

	for _, rec := range recs {
		if !rec.Contact.Listable() {
			skipped++

			continue
		}

		shown++
		s.printRow(shown, rec.Contact)
	}

	if shown == 0 {
		s.io.Println("No contacts found.")
	} else {
		s.io.Printf("Total: %d\n", shown)
	}

	if skipped > 0 {
		s.io.Notef("%d row(s) without company or contact person not shown", skipped)
	}

	return nil
}
