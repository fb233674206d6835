package cli

import (
	"context"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/calvinalkan/contacts/internal/contact"
)

// SearchCmd returns the search command.
func SearchCmd(s *session) *Command {
	return &Command{
		Flags:   flag.NewFlagSet("search", flag.ContinueOnError),
		Usage:   "search [keyword]",
		Short:   "Search contacts",
		Prompts: true,
		Long: `Search contacts. A keyword containing @ matches the start of the email.
A keyword containing digits matches anywhere in the phone number,
ignoring punctuation. Other keywords match the start of the company or
contact person (or anywhere, with "search_mode": "substring").
Without a keyword you are prompted for one.`,
		Exec: func(ctx context.Context, _ *IO, args []string) error {
			if len(args) > 1 {
				return errTooManyArgs
			}

			keyword := ""
			if len(args) == 1 {
				keyword = args[0]
			}

			return s.canceled(execSearch(ctx, s, keyword))
		},
	}
}

func execSearch(ctx context.Context, s *session, keyword string) error {
	if contact.SanitizeInput(keyword) == "" {
		var err error

		keyword, err = s.askKeyword(ctx, "Search keyword")
		if err != nil {
			return err
		}
	}

	q := contact.NewQuery(keyword)
	mode := s.cfg.Search()

	s.log.Debug("search", zap.String("keyword", q.Raw), zap.Stringer("kind", q.Kind), zap.String("mode", string(mode)))

	recs, err := s.records(func(c contact.Contact) bool {
		return c.Listable() && q.Search(c, mode)
	}, true)
	if err != nil {
		return err
	}

	if len(recs) == 0 {
		s.io.Println("No contacts found.")

		return nil
	}

	for i, rec := range recs {
		s.printRow(i+1, rec.Contact)
	}

	s.io.Printf("Found %d contact(s).\n", len(recs))

	return nil
}
