package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// CountCmd returns the count command.
func CountCmd(s *session) *Command {
	return &Command{
		Flags: flag.NewFlagSet("count", flag.ContinueOnError),
		Usage: "count",
		Short: "Print the number of stored contacts",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) > 0 {
				return errTooManyArgs
			}

			n, err := s.store.Count()
			if err != nil {
				return err
			}

			o.Println(n)

			return nil
		},
	}
}
