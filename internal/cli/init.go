package cli

import (
	"context"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/contacts/internal/config"
)

// InitCmd returns the init command.
func InitCmd(s *session) *Command {
	return &Command{
		Flags: flag.NewFlagSet("init", flag.ContinueOnError),
		Usage: "init",
		Short: "Write a starter " + config.FileName,
		Long:  "Write " + config.FileName + " with the default settings to the working directory. An existing file is never overwritten.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) > 0 {
				return errTooManyArgs
			}

			path := filepath.Join(s.cfg.EffectiveCwd, config.FileName)

			if err := config.WriteStarter(s.fs, path); err != nil {
				return err
			}

			o.Println("Wrote", path)

			return nil
		},
	}
}
