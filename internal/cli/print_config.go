package cli

import (
	"context"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/contacts/internal/config"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(s *session) *Command {
	return &Command{
		Flags: flag.NewFlagSet("print-config", flag.ContinueOnError),
		Usage: "print-config",
		Short: "Show resolved configuration",
		Long:  "Display the effective configuration and where it was loaded from.",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			execPrintConfig(o, s.cfg)

			return nil
		},
	}
}

func execPrintConfig(o *IO, cfg config.Config) {
	o.Println("effective_cwd=" + cfg.EffectiveCwd)
	o.Println("contacts_file=" + cfg.ContactsFileAbs)
	o.Println("max_field_len=" + strconv.Itoa(cfg.MaxFieldLen))
	o.Println("search_mode=" + string(cfg.Search()))
	o.Println("sanitize_formulas=" + strconv.FormatBool(cfg.SanitizeFormulas))

	if cfg.LogLevel != "" {
		o.Println("log_level=" + cfg.LogLevel)
	}

	o.Println("")
	o.Println("# sources")

	src := cfg.Sources
	if src == (config.Sources{}) {
		o.Println("(defaults only)")

		return
	}

	if src.Global != "" {
		o.Println("global_config=" + src.Global)
	}

	if src.Project != "" {
		o.Println("project_config=" + src.Project)
	}

	if src.Env {
		o.Println("env=" + config.EnvContactsFile)
	}

	if src.Flag {
		o.Println("flag=--file")
	}
}
