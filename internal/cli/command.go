package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// Command is one contacts subcommand.
type Command struct {
	// Flags holds the command's own flags. Global flags (--file, --cwd,
	// --config, --verbose) are parsed before the command name.
	Flags *flag.FlagSet

	// Usage starts with the command name, e.g. "delete [keyword] [flags]".
	Usage string

	// Short is the line shown in the command list.
	Short string

	// Long is shown by "contacts <cmd> --help". Short is used when empty.
	Long string

	// Prompts marks commands that ask for missing input on stdin.
	Prompts bool

	Exec func(ctx context.Context, o *IO, args []string) error
}

// Name returns the first word of Usage.
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")

	return name
}

// HelpLine returns the command list entry with Usage padded to width.
func (c *Command) HelpLine(width int) string {
	return fmt.Sprintf("  %-*s  %s", width, c.Usage, c.Short)
}

// PrintHelp prints "contacts <cmd> --help".
func (c *Command) PrintHelp(o *IO) {
	o.Println("Usage: contacts", c.Usage)
	o.Println()

	desc := c.Long
	if desc == "" {
		desc = c.Short
	}

	o.Println(desc)

	if c.Prompts {
		o.Println()
		o.Println("Missing input is asked for interactively. Answer 0 at any prompt to cancel.")
	}

	if c.Flags != nil && c.Flags.HasFlags() {
		o.Println()
		o.Println("Flags:")
		o.Printf("%s", c.Flags.FlagUsages())
	}

	o.Println()
	o.Println(`Global flags go before the command; see "contacts --help".`)
}

// Run parses args and executes the command. Returns the exit code.
// Errors are printed as "error: <msg>".
func (c *Command) Run(ctx context.Context, o *IO, args []string) int {
	c.Flags.SetOutput(&strings.Builder{})

	err := c.Flags.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			c.PrintHelp(o)

			return 0
		}

		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		c.PrintHelp(o)

		return 1
	}

	if err := c.Exec(ctx, o, c.Flags.Args()); err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	return 0
}

// usageWidth returns the longest Usage among commands.
func usageWidth(commands []*Command) int {
	width := 0

	for _, c := range commands {
		width = max(width, len(c.Usage))
	}

	return width
}
