package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/calvinalkan/contacts/internal/config"
	"github.com/calvinalkan/contacts/internal/csvrec"
	"github.com/calvinalkan/contacts/internal/fs"
	"github.com/calvinalkan/contacts/internal/store"
)

// shutdownGrace is how long a command may keep running after the first
// interrupt before Run gives up on it.
const shutdownGrace = 2 * time.Second

// exitInterrupted is the exit code after an interrupt that the command did
// not handle in time.
const exitInterrupted = 130

// Run is the main entry point. Returns exit code.
//
// Without a command, the interactive menu runs. The first signal on sigCh
// cancels the command's context; prompts treat that as cancel. If the
// command has not returned after a grace period, or a second signal
// arrives, Run returns without waiting for it.
func Run(stdin io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	return run(stdin, out, errOut, args, env, sigCh, fs.NewReal())
}

func run(stdin io.Reader, out, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal, fsys fs.FS) int {
	s := &session{fs: fsys}
	commands := allCommands(s)

	if len(args) > 0 {
		args = args[1:]
	}

	globals, globalSet, err := parseGlobalFlags(args)
	if err != nil {
		fprintln(errOut, "error:", err)
		fprintln(errOut)
		printUsage(errOut, globalSet, commands)

		return 1
	}

	if globals.help {
		printUsage(out, globalSet, commands)

		return 0
	}

	cmdName := "menu"
	cmdArgs := []string(nil)

	if len(globals.remaining) > 0 {
		cmdName, cmdArgs = globals.remaining[0], globals.remaining[1:]
	}

	cmd := findCommand(commands, cmdName)
	if cmd == nil {
		fprintln(errOut, "error:", fmt.Errorf("%w: %s", errUnknownCommand, cmdName))
		fprintln(errOut)
		printUsage(errOut, globalSet, commands)

		return 1
	}

	cfg, err := config.Load(config.LoadInput{
		WorkDirOverride: globals.workDir,
		ConfigPath:      globals.configPath,
		FileOverride:    globals.file,
		Env:             env,
		FS:              fsys,
	})
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	log, err := newLogger(errOut, globals.verbose, cfg.LogLevel)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	defer func() { _ = log.Sync() }()

	prompter := newPrompter(stdin, out, env)
	defer func() { _ = prompter.Close() }()

	s.io = NewIO(out, errOut)
	s.prompt = prompter
	s.cfg = cfg
	s.log = log
	s.store = store.New(fsys, cfg.ContactsFileAbs,
		store.WithCodec(csvrec.New(cfg.MaxFieldLen)),
		store.WithLogger(log),
	)

	log.Debug("starting", zap.String("command", cmdName), zap.String("contacts_file", cfg.ContactsFileAbs))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan int, 1)

	go func() {
		done <- cmd.Run(ctx, s.io, cmdArgs)
	}()

	select {
	case code := <-done:
		return code
	case <-sigCh:
		cancel()
	}

	select {
	case code := <-done:
		return code
	case <-sigCh:
	case <-time.After(shutdownGrace):
	}

	fprintln(errOut, "interrupted")

	return exitInterrupted
}

func allCommands(s *session) []*Command {
	return []*Command{
		MenuCmd(s),
		AddCmd(s),
		LsCmd(s),
		SearchCmd(s),
		UpdateCmd(s),
		DeleteCmd(s),
		CountCmd(s),
		InitCmd(s),
		PrintConfigCmd(s),
	}
}

func findCommand(commands []*Command, name string) *Command {
	for _, c := range commands {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

type globalFlags struct {
	workDir    string
	configPath string
	file       string
	verbose    bool
	help       bool
	remaining  []string
}

// parseGlobalFlags parses flags up to the first non-flag argument, which
// names the command.
func parseGlobalFlags(args []string) (globalFlags, *flag.FlagSet, error) {
	var g globalFlags

	set := flag.NewFlagSet("contacts", flag.ContinueOnError)
	set.SetOutput(io.Discard)
	set.SetInterspersed(false)

	set.StringVarP(&g.workDir, "cwd", "C", "", "Run as if started in `dir`")
	set.StringVarP(&g.configPath, "config", "c", "", "Use specified config `file`")
	set.StringVarP(&g.file, "file", "f", "", "Contacts `file` (overrides config and "+config.EnvContactsFile+")")
	set.BoolVarP(&g.verbose, "verbose", "v", false, "Debug logging to stderr")
	set.BoolVarP(&g.help, "help", "h", false, "Show help")

	if err := set.Parse(args); err != nil {
		return globalFlags{}, set, err
	}

	if set.Changed("file") && g.file == "" {
		return globalFlags{}, set, fmt.Errorf("%w (--file)", config.ErrContactsFileEmpty)
	}

	g.remaining = set.Args()

	return g, set, nil
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, globals *flag.FlagSet, commands []*Command) {
	fprintln(w, `contacts - business contact manager

Usage: contacts [flags] [command] [args]

Without a command, the interactive menu starts.

Global flags:`)
	_, _ = io.WriteString(w, globals.FlagUsages())
	fprintln(w)
	fprintln(w, "Commands:")

	width := usageWidth(commands)

	for _, c := range commands {
		fprintln(w, c.HelpLine(width))
	}

	fprintln(w)
	fprintln(w, `Run "contacts <command> --help" for command flags.`)
}
