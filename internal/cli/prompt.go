package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

// Prompter reads one line of user input after showing a label.
//
// Prompt returns the line without its terminator. It returns [io.EOF]
// when input is exhausted and errCanceled when the user aborts the
// prompt (Ctrl-C on a terminal).
type Prompter interface {
	Prompt(label string) (string, error)
	Close() error
}

// newPrompter returns a line-editing prompter when stdin is a terminal
// and a plain line reader otherwise.
func newPrompter(stdin io.Reader, out io.Writer, env map[string]string) Prompter {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return newLinerPrompter(historyFile(env))
	}

	if stdin == nil {
		stdin = strings.NewReader("")
	}

	return &lineReader{r: bufio.NewReader(stdin), out: out}
}

// lineReader prompts on out and reads lines from a buffered reader.
type lineReader struct {
	r   *bufio.Reader
	out io.Writer
}

func (p *lineReader) Prompt(label string) (string, error) {
	_, _ = io.WriteString(p.out, label)

	line, err := p.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}

		// Unterminated last line still counts as input.
		if line == "" {
			_, _ = io.WriteString(p.out, "\n")

			return "", io.EOF
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (p *lineReader) Close() error {
	return nil
}

// linerPrompter provides line editing and history on a terminal.
type linerPrompter struct {
	state       *liner.State
	historyPath string
}

func newLinerPrompter(historyPath string) *linerPrompter {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = state.ReadHistory(f)
			_ = f.Close()
		}
	}

	return &linerPrompter{state: state, historyPath: historyPath}
}

func (p *linerPrompter) Prompt(label string) (string, error) {
	line, err := p.state.Prompt(label)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", errCanceled
		}

		return "", err
	}

	if strings.TrimSpace(line) != "" {
		p.state.AppendHistory(line)
	}

	return line, nil
}

// Close persists history and restores the terminal.
func (p *linerPrompter) Close() error {
	if p.historyPath != "" {
		if f, err := os.Create(p.historyPath); err == nil {
			_, _ = p.state.WriteHistory(f)
			_ = f.Close()
		}
	}

	return p.state.Close()
}

// historyFile returns the path to the prompt history file.
func historyFile(env map[string]string) string {
	home := env["HOME"]
	if home == "" {
		return ""
	}

	return filepath.Join(home, ".contacts_history")
}
