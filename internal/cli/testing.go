package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calvinalkan/contacts/internal/fs"
)

// CLI provides a clean interface for running CLI commands in tests.
// It manages a temp directory and environment variables.
type CLI struct {
	t   *testing.T
	Dir string
	Env map[string]string
	// FS is the filesystem commands run against. Replace it with an
	// [fs.Faulty] to inject I/O failures.
	FS fs.FS
}

// NewCLI creates a new test CLI with a temp directory.
func NewCLI(t *testing.T) *CLI {
	t.Helper()

	return &CLI{
		t:   t,
		Dir: t.TempDir(),
		Env: map[string]string{},
		FS:  fs.NewReal(),
	}
}

// Run executes the CLI with the given args and returns stdout, stderr, and exit code.
// Args should not include "contacts" or "--cwd" - those are added automatically.
// Stdin is empty, so any prompt sees end of input.
func (r *CLI) Run(args ...string) (string, string, int) {
	return r.RunWithInput("", args...)
}

// RunWithInput executes the CLI with stdin and returns stdout, stderr, and exit code.
// stdin must be a string or io.Reader; panics otherwise.
func (r *CLI) RunWithInput(stdin any, args ...string) (string, string, int) {
	var inReader io.Reader

	switch v := stdin.(type) {
	case string:
		inReader = strings.NewReader(v)
	case io.Reader:
		inReader = v
	default:
		panic(fmt.Sprintf("stdin must be string or io.Reader, got %T", stdin))
	}

	var outBuf, errBuf bytes.Buffer

	fullArgs := append([]string{"contacts", "--cwd", r.Dir}, args...)
	code := run(inReader, &outBuf, &errBuf, fullArgs, r.Env, nil, r.FS)

	return outBuf.String(), errBuf.String(), code
}

// MustRun executes the CLI and fails the test if the command returns non-zero.
// Returns trimmed stdout on success.
func (r *CLI) MustRun(args ...string) string {
	r.t.Helper()

	return r.MustRunWithInput("", args...)
}

// MustRunWithInput is [CLI.MustRun] with scripted stdin.
func (r *CLI) MustRunWithInput(stdin string, args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.RunWithInput(stdin, args...)
	if code != 0 {
		r.t.Fatalf("command %v failed with exit code %d\nstderr: %s", args, code, stderr)
	}

	return strings.TrimSpace(stdout)
}

// MustFail executes the CLI and fails the test if the command succeeds.
// Returns trimmed stderr.
func (r *CLI) MustFail(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code == 0 {
		r.t.Fatalf("command %v should have failed but succeeded\nstdout: %s", args, stdout)
	}

	return strings.TrimSpace(stderr)
}

// ContactsFile returns the path of the default contacts file.
func (r *CLI) ContactsFile() string {
	return filepath.Join(r.Dir, "contacts.csv")
}

// ReadContacts returns the content of the default contacts file, or ""
// if it does not exist.
func (r *CLI) ReadContacts() string {
	r.t.Helper()

	content, err := os.ReadFile(r.ContactsFile())
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}

		r.t.Fatalf("failed to read contacts file: %v", err)
	}

	return string(content)
}

// WriteContacts replaces the default contacts file with content.
func (r *CLI) WriteContacts(content string) {
	r.t.Helper()

	if err := os.WriteFile(r.ContactsFile(), []byte(content), 0o644); err != nil {
		r.t.Fatalf("failed to write contacts file: %v", err)
	}
}

// WriteFile writes content to a file relative to the CLI directory.
func (r *CLI) WriteFile(name, content string) {
	r.t.Helper()

	path := filepath.Join(r.Dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		r.t.Fatalf("failed to create dir for %s: %v", name, err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		r.t.Fatalf("failed to write %s: %v", name, err)
	}
}

// AssertContains fails the test if content doesn't contain substr.
func AssertContains(t *testing.T, content, substr string) {
	t.Helper()

	if !strings.Contains(content, substr) {
		t.Errorf("content should contain %q\ncontent:\n%s", substr, content)
	}
}

// AssertNotContains fails the test if content contains substr.
func AssertNotContains(t *testing.T, content, substr string) {
	t.Helper()

	if strings.Contains(content, substr) {
		t.Errorf("content should NOT contain %q\ncontent:\n%s", substr, content)
	}
}
