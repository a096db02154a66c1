package workflow

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// InteractivePrompter reads confirmations and API keys from the terminal.
type InteractivePrompter struct {
	ErrWriter io.Writer
	// Stdin overrides os.Stdin, for tests. Hidden input requires a real
	// terminal and falls back to plain line reading otherwise.
	Stdin io.Reader
}

func (p *InteractivePrompter) stdin() io.Reader {
	if p.Stdin != nil {
		return p.Stdin
	}
	return os.Stdin
}

// Interactive reports whether stdin is attached to a terminal.
func (p *InteractivePrompter) Interactive() bool {
	f, ok := p.stdin().(*os.File)
	if !ok {
		return true
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// AskKey prompts for an API key without echoing it.
func (p *InteractivePrompter) AskKey(name string) (string, error) {
	fmt.Fprintf(p.ErrWriter, "Please enter your %s: ", name)

	if f, ok := p.stdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		key, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.ErrWriter)
		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}
		return strings.TrimSpace(string(key)), nil
	}

	line, err := p.readLine()
	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// ConfirmCommit asks whether to commit with the generated message.
func (p *InteractivePrompter) ConfirmCommit(message string) (bool, error) {
	fmt.Fprint(p.ErrWriter, "\nDo you want to commit with this message? [y/N]: ")

	line, err := p.readLine()
	if err != nil {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *InteractivePrompter) readLine() (string, error) {
	line, err := bufio.NewReader(p.stdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}
