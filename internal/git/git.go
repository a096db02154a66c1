// Package git wraps the git subprocess operations the commit workflow needs.
package git

import (
	"fmt"
	"io"
	"os"

	"github.com/JeremySu0818/Commit-Drafter/internal/gitcmd"
)

// Options configures a Client.
type Options struct {
	// Verbose echoes each git command to the logger.
	Verbose bool
	// Dir runs git in the given directory instead of the working directory.
	Dir string
	// Logger receives diagnostics; defaults to stderr.
	Logger io.Writer
}

// Client runs git against a single working tree. Results are reported as
// booleans; failure details go to the diagnostic stream.
type Client struct {
	runner gitcmd.Runner
	logger io.Writer
}

func NewClient(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = os.Stderr
	}
	return &Client{
		runner: gitcmd.Runner{Verbose: opts.Verbose, Dir: opts.Dir, Logger: logger},
		logger: logger,
	}
}

// IsGitRepository reports whether the working directory is inside a git
// work tree. Never errors; any failure means false.
func (c *Client) IsGitRepository() bool {
	_, err := c.runner.Run("rev-parse", "--is-inside-work-tree")
	return err == nil
}

// AddAll stages every working-tree change.
func (c *Client) AddAll() bool {
	result, err := c.runner.Run("add", ".")
	if err != nil {
		c.logFailure("git add", result, err)
		return false
	}
	return true
}

// GetDiff returns the textual diff of staged (or all) changes. Any failure
// yields an empty diff, with the cause logged.
func (c *Client) GetDiff(staged bool) string {
	args := []string{"diff"}
	if staged {
		args = append(args, "--cached")
	}

	result, err := c.runner.Run(args...)
	if err != nil {
		c.logFailure("git diff", result, err)
		return ""
	}
	return result.StdoutString(false)
}

// Commit commits the staged content with message as the sole commit message.
func (c *Client) Commit(message string) bool {
	result, err := c.runner.Run("commit", "-m", message)
	if err != nil {
		c.logFailure("git commit", result, err)
		return false
	}
	return true
}

// logFailure prefers git's own stderr output when present.
func (c *Client) logFailure(action string, result gitcmd.Result, err error) {
	if msg := result.StderrString(true); msg != "" {
		fmt.Fprintf(c.logger, "%s failed: %s: %v\n", action, msg, err)
		return
	}
	fmt.Fprintf(c.logger, "%s failed: %v\n", action, err)
}
