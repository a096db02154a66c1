// Package workflow orchestrates the generate flow: repository checks, diff
// retrieval, key resolution, message generation, confirmation and commit.
package workflow

import "context"

// GitClient abstracts the repository operations for testability.
type GitClient interface {
	IsGitRepository() bool
	AddAll() bool
	GetDiff(staged bool) string
	Commit(message string) bool
}

// Gateway abstracts the language-model provider.
type Gateway interface {
	GenerateCommitMessage(ctx context.Context, diff, apiKey string) (string, error)
}

// KeyStore abstracts API key resolution and persistence.
type KeyStore interface {
	ResolveKey(name string) (string, bool)
	SaveKey(name, value string) error
}

// Prompter abstracts the interactive terminal.
type Prompter interface {
	// Interactive reports whether prompting the user is possible at all.
	Interactive() bool
	// AskKey prompts for an API key with hidden input.
	AskKey(name string) (string, error)
	// ConfirmCommit asks whether to commit with the given message.
	ConfirmCommit(message string) (bool, error)
}
