package workflow

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/JeremySu0818/Commit-Drafter/internal/config"
	"github.com/JeremySu0818/Commit-Drafter/internal/exitcode"
	"github.com/JeremySu0818/Commit-Drafter/internal/ui"
)

// Options configures one run of the generate flow.
type Options struct {
	// Provider is the language-model provider name.
	Provider string
	// KeyName is the environment variable holding the provider API key.
	KeyName string
	// AutoYes commits without asking for confirmation.
	AutoYes bool
	// PrintOnly emits the generated message and stops; no prompt, no commit.
	PrintOnly bool
	OutWriter io.Writer
	ErrWriter io.Writer
}

// Flow runs the generate workflow over its collaborators. A run ends in
// success, user abort, or exactly one typed failure outcome.
type Flow struct {
	git      GitClient
	llm      Gateway
	keys     KeyStore
	prompter Prompter
	opts     Options
}

func NewFlow(git GitClient, llm Gateway, keys KeyStore, opts Options) *Flow {
	if opts.KeyName == "" {
		opts.KeyName = config.GeminiKeyName
	}
	if opts.OutWriter == nil {
		opts.OutWriter = os.Stdout
	}
	if opts.ErrWriter == nil {
		opts.ErrWriter = os.Stderr
	}
	return &Flow{
		git:      git,
		llm:      llm,
		keys:     keys,
		opts:     opts,
		prompter: &InteractivePrompter{ErrWriter: opts.ErrWriter},
	}
}

// SetPrompter replaces the interactive prompter, for tests.
func (f *Flow) SetPrompter(p Prompter) {
	f.prompter = p
}

// Run executes the state machine. A nil return covers both the committed and
// the user-aborted terminals; every failure is an *exitcode.Error.
func (f *Flow) Run(ctx context.Context) error {
	if !f.git.IsGitRepository() {
		return exitcode.New(exitcode.NotGitRepo,
			"Not a git repository. Please run this command inside a git repository.")
	}

	diff, err := f.stageAndRead()
	if err != nil {
		return err
	}

	if f.opts.Provider != config.DefaultProvider {
		return exitcode.New(exitcode.Unknown,
			fmt.Sprintf("Provider %q is not supported. Use %q.", f.opts.Provider, config.DefaultProvider)).
			WithTag("UNSUPPORTED_PROVIDER")
	}

	key, err := f.resolveKey()
	if err != nil {
		return err
	}

	message, err := f.generate(ctx, diff, key)
	if err != nil {
		return err
	}

	if f.opts.PrintOnly {
		fmt.Fprintln(f.opts.OutWriter, message)
		return nil
	}

	fmt.Fprintln(f.opts.ErrWriter, "\nGenerated Commit Message:")
	fmt.Fprintln(f.opts.OutWriter, message)

	approved, err := f.confirm(message)
	if err != nil {
		return exitcode.Wrap(exitcode.Unknown, "failed to read confirmation", err)
	}
	if !approved {
		fmt.Fprintln(f.opts.ErrWriter, "Operation aborted.")
		return nil
	}

	if !f.git.Commit(message) {
		return exitcode.New(exitcode.CommitFailed, "Failed to commit changes.")
	}

	fmt.Fprintln(f.opts.ErrWriter, "Success! Changes committed.")
	return nil
}

func (f *Flow) stageAndRead() (string, error) {
	sp := f.newSpinner("Staging all changes...")
	sp.Start()

	if !f.git.AddAll() {
		sp.Stop()
		return "", exitcode.New(exitcode.StageFailed, "Failed to stage changes.")
	}

	sp.UpdateMessage("Reading staged changes...")
	diff := f.git.GetDiff(true)
	sp.Stop()

	if strings.TrimSpace(diff) == "" {
		return "", exitcode.New(exitcode.NoChanges,
			"No changes found. Make sure you have modified files in the repository.")
	}
	return diff, nil
}

// resolveKey finds the API key in the store, or prompts for one when a
// terminal is available and the run is not print-only. A prompted key is
// persisted for the next invocation.
func (f *Flow) resolveKey() (string, error) {
	if key, ok := f.keys.ResolveKey(f.opts.KeyName); ok {
		return key, nil
	}

	if f.opts.PrintOnly || !f.prompter.Interactive() {
		return "", exitcode.New(exitcode.KeyMissing,
			fmt.Sprintf("%s is not set. Please set the environment variable or run generate interactively.", f.opts.KeyName))
	}

	fmt.Fprintf(f.opts.ErrWriter, "Missing %s.\n", f.opts.KeyName)
	key, err := f.prompter.AskKey(f.opts.KeyName)
	if err != nil {
		return "", exitcode.Wrap(exitcode.Unknown, "failed to read API key", err)
	}
	if key == "" {
		return "", exitcode.New(exitcode.KeyMissing,
			fmt.Sprintf("%s is required to use %s.", f.opts.KeyName, f.opts.Provider))
	}

	if err := f.keys.SaveKey(f.opts.KeyName, key); err != nil {
		return "", exitcode.Wrap(exitcode.Unknown, "failed to save API key", err)
	}
	fmt.Fprintf(f.opts.ErrWriter, "API key saved to %s\n", config.EnvFileName)
	return key, nil
}

func (f *Flow) generate(ctx context.Context, diff, key string) (string, error) {
	sp := f.newSpinner(fmt.Sprintf("Generating commit message with %s...", f.opts.Provider))
	sp.Start()
	message, err := f.llm.GenerateCommitMessage(ctx, diff, key)
	sp.Stop()
	return message, err
}

func (f *Flow) confirm(message string) (bool, error) {
	if f.opts.AutoYes {
		fmt.Fprintln(f.opts.ErrWriter, "Auto-confirming commit message (-y flag is set)")
		return true, nil
	}
	return f.prompter.ConfirmCommit(message)
}

// newSpinner returns a live spinner in interactive mode and a disabled one
// in print-only mode, where stdout must stay clean and stderr quiet.
func (f *Flow) newSpinner(message string) *ui.Spinner {
	if f.opts.PrintOnly {
		return &ui.Spinner{}
	}
	return ui.NewSpinner(message)
}
