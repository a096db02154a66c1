package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JeremySu0818/Commit-Drafter/internal/config"
	"github.com/JeremySu0818/Commit-Drafter/internal/git"
	"github.com/JeremySu0818/Commit-Drafter/internal/llm"
	"github.com/JeremySu0818/Commit-Drafter/internal/workflow"
)

var (
	provider  string
	model     string
	autoYes   bool
	printOnly bool
	verbose   bool

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a commit message from the staged changes",
		Long: `Stage all pending changes, send the staged diff to the configured LLM ` +
			`provider, and commit with the generated Conventional Commits message ` +
			`after confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configErr != nil {
				return fmt.Errorf("configuration error: %w", configErr)
			}
			return runGenerate(cmd)
		},
	}
)

func init() {
	generateCmd.Flags().StringVar(&provider, "provider", "", "LLM provider (default \"gemini\")")
	generateCmd.Flags().StringVar(&model, "model", "", "Specific model to use (optional)")
	generateCmd.Flags().BoolVarP(&autoYes, "yes", "y", false, "Commit without confirmation (use with caution)")
	generateCmd.Flags().BoolVar(&printOnly, "print-only", false, "Only print the generated message to stdout")
	generateCmd.Flags().BoolVarP(&verbose, "verbose", "V", false, "Show each git command being run")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	if provider != "" {
		cfg.Provider = provider
	}
	if model != "" {
		cfg.Model = model
	}

	keys, err := config.NewKeyStore()
	if err != nil {
		return err
	}

	gitClient := git.NewClient(git.Options{Verbose: verbose})
	llmClient := llm.NewClient(llm.Options{
		Model:   cfg.Model,
		APIBase: cfg.APIBase,
		Timeout: cfg.RequestTimeout,
	})

	flow := workflow.NewFlow(gitClient, llmClient, keys, workflow.Options{
		Provider:  cfg.Provider,
		AutoYes:   autoYes,
		PrintOnly: printOnly,
		OutWriter: os.Stdout,
		ErrWriter: os.Stderr,
	})

	return flow.Run(cmd.Context())
}
