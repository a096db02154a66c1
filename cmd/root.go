// Package cmd wires the CLI commands.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/JeremySu0818/Commit-Drafter/internal/config"
)

var (
	configErr error

	rootCmd = &cobra.Command{
		Use:   "commit-drafter",
		Short: "commit-drafter - Conventional commit messages from your staged changes",
		Long: `commit-drafter is a CLI tool that inspects your repository's pending ` +
			`changes and drafts a Conventional Commits message for them using an LLM.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
)

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

// SetContext attaches the process context to the command tree.
func SetContext(ctx context.Context) {
	rootCmd.SetContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	configErr = config.InitConfig()
}
