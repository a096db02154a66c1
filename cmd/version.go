package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version and BuildTime are set at build time via -ldflags.
	Version   = "dev"
	BuildTime = "unknown"

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show commit-drafter version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("commit-drafter version v%s (built at %s)\n", Version, BuildTime)
		},
	}
)

func init() {
	rootCmd.AddCommand(versionCmd)
}
