package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is stamped by the release build; the default marks dev builds.
var Version = "dev"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the docvault version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("docvault %s\n", Version)
		},
	}
}
