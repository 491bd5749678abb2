package commands

import (
	"fmt"

	"github.com/mrjoshuak/followdiff"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints version information.",
	Run: func(cmd *cobra.Command, args []string) {
		info := followdiff.GetBuildInfo()
		fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (%s)\n", info.Name, info.Version, info.GoVersion)
	},
}
