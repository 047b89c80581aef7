package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avdeev/daybook/core/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Printf("daybook %s (commit %s, built %s)\n",
			buildinfo.Version, buildinfo.Commit, buildinfo.Date)
	},
}
