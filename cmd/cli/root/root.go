package root

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pdc",
	Short: "Post-Disaster Community platform CLI",
	Long:  "Command line interface for administering the Post-Disaster Community supply platform API",
}

// GetRoot returns the root Cobra command that subcommand packages attach to.
func GetRoot() *cobra.Command {
	return rootCmd
}
