package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Olga-Zydziak/website-of-publishing-house/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively create a pubsite.yml config file",
	Run: func(cmd *cobra.Command, args []string) {
		_, err := config.RunWizard()
		exitOnError(err)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
