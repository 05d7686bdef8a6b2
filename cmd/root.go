package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pubsite",
	Short: "Publishing-house website with a built-in content manager",
	Long: `Pubsite serves a small publishing-house marketing site: tabbed content
pages, an embedded bookstore, and a contact form that delivers through a
mail relay. A manager console lets an operator edit content, theme,
logo, and company branding without redeploying.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "pubsite.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
