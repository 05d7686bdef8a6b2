package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Olga-Zydziak/website-of-publishing-house/internal/config"
	"github.com/Olga-Zydziak/website-of-publishing-house/internal/db"
	"github.com/Olga-Zydziak/website-of-publishing-house/internal/manager"
	"github.com/Olga-Zydziak/website-of-publishing-house/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the saved configuration as a static-deployment snippet",
	Long:  `Prints the stored content and theme overrides as a script snippet that a static copy of the site can load without a server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		database, err := db.Open(filepath.Join(cfg.DataDir, "pubsite.db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		console := manager.New(config.NewRuntime(cfg), store.New(database))
		fmt.Print(console.Export())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
