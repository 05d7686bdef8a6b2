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

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove every stored override and restore the defaults",
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
		res := console.Clear()
		fmt.Println(res.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
