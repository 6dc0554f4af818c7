package cmd

import (
	"github.com/chrisdamba/foodadmin/internal/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or roll back the database schema",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return database.Migrate(cfg.Database.URL, args[0])
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
