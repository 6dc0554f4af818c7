package cmd

import (
	"fmt"
	"os"

	"github.com/chrisdamba/foodadmin/internal/logging"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *models.Config
)

var rootCmd = &cobra.Command{
	Use:   "foodadmin",
	Short: "Admin backend and analytics for a food delivery platform",
	Long: `foodadmin serves the admin REST API of a food delivery platform (orders, menu,
customers, reviews, couriers and support messages) together with its sales
analytics: item popularity reports, order dashboards and report exports.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := models.LoadConfig(viper.GetViper(), cfgFile)
		if err != nil {
			return err
		}
		if err := logging.Setup(loaded.Log.Level, loaded.Log.Format); err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml or json)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text or json)")
	rootCmd.PersistentFlags().String("database-url", "", "Postgres connection URL")
	rootCmd.PersistentFlags().Bool("memory", false, "Use the in-memory store instead of Postgres")

	bindFlags(rootCmd.PersistentFlags(), map[string]string{
		"log.level":        "log-level",
		"log.format":       "log-format",
		"database.url":     "database-url",
		"server.in_memory": "memory",
	})
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
