package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/chrisdamba/foodadmin/internal/analytics"
	"github.com/chrisdamba/foodadmin/internal/export"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	reportFormat    string
	reportSave      bool
	reportDashboard bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print or export the item popularity report",
	Long: `report ranks the dishes of paid orders inside a time window (all, last-7-days,
last-month, last-year) by quantity sold. The report is written to stdout in the
chosen format, or saved to the configured export destination with --save.
--dashboard prints the order dashboard as JSON instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		q, err := reportQuery(cmd.Flags(), cfg)
		if err != nil {
			return err
		}
		format, err := export.ParseFormat(reportFormat)
		if err != nil {
			return err
		}

		store, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		svc := analytics.NewService(store, analytics.NewEngine())

		if reportDashboard {
			dash, err := svc.OrderDashboard(ctx, q)
			if err != nil {
				return err
			}
			return printDashboard(dash)
		}

		report, err := svc.PopularityReport(ctx, q)
		if err != nil {
			return err
		}
		if !reportSave {
			return export.Encode(os.Stdout, format, report)
		}

		exporter, err := export.NewExporter(ctx, cfg.Export)
		if err != nil {
			return err
		}
		target, err := exporter.Export(ctx, report, format)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "report written to", target)
		return nil
	},
}

// reportQuery falls back to the configured analytics defaults for flags left unset.
func reportQuery(flags *pflag.FlagSet, cfg *models.Config) (analytics.Query, error) {
	rawWindow := cfg.Analytics.DefaultWindow
	if flags.Changed("window") {
		rawWindow, _ = flags.GetString("window")
	}
	window, err := analytics.ParseTimeWindow(rawWindow)
	if err != nil {
		return analytics.Query{}, err
	}
	limit := cfg.Analytics.DefaultLimit
	if flags.Changed("limit") {
		limit, _ = flags.GetInt("limit")
	}
	if limit < 0 {
		limit = 0
	}
	return analytics.Query{Window: window, Limit: limit}, nil
}

func printDashboard(v *models.OrderDashboard) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func addReportQueryFlags(flags *pflag.FlagSet) {
	flags.String("window", "", "Time window: all, last-7-days, last-month, last-year (defaults to analytics.default_window)")
	flags.Int("limit", 0, "Number of items to keep, 0 keeps all (defaults to analytics.default_limit)")
}

func init() {
	addReportQueryFlags(reportCmd.Flags())
	reportCmd.Flags().StringVar(&reportFormat, "format", "csv", "Output format: csv, json or parquet")
	reportCmd.Flags().BoolVar(&reportSave, "save", false, "Save to the configured export destination instead of stdout")
	reportCmd.Flags().BoolVar(&reportDashboard, "dashboard", false, "Print the order dashboard instead of the popularity report")

	rootCmd.AddCommand(reportCmd)
}
