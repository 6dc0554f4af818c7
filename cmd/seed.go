package cmd

import (
	"github.com/chrisdamba/foodadmin/internal/seed"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with demo customers, dishes, couriers and orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		store, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		res, err := seed.NewSeeder(store, cfg.Seed).Run(ctx)
		if err != nil {
			return err
		}
		cmd.Printf("seeded %d customers, %d food items, %d delivery persons and %d orders (%d paid)\n",
			res.Customers, res.FoodItems, res.DeliveryPersons, res.Orders, res.PaidOrders)
		return nil
	},
}

func init() {
	seedCmd.Flags().Int64("seed", 42, "Random seed")
	seedCmd.Flags().String("start-date", "", "Earliest order time (RFC3339)")
	seedCmd.Flags().String("end-date", "", "Latest order time (RFC3339)")
	seedCmd.Flags().Int("customers", 200, "Number of customers")
	seedCmd.Flags().Int("food-items", 40, "Number of food items")
	seedCmd.Flags().Int("delivery-persons", 15, "Number of delivery persons")
	seedCmd.Flags().Int("orders", 2000, "Number of orders")
	seedCmd.Flags().Float64("paid-ratio", 0.8, "Share of orders that are paid")
	seedCmd.Flags().Float64("peak-hour-factor", 1.5, "Factor for increased order frequency during peak hours")
	seedCmd.Flags().Float64("weekend-factor", 1.2, "Factor for increased order frequency during weekends")
	seedCmd.Flags().Bool("migrate", false, "Apply migrations before seeding")

	bindFlags(seedCmd.Flags(), map[string]string{
		"seed.seed":             "seed",
		"seed.start_date":       "start-date",
		"seed.end_date":         "end-date",
		"seed.customers":        "customers",
		"seed.food_items":       "food-items",
		"seed.delivery_persons": "delivery-persons",
		"seed.orders":           "orders",
		"seed.paid_ratio":       "paid-ratio",
		"seed.peak_hour_factor": "peak-hour-factor",
		"seed.weekend_factor":   "weekend-factor",
		"database.auto_migrate": "migrate",
	})
	rootCmd.AddCommand(seedCmd)
}
