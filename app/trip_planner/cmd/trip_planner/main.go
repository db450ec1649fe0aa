package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "trip_planner",
	Short: "AI trip planner - weather check, itinerary, flights, hotels and summary",
	Long: `trip_planner checks the destination weather for your dates. If the weather
is unfavorable it suggests alternate destinations. Otherwise it plans the
trip: a day-wise itinerary, round-trip flights, hotels and a short summary.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(planCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "app/trip_planner/configs/config.yaml", "config file path")
}
