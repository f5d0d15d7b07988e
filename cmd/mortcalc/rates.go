package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hearthlab/mortcalc/internal/lookup"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var ratesCmd = &cobra.Command{
	Use:   "rates [zip]",
	Short: "Show county tax rate, loan limits, and market context for a ZIP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		zip := args[0]
		var table *lookup.Table
		if file, _ := cmd.Flags().GetString("table-file"); file != "" {
			loaded, err := lookup.LoadTable(file)
			if err != nil {
				return err
			}
			table = loaded
		} else {
			table = lookup.NewTable()
		}

		county, state, ok := table.CountyForZip(zip)
		if !ok {
			fmt.Fprintf(os.Stderr, "ZIP %s is not in the lookup table\n", zip)
			os.Exit(1)
		}
		taxRate, _ := table.TaxRateForZip(zip)
		loanLimit, _ := table.LoanLimitsForZip(zip)

		fmt.Printf("ZIP %s: %s County, %s\n", zip, county, state)
		fmt.Printf("Property tax rate:  %s%%\n", taxRate.Mul(decimal.NewFromInt(100)).StringFixed(2))
		fmt.Printf("Conforming limit:   $%s\n", loanLimit.StringFixed(0))

		snapshot, err := marketSnapshot().Latest()
		if err == nil {
			fmt.Printf("\nMarket as of %s:\n", snapshot.AsOf.Format("2006-01-02"))
			fmt.Printf("10-year Treasury:   %s%%\n", snapshot.TenYearYield.StringFixed(2))
			fmt.Printf("30-year average:    %s%%\n", snapshot.Mort30Avg.StringFixed(2))
			fmt.Printf("Spread:             %s%%\n", snapshot.Spread.StringFixed(2))
		}
		return nil
	},
}

// marketSnapshot returns the snapshot provider. The calculator never depends
// on market data; this is display-only context, pinned to a static record
// until a live feed is wired in.
func marketSnapshot() lookup.SnapshotProvider {
	return lookup.NewStaticSnapshotProvider(lookup.Snapshot{
		TenYearYield: decimal.NewFromFloat(4.23),
		Mort30Avg:    decimal.NewFromFloat(6.58),
		Spread:       decimal.NewFromFloat(2.35),
		AsOf:         time.Date(2025, time.August, 28, 0, 0, 0, 0, time.UTC),
	})
}

func init() {
	ratesCmd.Flags().String("table-file", "", "YAML file replacing the built-in ZIP table")
}
