package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hearthlab/mortcalc/internal/calculation"
	"github.com/hearthlab/mortcalc/internal/config"
	"github.com/hearthlab/mortcalc/internal/output"
	"github.com/spf13/cobra"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario [input-file]",
	Short: "Run an investor DSCR/cash-flow scenario from a YAML file",
	Long: `Loads an investor scenario and prints the DSCR and cash-flow
projection. Example file:

  purchase_price: 450000
  down_percent: 25
  rate_pct: 7.1
  term_years: 30
  monthly_rent: 3200
  vacancy_pct: 5
  maintenance_pct: 8
  tax_rate_pct: 1.1
  monthly_ins: 120`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, rate, err := config.NewInputParser().LoadScenario(args[0])
		if err != nil {
			return err
		}

		result, err := calculation.Scenario(*inputs, rate)
		if err != nil {
			var insufficient *calculation.InsufficientInputsError
			if errors.As(err, &insufficient) {
				fmt.Fprintf(os.Stderr, "Needs more info: could not determine %s.\n", strings.Join(insufficient.Missing, "; "))
				os.Exit(1)
			}
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "", "table":
			tf := &output.TableFormatter{}
			fmt.Print(tf.FormatScenario(result))
		case "json":
			jf := &output.JSONFormatter{Pretty: true}
			out, err := jf.FormatScenario(result)
			if err != nil {
				return err
			}
			fmt.Println(out)
		case "csv":
			cf := &output.CSVFormatter{}
			out, err := cf.FormatScenario(result)
			if err != nil {
				return err
			}
			fmt.Print(out)
		default:
			return fmt.Errorf("unknown format %q (want table, json, or csv)", format)
		}
		return nil
	},
}

func init() {
	scenarioCmd.Flags().String("format", "table", "Output format: table, json, or csv")
}
