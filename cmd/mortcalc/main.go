package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/hearthlab/mortcalc/internal/calculation"
	"github.com/hearthlab/mortcalc/internal/config"
	"github.com/hearthlab/mortcalc/internal/domain"
	"github.com/hearthlab/mortcalc/internal/lookup"
	"github.com/hearthlab/mortcalc/internal/output"
	"github.com/hearthlab/mortcalc/internal/parse"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "mortcalc",
	Short: "Mortgage query parser and payment calculator",
	Long:  "Parses free-form mortgage questions into structured loan inputs and computes P&I, PITI breakdowns, and investor cash-flow scenarios",
}

var paymentCmd = &cobra.Command{
	Use:   "payment [query]",
	Short: "Compute a PITI breakdown from a free-form query",
	Long: `Parses a natural-language mortgage query and prints the monthly payment
breakdown. Examples:

  mortcalc payment "price 900k down 20 percent 6.25 30 years zip 92688"
  mortcalc payment "400000 at 6.5 30 years" --mi-rate 0.55`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		defaults, err := loadDefaults(cmd)
		if err != nil {
			return err
		}
		inputs := parse.ParseQuery(query, defaults)

		opts := calculation.ComposeOptions{}
		if taxRate, _ := cmd.Flags().GetString("tax-rate"); taxRate != "" {
			rate, err := decimal.NewFromString(taxRate)
			if err != nil {
				return fmt.Errorf("invalid --tax-rate %q: %w", taxRate, err)
			}
			opts.TaxRatePctOverride = &rate
		}
		if miRate, _ := cmd.Flags().GetString("mi-rate"); miRate != "" {
			rate, err := decimal.NewFromString(miRate)
			if err != nil {
				return fmt.Errorf("invalid --mi-rate %q: %w", miRate, err)
			}
			opts.MIAnnualPct = &rate
		}

		table := lookup.NewTable()
		composer := calculation.NewComposer(table, table, defaults)
		result, err := composer.ComposePITI(inputs, opts)
		if err != nil {
			var insufficient *calculation.InsufficientInputsError
			if errors.As(err, &insufficient) {
				fmt.Fprintf(os.Stderr, "Needs more info: could not determine %s.\n", strings.Join(insufficient.Missing, "; "))
				fmt.Fprintln(os.Stderr, `Try something like "price 900k down 20% at 6.25 30 years".`)
				os.Exit(1)
			}
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		return writePayment(result, format)
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse [query]",
	Short: "Show the structured loan inputs extracted from a query",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := loadDefaults(cmd)
		if err != nil {
			return err
		}
		inputs := parse.ParseQuery(strings.Join(args, " "), defaults)

		jf := &output.JSONFormatter{Pretty: true}
		out, err := jf.FormatInputs(inputs)
		if err != nil {
			return err
		}
		fmt.Println(out)

		if missing := inputs.MissingFields(); len(missing) > 0 {
			fmt.Fprintf(os.Stderr, "Incomplete: missing %s\n", strings.Join(missing, "; "))
		}
		return nil
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "mortcalc %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

func loadDefaults(cmd *cobra.Command) (domain.Defaults, error) {
	file, _ := cmd.Flags().GetString("defaults-file")
	if file == "" {
		return domain.DefaultExtractDefaults(), nil
	}
	return config.NewInputParser().LoadDefaults(file)
}

func writePayment(result *domain.PaymentResult, format string) error {
	switch format {
	case "", "table":
		tf := &output.TableFormatter{}
		fmt.Print(tf.FormatPayment(result))
	case "json":
		jf := &output.JSONFormatter{Pretty: true}
		out, err := jf.FormatPayment(result)
		if err != nil {
			return err
		}
		fmt.Println(out)
	case "csv":
		cf := &output.CSVFormatter{}
		out, err := cf.FormatPayment(result)
		if err != nil {
			return err
		}
		fmt.Print(out)
	default:
		return fmt.Errorf("unknown format %q (want table, json, or csv)", format)
	}
	return nil
}

func main() {
	paymentCmd.Flags().String("format", "table", "Output format: table, json, or csv")
	paymentCmd.Flags().String("tax-rate", "", "Annual property tax rate override in percent (e.g. 1.2)")
	paymentCmd.Flags().String("mi-rate", "", "Annual mortgage insurance rate in percent (e.g. 0.55)")
	paymentCmd.Flags().String("defaults-file", "", "YAML file overriding insurance/HOA defaults")
	parseCmd.Flags().String("defaults-file", "", "YAML file overriding insurance/HOA defaults")

	rootCmd.AddCommand(paymentCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(scenarioCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
