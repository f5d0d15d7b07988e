// Package output renders payment and scenario results for the CLI: console
// table, JSON, and CSV, selected by the --format flag.
package output

import (
	"fmt"
	"strings"

	"github.com/hearthlab/mortcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// TableFormatter formats results as console tables.
type TableFormatter struct{}

// FormatPayment generates the console breakdown for a payment result.
func (tf *TableFormatter) FormatPayment(result *domain.PaymentResult) string {
	var sb strings.Builder

	sb.WriteString("MONTHLY PAYMENT BREAKDOWN\n")
	sb.WriteString(strings.Repeat("=", 46) + "\n")
	sb.WriteString(fmt.Sprintf("Loan amount:        %s\n", money(result.LoanAmount)))
	sb.WriteString(fmt.Sprintf("Rate:               %s%%\n", result.AnnualRatePct.String()))
	sb.WriteString(fmt.Sprintf("Term:               %s years\n", result.TermYears.StringFixed(0)))
	if result.Zip != "" {
		location := result.Zip
		if result.County != "" {
			location = fmt.Sprintf("%s (%s County, %s)", result.Zip, result.County, result.State)
		}
		sb.WriteString(fmt.Sprintf("Location:           %s\n", location))
	}
	sb.WriteString(strings.Repeat("-", 46) + "\n")
	sb.WriteString(fmt.Sprintf("Principal & interest: %s\n", money(result.MonthlyPI)))
	sb.WriteString(fmt.Sprintf("Property tax:         %s\n", money(result.MonthlyTax)))
	sb.WriteString(fmt.Sprintf("Insurance:            %s\n", money(result.MonthlyIns)))
	sb.WriteString(fmt.Sprintf("HOA:                  %s\n", money(result.MonthlyHOA)))
	sb.WriteString(fmt.Sprintf("Mortgage insurance:   %s\n", money(result.MonthlyMI)))
	sb.WriteString(strings.Repeat("-", 46) + "\n")
	sb.WriteString(fmt.Sprintf("Total PITI:           %s\n", money(result.MonthlyTotalPITI)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("At %s%%: %s    At %s%%: %s\n",
		result.AnnualRatePct.Sub(decimal.NewFromFloat(0.25)).String(), money(result.Sensitivity.Down025),
		result.AnnualRatePct.Add(decimal.NewFromFloat(0.25)).String(), money(result.Sensitivity.Up025)))
	if result.MIDropsMonth != nil {
		sb.WriteString(fmt.Sprintf("MI drops off at month %d (80%% LTV)\n", *result.MIDropsMonth))
	}

	return sb.String()
}

// FormatScenario generates the console breakdown for an investor scenario.
func (tf *TableFormatter) FormatScenario(result *domain.ScenarioMathResult) string {
	var sb strings.Builder

	sb.WriteString("INVESTOR SCENARIO\n")
	sb.WriteString(strings.Repeat("=", 46) + "\n")
	sb.WriteString(fmt.Sprintf("Loan amount:        %s\n", money(result.LoanAmount)))
	sb.WriteString(fmt.Sprintf("Rate used:          %s%%\n", result.RateUsedPct.String()))
	sb.WriteString(fmt.Sprintf("Term:               %s years\n", result.TermYears.StringFixed(0)))
	sb.WriteString(strings.Repeat("-", 46) + "\n")
	sb.WriteString(fmt.Sprintf("Monthly PITIA:      %s\n", money(result.MonthlyPITIA)))
	sb.WriteString(fmt.Sprintf("Gross rent:         %s\n", money(result.RentUsed)))
	sb.WriteString(fmt.Sprintf("Effective rent:     %s\n", money(result.EffectiveRent)))
	sb.WriteString(fmt.Sprintf("Maintenance:        %s\n", money(result.MonthlyMaint)))
	sb.WriteString(fmt.Sprintf("DSCR (gross):       %s\n", result.DSCRGross.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("DSCR (economic):    %s\n", result.DSCREconomic.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Monthly cash flow:  %s\n", money(result.MonthlyCashFlow)))
	sb.WriteString(fmt.Sprintf("Annual cash flow:   %s\n", money(result.AnnualCashFlow)))
	sb.WriteString(strings.Repeat("-", 46) + "\n")
	sb.WriteString("Cash flow projection:\n")
	for _, row := range result.CashFlowTable {
		sb.WriteString(fmt.Sprintf("  Year %-3d %s\n", row.Year, money(row.AnnualCashFlow)))
	}

	return sb.String()
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
