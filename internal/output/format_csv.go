package output

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/hearthlab/mortcalc/internal/domain"
)

// CSVFormatter formats results as CSV.
type CSVFormatter struct{}

// FormatPayment generates a single-record CSV for a payment result.
func (cf *CSVFormatter) FormatPayment(result *domain.PaymentResult) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Loan Amount",
		"Rate %",
		"Term Months",
		"Monthly P&I",
		"Monthly Tax",
		"Monthly Insurance",
		"Monthly HOA",
		"Monthly MI",
		"Total PITI",
		"P&I at -0.25%",
		"P&I at +0.25%",
		"MI Drop Month",
		"ZIP",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	miDrop := ""
	if result.MIDropsMonth != nil {
		miDrop = strconv.Itoa(*result.MIDropsMonth)
	}
	row := []string{
		result.LoanAmount.StringFixed(2),
		result.AnnualRatePct.String(),
		strconv.Itoa(result.TermMonths),
		result.MonthlyPI.StringFixed(2),
		result.MonthlyTax.StringFixed(2),
		result.MonthlyIns.StringFixed(2),
		result.MonthlyHOA.StringFixed(2),
		result.MonthlyMI.StringFixed(2),
		result.MonthlyTotalPITI.StringFixed(2),
		result.Sensitivity.Down025.StringFixed(2),
		result.Sensitivity.Up025.StringFixed(2),
		miDrop,
		result.Zip,
	}
	if err := writer.Write(row); err != nil {
		return "", err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// FormatScenario generates CSV output for a scenario result: a summary
// record followed by the year-by-year projection.
func (cf *CSVFormatter) FormatScenario(result *domain.ScenarioMathResult) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Loan Amount",
		"Rate %",
		"Monthly PITIA",
		"Rent",
		"Effective Rent",
		"Maintenance",
		"DSCR Gross",
		"DSCR Economic",
		"Monthly Cash Flow",
		"Annual Cash Flow",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}
	row := []string{
		result.LoanAmount.StringFixed(2),
		result.RateUsedPct.String(),
		result.MonthlyPITIA.StringFixed(2),
		result.RentUsed.StringFixed(2),
		result.EffectiveRent.StringFixed(2),
		result.MonthlyMaint.StringFixed(2),
		result.DSCRGross.StringFixed(2),
		result.DSCREconomic.StringFixed(2),
		result.MonthlyCashFlow.StringFixed(2),
		result.AnnualCashFlow.StringFixed(2),
	}
	if err := writer.Write(row); err != nil {
		return "", err
	}

	if err := writer.Write([]string{"Year", "Annual Cash Flow"}); err != nil {
		return "", err
	}
	for _, year := range result.CashFlowTable {
		if err := writer.Write([]string{strconv.Itoa(year.Year), year.AnnualCashFlow.StringFixed(2)}); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
