package domain

import "github.com/shopspring/decimal"

// SensitivityPair holds the monthly P&I at the quoted rate plus and minus a
// quarter point. The down-rate leg is floored at 0%.
type SensitivityPair struct {
	Up025   decimal.Decimal `json:"up025"`
	Down025 decimal.Decimal `json:"down025"`
}

// PaymentResult is the immutable output of the PITI composer. All monetary
// figures are monthly and rounded to cents.
type PaymentResult struct {
	LoanAmount       decimal.Decimal `json:"loanAmount"`
	AnnualRatePct    decimal.Decimal `json:"annualRatePct"`
	TermYears        decimal.Decimal `json:"termYears"`
	TermMonths       int             `json:"termMonths"`
	MonthlyPI        decimal.Decimal `json:"monthlyPI"`
	MonthlyTax       decimal.Decimal `json:"monthlyTax"`
	MonthlyIns       decimal.Decimal `json:"monthlyIns"`
	MonthlyHOA       decimal.Decimal `json:"monthlyHOA"`
	MonthlyMI        decimal.Decimal `json:"monthlyMI"`
	MonthlyTotalPITI decimal.Decimal `json:"monthlyTotalPITI"`
	Sensitivity      SensitivityPair `json:"sensitivity"`

	// MIDropsMonth is the 1-indexed month at which the amortized balance
	// first reaches 80% of the original price. Nil when MI does not apply
	// or the crossing never happens within the term.
	MIDropsMonth *int `json:"miDropsMonth"`

	// Informational passthrough for display; never used in payment math.
	Zip    string `json:"zip,omitempty"`
	County string `json:"county,omitempty"`
	State  string `json:"state,omitempty"`
}
