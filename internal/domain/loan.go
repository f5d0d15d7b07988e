package domain

import "github.com/shopspring/decimal"

// LoanInputs is the partial record produced by query extraction. Every field
// is optional until resolved; extraction never fails, it just leaves gaps for
// the composer to judge.
type LoanInputs struct {
	Price       *decimal.Decimal `yaml:"price,omitempty" json:"price,omitempty"`
	DownPercent *decimal.Decimal `yaml:"down_percent,omitempty" json:"downPercent,omitempty"`
	LoanAmount  *decimal.Decimal `yaml:"loan_amount,omitempty" json:"loanAmount,omitempty"`
	RatePct     *decimal.Decimal `yaml:"rate_pct,omitempty" json:"ratePct,omitempty"`
	TermMonths  *int             `yaml:"term_months,omitempty" json:"termMonths,omitempty"`
	Zip         string           `yaml:"zip,omitempty" json:"zip,omitempty"`
	MonthlyIns  *decimal.Decimal `yaml:"monthly_ins,omitempty" json:"monthlyIns,omitempty"`
	MonthlyHOA  *decimal.Decimal `yaml:"monthly_hoa,omitempty" json:"monthlyHOA,omitempty"`
	MIAnnualPct *decimal.Decimal `yaml:"mi_annual_pct,omitempty" json:"miAnnualPct,omitempty"`
}

// ResolvedLoanAmount returns the loan amount, deriving it from price and down
// payment when it was not stated directly.
func (li LoanInputs) ResolvedLoanAmount() (decimal.Decimal, bool) {
	if li.LoanAmount != nil {
		return *li.LoanAmount, true
	}
	if li.Price != nil && li.DownPercent != nil {
		hundred := decimal.NewFromInt(100)
		return li.Price.Mul(hundred.Sub(*li.DownPercent)).Div(hundred), true
	}
	return decimal.Decimal{}, false
}

// MissingFields lists what keeps the record from being computable: a loan
// amount (direct or derivable), a rate, and a term.
func (li LoanInputs) MissingFields() []string {
	var missing []string
	if _, ok := li.ResolvedLoanAmount(); !ok {
		missing = append(missing, "loan amount (or price and down payment)")
	}
	if li.RatePct == nil {
		missing = append(missing, "rate")
	}
	if li.TermMonths == nil {
		missing = append(missing, "term")
	}
	return missing
}

// Defaults holds the display-convenience values applied to fields the query
// never mentioned. They are a configuration policy, not a parsing necessity,
// so they travel with the caller instead of living inside the extractor.
type Defaults struct {
	MonthlyIns decimal.Decimal `yaml:"monthly_ins" json:"monthlyIns"`
	MonthlyHOA decimal.Decimal `yaml:"monthly_hoa" json:"monthlyHOA"`
}

// DefaultExtractDefaults returns the standard defaults: $100/mo insurance,
// no HOA dues.
func DefaultExtractDefaults() Defaults {
	return Defaults{
		MonthlyIns: decimal.NewFromInt(100),
		MonthlyHOA: decimal.Zero,
	}
}
