// Package calculation holds the deterministic mortgage math: the annuity
// payment, rate sensitivity, mortgage-insurance drop-off, the PITI composer,
// and the investor DSCR/cash-flow path. Everything is synchronous pure
// computation over decimal values; rounding to cents happens only at the
// final step of each figure.
package calculation

import (
	"github.com/hearthlab/mortcalc/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	one          = decimal.NewFromInt(1)
	hundred      = decimal.NewFromInt(100)
	twelve       = decimal.NewFromInt(12)
	quarterPoint = decimal.NewFromFloat(0.25)
	eightyPct    = decimal.NewFromFloat(0.8)
)

// MonthlyPI computes the fixed monthly principal-and-interest payment for a
// fully amortizing loan using the standard annuity formula. A zero rate
// degrades to straight division. Domain violations come back as CalcError
// rather than NaN or a divide-by-zero panic.
func MonthlyPI(loanAmount, annualRatePct decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	if loanAmount.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, &CalcError{Operation: "monthly_pi", Message: "loan amount must be positive"}
	}
	if termMonths <= 0 {
		return decimal.Decimal{}, &CalcError{Operation: "monthly_pi", Message: "term must be positive"}
	}
	if annualRatePct.IsNegative() {
		return decimal.Decimal{}, &CalcError{Operation: "monthly_pi", Message: "rate cannot be negative"}
	}

	n := decimal.NewFromInt(int64(termMonths))
	if annualRatePct.IsZero() {
		return loanAmount.Div(n).Round(2), nil
	}

	r := annualRatePct.Div(hundred).Div(twelve)
	growth := one.Add(r).Pow(n)
	payment := loanAmount.Mul(r).Mul(growth).Div(growth.Sub(one))
	return payment.Round(2), nil
}

// RateSensitivity computes the payment a quarter point above and below the
// quoted rate, same loan and term. The down leg is floored at 0%.
func RateSensitivity(loanAmount, annualRatePct decimal.Decimal, termMonths int) (domain.SensitivityPair, error) {
	down := annualRatePct.Sub(quarterPoint)
	if down.IsNegative() {
		down = decimal.Zero
	}
	downPI, err := MonthlyPI(loanAmount, down, termMonths)
	if err != nil {
		return domain.SensitivityPair{}, err
	}
	upPI, err := MonthlyPI(loanAmount, annualRatePct.Add(quarterPoint), termMonths)
	if err != nil {
		return domain.SensitivityPair{}, err
	}
	return domain.SensitivityPair{Up025: upPI, Down025: downPI}, nil
}

// MIDropMonth simulates month-by-month amortization and returns the
// 1-indexed month at which the balance first reaches 80% of the original
// price. It returns nil when MI does not apply (initial LTV at or below
// 80%, or no MI rate supplied) or when the crossing never happens within
// the term. The linear walk is fine at mortgage scale; terms top out around
// 600 months.
func MIDropMonth(loanAmount, price, annualRatePct decimal.Decimal, termMonths int, miAnnualPct decimal.Decimal) (*int, error) {
	if price.LessThanOrEqual(decimal.Zero) || miAnnualPct.LessThanOrEqual(decimal.Zero) {
		return nil, nil
	}
	ltv := loanAmount.Div(price).Mul(hundred)
	if ltv.LessThanOrEqual(decimal.NewFromInt(80)) {
		return nil, nil
	}

	payment, err := MonthlyPI(loanAmount, annualRatePct, termMonths)
	if err != nil {
		return nil, err
	}

	r := annualRatePct.Div(hundred).Div(twelve)
	target := price.Mul(eightyPct)
	balance := loanAmount
	for m := 1; m <= termMonths; m++ {
		interest := balance.Mul(r)
		principal := payment.Sub(interest)
		if principal.LessThanOrEqual(decimal.Zero) {
			// Payment does not cover interest; the balance will never
			// amortize down to the target.
			return nil, nil
		}
		balance = balance.Sub(principal)
		if balance.LessThanOrEqual(target) {
			month := m
			return &month, nil
		}
	}
	return nil, nil
}
