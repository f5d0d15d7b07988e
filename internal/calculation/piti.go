package calculation

import (
	"github.com/hearthlab/mortcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxRateLookup resolves a ZIP code to an annual property-tax rate in
// decimal-fraction form (0.012 means 1.2%). The second return is false when
// the ZIP is unmapped.
type TaxRateLookup interface {
	TaxRateForZip(zip string) (decimal.Decimal, bool)
}

// CountyLookup resolves a ZIP code to its county, for display passthrough
// only. Payment math never depends on it.
type CountyLookup interface {
	CountyForZip(zip string) (name, state string, ok bool)
}

// Composer assembles the full PITI breakdown from resolved loan inputs and
// the injected collaborator lookups.
type Composer struct {
	taxRates TaxRateLookup
	counties CountyLookup
	defaults domain.Defaults
}

// NewComposer creates a composer. Either lookup may be nil, in which case
// tax falls back to the explicit override or zero and county stays blank.
func NewComposer(taxRates TaxRateLookup, counties CountyLookup, defaults domain.Defaults) *Composer {
	return &Composer{taxRates: taxRates, counties: counties, defaults: defaults}
}

// ComposeOptions carries per-request overrides.
type ComposeOptions struct {
	// TaxRatePctOverride is an annual tax rate in percentage form (1.2
	// means 1.2%). When set it takes precedence over the ZIP lookup.
	TaxRatePctOverride *decimal.Decimal

	// MIAnnualPct is the annual mortgage-insurance rate in percentage
	// form. MI is charged only when the initial LTV exceeds 80%.
	MIAnnualPct *decimal.Decimal
}

// ComposePITI computes the payment breakdown for an extracted record. It
// demands a resolvable loan amount, a rate, and a term; anything less comes
// back as an InsufficientInputsError naming the gaps. Rather than guessing,
// an ambiguous query surfaces here as a missing rate.
func (c *Composer) ComposePITI(inputs domain.LoanInputs, opts ComposeOptions) (*domain.PaymentResult, error) {
	if missing := inputs.MissingFields(); len(missing) > 0 {
		return nil, &InsufficientInputsError{Missing: missing}
	}

	loanAmount, _ := inputs.ResolvedLoanAmount()
	ratePct := *inputs.RatePct
	termMonths := *inputs.TermMonths

	pi, err := MonthlyPI(loanAmount, ratePct, termMonths)
	if err != nil {
		return nil, err
	}
	sensitivity, err := RateSensitivity(loanAmount, ratePct, termMonths)
	if err != nil {
		return nil, err
	}

	taxRate := c.resolveTaxRate(inputs.Zip, opts.TaxRatePctOverride)
	monthlyTax := estimateMonthlyTax(loanAmount, taxRate)

	monthlyIns := c.defaults.MonthlyIns
	if inputs.MonthlyIns != nil {
		monthlyIns = *inputs.MonthlyIns
	}
	monthlyHOA := c.defaults.MonthlyHOA
	if inputs.MonthlyHOA != nil {
		monthlyHOA = *inputs.MonthlyHOA
	}

	miPct := decimal.Zero
	if opts.MIAnnualPct != nil {
		miPct = *opts.MIAnnualPct
	} else if inputs.MIAnnualPct != nil {
		miPct = *inputs.MIAnnualPct
	}

	monthlyMI := decimal.Zero
	var miDrops *int
	if inputs.Price != nil {
		monthlyMI = monthlyMIPremium(loanAmount, *inputs.Price, miPct)
		miDrops, err = MIDropMonth(loanAmount, *inputs.Price, ratePct, termMonths, miPct)
		if err != nil {
			return nil, err
		}
	}

	result := &domain.PaymentResult{
		LoanAmount:       loanAmount.Round(2),
		AnnualRatePct:    ratePct,
		TermMonths:       termMonths,
		TermYears:        decimal.NewFromInt(int64(termMonths)).Div(twelve),
		MonthlyPI:        pi,
		MonthlyTax:       monthlyTax,
		MonthlyIns:       monthlyIns.Round(2),
		MonthlyHOA:       monthlyHOA.Round(2),
		MonthlyMI:        monthlyMI,
		MonthlyTotalPITI: pi.Add(monthlyTax).Add(monthlyIns).Add(monthlyHOA).Add(monthlyMI).Round(2),
		Sensitivity:      sensitivity,
		MIDropsMonth:     miDrops,
		Zip:              inputs.Zip,
	}
	if c.counties != nil && inputs.Zip != "" {
		if name, state, ok := c.counties.CountyForZip(inputs.Zip); ok {
			result.County = name
			result.State = state
		}
	}
	return result, nil
}

// resolveTaxRate applies the precedence: explicit override percentage, then
// ZIP-derived county rate, then zero.
func (c *Composer) resolveTaxRate(zip string, overridePct *decimal.Decimal) decimal.Decimal {
	if overridePct != nil {
		return overridePct.Div(hundred)
	}
	if c.taxRates != nil && zip != "" {
		if rate, ok := c.taxRates.TaxRateForZip(zip); ok {
			return rate
		}
	}
	return decimal.Zero
}

// estimateMonthlyTax bases the tax estimate on the given base amount. The
// composer passes the loan amount, matching the behavior this engine
// replicates; assessed value would be the correction if that ever changes.
func estimateMonthlyTax(base, annualRateDecimal decimal.Decimal) decimal.Decimal {
	return base.Mul(annualRateDecimal).Div(twelve).Round(2)
}

// monthlyMIPremium charges MI on the loan amount only above 80% LTV.
func monthlyMIPremium(loanAmount, price, miAnnualPct decimal.Decimal) decimal.Decimal {
	if price.LessThanOrEqual(decimal.Zero) || miAnnualPct.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	ltv := loanAmount.Div(price).Mul(hundred)
	if ltv.LessThanOrEqual(decimal.NewFromInt(80)) {
		return decimal.Zero
	}
	return loanAmount.Mul(miAnnualPct).Div(hundred).Div(twelve).Round(2)
}
