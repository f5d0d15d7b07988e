package calculation

import (
	"github.com/hearthlab/mortcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// cashFlowYears are the markers reported in the projection table.
var cashFlowYears = []int{1, 2, 3, 4, 5, 10, 15, 20, 25, 30}

const defaultScenarioTermMonths = 360

// maxVacancyFraction caps the vacancy discount so a pathological 100%+
// vacancy input cannot zero out or invert rent.
var maxVacancyFraction = decimal.NewFromFloat(0.9)

// Scenario computes the investor cash-flow and DSCR path. It returns a nil
// result with an InsufficientInputsError when purchase price, a derivable
// loan amount, or the rate is missing or non-positive: an explicit "not
// computable" beats a confidently wrong zero-cash-flow answer.
func Scenario(inputs domain.ScenarioInputs, rateUsedPct decimal.Decimal) (*domain.ScenarioMathResult, error) {
	var missing []string
	if inputs.PurchasePrice == nil || inputs.PurchasePrice.LessThanOrEqual(decimal.Zero) {
		missing = append(missing, "purchase price")
	}
	loanAmount, ok := resolveScenarioLoan(inputs)
	if !ok || loanAmount.LessThanOrEqual(decimal.Zero) {
		missing = append(missing, "loan amount (or down payment)")
	}
	if rateUsedPct.LessThanOrEqual(decimal.Zero) {
		missing = append(missing, "rate")
	}
	if len(missing) > 0 {
		return nil, &InsufficientInputsError{Missing: missing}
	}

	termMonths := defaultScenarioTermMonths
	if inputs.TermMonths != nil && *inputs.TermMonths > 0 {
		termMonths = *inputs.TermMonths
	}

	pi, err := MonthlyPI(loanAmount, rateUsedPct, termMonths)
	if err != nil {
		return nil, err
	}

	monthlyTax := decimal.Zero
	if inputs.TaxRatePct != nil {
		monthlyTax = estimateMonthlyTax(loanAmount, normalizePct(*inputs.TaxRatePct).Div(hundred))
	}
	monthlyIns := derefOrZero(inputs.MonthlyIns)
	monthlyHOA := derefOrZero(inputs.MonthlyHOA)
	pitia := pi.Add(monthlyTax).Add(monthlyIns).Add(monthlyHOA)

	rent := derefOrZero(inputs.MonthlyRent)
	effectiveRent := rent
	if inputs.VacancyPct != nil {
		vac := normalizePct(*inputs.VacancyPct).Div(hundred)
		if vac.IsNegative() {
			vac = decimal.Zero
		}
		if vac.GreaterThan(maxVacancyFraction) {
			vac = maxVacancyFraction
		}
		effectiveRent = rent.Mul(one.Sub(vac))
	}

	maint := decimal.Zero
	switch {
	case inputs.MonthlyMaint != nil:
		maint = *inputs.MonthlyMaint
	case inputs.MaintenancePct != nil:
		maint = rent.Mul(normalizePct(*inputs.MaintenancePct)).Div(hundred)
	}

	// DSCR compares rent to the debt stack without maintenance; gross uses
	// raw rent, economic uses the vacancy-adjusted figure.
	dscrGross := decimal.Zero
	dscrEconomic := decimal.Zero
	if pitia.IsPositive() {
		dscrGross = rent.Div(pitia).Round(2)
		dscrEconomic = effectiveRent.Div(pitia).Round(2)
	}

	monthlyCashFlow := effectiveRent.Sub(pitia).Sub(maint)
	annualCashFlow := monthlyCashFlow.Mul(twelve)

	escalation := decimal.Zero
	if inputs.EscalationPct != nil {
		escalation = normalizePct(*inputs.EscalationPct)
	}

	return &domain.ScenarioMathResult{
		LoanAmount:      loanAmount.Round(2),
		RateUsedPct:     rateUsedPct,
		TermYears:       decimal.NewFromInt(int64(termMonths)).Div(twelve),
		MonthlyPI:       pi,
		MonthlyTax:      monthlyTax,
		MonthlyIns:      monthlyIns.Round(2),
		MonthlyHOA:      monthlyHOA.Round(2),
		MonthlyPITIA:    pitia.Round(2),
		RentUsed:        rent.Round(2),
		EffectiveRent:   effectiveRent.Round(2),
		MonthlyMaint:    maint.Round(2),
		DSCRGross:       dscrGross,
		DSCREconomic:    dscrEconomic,
		MonthlyCashFlow: monthlyCashFlow.Round(2),
		AnnualCashFlow:  annualCashFlow.Round(2),
		CashFlowTable:   buildCashFlowTable(annualCashFlow, escalation),
	}, nil
}

// buildCashFlowTable projects the annualized cash flow across the reported
// year markers. With zero escalation every row carries the identical value;
// the flat table is the default policy, escalation makes growth explicit.
func buildCashFlowTable(annualCashFlow, escalationPct decimal.Decimal) []domain.CashFlowYear {
	table := make([]domain.CashFlowYear, 0, len(cashFlowYears))
	growth := one.Add(escalationPct.Div(hundred))
	for _, year := range cashFlowYears {
		value := annualCashFlow
		if !escalationPct.IsZero() {
			value = annualCashFlow.Mul(growth.Pow(decimal.NewFromInt(int64(year - 1))))
		}
		table = append(table, domain.CashFlowYear{Year: year, AnnualCashFlow: value.Round(2)})
	}
	return table
}

func resolveScenarioLoan(inputs domain.ScenarioInputs) (decimal.Decimal, bool) {
	if inputs.LoanAmount != nil {
		return *inputs.LoanAmount, true
	}
	if inputs.PurchasePrice != nil && inputs.DownPercent != nil {
		down := normalizePct(*inputs.DownPercent)
		return inputs.PurchasePrice.Mul(hundred.Sub(down)).Div(hundred), true
	}
	return decimal.Decimal{}, false
}

// normalizePct maps fractional form (0,1) to percentage form by multiplying
// by 100. Values at or above 1 pass through. The boundary is inherently
// ambiguous for inputs near 1; structured callers should pass percentages.
func normalizePct(v decimal.Decimal) decimal.Decimal {
	if v.IsPositive() && v.LessThan(one) {
		return v.Mul(hundred)
	}
	return v
}

func derefOrZero(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}
