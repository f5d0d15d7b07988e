package domain

import "github.com/shopspring/decimal"

// ScenarioInputs drives the investor cash-flow path. Percent-like fields
// accept either percentage (1-100) or fractional (0-1) form; the engine
// normalizes fractions by multiplying by 100.
type ScenarioInputs struct {
	PurchasePrice *decimal.Decimal `yaml:"purchase_price,omitempty" json:"purchase_price,omitempty"`
	DownPercent   *decimal.Decimal `yaml:"down_percent,omitempty" json:"down_percent,omitempty"`
	LoanAmount    *decimal.Decimal `yaml:"loan_amount,omitempty" json:"loan_amount,omitempty"`
	TermMonths    *int             `yaml:"term_months,omitempty" json:"term_months,omitempty"`
	MonthlyRent   *decimal.Decimal `yaml:"monthly_rent,omitempty" json:"monthly_rent,omitempty"`
	VacancyPct    *decimal.Decimal `yaml:"vacancy_pct,omitempty" json:"vacancy_pct,omitempty"`

	// Maintenance may be stated as a flat monthly figure or as a percent of
	// gross rent; the flat figure wins when both are present.
	MonthlyMaint   *decimal.Decimal `yaml:"monthly_maint,omitempty" json:"monthly_maint,omitempty"`
	MaintenancePct *decimal.Decimal `yaml:"maintenance_pct,omitempty" json:"maintenance_pct,omitempty"`

	TaxRatePct *decimal.Decimal `yaml:"tax_rate_pct,omitempty" json:"tax_rate_pct,omitempty"`
	MonthlyIns *decimal.Decimal `yaml:"monthly_ins,omitempty" json:"monthly_ins,omitempty"`
	MonthlyHOA *decimal.Decimal `yaml:"monthly_hoa,omitempty" json:"monthly_hoa,omitempty"`

	// EscalationPct grows the annual cash-flow table year over year. Zero
	// (the default) reproduces the flat table.
	EscalationPct *decimal.Decimal `yaml:"escalation_pct,omitempty" json:"escalation_pct,omitempty"`
}

// CashFlowYear is one row of the multi-year projection.
type CashFlowYear struct {
	Year           int             `json:"year"`
	AnnualCashFlow decimal.Decimal `json:"annual_cash_flow"`
}

// ScenarioMathResult is the investor-path output: resolved financing, the
// monthly PITIA stack, DSCR coverage both ways, and the cash-flow projection.
type ScenarioMathResult struct {
	LoanAmount  decimal.Decimal `json:"loan_amount"`
	RateUsedPct decimal.Decimal `json:"rate_used_pct"`
	TermYears   decimal.Decimal `json:"term_years"`

	MonthlyPI    decimal.Decimal `json:"monthly_pi"`
	MonthlyTax   decimal.Decimal `json:"monthly_tax"`
	MonthlyIns   decimal.Decimal `json:"monthly_ins"`
	MonthlyHOA   decimal.Decimal `json:"monthly_hoa"`
	MonthlyPITIA decimal.Decimal `json:"monthly_pitia"`

	RentUsed      decimal.Decimal `json:"rent_used"`
	EffectiveRent decimal.Decimal `json:"effective_rent"`
	MonthlyMaint  decimal.Decimal `json:"monthly_maint"`

	// DSCRGross divides gross rent by PITIA; DSCREconomic divides
	// vacancy-adjusted rent by PITIA. Maintenance is excluded from both.
	DSCRGross    decimal.Decimal `json:"dscr_gross"`
	DSCREconomic decimal.Decimal `json:"dscr_economic"`

	MonthlyCashFlow decimal.Decimal `json:"monthly_cash_flow"`
	AnnualCashFlow  decimal.Decimal `json:"annual_cash_flow"`
	CashFlowTable   []CashFlowYear  `json:"cash_flow_table"`
}
