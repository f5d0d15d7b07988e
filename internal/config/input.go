// Package config parses the yaml input files the CLI accepts: investor
// scenario definitions and extraction-default overrides.
package config

import (
	"fmt"
	"os"

	"github.com/hearthlab/mortcalc/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ScenarioDocument is the on-disk shape of an investor scenario. Percent
// fields are percentage numbers (6.25 means 6.25%); term may be given in
// months or years.
type ScenarioDocument struct {
	PurchasePrice  *decimal.Decimal `yaml:"purchase_price"`
	DownPercent    *decimal.Decimal `yaml:"down_percent"`
	LoanAmount     *decimal.Decimal `yaml:"loan_amount"`
	RatePct        *decimal.Decimal `yaml:"rate_pct"`
	TermMonths     *int             `yaml:"term_months"`
	TermYears      *int             `yaml:"term_years"`
	MonthlyRent    *decimal.Decimal `yaml:"monthly_rent"`
	VacancyPct     *decimal.Decimal `yaml:"vacancy_pct"`
	MonthlyMaint   *decimal.Decimal `yaml:"monthly_maint"`
	MaintenancePct *decimal.Decimal `yaml:"maintenance_pct"`
	TaxRatePct     *decimal.Decimal `yaml:"tax_rate_pct"`
	MonthlyIns     *decimal.Decimal `yaml:"monthly_ins"`
	MonthlyHOA     *decimal.Decimal `yaml:"monthly_hoa"`
	EscalationPct  *decimal.Decimal `yaml:"escalation_pct"`
}

// InputParser handles parsing of input configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadScenario loads and validates a scenario file, returning the engine
// inputs and the rate to use.
func (ip *InputParser) LoadScenario(filename string) (*domain.ScenarioInputs, decimal.Decimal, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, decimal.Decimal{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var doc ScenarioDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, decimal.Decimal{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.validateScenario(&doc); err != nil {
		return nil, decimal.Decimal{}, fmt.Errorf("scenario validation failed: %w", err)
	}

	inputs := &domain.ScenarioInputs{
		PurchasePrice:  doc.PurchasePrice,
		DownPercent:    doc.DownPercent,
		LoanAmount:     doc.LoanAmount,
		TermMonths:     doc.TermMonths,
		MonthlyRent:    doc.MonthlyRent,
		VacancyPct:     doc.VacancyPct,
		MonthlyMaint:   doc.MonthlyMaint,
		MaintenancePct: doc.MaintenancePct,
		TaxRatePct:     doc.TaxRatePct,
		MonthlyIns:     doc.MonthlyIns,
		MonthlyHOA:     doc.MonthlyHOA,
		EscalationPct:  doc.EscalationPct,
	}
	if inputs.TermMonths == nil && doc.TermYears != nil {
		months := *doc.TermYears * 12
		inputs.TermMonths = &months
	}

	rate := decimal.Decimal{}
	if doc.RatePct != nil {
		rate = *doc.RatePct
	}
	return inputs, rate, nil
}

func (ip *InputParser) validateScenario(doc *ScenarioDocument) error {
	if doc.PurchasePrice == nil {
		return fmt.Errorf("purchase_price is required")
	}
	if doc.PurchasePrice.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("purchase_price must be positive")
	}
	if doc.RatePct == nil {
		return fmt.Errorf("rate_pct is required")
	}
	if doc.RatePct.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("rate_pct must be positive")
	}
	if doc.DownPercent == nil && doc.LoanAmount == nil {
		return fmt.Errorf("either down_percent or loan_amount is required")
	}
	if doc.DownPercent != nil && (doc.DownPercent.IsNegative() || doc.DownPercent.GreaterThanOrEqual(decimal.NewFromInt(100))) {
		return fmt.Errorf("down_percent must be between 0 and 100")
	}
	if doc.LoanAmount != nil && doc.LoanAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("loan_amount must be positive")
	}
	if doc.TermMonths != nil && doc.TermYears != nil {
		return fmt.Errorf("specify either term_months or term_years, not both")
	}
	if doc.TermMonths != nil && (*doc.TermMonths <= 0 || *doc.TermMonths > 600) {
		return fmt.Errorf("term_months must be between 1 and 600")
	}
	if doc.TermYears != nil && (*doc.TermYears <= 0 || *doc.TermYears > 50) {
		return fmt.Errorf("term_years must be between 1 and 50")
	}
	if doc.MonthlyRent != nil && doc.MonthlyRent.IsNegative() {
		return fmt.Errorf("monthly_rent cannot be negative")
	}
	if doc.VacancyPct != nil && doc.VacancyPct.IsNegative() {
		return fmt.Errorf("vacancy_pct cannot be negative")
	}
	if doc.MonthlyMaint != nil && doc.MonthlyMaint.IsNegative() {
		return fmt.Errorf("monthly_maint cannot be negative")
	}
	if doc.TaxRatePct != nil && doc.TaxRatePct.IsNegative() {
		return fmt.Errorf("tax_rate_pct cannot be negative")
	}
	if doc.EscalationPct != nil && doc.EscalationPct.IsNegative() {
		return fmt.Errorf("escalation_pct cannot be negative")
	}
	return nil
}

// DefaultsDocument is the on-disk shape of extraction-default overrides.
type DefaultsDocument struct {
	MonthlyIns *decimal.Decimal `yaml:"monthly_ins"`
	MonthlyHOA *decimal.Decimal `yaml:"monthly_hoa"`
}

// LoadDefaults loads extraction defaults from a yaml file, filling anything
// unspecified from the standard defaults.
func (ip *InputParser) LoadDefaults(filename string) (domain.Defaults, error) {
	defaults := domain.DefaultExtractDefaults()

	data, err := os.ReadFile(filename)
	if err != nil {
		return defaults, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var doc DefaultsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return defaults, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if doc.MonthlyIns != nil {
		if doc.MonthlyIns.IsNegative() {
			return defaults, fmt.Errorf("monthly_ins cannot be negative")
		}
		defaults.MonthlyIns = *doc.MonthlyIns
	}
	if doc.MonthlyHOA != nil {
		if doc.MonthlyHOA.IsNegative() {
			return defaults, fmt.Errorf("monthly_hoa cannot be negative")
		}
		defaults.MonthlyHOA = *doc.MonthlyHOA
	}
	return defaults, nil
}
