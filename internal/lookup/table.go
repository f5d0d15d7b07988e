// Package lookup provides the collaborator data the calculation engine
// consumes: ZIP-to-county property-tax rates, conforming loan limits, and a
// market-rate snapshot provider. Lookups are plain in-memory map reads; the
// seed table ships with the binary and a yaml file can replace it per
// deployment.
package lookup

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ZipRecord is everything the table knows about one ZIP code. TaxRate is an
// annual rate in decimal-fraction form (0.0068 means 0.68%).
type ZipRecord struct {
	County    string          `yaml:"county"`
	State     string          `yaml:"state"`
	TaxRate   decimal.Decimal `yaml:"tax_rate"`
	LoanLimit decimal.Decimal `yaml:"loan_limit"`
}

// Table maps ZIP codes to county records.
type Table struct {
	records map[string]ZipRecord
}

// NewTable returns a table seeded with the built-in records.
func NewTable() *Table {
	return &Table{records: seedRecords()}
}

// LoadTable reads a yaml table file and returns a table backed by it. The
// file replaces the seed data entirely.
func LoadTable(filename string) (*Table, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var doc struct {
		Zips map[string]ZipRecord `yaml:"zips"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(doc.Zips) == 0 {
		return nil, fmt.Errorf("table file %s contains no zips", filename)
	}

	for zip, rec := range doc.Zips {
		if len(zip) != 5 {
			return nil, fmt.Errorf("invalid ZIP %q: must be 5 digits", zip)
		}
		if rec.TaxRate.IsNegative() {
			return nil, fmt.Errorf("ZIP %s: tax rate cannot be negative", zip)
		}
		if rec.TaxRate.GreaterThan(decimal.NewFromFloat(0.1)) {
			return nil, fmt.Errorf("ZIP %s: tax rate %s looks like a percentage, use decimal form (0.012 for 1.2%%)", zip, rec.TaxRate)
		}
	}

	return &Table{records: doc.Zips}, nil
}

// TaxRateForZip returns the annual property-tax rate for a ZIP, or false
// when the ZIP is unmapped.
func (t *Table) TaxRateForZip(zip string) (decimal.Decimal, bool) {
	rec, ok := t.records[zip]
	if !ok {
		return decimal.Decimal{}, false
	}
	return rec.TaxRate, true
}

// CountyForZip returns the county name and state for a ZIP.
func (t *Table) CountyForZip(zip string) (name, state string, ok bool) {
	rec, found := t.records[zip]
	if !found {
		return "", "", false
	}
	return rec.County, rec.State, true
}

// LoanLimitsForZip returns the conforming one-unit loan limit for a ZIP.
// Informational only; payment math never reads it.
func (t *Table) LoanLimitsForZip(zip string) (decimal.Decimal, bool) {
	rec, ok := t.records[zip]
	if !ok {
		return decimal.Decimal{}, false
	}
	return rec.LoanLimit, true
}

func seedRecords() map[string]ZipRecord {
	baseline := decimal.NewFromInt(806500)
	highCost := decimal.NewFromInt(1209750)
	return map[string]ZipRecord{
		"92688": {County: "Orange", State: "CA", TaxRate: decimal.NewFromFloat(0.0072), LoanLimit: highCost},
		"92618": {County: "Orange", State: "CA", TaxRate: decimal.NewFromFloat(0.0078), LoanLimit: highCost},
		"90210": {County: "Los Angeles", State: "CA", TaxRate: decimal.NewFromFloat(0.0071), LoanLimit: highCost},
		"94110": {County: "San Francisco", State: "CA", TaxRate: decimal.NewFromFloat(0.0068), LoanLimit: highCost},
		"98101": {County: "King", State: "WA", TaxRate: decimal.NewFromFloat(0.0088), LoanLimit: decimal.NewFromInt(1037300)},
		"78701": {County: "Travis", State: "TX", TaxRate: decimal.NewFromFloat(0.0181), LoanLimit: baseline},
		"75201": {County: "Dallas", State: "TX", TaxRate: decimal.NewFromFloat(0.0177), LoanLimit: baseline},
		"33101": {County: "Miami-Dade", State: "FL", TaxRate: decimal.NewFromFloat(0.0102), LoanLimit: baseline},
		"30301": {County: "Fulton", State: "GA", TaxRate: decimal.NewFromFloat(0.0108), LoanLimit: baseline},
		"60601": {County: "Cook", State: "IL", TaxRate: decimal.NewFromFloat(0.0207), LoanLimit: baseline},
		"10001": {County: "New York", State: "NY", TaxRate: decimal.NewFromFloat(0.0088), LoanLimit: highCost},
		"85001": {County: "Maricopa", State: "AZ", TaxRate: decimal.NewFromFloat(0.0063), LoanLimit: baseline},
		"80202": {County: "Denver", State: "CO", TaxRate: decimal.NewFromFloat(0.0055), LoanLimit: decimal.NewFromInt(833100)},
		"37201": {County: "Davidson", State: "TN", TaxRate: decimal.NewFromFloat(0.0067), LoanLimit: baseline},
		"27601": {County: "Wake", State: "NC", TaxRate: decimal.NewFromFloat(0.0082), LoanLimit: baseline},
	}
}
