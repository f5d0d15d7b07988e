package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/hearthlab/mortcalc/internal/domain"
	"github.com/shopspring/decimal"
)

func samplePaymentResult() *domain.PaymentResult {
	miDrop := 87
	return &domain.PaymentResult{
		LoanAmount:       decimal.NewFromInt(720000),
		AnnualRatePct:    decimal.NewFromFloat(6.25),
		TermMonths:       360,
		TermYears:        decimal.NewFromInt(30),
		MonthlyPI:        decimal.NewFromFloat(4433.06),
		MonthlyTax:       decimal.NewFromInt(432),
		MonthlyIns:       decimal.NewFromInt(100),
		MonthlyHOA:       decimal.Zero,
		MonthlyMI:        decimal.NewFromInt(300),
		MonthlyTotalPITI: decimal.NewFromFloat(5265.06),
		Sensitivity: domain.SensitivityPair{
			Up025:   decimal.NewFromFloat(4551.66),
			Down025: decimal.NewFromFloat(4315.64),
		},
		MIDropsMonth: &miDrop,
		Zip:          "92688",
		County:       "Orange",
		State:        "CA",
	}
}

func sampleScenarioResult() *domain.ScenarioMathResult {
	return &domain.ScenarioMathResult{
		LoanAmount:      decimal.NewFromInt(375000),
		RateUsedPct:     decimal.NewFromFloat(6.5),
		TermYears:       decimal.NewFromInt(30),
		MonthlyPI:       decimal.NewFromFloat(2370.33),
		MonthlyPITIA:    decimal.NewFromFloat(2865.33),
		RentUsed:        decimal.NewFromInt(3200),
		EffectiveRent:   decimal.NewFromInt(3040),
		MonthlyMaint:    decimal.NewFromInt(200),
		DSCRGross:       decimal.NewFromFloat(1.12),
		DSCREconomic:    decimal.NewFromFloat(1.06),
		MonthlyCashFlow: decimal.NewFromFloat(-25.33),
		AnnualCashFlow:  decimal.NewFromFloat(-303.96),
		CashFlowTable: []domain.CashFlowYear{
			{Year: 1, AnnualCashFlow: decimal.NewFromFloat(-303.96)},
			{Year: 5, AnnualCashFlow: decimal.NewFromFloat(-303.96)},
			{Year: 30, AnnualCashFlow: decimal.NewFromFloat(-303.96)},
		},
	}
}

func TestTableFormatter_Payment(t *testing.T) {
	tf := &TableFormatter{}
	out := tf.FormatPayment(samplePaymentResult())

	for _, want := range []string{
		"MONTHLY PAYMENT BREAKDOWN",
		"$720000.00",
		"6.25%",
		"92688 (Orange County, CA)",
		"Total PITI:           $5265.06",
		"At 6%: $4315.64",
		"At 6.5%: $4551.66",
		"MI drops off at month 87",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Table output missing %q:\n%s", want, out)
		}
	}
}

func TestTableFormatter_PaymentNoLocation(t *testing.T) {
	tf := &TableFormatter{}
	result := samplePaymentResult()
	result.Zip = ""
	result.County = ""
	result.State = ""
	result.MIDropsMonth = nil

	out := tf.FormatPayment(result)
	if strings.Contains(out, "Location:") {
		t.Error("Expected no location line without a ZIP")
	}
	if strings.Contains(out, "MI drops off") {
		t.Error("Expected no MI drop line")
	}
}

func TestTableFormatter_Scenario(t *testing.T) {
	tf := &TableFormatter{}
	out := tf.FormatScenario(sampleScenarioResult())

	for _, want := range []string{
		"INVESTOR SCENARIO",
		"DSCR (gross):       1.12",
		"DSCR (economic):    1.06",
		"Cash flow projection:",
		"Year 1",
		"Year 30",
		"$-303.96",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Scenario output missing %q:\n%s", want, out)
		}
	}
}

func TestJSONFormatter_Payment(t *testing.T) {
	jf := &JSONFormatter{}
	out, err := jf.FormatPayment(samplePaymentResult())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded["loanAmount"] != "720000" {
		t.Errorf("Expected loanAmount 720000, got %v", decoded["loanAmount"])
	}
	if decoded["zip"] != "92688" {
		t.Errorf("Expected zip 92688, got %v", decoded["zip"])
	}
	if decoded["miDropsMonth"] != float64(87) {
		t.Errorf("Expected miDropsMonth 87, got %v", decoded["miDropsMonth"])
	}
}

func TestJSONFormatter_Pretty(t *testing.T) {
	jf := &JSONFormatter{Pretty: true}
	out, err := jf.FormatPayment(samplePaymentResult())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(out, "\n  ") {
		t.Error("Expected indented output in pretty mode")
	}
}

func TestJSONFormatter_Inputs(t *testing.T) {
	jf := &JSONFormatter{}
	rate := decimal.NewFromFloat(6.25)
	out, err := jf.FormatInputs(domain.LoanInputs{RatePct: &rate, Zip: "92688"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded["ratePct"] != "6.25" {
		t.Errorf("Expected ratePct 6.25, got %v", decoded["ratePct"])
	}
	// Unset optional fields should be omitted, not emitted as null.
	if _, present := decoded["price"]; present {
		t.Error("Expected price to be omitted when unset")
	}
}

func TestCSVFormatter_Payment(t *testing.T) {
	cf := &CSVFormatter{}
	out, err := cf.FormatPayment(samplePaymentResult())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected header plus one record, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Loan Amount,") {
		t.Errorf("Unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "720000.00") || !strings.Contains(lines[1], "87") {
		t.Errorf("Unexpected record: %s", lines[1])
	}
}

func TestCSVFormatter_Scenario(t *testing.T) {
	cf := &CSVFormatter{}
	result := sampleScenarioResult()
	out, err := cf.FormatScenario(result)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Summary header, summary row, year header, then one line per year.
	if len(lines) != 3+len(result.CashFlowTable) {
		t.Fatalf("Expected %d lines, got %d", 3+len(result.CashFlowTable), len(lines))
	}
	if lines[2] != "Year,Annual Cash Flow" {
		t.Errorf("Unexpected year header: %s", lines[2])
	}
	if lines[3] != "1,-303.96" {
		t.Errorf("Unexpected first year row: %s", lines[3])
	}
}
