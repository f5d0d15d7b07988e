package parse

import (
	"reflect"
	"testing"

	"github.com/hearthlab/mortcalc/internal/domain"
	"github.com/shopspring/decimal"
)

func requireDecimal(t *testing.T, field string, got *decimal.Decimal, want string) {
	t.Helper()
	if got == nil {
		t.Fatalf("%s: expected %s, got nil", field, want)
	}
	expected, _ := decimal.NewFromString(want)
	if !got.Equal(expected) {
		t.Errorf("%s: expected %s, got %s", field, want, got)
	}
}

func TestExtract_FullQuery(t *testing.T) {
	inputs := ParseQuery("price 900k down 20 percent 6.25 30 years zip 92688", domain.DefaultExtractDefaults())

	requireDecimal(t, "price", inputs.Price, "900000")
	requireDecimal(t, "downPercent", inputs.DownPercent, "20")
	requireDecimal(t, "loanAmount", inputs.LoanAmount, "720000")
	requireDecimal(t, "ratePct", inputs.RatePct, "6.25")
	if inputs.TermMonths == nil || *inputs.TermMonths != 360 {
		t.Errorf("termMonths: expected 360, got %v", inputs.TermMonths)
	}
	if inputs.Zip != "92688" {
		t.Errorf("zip: expected 92688, got %q", inputs.Zip)
	}
}

func TestExtract_AmbiguousRateDeclined(t *testing.T) {
	// Rate omitted; 900k and 20 are both claimed by their contexts, so no
	// candidate remains and the extractor must not guess.
	inputs := ParseQuery("price 900k down 20% 30 years 92688", domain.DefaultExtractDefaults())

	if inputs.RatePct != nil {
		t.Errorf("ratePct: expected unresolved, got %s", inputs.RatePct)
	}
	requireDecimal(t, "loanAmount", inputs.LoanAmount, "720000")
}

func TestExtract_MultipleCandidatesDeclined(t *testing.T) {
	// Two plausible standalone rates; the sole-candidate fallback declines.
	inputs := ParseQuery("price 900k down 20% 30 years 6.25 7.5", domain.DefaultExtractDefaults())

	if inputs.RatePct != nil {
		t.Errorf("ratePct: expected unresolved with two candidates, got %s", inputs.RatePct)
	}
}

func TestExtract_SoleCandidateRate(t *testing.T) {
	inputs := ParseQuery("price 900k down 20% 30 years 6.25", domain.DefaultExtractDefaults())

	requireDecimal(t, "ratePct", inputs.RatePct, "6.25")
}

func TestExtract_BareLoanAt(t *testing.T) {
	inputs := ParseQuery("400000 at 6.5", domain.DefaultExtractDefaults())

	requireDecimal(t, "loanAmount", inputs.LoanAmount, "400000")
	requireDecimal(t, "ratePct", inputs.RatePct, "6.5")
	if inputs.Price != nil {
		t.Errorf("price: expected nil, got %s", inputs.Price)
	}
}

func TestExtract_AtTermNotRate(t *testing.T) {
	// The number after "at" is a term count, not a rate.
	inputs := ParseQuery("$400k at 30 years", domain.DefaultExtractDefaults())

	requireDecimal(t, "loanAmount", inputs.LoanAmount, "400000")
	if inputs.TermMonths == nil || *inputs.TermMonths != 360 {
		t.Errorf("termMonths: expected 360, got %v", inputs.TermMonths)
	}
	if inputs.RatePct != nil {
		t.Errorf("ratePct: expected unresolved, got %s", inputs.RatePct)
	}
}

func TestExtract_DownPercentBothForms(t *testing.T) {
	forward := ParseQuery("price 500k down 10%", domain.DefaultExtractDefaults())
	backward := ParseQuery("price 500k 10% down", domain.DefaultExtractDefaults())

	requireDecimal(t, "forward downPercent", forward.DownPercent, "10")
	requireDecimal(t, "backward downPercent", backward.DownPercent, "10")
}

func TestExtract_DownBasisPointTypo(t *testing.T) {
	inputs := ParseQuery("price 500k down 2000%", domain.DefaultExtractDefaults())

	requireDecimal(t, "downPercent", inputs.DownPercent, "20")
}

func TestExtract_RateKeywordForm(t *testing.T) {
	inputs := ParseQuery("loan 250000 rate 7 15 yrs", domain.DefaultExtractDefaults())

	requireDecimal(t, "loanAmount", inputs.LoanAmount, "250000")
	requireDecimal(t, "ratePct", inputs.RatePct, "7")
	if inputs.TermMonths == nil || *inputs.TermMonths != 180 {
		t.Errorf("termMonths: expected 180, got %v", inputs.TermMonths)
	}
}

func TestExtract_FractionRateNormalized(t *testing.T) {
	inputs := ParseQuery("400000 at 0.0625 30 years", domain.DefaultExtractDefaults())

	requireDecimal(t, "ratePct", inputs.RatePct, "6.25")
}

func TestExtract_TermInMonths(t *testing.T) {
	inputs := ParseQuery("loan 300k rate 6 240 months", domain.DefaultExtractDefaults())

	if inputs.TermMonths == nil || *inputs.TermMonths != 240 {
		t.Errorf("termMonths: expected 240, got %v", inputs.TermMonths)
	}
}

func TestExtract_InsuranceAndHOA(t *testing.T) {
	inputs := ParseQuery("price 600k down 20% rate 6 30 years ins 150 hoa 250", domain.DefaultExtractDefaults())

	requireDecimal(t, "monthlyIns", inputs.MonthlyIns, "150")
	requireDecimal(t, "monthlyHOA", inputs.MonthlyHOA, "250")
}

func TestExtract_DefaultsApplied(t *testing.T) {
	inputs := ParseQuery("price 600k down 20% rate 6 30 years", domain.DefaultExtractDefaults())

	requireDecimal(t, "monthlyIns", inputs.MonthlyIns, "100")
	requireDecimal(t, "monthlyHOA", inputs.MonthlyHOA, "0")
}

func TestExtract_CustomDefaults(t *testing.T) {
	defaults := domain.Defaults{
		MonthlyIns: decimal.NewFromInt(80),
		MonthlyHOA: decimal.NewFromInt(45),
	}
	inputs := ParseQuery("price 600k down 20% rate 6 30 years", defaults)

	requireDecimal(t, "monthlyIns", inputs.MonthlyIns, "80")
	requireDecimal(t, "monthlyHOA", inputs.MonthlyHOA, "45")
}

func TestExtract_LastZipWins(t *testing.T) {
	inputs := ParseQuery("90210 92688", domain.DefaultExtractDefaults())

	if inputs.Zip != "92688" {
		t.Errorf("zip: expected 92688, got %q", inputs.Zip)
	}
}

func TestExtract_Idempotent(t *testing.T) {
	tokens := Tokenize("price 900k down 20 percent 6.25 30 years zip 92688")
	defaults := domain.DefaultExtractDefaults()

	first := Extract(tokens, defaults)
	second := Extract(tokens, defaults)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extract is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	inputs := ParseQuery("", domain.DefaultExtractDefaults())

	if inputs.Price != nil || inputs.LoanAmount != nil || inputs.RatePct != nil || inputs.TermMonths != nil {
		t.Errorf("Expected empty record, got %+v", inputs)
	}
	// Defaults still apply.
	requireDecimal(t, "monthlyIns", inputs.MonthlyIns, "100")
}

func TestExtract_GarbageInput(t *testing.T) {
	inputs := ParseQuery("how does amortization even work???", domain.DefaultExtractDefaults())

	if inputs.LoanAmount != nil || inputs.RatePct != nil {
		t.Errorf("Expected no extracted fields from garbage, got %+v", inputs)
	}
}
