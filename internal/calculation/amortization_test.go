package calculation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMonthlyPI_ReferenceValue(t *testing.T) {
	// Standard annuity formula reference: $400,000 at 6.5% over 30 years.
	pi, err := MonthlyPI(decimal.NewFromInt(400000), decimal.NewFromFloat(6.5), 360)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := decimal.NewFromFloat(2528.27)
	if !pi.Equal(expected) {
		t.Errorf("Expected %s, got %s", expected, pi)
	}
}

func TestMonthlyPI_ZeroRate(t *testing.T) {
	pi, err := MonthlyPI(decimal.NewFromInt(360000), decimal.Zero, 360)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !pi.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected exactly 1000, got %s", pi)
	}
}

func TestMonthlyPI_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		loan decimal.Decimal
		rate decimal.Decimal
		term int
	}{
		{"zero loan", decimal.Zero, decimal.NewFromFloat(6.5), 360},
		{"negative loan", decimal.NewFromInt(-1000), decimal.NewFromFloat(6.5), 360},
		{"zero term", decimal.NewFromInt(400000), decimal.NewFromFloat(6.5), 0},
		{"negative term", decimal.NewFromInt(400000), decimal.NewFromFloat(6.5), -12},
		{"negative rate", decimal.NewFromInt(400000), decimal.NewFromFloat(-1), 360},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := MonthlyPI(tc.loan, tc.rate, tc.term)
			if err == nil {
				t.Error("Expected domain error, got nil")
			}
			var calcErr *CalcError
			if !errors.As(err, &calcErr) {
				t.Errorf("Expected CalcError, got %T", err)
			}
		})
	}
}

func TestRateSensitivity_Monotonic(t *testing.T) {
	loan := decimal.NewFromInt(400000)
	rate := decimal.NewFromFloat(6.5)

	pi, err := MonthlyPI(loan, rate, 360)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	pair, err := RateSensitivity(loan, rate, 360)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !pair.Down025.LessThan(pi) {
		t.Errorf("Expected down leg %s < base %s", pair.Down025, pi)
	}
	if !pi.LessThan(pair.Up025) {
		t.Errorf("Expected base %s < up leg %s", pi, pair.Up025)
	}
}

func TestRateSensitivity_FlooredAtZero(t *testing.T) {
	loan := decimal.NewFromInt(120000)

	// Base rate below the step: the down leg clamps to 0%, which is
	// straight division.
	pair, err := RateSensitivity(loan, decimal.NewFromFloat(0.1), 120)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !pair.Down025.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected floored down leg 1000, got %s", pair.Down025)
	}
}

func TestMIDropMonth_HighLTV(t *testing.T) {
	// 90% LTV: MI applies and drops off partway through the term.
	loan := decimal.NewFromInt(360000)
	price := decimal.NewFromInt(400000)

	month, err := MIDropMonth(loan, price, decimal.NewFromInt(6), 360, decimal.NewFromFloat(0.5))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if month == nil {
		t.Fatal("Expected a drop-off month, got nil")
	}
	if *month <= 0 || *month >= 360 {
		t.Errorf("Expected month in (0, 360), got %d", *month)
	}
}

func TestMIDropMonth_LowLTV(t *testing.T) {
	// 75% LTV: no MI, no drop-off.
	loan := decimal.NewFromInt(300000)
	price := decimal.NewFromInt(400000)

	month, err := MIDropMonth(loan, price, decimal.NewFromInt(6), 360, decimal.NewFromFloat(0.5))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if month != nil {
		t.Errorf("Expected nil for 75%% LTV, got %d", *month)
	}
}

func TestMIDropMonth_NoMIRate(t *testing.T) {
	loan := decimal.NewFromInt(360000)
	price := decimal.NewFromInt(400000)

	month, err := MIDropMonth(loan, price, decimal.NewFromInt(6), 360, decimal.Zero)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if month != nil {
		t.Errorf("Expected nil without an MI rate, got %d", *month)
	}
}

func TestMIDropMonth_ZeroRateAmortizesLinearly(t *testing.T) {
	// At 0% the balance declines by the full $1000 payment each month, so
	// the crossing is exact: $40,000 down to the 80% target takes 40 months.
	loan := decimal.NewFromInt(360000)
	price := decimal.NewFromInt(400000)

	month, err := MIDropMonth(loan, price, decimal.Zero, 360, decimal.NewFromFloat(0.5))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if month == nil {
		t.Fatal("Expected a drop-off month, got nil")
	}
	if *month != 40 {
		t.Errorf("Expected month 40, got %d", *month)
	}
}
