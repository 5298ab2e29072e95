package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(i int) *int {
	return &i
}

func TestFormToInputDefaults(t *testing.T) {
	form := SimulationForm{
		Principal: decimalPtr("5000"),
		Days:      intPtr(365),
	}

	input, err := form.ToInput(DefaultAnnualRatePercent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !input.AnnualRatePercent.Equal(DefaultAnnualRatePercent) {
		t.Errorf("rate = %s, want default %s", input.AnnualRatePercent, DefaultAnnualRatePercent)
	}
	if !input.BonusPercent.IsZero() {
		t.Errorf("bonus = %s, want zero", input.BonusPercent)
	}
}

func TestFormToInputExplicitValues(t *testing.T) {
	form := SimulationForm{
		Principal:         decimalPtr("10000"),
		Days:              intPtr(30),
		AnnualRatePercent: decimalPtr("14.90"),
		BonusPercent:      decimalPtr("10"),
	}

	input, err := form.ToInput(DefaultAnnualRatePercent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !input.AnnualRatePercent.Equal(decimal.RequireFromString("14.90")) {
		t.Errorf("rate = %s, want 14.90", input.AnnualRatePercent)
	}
	if !input.BonusPercent.Equal(decimal.NewFromInt(10)) {
		t.Errorf("bonus = %s, want 10", input.BonusPercent)
	}
}

func TestFormToInputMissingFields(t *testing.T) {
	tests := []struct {
		name        string
		form        SimulationForm
		expectError error
	}{
		{
			name:        "missing principal",
			form:        SimulationForm{Days: intPtr(30)},
			expectError: ErrInvalidPrincipal,
		},
		{
			name:        "missing days",
			form:        SimulationForm{Principal: decimalPtr("1000")},
			expectError: ErrInvalidDays,
		},
		{
			name: "invalid explicit rate",
			form: SimulationForm{
				Principal:         decimalPtr("1000"),
				Days:              intPtr(30),
				AnnualRatePercent: decimalPtr("0"),
			},
			expectError: ErrInvalidRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.form.ToInput(DefaultAnnualRatePercent)
			if !errors.Is(err, tt.expectError) {
				t.Errorf("expected error %v, got %v", tt.expectError, err)
			}
		})
	}
}

func TestFormResetRestoresDefaultRate(t *testing.T) {
	form := SimulationForm{
		Principal:         decimalPtr("1000"),
		AnnualRatePercent: decimalPtr("99"),
	}

	reset := form.Reset()

	if !reset.AnnualRatePercent.Equal(DefaultAnnualRatePercent) {
		t.Errorf("rate after reset = %s, want %s", reset.AnnualRatePercent, DefaultAnnualRatePercent)
	}
	if reset.Principal == nil || !reset.Principal.Equal(decimal.NewFromInt(1000)) {
		t.Error("reset should keep the principal as entered")
	}
	// Original form is untouched.
	if !form.AnnualRatePercent.Equal(decimal.NewFromInt(99)) {
		t.Error("Reset must not mutate the receiver")
	}
}

func TestFormClearKeepsRate(t *testing.T) {
	form := SimulationForm{
		Principal:         decimalPtr("1000"),
		Days:              intPtr(60),
		AnnualRatePercent: decimalPtr("14.90"),
		BonusPercent:      decimalPtr("5"),
	}

	cleared := form.Clear()

	if cleared.Principal != nil || cleared.Days != nil || cleared.BonusPercent != nil {
		t.Error("clear should drop principal, days and bonus")
	}
	if cleared.AnnualRatePercent == nil || !cleared.AnnualRatePercent.Equal(decimal.RequireFromString("14.90")) {
		t.Error("clear should keep the annual rate")
	}
}
