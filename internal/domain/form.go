package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SimulationForm models the pending, not-yet-validated parameters of a
// simulation. Fields are pointers so an unset field is distinguishable from
// an explicit zero. Reset and Clear return new values; the form is never
// mutated in place.
type SimulationForm struct {
	Principal         *decimal.Decimal
	Days              *int
	AnnualRatePercent *decimal.Decimal
	BonusPercent      *decimal.Decimal
}

// Reset restores the annual rate to the product default, keeping every other
// field as entered.
func (f SimulationForm) Reset() SimulationForm {
	rate := DefaultAnnualRatePercent
	f.AnnualRatePercent = &rate
	return f
}

// Clear drops the principal, horizon and bonus, keeping the annual rate.
func (f SimulationForm) Clear() SimulationForm {
	f.Principal = nil
	f.Days = nil
	f.BonusPercent = nil
	return f
}

// ToInput resolves the form into a validated SimulationInput. An unset rate
// falls back to defaultRate, an unset bonus to zero; principal and days are
// required.
func (f SimulationForm) ToInput(defaultRate decimal.Decimal) (SimulationInput, error) {
	if f.Principal == nil {
		return SimulationInput{}, fmt.Errorf("%w: principal is required", ErrInvalidPrincipal)
	}
	if f.Days == nil {
		return SimulationInput{}, fmt.Errorf("%w: days is required", ErrInvalidDays)
	}

	input := SimulationInput{
		Principal:         *f.Principal,
		Days:              *f.Days,
		AnnualRatePercent: defaultRate,
		BonusPercent:      decimal.Zero,
	}
	if f.AnnualRatePercent != nil {
		input.AnnualRatePercent = *f.AnnualRatePercent
	}
	if f.BonusPercent != nil {
		input.BonusPercent = *f.BonusPercent
	}

	if err := input.Validate(); err != nil {
		return SimulationInput{}, err
	}
	return input, nil
}
