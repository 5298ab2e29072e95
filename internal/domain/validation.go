package domain

import "fmt"

// Validate checks the engine preconditions. The projection itself assumes
// they hold; callers reject bad input here instead of getting nonsense
// balances back.
func (in SimulationInput) Validate() error {
	if !in.Principal.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidPrincipal, in.Principal)
	}
	if in.Days < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDays, in.Days)
	}
	if !in.AnnualRatePercent.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidRate, in.AnnualRatePercent)
	}
	if in.BonusPercent.IsNegative() {
		return fmt.Errorf("%w: got %s", ErrInvalidBonus, in.BonusPercent)
	}
	return nil
}
