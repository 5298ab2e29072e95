package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product constants of the two-tier wallet.
const (
	// DaysPerYear is the number of compounding periods backed out of the
	// annual reference rate (calendar days, not business days).
	DaysPerYear = 365

	// SavingsCreditIntervalDays is how often the savings comparator credits
	// its monthly yield.
	SavingsCreditIntervalDays = 30
)

var (
	// Tier1Limit is the balance bracket boundary: the portion of the balance
	// up to this limit earns the tier-1 rate, the excess earns tier-2.
	Tier1Limit = decimal.NewFromInt(5000)

	// Tier1BaseMultiplier is the tier-1 share of the daily reference rate
	// before any bonus (110% of CDI).
	Tier1BaseMultiplier = decimal.RequireFromString("1.10")

	// Tier2Multiplier is the fixed tier-2 share of the daily reference rate
	// (80% of CDI). The bonus never applies to it.
	Tier2Multiplier = decimal.RequireFromString("0.80")

	// SavingsMonthlyRate is the simplified savings yield credited every
	// SavingsCreditIntervalDays elapsed days (0.5% a.m., no reference-rate
	// component).
	SavingsMonthlyRate = decimal.RequireFromString("0.005")

	// DefaultAnnualRatePercent is the reference CDI applied when a request
	// does not carry its own rate.
	DefaultAnnualRatePercent = decimal.RequireFromString("11.15")
)

// SimulationInput holds the validated parameters of one projection run.
type SimulationInput struct {
	Principal         decimal.Decimal
	Days              int
	AnnualRatePercent decimal.Decimal
	BonusPercent      decimal.Decimal
}

// DailyRecord is one row of the tiered projection ledger. Yields are computed
// against the start-of-day balance; the end balance takes effect the next day.
type DailyRecord struct {
	Day          int
	StartBalance decimal.Decimal
	Tier1Yield   decimal.Decimal
	Tier2Yield   decimal.Decimal
	TotalYield   decimal.Decimal
	EndBalance   decimal.Decimal
}

// ProjectionSeries is the day-ordered tiered ledger, one record per day.
type ProjectionSeries []DailyRecord

// FinalValue returns the balance after the last simulated day.
func (s ProjectionSeries) FinalValue() decimal.Decimal {
	if len(s) == 0 {
		return decimal.Zero
	}
	return s[len(s)-1].EndBalance
}

// SavingsSeries holds the savings comparator balance after each day,
// index i being the balance at the end of day i+1.
type SavingsSeries []decimal.Decimal

// FinalValue returns the balance after the last simulated day.
func (s SavingsSeries) FinalValue() decimal.Decimal {
	if len(s) == 0 {
		return decimal.Zero
	}
	return s[len(s)-1]
}

// Summary reduces a series to its headline numbers.
type Summary struct {
	FinalValue   decimal.Decimal
	TotalYield   decimal.Decimal
	PercentYield decimal.Decimal
}

// Summarize computes the summary for a series that ended at finalValue.
// The caller guarantees principal > 0 (input invariant).
func Summarize(finalValue, principal decimal.Decimal) Summary {
	totalYield := finalValue.Sub(principal)
	return Summary{
		FinalValue:   finalValue,
		TotalYield:   totalYield,
		PercentYield: totalYield.Div(principal).Mul(oneHundred),
	}
}

// Simulation is one finished run: the tiered projection, the zero-bonus
// baseline when a bonus was applied, and the savings comparator, all over the
// same principal and horizon.
type Simulation struct {
	ID         string
	Input      SimulationInput
	Projection ProjectionSeries
	Baseline   ProjectionSeries
	Savings    SavingsSeries
	CreatedAt  time.Time
}

// ProjectionSummary summarizes the tiered projection.
func (s *Simulation) ProjectionSummary() Summary {
	return Summarize(s.Projection.FinalValue(), s.Input.Principal)
}

// BaselineSummary summarizes the zero-bonus baseline. The second return is
// false when the run had no bonus and therefore no separate baseline.
func (s *Simulation) BaselineSummary() (Summary, bool) {
	if len(s.Baseline) == 0 {
		return Summary{}, false
	}
	return Summarize(s.Baseline.FinalValue(), s.Input.Principal), true
}

// SavingsSummary summarizes the savings comparator. The second return is
// false when the horizon is shorter than one credit interval, in which case
// the yield is not applicable rather than zero.
func (s *Simulation) SavingsSummary() (Summary, bool) {
	summary := Summarize(s.Savings.FinalValue(), s.Input.Principal)
	return summary, s.Input.Days >= SavingsCreditIntervalDays
}
