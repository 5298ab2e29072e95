package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// DailyRate converts an annual effective rate, in percent, to the daily rate
// that compounds back to it over a 365-day year:
//
//	daily = (1 + annual/100)^(1/365) - 1
//
// A simple annual/365 division would not compound to the stated annual rate.
// The fractional root is taken in float64 and converted once; every balance
// operation downstream stays in decimal.
func DailyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	annualFraction := annualRatePercent.Div(oneHundred)
	daily := math.Pow(1+annualFraction.InexactFloat64(), 1.0/DaysPerYear) - 1
	return decimal.NewFromFloat(daily)
}

// Tier1Multiplier returns the tier-1 share of the daily rate for a given
// bonus: 1.10 plus the bonus expressed in percentage points of multiplier.
// A 10% bonus yields 1.20, not 1.10 * 1.10.
func Tier1Multiplier(bonusPercent decimal.Decimal) decimal.Decimal {
	return Tier1BaseMultiplier.Add(bonusPercent.Div(oneHundred))
}

// Project runs the two-tier daily compounding projection and returns the full
// daily ledger, one record per day. Yields are computed against the
// start-of-day balance only; the credited balance earns from the next day on.
func Project(input SimulationInput) (ProjectionSeries, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	dailyRate := DailyRate(input.AnnualRatePercent)
	tier1Rate := Tier1Multiplier(input.BonusPercent)

	series := make(ProjectionSeries, 0, input.Days)
	balance := input.Principal

	for day := 1; day <= input.Days; day++ {
		start := balance

		tier1Base := decimal.Min(start, Tier1Limit)
		tier2Base := decimal.Max(decimal.Zero, start.Sub(Tier1Limit))

		tier1Yield := tier1Base.Mul(dailyRate).Mul(tier1Rate)
		tier2Yield := tier2Base.Mul(dailyRate).Mul(Tier2Multiplier)
		totalYield := tier1Yield.Add(tier2Yield)

		balance = start.Add(totalYield)

		series = append(series, DailyRecord{
			Day:          day,
			StartBalance: start,
			Tier1Yield:   tier1Yield,
			Tier2Yield:   tier2Yield,
			TotalYield:   totalYield,
			EndBalance:   balance,
		})
	}

	return series, nil
}

// ProjectSavings runs the simplified savings comparator: a flat 0.5% credited
// every 30 elapsed days. The credit is applied at the end of the boundary day,
// so the series already reflects it on day 30k (credit-then-record). Horizons
// under 30 days never earn and stay constant at the principal.
func ProjectSavings(principal decimal.Decimal, days int) (SavingsSeries, error) {
	if !principal.IsPositive() {
		return nil, ErrInvalidPrincipal
	}
	if days < 1 {
		return nil, ErrInvalidDays
	}

	factor := decimal.NewFromInt(1).Add(SavingsMonthlyRate)

	series := make(SavingsSeries, 0, days)
	balance := principal

	for day := 1; day <= days; day++ {
		if day%SavingsCreditIntervalDays == 0 {
			balance = balance.Mul(factor)
		}
		series = append(series, balance)
	}

	return series, nil
}
