package dto

import (
	"github.com/shopspring/decimal"

	"github.com/marcelofdiniz/paysim/internal/domain"
	"github.com/marcelofdiniz/paysim/internal/usecase"
)

// RunSimulationRequest represents a request to run a simulation. Principal
// and days are required; an omitted rate falls back to the service default,
// an omitted bonus to zero.
type RunSimulationRequest struct {
	Principal         *decimal.Decimal `json:"principal"`
	Days              *int             `json:"days"`
	AnnualRatePercent *decimal.Decimal `json:"annual_rate_percent,omitempty"`
	BonusPercent      *decimal.Decimal `json:"bonus_percent,omitempty"`
	IncludeLedger     bool             `json:"include_ledger,omitempty"`
	IncludeSavings    bool             `json:"include_savings,omitempty"`
}

// ToUseCaseInput resolves the request against the default rate and converts
// to use case input.
func (r *RunSimulationRequest) ToUseCaseInput(defaultRate decimal.Decimal) (usecase.RunSimulationInput, error) {
	form := domain.SimulationForm{
		Principal:         r.Principal,
		Days:              r.Days,
		AnnualRatePercent: r.AnnualRatePercent,
		BonusPercent:      r.BonusPercent,
	}

	input, err := form.ToInput(defaultRate)
	if err != nil {
		return usecase.RunSimulationInput{}, err
	}

	return usecase.RunSimulationInput{
		Principal:         input.Principal,
		Days:              input.Days,
		AnnualRatePercent: input.AnnualRatePercent,
		BonusPercent:      input.BonusPercent,
	}, nil
}

// CompareRequest represents a request to compare bonus scenarios.
type CompareRequest struct {
	Principal         *decimal.Decimal  `json:"principal"`
	Days              *int              `json:"days"`
	AnnualRatePercent *decimal.Decimal  `json:"annual_rate_percent,omitempty"`
	BonusPercents     []decimal.Decimal `json:"bonus_percents,omitempty"`
}

// ToUseCaseInput resolves the request against the default rate and converts
// to use case input.
func (r *CompareRequest) ToUseCaseInput(defaultRate decimal.Decimal) (usecase.CompareInput, error) {
	form := domain.SimulationForm{
		Principal:         r.Principal,
		Days:              r.Days,
		AnnualRatePercent: r.AnnualRatePercent,
	}

	input, err := form.ToInput(defaultRate)
	if err != nil {
		return usecase.CompareInput{}, err
	}

	return usecase.CompareInput{
		Principal:         input.Principal,
		Days:              input.Days,
		AnnualRatePercent: input.AnnualRatePercent,
		BonusPercents:     r.BonusPercents,
	}, nil
}
