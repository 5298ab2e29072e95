package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/marcelofdiniz/paysim/internal/domain"
	"github.com/marcelofdiniz/paysim/internal/usecase"
)

// SummaryResponse represents a series summary in API responses.
type SummaryResponse struct {
	FinalValue   decimal.Decimal `json:"final_value"`
	TotalYield   decimal.Decimal `json:"total_yield"`
	PercentYield decimal.Decimal `json:"percent_yield"`
}

// SummaryFromDomain converts a domain summary to a response.
func SummaryFromDomain(s domain.Summary) SummaryResponse {
	return SummaryResponse{
		FinalValue:   s.FinalValue,
		TotalYield:   s.TotalYield,
		PercentYield: s.PercentYield,
	}
}

// SavingsSummaryResponse represents the savings comparator summary. The
// percent yield is omitted when the horizon is too short for the savings
// model to earn at all.
type SavingsSummaryResponse struct {
	FinalValue   decimal.Decimal  `json:"final_value"`
	TotalYield   decimal.Decimal  `json:"total_yield"`
	PercentYield *decimal.Decimal `json:"percent_yield,omitempty"`
	Applicable   bool             `json:"applicable"`
}

// SavingsSummaryFromDomain converts a domain savings summary to a response.
func SavingsSummaryFromDomain(s domain.Summary, applicable bool) SavingsSummaryResponse {
	resp := SavingsSummaryResponse{
		FinalValue: s.FinalValue,
		TotalYield: s.TotalYield,
		Applicable: applicable,
	}
	if applicable {
		percent := s.PercentYield
		resp.PercentYield = &percent
	}
	return resp
}

// DailyRecordResponse represents one daily ledger row in API responses.
type DailyRecordResponse struct {
	Day          int             `json:"day"`
	StartBalance decimal.Decimal `json:"start_balance"`
	Tier1Yield   decimal.Decimal `json:"tier1_yield"`
	Tier2Yield   decimal.Decimal `json:"tier2_yield"`
	TotalYield   decimal.Decimal `json:"total_yield"`
	EndBalance   decimal.Decimal `json:"end_balance"`
}

// DailyRecordsFromDomain converts a projection series to responses.
func DailyRecordsFromDomain(series domain.ProjectionSeries) []DailyRecordResponse {
	result := make([]DailyRecordResponse, len(series))
	for i, rec := range series {
		result[i] = DailyRecordResponse{
			Day:          rec.Day,
			StartBalance: rec.StartBalance,
			Tier1Yield:   rec.Tier1Yield,
			Tier2Yield:   rec.Tier2Yield,
			TotalYield:   rec.TotalYield,
			EndBalance:   rec.EndBalance,
		}
	}
	return result
}

// SimulationResponse represents a finished simulation in API responses.
type SimulationResponse struct {
	ID                string                 `json:"id"`
	Principal         decimal.Decimal        `json:"principal"`
	Days              int                    `json:"days"`
	AnnualRatePercent decimal.Decimal        `json:"annual_rate_percent"`
	BonusPercent      decimal.Decimal        `json:"bonus_percent"`
	Summary           SummaryResponse        `json:"summary"`
	Baseline          *SummaryResponse       `json:"baseline,omitempty"`
	Savings           SavingsSummaryResponse `json:"savings"`
	Ledger            []DailyRecordResponse  `json:"ledger,omitempty"`
	SavingsBalances   []decimal.Decimal      `json:"savings_balances,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
}

// SimulationFromDomain converts a domain simulation to a response. The full
// daily ledger and savings series are included only on request.
func SimulationFromDomain(s *domain.Simulation, includeLedger, includeSavings bool) *SimulationResponse {
	resp := &SimulationResponse{
		ID:                s.ID,
		Principal:         s.Input.Principal,
		Days:              s.Input.Days,
		AnnualRatePercent: s.Input.AnnualRatePercent,
		BonusPercent:      s.Input.BonusPercent,
		Summary:           SummaryFromDomain(s.ProjectionSummary()),
		CreatedAt:         s.CreatedAt,
	}

	if baseline, ok := s.BaselineSummary(); ok {
		b := SummaryFromDomain(baseline)
		resp.Baseline = &b
	}

	savings, applicable := s.SavingsSummary()
	resp.Savings = SavingsSummaryFromDomain(savings, applicable)

	if includeLedger {
		resp.Ledger = DailyRecordsFromDomain(s.Projection)
	}
	if includeSavings {
		resp.SavingsBalances = append([]decimal.Decimal(nil), s.Savings...)
	}

	return resp
}

// LedgerResponse represents the full daily ledger of a simulation.
type LedgerResponse struct {
	ID     string                `json:"id"`
	Days   int                   `json:"days"`
	Ledger []DailyRecordResponse `json:"ledger"`
}

// LedgerFromDomain converts a simulation's ledger to a response.
func LedgerFromDomain(s *domain.Simulation) *LedgerResponse {
	return &LedgerResponse{
		ID:     s.ID,
		Days:   s.Input.Days,
		Ledger: DailyRecordsFromDomain(s.Projection),
	}
}

// ScenarioResponse represents one bonus variation in a comparison.
type ScenarioResponse struct {
	BonusPercent decimal.Decimal `json:"bonus_percent"`
	Tier1Percent decimal.Decimal `json:"tier1_percent"`
	Summary      SummaryResponse `json:"summary"`
}

// ComparisonResponse represents a bonus-scenario comparison.
type ComparisonResponse struct {
	Principal         decimal.Decimal        `json:"principal"`
	Days              int                    `json:"days"`
	AnnualRatePercent decimal.Decimal        `json:"annual_rate_percent"`
	Scenarios         []ScenarioResponse     `json:"scenarios"`
	Savings           SavingsSummaryResponse `json:"savings"`
}

// ComparisonFromUseCase converts a comparison result to a response.
func ComparisonFromUseCase(r *usecase.ComparisonResult) *ComparisonResponse {
	scenarios := make([]ScenarioResponse, len(r.Scenarios))
	for i, sc := range r.Scenarios {
		scenarios[i] = ScenarioResponse{
			BonusPercent: sc.BonusPercent,
			Tier1Percent: sc.Tier1Percent,
			Summary:      SummaryFromDomain(sc.Summary),
		}
	}

	return &ComparisonResponse{
		Principal:         r.Principal,
		Days:              r.Days,
		AnnualRatePercent: r.AnnualRatePercent,
		Scenarios:         scenarios,
		Savings:           SavingsSummaryFromDomain(r.Savings, r.SavingsApplicable),
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
