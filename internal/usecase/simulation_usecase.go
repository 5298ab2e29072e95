package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marcelofdiniz/paysim/internal/domain"
)

// SimulationUseCase runs projections and keeps finished results retrievable
// by ID for the TTL window. The engine itself is pure; the cache is only a
// retrieval convenience.
type SimulationUseCase struct {
	cache     Cache
	idGen     IDGenerator
	metrics   MetricsRecorder
	resultTTL time.Duration
}

// NewSimulationUseCase creates a new SimulationUseCase.
func NewSimulationUseCase(cache Cache, idGen IDGenerator, metrics MetricsRecorder, resultTTL time.Duration) *SimulationUseCase {
	if resultTTL <= 0 {
		resultTTL = DefaultResultTTL
	}
	return &SimulationUseCase{
		cache:     cache,
		idGen:     idGen,
		metrics:   metrics,
		resultTTL: resultTTL,
	}
}

// RunSimulationInput represents input for running a simulation.
type RunSimulationInput struct {
	Principal         decimal.Decimal
	Days              int
	AnnualRatePercent decimal.Decimal
	BonusPercent      decimal.Decimal
}

// Run executes the tiered projection and the savings comparator over the same
// principal and horizon. When a bonus is set, a second independent zero-bonus
// projection is run as the comparison baseline.
func (uc *SimulationUseCase) Run(ctx context.Context, input RunSimulationInput) (*domain.Simulation, error) {
	start := time.Now()

	in := domain.SimulationInput{
		Principal:         input.Principal,
		Days:              input.Days,
		AnnualRatePercent: input.AnnualRatePercent,
		BonusPercent:      input.BonusPercent,
	}

	projection, err := domain.Project(in)
	if err != nil {
		return nil, err
	}

	savings, err := domain.ProjectSavings(in.Principal, in.Days)
	if err != nil {
		return nil, err
	}

	sim := &domain.Simulation{
		ID:         uc.idGen.Generate(),
		Input:      in,
		Projection: projection,
		Savings:    savings,
		CreatedAt:  time.Now().UTC(),
	}

	if in.BonusPercent.IsPositive() {
		baselineInput := in
		baselineInput.BonusPercent = decimal.Zero
		sim.Baseline, err = domain.Project(baselineInput)
		if err != nil {
			return nil, err
		}
	}

	// Retrieval by ID is best-effort: a cache write failure must not fail
	// the run the caller already has in hand.
	if data, err := json.Marshal(sim); err == nil {
		_ = uc.cache.Set(ctx, simulationKey(sim.ID), data, uc.resultTTL)
	}

	uc.metrics.SimulationRun(in.Days, time.Since(start))

	return sim, nil
}

// Get retrieves a finished simulation by ID. Expired or unknown IDs return
// domain.ErrSimulationNotFound.
func (uc *SimulationUseCase) Get(ctx context.Context, id string) (*domain.Simulation, error) {
	if id == "" {
		return nil, domain.ErrSimulationNotFound
	}

	data, err := uc.cache.Get(ctx, simulationKey(id))
	if err != nil {
		if errors.Is(err, ErrCacheMiss) {
			uc.metrics.CacheMiss()
			return nil, domain.ErrSimulationNotFound
		}
		return nil, err
	}
	uc.metrics.CacheHit()

	var sim domain.Simulation
	if err := json.Unmarshal(data, &sim); err != nil {
		return nil, err
	}

	return &sim, nil
}

// CompareInput represents input for a bonus-scenario comparison.
type CompareInput struct {
	Principal         decimal.Decimal
	Days              int
	AnnualRatePercent decimal.Decimal
	BonusPercents     []decimal.Decimal
}

// Scenario is one bonus variation's outcome.
type Scenario struct {
	BonusPercent decimal.Decimal
	Tier1Percent decimal.Decimal
	Summary      domain.Summary
}

// ComparisonResult holds the side-by-side outcome of all scenarios plus the
// savings comparator.
type ComparisonResult struct {
	Principal         decimal.Decimal
	Days              int
	AnnualRatePercent decimal.Decimal
	Scenarios         []Scenario
	Savings           domain.Summary
	SavingsApplicable bool
}

// Compare runs one independent projection per bonus variation over the same
// principal, horizon and rate. The zero-bonus product baseline is always
// included first; an empty variation list compares the baseline alone.
func (uc *SimulationUseCase) Compare(ctx context.Context, input CompareInput) (*ComparisonResult, error) {
	bonuses := []decimal.Decimal{decimal.Zero}
	for _, b := range input.BonusPercents {
		if !b.IsZero() {
			bonuses = append(bonuses, b)
		}
	}

	result := &ComparisonResult{
		Principal:         input.Principal,
		Days:              input.Days,
		AnnualRatePercent: input.AnnualRatePercent,
		Scenarios:         make([]Scenario, 0, len(bonuses)),
	}

	for _, bonus := range bonuses {
		series, err := domain.Project(domain.SimulationInput{
			Principal:         input.Principal,
			Days:              input.Days,
			AnnualRatePercent: input.AnnualRatePercent,
			BonusPercent:      bonus,
		})
		if err != nil {
			return nil, err
		}

		result.Scenarios = append(result.Scenarios, Scenario{
			BonusPercent: bonus,
			Tier1Percent: domain.Tier1Multiplier(bonus).Mul(decimal.NewFromInt(100)),
			Summary:      domain.Summarize(series.FinalValue(), input.Principal),
		})
	}

	savings, err := domain.ProjectSavings(input.Principal, input.Days)
	if err != nil {
		return nil, err
	}
	result.Savings = domain.Summarize(savings.FinalValue(), input.Principal)
	result.SavingsApplicable = input.Days >= domain.SavingsCreditIntervalDays

	uc.metrics.ComparisonRun(len(result.Scenarios))

	return result, nil
}

func simulationKey(id string) string {
	return "simulation:" + id
}
