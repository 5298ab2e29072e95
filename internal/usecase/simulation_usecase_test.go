package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marcelofdiniz/paysim/internal/domain"
	"github.com/marcelofdiniz/paysim/internal/usecase"
	"github.com/marcelofdiniz/paysim/internal/usecase/mocks"
)

func newTestUseCase() (*usecase.SimulationUseCase, *mocks.MockCache, *mocks.MockMetricsRecorder) {
	cache := mocks.NewMockCache()
	recorder := mocks.NewMockMetricsRecorder()
	uc := usecase.NewSimulationUseCase(cache, mocks.NewMockIDGenerator(), recorder, time.Minute)
	return uc, cache, recorder
}

func runInput() usecase.RunSimulationInput {
	return usecase.RunSimulationInput{
		Principal:         decimal.NewFromInt(5000),
		Days:              60,
		AnnualRatePercent: decimal.RequireFromString("11.15"),
		BonusPercent:      decimal.Zero,
	}
}

func TestRunProducesFullSimulation(t *testing.T) {
	uc, _, recorder := newTestUseCase()

	sim, err := uc.Run(context.Background(), runInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sim.ID == "" {
		t.Error("expected an assigned ID")
	}
	if len(sim.Projection) != 60 {
		t.Errorf("projection length = %d, want 60", len(sim.Projection))
	}
	if len(sim.Savings) != 60 {
		t.Errorf("savings length = %d, want 60", len(sim.Savings))
	}
	if len(sim.Baseline) != 0 {
		t.Errorf("expected no baseline without a bonus, got %d records", len(sim.Baseline))
	}
	if sim.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if recorder.Simulations != 1 {
		t.Errorf("recorded simulations = %d, want 1", recorder.Simulations)
	}
}

func TestRunWithBonusBuildsBaseline(t *testing.T) {
	uc, _, _ := newTestUseCase()

	input := runInput()
	input.BonusPercent = decimal.NewFromInt(10)

	sim, err := uc.Run(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sim.Baseline) != input.Days {
		t.Fatalf("baseline length = %d, want %d", len(sim.Baseline), input.Days)
	}
	if !sim.Baseline.FinalValue().LessThan(sim.Projection.FinalValue()) {
		t.Errorf("baseline final %s should trail boosted final %s",
			sim.Baseline.FinalValue(), sim.Projection.FinalValue())
	}
}

func TestRunInvalidInput(t *testing.T) {
	uc, _, recorder := newTestUseCase()

	input := runInput()
	input.Principal = decimal.Zero

	_, err := uc.Run(context.Background(), input)
	if !errors.Is(err, domain.ErrInvalidPrincipal) {
		t.Fatalf("expected ErrInvalidPrincipal, got %v", err)
	}
	if recorder.Simulations != 0 {
		t.Errorf("failed run must not be recorded, got %d", recorder.Simulations)
	}
}

func TestRunSurvivesCacheFailure(t *testing.T) {
	uc, cache, _ := newTestUseCase()
	cache.SetFunc = func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
		return errors.New("redis down")
	}

	sim, err := uc.Run(context.Background(), runInput())
	if err != nil {
		t.Fatalf("run should not fail on cache errors: %v", err)
	}
	if sim == nil || len(sim.Projection) != 60 {
		t.Fatal("expected a complete simulation despite the cache failure")
	}
}

func TestGetRoundTrip(t *testing.T) {
	uc, _, recorder := newTestUseCase()

	created, err := uc.Run(context.Background(), runInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fetched, err := uc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fetched.ID != created.ID {
		t.Errorf("fetched ID %s, want %s", fetched.ID, created.ID)
	}
	if len(fetched.Projection) != len(created.Projection) {
		t.Fatalf("fetched projection length = %d, want %d", len(fetched.Projection), len(created.Projection))
	}
	if !fetched.Projection.FinalValue().Equal(created.Projection.FinalValue()) {
		t.Errorf("fetched final value %s, want %s",
			fetched.Projection.FinalValue(), created.Projection.FinalValue())
	}
	if recorder.Hits != 1 {
		t.Errorf("recorded cache hits = %d, want 1", recorder.Hits)
	}
}

func TestGetUnknownID(t *testing.T) {
	uc, _, recorder := newTestUseCase()

	_, err := uc.Get(context.Background(), "01UNKNOWN")
	if !errors.Is(err, domain.ErrSimulationNotFound) {
		t.Fatalf("expected ErrSimulationNotFound, got %v", err)
	}
	if recorder.Misses != 1 {
		t.Errorf("recorded cache misses = %d, want 1", recorder.Misses)
	}

	if _, err := uc.Get(context.Background(), ""); !errors.Is(err, domain.ErrSimulationNotFound) {
		t.Fatalf("expected ErrSimulationNotFound for empty ID, got %v", err)
	}
}

func TestGetPropagatesCacheErrors(t *testing.T) {
	uc, cache, _ := newTestUseCase()
	cacheErr := errors.New("connection refused")
	cache.GetFunc = func(ctx context.Context, key string) ([]byte, error) {
		return nil, cacheErr
	}

	_, err := uc.Get(context.Background(), "01SOMEID")
	if !errors.Is(err, cacheErr) {
		t.Fatalf("expected cache error to propagate, got %v", err)
	}
}

func TestCompareScenarios(t *testing.T) {
	uc, _, recorder := newTestUseCase()

	result, err := uc.Compare(context.Background(), usecase.CompareInput{
		Principal:         decimal.NewFromInt(10000),
		Days:              365,
		AnnualRatePercent: decimal.RequireFromString("11.15"),
		BonusPercents:     []decimal.Decimal{decimal.NewFromInt(10), decimal.NewFromInt(20)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Scenarios) != 3 {
		t.Fatalf("expected 3 scenarios (baseline + 2 variations), got %d", len(result.Scenarios))
	}

	baseline := result.Scenarios[0]
	if !baseline.BonusPercent.IsZero() {
		t.Errorf("first scenario bonus = %s, want the zero-bonus baseline", baseline.BonusPercent)
	}
	if !baseline.Tier1Percent.Equal(decimal.NewFromInt(110)) {
		t.Errorf("baseline tier1 percent = %s, want 110", baseline.Tier1Percent)
	}

	// Higher bonus, higher final value.
	for i := 1; i < len(result.Scenarios); i++ {
		prev, curr := result.Scenarios[i-1], result.Scenarios[i]
		if !curr.Summary.FinalValue.GreaterThan(prev.Summary.FinalValue) {
			t.Errorf("scenario %d final %s should exceed scenario %d final %s",
				i, curr.Summary.FinalValue, i-1, prev.Summary.FinalValue)
		}
	}

	if !result.SavingsApplicable {
		t.Error("expected savings to be applicable over 365 days")
	}
	if recorder.Comparisons != 1 {
		t.Errorf("recorded comparisons = %d, want 1", recorder.Comparisons)
	}
}

func TestCompareDefaultsToBaselineOnly(t *testing.T) {
	uc, _, _ := newTestUseCase()

	result, err := uc.Compare(context.Background(), usecase.CompareInput{
		Principal:         decimal.NewFromInt(1000),
		Days:              15,
		AnnualRatePercent: decimal.RequireFromString("11.15"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Scenarios) != 1 {
		t.Fatalf("expected only the baseline scenario, got %d", len(result.Scenarios))
	}
	if result.SavingsApplicable {
		t.Error("savings must not be applicable under 30 days")
	}
	if !result.Savings.TotalYield.IsZero() {
		t.Errorf("savings yield under 30 days = %s, want zero", result.Savings.TotalYield)
	}
}

func TestCompareInvalidInput(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Compare(context.Background(), usecase.CompareInput{
		Principal:         decimal.NewFromInt(1000),
		Days:              0,
		AnnualRatePercent: decimal.RequireFromString("11.15"),
	})
	if !errors.Is(err, domain.ErrInvalidDays) {
		t.Fatalf("expected ErrInvalidDays, got %v", err)
	}
}
