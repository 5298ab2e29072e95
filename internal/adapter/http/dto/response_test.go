package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marcelofdiniz/paysim/internal/domain"
)

func buildSimulation(t *testing.T, days int, bonus string) *domain.Simulation {
	t.Helper()

	input := domain.SimulationInput{
		Principal:         decimal.NewFromInt(8000),
		Days:              days,
		AnnualRatePercent: domain.DefaultAnnualRatePercent,
		BonusPercent:      decimal.RequireFromString(bonus),
	}

	projection, err := domain.Project(input)
	if err != nil {
		t.Fatalf("project failed: %v", err)
	}
	savings, err := domain.ProjectSavings(input.Principal, input.Days)
	if err != nil {
		t.Fatalf("project savings failed: %v", err)
	}

	sim := &domain.Simulation{
		ID:         "01HTESTRESPONSE0000000000A",
		Input:      input,
		Projection: projection,
		Savings:    savings,
		CreatedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	if input.BonusPercent.IsPositive() {
		baselineInput := input
		baselineInput.BonusPercent = decimal.Zero
		sim.Baseline, err = domain.Project(baselineInput)
		if err != nil {
			t.Fatalf("baseline project failed: %v", err)
		}
	}

	return sim
}

func TestSimulationFromDomain(t *testing.T) {
	sim := buildSimulation(t, 60, "10")

	resp := SimulationFromDomain(sim, false, false)

	if resp.ID != sim.ID {
		t.Errorf("ID = %s, want %s", resp.ID, sim.ID)
	}
	if resp.Baseline == nil {
		t.Fatal("expected baseline summary for a bonus simulation")
	}
	if !resp.Summary.FinalValue.GreaterThan(resp.Baseline.FinalValue) {
		t.Error("bonus summary should beat the baseline")
	}
	if resp.Ledger != nil {
		t.Error("ledger must be nil when not requested")
	}
	if resp.SavingsBalances != nil {
		t.Error("savings balances must be nil when not requested")
	}
	if !resp.Savings.Applicable {
		t.Error("savings should be applicable over 60 days")
	}
}

func TestSimulationFromDomainNoBonus(t *testing.T) {
	sim := buildSimulation(t, 20, "0")

	resp := SimulationFromDomain(sim, true, true)

	if resp.Baseline != nil {
		t.Error("no baseline expected for a zero-bonus simulation")
	}
	if len(resp.Ledger) != 20 {
		t.Errorf("ledger rows = %d, want 20", len(resp.Ledger))
	}
	if len(resp.SavingsBalances) != 20 {
		t.Errorf("savings balances = %d, want 20", len(resp.SavingsBalances))
	}
	if resp.Savings.Applicable {
		t.Error("savings must not be applicable under 30 days")
	}
	if resp.Savings.PercentYield != nil {
		t.Error("percent yield must be omitted when savings is not applicable")
	}
}

func TestSimulationResponseJSONOmitsEmptySections(t *testing.T) {
	sim := buildSimulation(t, 20, "0")

	data, err := json.Marshal(SimulationFromDomain(sim, false, false))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	body := string(data)
	for _, absent := range []string{`"ledger"`, `"savings_balances"`, `"baseline"`, `"percent_yield":null`} {
		if strings.Contains(body, absent) {
			t.Errorf("response should omit %s: %s", absent, body)
		}
	}
	if !strings.Contains(body, `"applicable":false`) {
		t.Errorf("savings applicability flag missing: %s", body)
	}
}

func TestLedgerFromDomain(t *testing.T) {
	sim := buildSimulation(t, 5, "0")

	resp := LedgerFromDomain(sim)

	if resp.Days != 5 || len(resp.Ledger) != 5 {
		t.Fatalf("ledger days=%d rows=%d, want 5/5", resp.Days, len(resp.Ledger))
	}
	if resp.Ledger[0].Day != 1 {
		t.Errorf("first row day = %d, want 1", resp.Ledger[0].Day)
	}
	last := resp.Ledger[4]
	if !last.EndBalance.Equal(last.StartBalance.Add(last.TotalYield)) {
		t.Error("row end balance must equal start plus total yield")
	}
}
