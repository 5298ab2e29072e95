package integration

import (
	"sync"
	"testing"

	"github.com/marcelofdiniz/paysim/internal/adapter/http/dto"
	"github.com/marcelofdiniz/paysim/tests/testutil"
)

func TestConcurrentSimulations(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ts := testutil.NewTestServer(t)

	const workers = 20

	body := map[string]any{
		"principal":     "7500",
		"days":          180,
		"bonus_percent": "15",
	}

	results := make([]dto.SimulationResponse, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		i := i
		go func() {
			defer wg.Done()
			ts.PostJSON("/api/v1/simulations", body, nil, 201, &results[i])
		}()
	}
	wg.Wait()

	seen := make(map[string]bool, workers)
	for i, res := range results {
		if res.ID == "" {
			t.Fatalf("worker %d got no ID", i)
		}
		if seen[res.ID] {
			t.Fatalf("duplicate simulation ID %s", res.ID)
		}
		seen[res.ID] = true

		// The engine is deterministic: every run over the same input must
		// land on the same final value.
		if !res.Summary.FinalValue.Equal(results[0].Summary.FinalValue) {
			t.Errorf("worker %d final value %s differs from %s",
				i, res.Summary.FinalValue, results[0].Summary.FinalValue)
		}
	}

	// Every concurrent result stays independently retrievable.
	for id := range seen {
		ts.GetJSON("/api/v1/simulations/"+id, 200, nil)
	}
}
