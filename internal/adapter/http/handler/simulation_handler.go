package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/marcelofdiniz/paysim/internal/adapter/http/dto"
	"github.com/marcelofdiniz/paysim/internal/domain"
	"github.com/marcelofdiniz/paysim/internal/usecase"
)

// SimulationService defines the behavior needed by SimulationHandler.
type SimulationService interface {
	Run(ctx context.Context, input usecase.RunSimulationInput) (*domain.Simulation, error)
	Get(ctx context.Context, id string) (*domain.Simulation, error)
	Compare(ctx context.Context, input usecase.CompareInput) (*usecase.ComparisonResult, error)
}

// SimulationHandler handles simulation-related HTTP requests.
type SimulationHandler struct {
	simulationUC SimulationService
	defaultRate  decimal.Decimal
}

// NewSimulationHandler creates a new SimulationHandler.
func NewSimulationHandler(simulationUC SimulationService, defaultRate decimal.Decimal) *SimulationHandler {
	return &SimulationHandler{
		simulationUC: simulationUC,
		defaultRate:  defaultRate,
	}
}

// Create runs a new simulation.
func (h *SimulationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RunSimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(h.defaultRate)
	if err != nil {
		writeError(w, mapDomainError(err), "invalid simulation input", err.Error())
		return
	}

	sim, err := h.simulationUC.Run(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to run simulation", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SimulationFromDomain(sim, req.IncludeLedger, req.IncludeSavings))
}

// Get retrieves a finished simulation by ID.
func (h *SimulationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing simulation ID", "")
		return
	}

	sim, err := h.simulationUC.Get(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get simulation", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SimulationFromDomain(sim, false, false))
}

// GetLedger retrieves the full daily ledger of a finished simulation.
func (h *SimulationHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing simulation ID", "")
		return
	}

	sim, err := h.simulationUC.Get(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get simulation", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LedgerFromDomain(sim))
}

// Compare runs one projection per bonus variation for a side-by-side view.
func (h *SimulationHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req dto.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(h.defaultRate)
	if err != nil {
		writeError(w, mapDomainError(err), "invalid comparison input", err.Error())
		return
	}

	result, err := h.simulationUC.Compare(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to compare scenarios", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ComparisonFromUseCase(result))
}
