package domain

import "errors"

var (
	// Input errors
	ErrInvalidPrincipal = errors.New("principal must be positive")
	ErrInvalidDays      = errors.New("days must be at least 1")
	ErrInvalidRate      = errors.New("annual rate must be positive")
	ErrInvalidBonus     = errors.New("bonus cannot be negative")

	// Simulation errors
	ErrSimulationNotFound = errors.New("simulation not found")
)
