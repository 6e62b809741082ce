package scheduler

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when the roster is empty after cleaning
	ErrInvalidInput = errors.New("invalid input")

	// ErrInfeasibleConfig is returned when total minimum demand exceeds employee supply
	ErrInfeasibleConfig = errors.New("infeasible config")
)

// InfeasibleError describes a gross capacity shortfall.
// It matches ErrInfeasibleConfig with errors.Is.
type InfeasibleError struct {
	Required           int
	Supply             int
	SuggestedEmployees int
}

func (e *InfeasibleError) Error() string {
	if e.SuggestedEmployees <= 0 {
		return fmt.Sprintf("%s: need at least %d total shift assignments, but employee supply caps at %d. Consider increasing max days per employee.",
			ErrInfeasibleConfig, e.Required, e.Supply)
	}
	return fmt.Sprintf("%s: need at least %d total shift assignments, but employee supply caps at %d. Consider adding ~%d more employees or increasing max days per employee.",
		ErrInfeasibleConfig, e.Required, e.Supply, e.SuggestedEmployees)
}

func (e *InfeasibleError) Unwrap() error {
	return ErrInfeasibleConfig
}
