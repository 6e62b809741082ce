package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFeasibility_Boundary(t *testing.T) {
	cfg := DefaultConfig() // 7 days x 3 shifts x 2 = 42 required, 5 days each

	// 8 employees supply 40 < 42
	err := CheckFeasibility(8, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInfeasibleConfig)

	var infeasible *InfeasibleError
	require.True(t, errors.As(err, &infeasible))
	assert.Equal(t, 42, infeasible.Required)
	assert.Equal(t, 40, infeasible.Supply)
	assert.Equal(t, 1, infeasible.SuggestedEmployees)
	assert.Contains(t, err.Error(), "adding ~1 more employees")

	// 9 employees supply 45 >= 42
	assert.NoError(t, CheckFeasibility(9, cfg))
}

func TestCheckFeasibility_SuggestedCountRoundsUp(t *testing.T) {
	cfg := DefaultConfig()

	// 2 employees supply 10, shortfall 32 -> ceil(32/5) = 7
	err := CheckFeasibility(2, cfg)

	var infeasible *InfeasibleError
	require.True(t, errors.As(err, &infeasible))
	assert.Equal(t, 7, infeasible.SuggestedEmployees)
}

func TestCheckFeasibility_ZeroMinimumAlwaysFeasible(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinPerShift = 0

	assert.NoError(t, CheckFeasibility(1, cfg))
}

func TestCheckFeasibility_NoWorkingDays(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDaysPerEmployee = 0

	err := CheckFeasibility(20, cfg)
	require.ErrorIs(t, err, ErrInfeasibleConfig)
	assert.Contains(t, err.Error(), "increasing max days per employee")
}
