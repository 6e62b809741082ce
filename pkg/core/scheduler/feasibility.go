package scheduler

// CheckFeasibility rejects configurations whose total minimum staffing demand
// exceeds what the roster can supply. Passing does not guarantee the allocator
// meets every minimum; it only rules out structurally impossible requests.
func CheckFeasibility(employeeCount int, cfg Config) error {
	required := len(Days) * len(Shifts) * cfg.MinPerShift
	supply := employeeCount * cfg.MaxDaysPerEmployee

	if supply >= required {
		return nil
	}

	infeasible := &InfeasibleError{
		Required: required,
		Supply:   supply,
	}

	// Suggested extra headcount: ceil((required - supply) / maxDays)
	if cfg.MaxDaysPerEmployee > 0 {
		shortfall := required - supply
		infeasible.SuggestedEmployees = (shortfall + cfg.MaxDaysPerEmployee - 1) / cfg.MaxDaysPerEmployee
	}

	return infeasible
}
