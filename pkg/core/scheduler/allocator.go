package scheduler

import (
	"fmt"
	"slices"
)

// state is the mutable tracking state of one allocation run.
// It is owned by a single Allocate call and never shared.
type state struct {
	cfg       Config
	employees []string
	prefs     Preferences
	shuffler  Shuffler

	// schedule being filled
	schedule Schedule

	// assignedToday tracks who already works on each day (one shift per day)
	assignedToday map[Day]map[string]bool

	// daysWorked never exceeds cfg.MaxDaysPerEmployee
	daysWorked map[string]int

	// carryOver holds employees deferred from the previous day, processed first
	carryOver map[Day][]string

	warnings []string
}

func newState(employees []string, prefs Preferences, cfg Config, shuffler Shuffler) *state {
	st := &state{
		cfg:           cfg,
		employees:     employees,
		prefs:         prefs,
		shuffler:      shuffler,
		schedule:      NewSchedule(),
		assignedToday: make(map[Day]map[string]bool, len(Days)),
		daysWorked:    make(map[string]int, len(employees)),
		carryOver:     make(map[Day][]string, len(Days)),
		warnings:      []string{},
	}
	for _, day := range Days {
		st.assignedToday[day] = make(map[string]bool)
		st.carryOver[day] = []string{}
	}
	for _, emp := range employees {
		st.daysWorked[emp] = 0
	}
	return st
}

// Run normalizes the input, checks feasibility and allocates the week.
// Hard failures (ErrInvalidInput, ErrInfeasibleConfig) abort before any assignment;
// unmet constraints are reported as warnings on the result.
func Run(employees []string, raw RawPreferences, cfg Config) (*Result, error) {
	roster, err := NormalizeEmployees(employees)
	if err != nil {
		return nil, err
	}

	if err := CheckFeasibility(len(roster), cfg); err != nil {
		return nil, err
	}

	prefs := NormalizePreferences(raw)

	return Allocate(roster, prefs, cfg, NewSeededShuffler(cfg.RandomSeed)), nil
}

// Allocate runs the preference, fallback, backfill and trim passes over a
// normalized roster. The shuffler is consulted only by the backfill pass.
func Allocate(employees []string, prefs Preferences, cfg Config, shuffler Shuffler) *Result {
	st := newState(employees, prefs, cfg, shuffler)

	// Each day depends on the carry-over left by the previous one
	for _, day := range Days {
		st.allocateDay(day)
	}

	st.backfill()

	if cfg.Bounded() {
		st.trim()
	}

	return &Result{
		Schedule:  st.schedule,
		Warnings:  st.warnings,
		Employees: employees,
	}
}

// allocateDay is the per-day transition: build the order list, run the
// preference pass then the fallback pass, and leave carry-over for the next day
func (st *state) allocateDay(day Day) {
	order := st.orderFor(day)
	st.preferencePass(day, order)
	st.fallbackPass(day, order)
}

// orderFor returns carry-over employees first, then the rest of the roster in order
func (st *state) orderFor(day Day) []string {
	carried := st.carryOver[day]
	order := make([]string, 0, len(st.employees)+len(carried))
	order = append(order, carried...)
	for _, emp := range st.employees {
		if !slices.Contains(carried, emp) {
			order = append(order, emp)
		}
	}
	return order
}

// preferencePass runs three strict rounds: everyone's rank 0 choice is tried
// before anyone's rank 1 choice, and so on
func (st *state) preferencePass(day Day, order []string) {
	for rank := range len(Shifts) {
		for _, emp := range order {
			if !st.available(day, emp) {
				continue
			}

			ranked := st.prefs.Ranked(emp, day)
			if rank >= len(ranked) {
				continue
			}

			target := ranked[rank]
			if st.hasCapacity(day, target) {
				st.assign(day, target, emp)
			}
		}
	}
}

// fallbackPass places employees who stated a preference that could not be honored.
// Their preferred shifts are tried first, then the remaining kinds. If every shift
// is full the employee is deferred to the next day; on the last day they stay unassigned.
func (st *state) fallbackPass(day Day, order []string) {
	next, hasNext := day.Next()

	for _, emp := range order {
		if !st.available(day, emp) {
			continue
		}

		ranked := st.prefs.Ranked(emp, day)
		if len(ranked) == 0 {
			continue
		}

		if st.placeFirstAvailable(day, emp, fallbackOrder(ranked)) {
			continue
		}

		if hasNext {
			st.carryOver[next] = append(st.carryOver[next], emp)
		}
	}
}

// fallbackOrder returns the ranked shifts followed by the kinds not mentioned
func fallbackOrder(ranked []ShiftKind) []ShiftKind {
	candidates := slices.Clone(ranked)
	for _, shift := range Shifts {
		if !slices.Contains(ranked, shift) {
			candidates = append(candidates, shift)
		}
	}
	return candidates
}

// placeFirstAvailable assigns emp to the first candidate shift with capacity
func (st *state) placeFirstAvailable(day Day, emp string, candidates []ShiftKind) bool {
	for _, shift := range candidates {
		if st.hasCapacity(day, shift) {
			st.assign(day, shift, emp)
			return true
		}
	}
	return false
}

// available reports whether emp can still take a shift on day
func (st *state) available(day Day, emp string) bool {
	if st.assignedToday[day][emp] {
		return false
	}
	return st.daysWorked[emp] < st.cfg.MaxDaysPerEmployee
}

// hasCapacity reports whether the shift is below the maximum (always true when unbounded)
func (st *state) hasCapacity(day Day, shift ShiftKind) bool {
	if !st.cfg.Bounded() {
		return true
	}
	return st.schedule.Count(day, shift) < st.cfg.MaxPerShift
}

func (st *state) assign(day Day, shift ShiftKind, emp string) {
	st.schedule[day][shift] = append(st.schedule[day][shift], emp)
	st.assignedToday[day][emp] = true
	st.daysWorked[emp]++
}

// popLast removes the most recently added employee from a shift and releases their day
func (st *state) popLast(day Day, shift ShiftKind) string {
	assigned := st.schedule[day][shift]
	emp := assigned[len(assigned)-1]
	st.schedule[day][shift] = assigned[:len(assigned)-1]
	delete(st.assignedToday[day], emp)
	st.daysWorked[emp]--
	return emp
}

func (st *state) warnf(format string, args ...any) {
	st.warnings = append(st.warnings, fmt.Sprintf(format, args...))
}
