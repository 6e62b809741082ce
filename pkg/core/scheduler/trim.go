package scheduler

// trim enforces MaxPerShift. The last-added employee of an over-full shift is removed
// and relocated to another shift the same day, else to any shift on the following day.
//
// Relocation only targets shifts with room and ignores preferences. Staffing minimums
// are not rechecked afterwards. Employees that cannot be relocated stay unassigned
// with a warning.
func (st *state) trim() {
	for _, day := range Days {
		for _, shift := range Shifts {
			for st.schedule.Count(day, shift) > st.cfg.MaxPerShift {
				emp := st.popLast(day, shift)
				if st.relocate(day, shift, emp) {
					continue
				}
				st.warnf("Note: Could not relocate %s from %s %s; leaving unassigned.", emp, day, shift)
			}
		}
	}
}

// relocate tries the other shifts of the same day, then the next day
func (st *state) relocate(day Day, from ShiftKind, emp string) bool {
	for _, shift := range Shifts {
		if shift == from {
			continue
		}
		if st.hasCapacity(day, shift) && !st.assignedToday[day][emp] {
			st.assign(day, shift, emp)
			return true
		}
	}

	next, ok := day.Next()
	if !ok || st.assignedToday[next][emp] {
		return false
	}
	return st.placeFirstAvailable(next, emp, Shifts)
}
