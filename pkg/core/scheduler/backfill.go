package scheduler

// backfill tops every (day, shift) up to MinPerShift with employees still free that day.
// Candidates are shuffled with the run's seeded shuffler, so which names fill a gap
// depends only on RandomSeed. Shortfalls that cannot be covered become warnings.
func (st *state) backfill() {
	for _, day := range Days {
		for _, shift := range Shifts {
			need := st.cfg.MinPerShift - st.schedule.Count(day, shift)
			if need <= 0 {
				continue
			}

			candidates := st.backfillCandidates(day)
			st.shuffler.Shuffle(candidates)

			added := 0
			for _, emp := range candidates {
				if added >= need || !st.hasCapacity(day, shift) {
					break
				}
				st.assign(day, shift, emp)
				added++
			}

			if count := st.schedule.Count(day, shift); count < st.cfg.MinPerShift {
				st.warnf("Warning: Could not meet min staffing for %s %s (%d/%d). Consider more staff or relaxing caps.",
					day, shift, count, st.cfg.MinPerShift)
			}
		}
	}
}

// backfillCandidates lists roster employees not yet working on day and below their day cap
func (st *state) backfillCandidates(day Day) []string {
	candidates := make([]string, 0, len(st.employees))
	for _, emp := range st.employees {
		if st.available(day, emp) {
			candidates = append(candidates, emp)
		}
	}
	return candidates
}
