package scheduler

import "slices"

// Day identifies a day of the scheduling week
type Day string

const (
	Mon Day = "Mon"
	Tue Day = "Tue"
	Wed Day = "Wed"
	Thu Day = "Thu"
	Fri Day = "Fri"
	Sat Day = "Sat"
	Sun Day = "Sun"
)

// Days lists the week in calendar order. Carry-over and relocation move forward through it.
var Days = []Day{Mon, Tue, Wed, Thu, Fri, Sat, Sun}

// ShiftKind identifies one of the three daily shifts
type ShiftKind string

const (
	Morning   ShiftKind = "morning"
	Afternoon ShiftKind = "afternoon"
	Evening   ShiftKind = "evening"
)

// Shifts lists the shift kinds in iteration and display order
var Shifts = []ShiftKind{Morning, Afternoon, Evening}

// IsValid reports whether the shift kind is one of the three known shifts
func (s ShiftKind) IsValid() bool {
	return slices.Contains(Shifts, s)
}

// Title returns the display form of the shift kind (e.g. "Morning")
func (s ShiftKind) Title() string {
	if s == "" {
		return ""
	}
	return string(s[0]-'a'+'A') + string(s[1:])
}

// Index returns the position of the day in the week, or -1 if unknown
func (d Day) Index() int {
	return slices.Index(Days, d)
}

// Next returns the following day and false when d is the last day of the week
func (d Day) Next() (Day, bool) {
	i := d.Index()
	if i < 0 || i >= len(Days)-1 {
		return "", false
	}
	return Days[i+1], true
}

// Default configuration values
const (
	DefaultMinPerShift        = 2
	DefaultMaxPerShift        = 4
	DefaultMaxDaysPerEmployee = 5
	DefaultRandomSeed         = 42
)

// Config holds the staffing constraints for a scheduling run
type Config struct {
	// MinPerShift is the minimum headcount for every (day, shift)
	MinPerShift int

	// MaxPerShift caps the headcount of every (day, shift). Zero or negative means unbounded
	MaxPerShift int

	// MaxDaysPerEmployee caps how many days each employee works in the week
	MaxDaysPerEmployee int

	// RandomSeed drives the backfill shuffle and nothing else
	RandomSeed int64
}

// DefaultConfig returns the configuration used when the caller supplies none
func DefaultConfig() Config {
	return Config{
		MinPerShift:        DefaultMinPerShift,
		MaxPerShift:        DefaultMaxPerShift,
		MaxDaysPerEmployee: DefaultMaxDaysPerEmployee,
		RandomSeed:         DefaultRandomSeed,
	}
}

// Bounded reports whether a per-shift maximum applies
func (c Config) Bounded() bool {
	return c.MaxPerShift > 0
}

// RawShifts is the unvalidated, ordered list of shift tokens an employee gave for one day
type RawShifts []string

// RawPreferences maps employee name -> day -> raw shift tokens
type RawPreferences map[string]map[Day]RawShifts

// Preferences maps employee name -> day -> ranked shift kinds (rank 0 first).
// After normalization every employee has an entry for all seven days.
type Preferences map[string]map[Day][]ShiftKind

// Ranked returns the ranked shifts for an employee on a day (nil if none)
func (p Preferences) Ranked(employee string, day Day) []ShiftKind {
	return p[employee][day]
}

// Schedule maps day -> shift -> assigned employees.
// Each list is semantically a set; order records assignment order, which the trim pass uses.
type Schedule map[Day]map[ShiftKind][]string

// NewSchedule returns an empty schedule with every day and shift present
func NewSchedule() Schedule {
	sched := make(Schedule, len(Days))
	for _, day := range Days {
		sched[day] = make(map[ShiftKind][]string, len(Shifts))
		for _, shift := range Shifts {
			sched[day][shift] = []string{}
		}
	}
	return sched
}

// Count returns the headcount of a (day, shift)
func (s Schedule) Count(day Day, shift ShiftKind) int {
	return len(s[day][shift])
}

// ShiftOf returns the shift the employee works on the given day, if any
func (s Schedule) ShiftOf(day Day, employee string) (ShiftKind, bool) {
	for _, shift := range Shifts {
		if slices.Contains(s[day][shift], employee) {
			return shift, true
		}
	}
	return "", false
}

// DaysWorked counts how many days each employee appears in the schedule
func (s Schedule) DaysWorked() map[string]int {
	counts := make(map[string]int)
	for _, day := range Days {
		for _, shift := range Shifts {
			for _, emp := range s[day][shift] {
				counts[emp]++
			}
		}
	}
	return counts
}

// Result is the outcome of a scheduling run
type Result struct {
	// Schedule is the final assignment. It is not mutated after Run returns
	Schedule Schedule

	// Warnings lists unmet constraints in the order they were found (empty if none)
	Warnings []string

	// Employees is the normalized roster the schedule was built from
	Employees []string
}
