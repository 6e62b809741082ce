package db

import (
	"github.com/jakechorley/shift-scheduler/pkg/core/scheduler"
)

// Run represents a stored scheduling run
type Run struct {
	ID                 string
	WeekStart          string
	CreatedAt          string
	Seed               int64
	MinPerShift        int
	MaxPerShift        int
	MaxDaysPerEmployee int
	EmployeeCount      int
}

// Assignment represents one employee working one shift in a run
type Assignment struct {
	RunID    string
	Day      string
	Shift    string
	Employee string
}

// Warning represents a warning emitted by a run, in emission order
type Warning struct {
	RunID   string
	Seq     int
	Message string
}

// AssignmentsFromSchedule flattens a schedule into assignment rows in day, shift, assignment order
func AssignmentsFromSchedule(runID string, sched scheduler.Schedule) []Assignment {
	var assignments []Assignment
	for _, day := range scheduler.Days {
		for _, shift := range scheduler.Shifts {
			for _, emp := range sched[day][shift] {
				assignments = append(assignments, Assignment{
					RunID:    runID,
					Day:      string(day),
					Shift:    string(shift),
					Employee: emp,
				})
			}
		}
	}
	return assignments
}

// WarningsFromResult numbers a run's warnings from zero
func WarningsFromResult(runID string, warnings []string) []Warning {
	rows := make([]Warning, len(warnings))
	for i, msg := range warnings {
		rows[i] = Warning{RunID: runID, Seq: i, Message: msg}
	}
	return rows
}

// ScheduleFromAssignments rebuilds a schedule from stored rows. Rows naming an
// unknown day or shift are skipped.
func ScheduleFromAssignments(assignments []Assignment) scheduler.Schedule {
	sched := scheduler.NewSchedule()
	for _, a := range assignments {
		day := scheduler.Day(a.Day)
		shift := scheduler.ShiftKind(a.Shift)
		if day.Index() < 0 || !shift.IsValid() {
			continue
		}
		sched[day][shift] = append(sched[day][shift], a.Employee)
	}
	return sched
}
