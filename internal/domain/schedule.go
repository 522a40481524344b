package domain

import (
	"time"

	"github.com/m04kA/SLN-BookingService/pkg/types"
)

// WorkSchedule is the weekly working-hours template for an employee.
// One row per (employee, day of week); read-only for this service.
type WorkSchedule struct {
	ID          int64
	EmployeeID  int64
	DayOfWeek   int // 0 = Sunday ... 6 = Saturday
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
}

// DayOfWeekFor returns the schedule day number for a calendar date.
// Matches time.Weekday numbering exactly: Sunday = 0.
func DayOfWeekFor(date time.Time) int {
	return int(date.Weekday())
}
