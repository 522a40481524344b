package domain

import (
	"time"

	"github.com/m04kA/SLN-BookingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	// StatusCanceled is terminal and exists only in the canceled_appointments
	// archive: cancelling moves the row out of the live table.
	StatusCanceled AppointmentStatus = "canceled"
)

// Appointment represents a client's reservation of an employee's time
type Appointment struct {
	ID         int64
	EmployeeID int64
	ServiceID  int64

	ClientName  string
	ClientEmail string
	ClientPhone string

	AppointmentDate time.Time // calendar date, time part is ignored
	StartTime       types.TimeString
	EndTime         types.TimeString

	Status AppointmentStatus

	FinalPrice    float64
	OriginalPrice float64
	CouponCode    *string
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeCompleted returns true if the appointment can transition to completed
func (a *Appointment) CanBeCompleted() bool {
	return a.Status == StatusConfirmed
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status != StatusCompleted
}

// IsTerminal returns true if no further transitions are allowed
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCanceled
}

// Overlaps reports whether the appointment's [start, end) window intersects
// the given half-open window on the same date. Touching boundaries
// (other.end == start or other.start == end) do not count as overlap.
func (a *Appointment) Overlaps(start, end types.TimeString) bool {
	return a.StartTime.IsBefore(end) && a.EndTime.IsAfter(start)
}

// CanceledAppointment is an append-only archive copy of a cancelled
// appointment. Created exactly once at cancellation time, never updated.
type CanceledAppointment struct {
	ID                    int64
	OriginalAppointmentID int64
	EmployeeID            int64
	ServiceID             int64

	ClientName  string
	ClientEmail string
	ClientPhone string

	AppointmentDate time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString

	Status AppointmentStatus // always StatusCanceled

	FinalPrice    float64
	OriginalPrice float64
	CouponCode    *string
	Notes         *string

	CancelReason *string
	CanceledAt   time.Time

	// Timestamps of the original live row, copied for the audit trail
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppointmentsFilter фильтр для выборки записей (живых или архивных)
type AppointmentsFilter struct {
	Search      *string            // ILIKE по имени, email и телефону клиента
	Date        *time.Time         // Конкретная дата (приоритетнее периода)
	EmployeeID  *int64             // Фильтр по мастеру
	StartDate   *time.Time         // Начало периода
	EndDate     *time.Time         // Конец периода
	Status      *AppointmentStatus // Фильтр по статусу (только живая таблица)
	ClientEmail *string            // Точный email клиента (личный кабинет)
}
