package get_available_times

import (
	"context"
	"time"

	"github.com/m04kA/SLN-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория рабочих расписаний
type ScheduleRepository interface {
	// GetByEmployeeAndDay получает расписание мастера на день недели (0=воскресенье)
	GetByEmployeeAndDay(ctx context.Context, employeeID int64, dayOfWeek int) (*domain.WorkSchedule, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListByEmployeeAndDate получает занимающие время записи мастера на дату
	ListByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
