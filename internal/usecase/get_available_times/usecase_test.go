package get_available_times

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/SLN-BookingService/pkg/types"
)

type fakeScheduleRepo struct {
	schedule *domain.WorkSchedule
	err      error
}

func (f *fakeScheduleRepo) GetByEmployeeAndDay(_ context.Context, _ int64, _ int) (*domain.WorkSchedule, error) {
	return f.schedule, f.err
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) ListByEmployeeAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Appointment, error) {
	return f.appointments, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// monday — понедельник, day_of_week = 1
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func workSchedule(start, end string, available bool) *domain.WorkSchedule {
	return &domain.WorkSchedule{
		EmployeeID:  1,
		DayOfWeek:   int(monday.Weekday()),
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		IsAvailable: available,
	}
}

func TestExecute_ReturnsAllSlotsForFreeDay(t *testing.T) {
	uc := NewUseCase(
		&fakeScheduleRepo{schedule: workSchedule("09:00", "12:00", true)},
		&fakeAppointmentRepo{},
		15,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		EmployeeID:      1,
		Date:            monday,
		DurationMinutes: 30,
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 11)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].Start)
	assert.Equal(t, types.TimeString("12:00"), resp.Slots[10].End)
}

func TestExecute_ExcludesBookedSlots(t *testing.T) {
	booked := []*domain.Appointment{
		{
			StartTime: types.TimeString("10:00"),
			EndTime:   types.TimeString("10:30"),
			Status:    domain.StatusConfirmed,
		},
	}

	uc := NewUseCase(
		&fakeScheduleRepo{schedule: workSchedule("09:00", "12:00", true)},
		&fakeAppointmentRepo{appointments: booked},
		15,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		EmployeeID:      1,
		Date:            monday,
		DurationMinutes: 30,
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 8)
	for _, s := range resp.Slots {
		assert.NotEqual(t, types.TimeString("10:00"), s.Start)
		assert.NotEqual(t, types.TimeString("10:15"), s.Start)
		assert.NotEqual(t, types.TimeString("09:45"), s.Start)
	}
}

func TestExecute_NoScheduleReturnsEmptyList(t *testing.T) {
	uc := NewUseCase(
		&fakeScheduleRepo{err: scheduleRepo.ErrScheduleNotFound},
		&fakeAppointmentRepo{},
		15,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		EmployeeID:      1,
		Date:            monday,
		DurationMinutes: 30,
	})

	// Отсутствие расписания — не ошибка: пустой список, а не 404
	require.NoError(t, err)
	require.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DayOffReturnsEmptyList(t *testing.T) {
	uc := NewUseCase(
		&fakeScheduleRepo{schedule: workSchedule("09:00", "12:00", false)},
		&fakeAppointmentRepo{},
		15,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		EmployeeID:      1,
		Date:            monday,
		DurationMinutes: 30,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_RejectsInvalidDuration(t *testing.T) {
	uc := NewUseCase(
		&fakeScheduleRepo{schedule: workSchedule("09:00", "12:00", true)},
		&fakeAppointmentRepo{},
		15,
		nopLogger{},
	)

	for _, duration := range []int{0, -30, 481} {
		_, err := uc.Execute(context.Background(), &Request{
			EmployeeID:      1,
			Date:            monday,
			DurationMinutes: duration,
		})
		assert.ErrorIs(t, err, ErrInvalidDuration, "duration=%d", duration)
	}
}

func TestExecute_RejectsInvalidEmployeeID(t *testing.T) {
	uc := NewUseCase(
		&fakeScheduleRepo{schedule: workSchedule("09:00", "12:00", true)},
		&fakeAppointmentRepo{},
		15,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		EmployeeID:      0,
		Date:            monday,
		DurationMinutes: 30,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
