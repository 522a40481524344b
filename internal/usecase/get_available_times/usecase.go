package get_available_times

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/schedule"
)

// UseCase use case для получения свободных окон для записи
type UseCase struct {
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	stepMinutes     int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// stepMinutes — шаг сетки слотов; при нуле используется дефолтные 15 минут.
func NewUseCase(
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	stepMinutes int,
	logger Logger,
) *UseCase {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultSlotStepMinutes
	}
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		stepMinutes:     stepMinutes,
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных окон.
//
// Отсутствие расписания на день недели или is_available=false — это не
// ошибка: клиент получает пустой список.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimes: employee=%d, date=%s, duration=%d",
		req.EmployeeID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTimes: validation failed: %v", err)
		return nil, err
	}

	emptyResponse := &Response{
		EmployeeID:      req.EmployeeID,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Slots:           []domain.TimeSlot{},
	}

	// 2. Получаем расписание мастера на день недели
	dayOfWeek := domain.DayOfWeekFor(req.Date)
	workSchedule, err := uc.scheduleRepo.GetByEmployeeAndDay(ctx, req.EmployeeID, dayOfWeek)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Info("GetAvailableTimes: no schedule for employee=%d on day=%d", req.EmployeeID, dayOfWeek)
			return emptyResponse, nil
		}
		uc.logger.Error("GetAvailableTimes: failed to get schedule for employee=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get work schedule: %v", ErrInternal, err)
	}

	// 3. Мастер не работает в этот день недели
	if !workSchedule.IsAvailable {
		uc.logger.Info("GetAvailableTimes: employee=%d is not available on day=%d", req.EmployeeID, dayOfWeek)
		return emptyResponse, nil
	}

	// 4. Получаем существующие записи мастера на эту дату
	booked, err := uc.appointmentRepo.ListByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to get appointments for employee=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Генерируем свободные окна
	slots := generateSlots(
		workSchedule.StartTime,
		workSchedule.EndTime,
		req.DurationMinutes,
		uc.stepMinutes,
		booked,
	)

	uc.logger.Info("GetAvailableTimes: generated %d slots for employee=%d, date=%s",
		len(slots), req.EmployeeID, req.Date.Format(domain.DateFormat))

	return &Response{
		EmployeeID:      req.EmployeeID,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Slots:           slots,
	}, nil
}
