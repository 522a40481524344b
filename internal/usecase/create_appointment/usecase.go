package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/schedule"
	couponClient "github.com/m04kA/SLN-BookingService/internal/integrations/couponservice"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	couponClient    CouponServiceClient
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	couponClient CouponServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		couponClient:    couponClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
//
// Проверка доступности окна и вставка выполняются в одной сериализуемой
// транзакции с блокировкой записей мастера на дату (FOR UPDATE): два
// конкурентных запроса на пересекающиеся окна не могут оба пройти проверку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: employee=%d, service=%d, date=%s, window=%s-%s",
		req.EmployeeID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем купон, если он указан. Цены не пересчитываем: клиент
	// присылает final_price уже со скидкой, ядро только отклоняет
	// невалидные коды. Недоступность сервиса купонов бронирование не
	// блокирует (graceful degradation).
	if req.CouponCode != nil && *req.CouponCode != "" {
		validation, err := uc.couponClient.ValidateWithGracefulDegradation(ctx, *req.CouponCode, req.ServiceID)
		switch {
		case errors.Is(err, couponClient.ErrServiceDegraded):
			uc.logger.Warn("CreateAppointment: coupon service degraded, proceeding with client prices")
		case err != nil:
			uc.logger.Error("CreateAppointment: coupon validation failed: %v", err)
			return nil, fmt.Errorf("%w: coupon validation: %v", ErrInternal, err)
		case !validation.Valid:
			uc.logger.Warn("CreateAppointment: coupon %s rejected: %s", *req.CouponCode, validation.Message)
			return nil, fmt.Errorf("%w: %s", ErrInvalidCoupon, validation.Message)
		}
	}

	var result *domain.Appointment

	// 3. Проверка расписания, доступности окна и вставка — в одной
	// сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Расписание мастера на день недели
		dayOfWeek := domain.DayOfWeekFor(req.Date)
		workSchedule, err := uc.scheduleRepo.GetByEmployeeAndDay(txCtx, req.EmployeeID, dayOfWeek)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("CreateAppointment: no schedule for employee=%d on day=%d", req.EmployeeID, dayOfWeek)
				return ErrScheduleUnavailable
			}
			uc.logger.Error("CreateAppointment: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get work schedule: %v", ErrInternal, err)
		}

		if !workSchedule.IsAvailable {
			uc.logger.Warn("CreateAppointment: employee=%d is not available on day=%d", req.EmployeeID, dayOfWeek)
			return ErrScheduleUnavailable
		}

		// 3.2. Окно должно целиком помещаться в рабочий день
		if err := validateWindowInSchedule(req, workSchedule); err != nil {
			uc.logger.Warn("CreateAppointment: window validation failed: %v", err)
			return err
		}

		// 3.3. Записи мастера на дату с блокировкой (FOR UPDATE)
		booked, err := uc.appointmentRepo.ListByEmployeeAndDate(txCtx, req.EmployeeID, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 3.4. Проверяем пересечение с существующими записями
		// (полуоткрытые интервалы, касание границ допустимо)
		for _, appt := range booked {
			if appt.Overlaps(req.StartTime, req.EndTime) {
				uc.logger.Warn("CreateAppointment: window %s-%s overlaps appointment id=%d (%s-%s)",
					req.StartTime, req.EndTime, appt.ID, appt.StartTime, appt.EndTime)
				return ErrSlotNotAvailable
			}
		}

		// 3.5. Создаем запись
		appointment := &domain.Appointment{
			EmployeeID:      req.EmployeeID,
			ServiceID:       req.ServiceID,
			ClientName:      req.ClientName,
			ClientEmail:     req.ClientEmail,
			ClientPhone:     req.ClientPhone,
			AppointmentDate: req.Date,
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			Status:          domain.StatusConfirmed,
			FinalPrice:      req.FinalPrice,
			OriginalPrice:   req.OriginalPrice,
			CouponCode:      req.CouponCode,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		EmployeeID:      result.EmployeeID,
		ServiceID:       result.ServiceID,
		ClientName:      result.ClientName,
		ClientEmail:     result.ClientEmail,
		ClientPhone:     result.ClientPhone,
		AppointmentDate: result.AppointmentDate,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		Status:          string(result.Status),
		FinalPrice:      result.FinalPrice,
		OriginalPrice:   result.OriginalPrice,
		CouponCode:      result.CouponCode,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
