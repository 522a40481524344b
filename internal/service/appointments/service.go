package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/SLN-BookingService/internal/service/appointments/models"
)

// Service сервис жизненного цикла записей: завершение, отмена с архивацией,
// чтение живых и архивных записей.
//
// Допустимые переходы:
//
//	confirmed → completed (статус меняется на месте, строка остаётся)
//	confirmed → canceled  (строка копируется в архив и удаляется из живой таблицы)
//
// Оба конечных состояния терминальны: из completed и canceled переходов нет.
type Service struct {
	appointmentRepo AppointmentRepository
	canceledRepo    CanceledRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	canceledRepo CanceledRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		canceledRepo:    canceledRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List получает живые записи с фильтрацией для админки
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments")

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appts, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appts))
	return models.FromDomainAppointmentList(appts), nil
}

// ListCanceled получает архивные записи с фильтрацией
func (s *Service) ListCanceled(ctx context.Context, req *models.ListAppointmentsRequest) (*models.CanceledAppointmentListResponse, error) {
	s.logger.Info("ListCanceled: fetching canceled appointments")

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListCanceled: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	archived, err := s.canceledRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListCanceled: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCanceled - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCanceled: successfully fetched %d canceled appointments", len(archived))
	return models.FromDomainCanceledAppointmentList(archived), nil
}

// Complete переводит запись из confirmed в completed.
// Завершение никогда не архивирует: строка остаётся в живой таблице для
// отчётов по выручке (они фильтруют по status = completed).
func (s *Service) Complete(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Complete: completing appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Complete: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Complete: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	if !appt.CanBeCompleted() {
		s.logger.Warn("Complete: appointment id=%d cannot be completed, status=%s", id, appt.Status)
		return nil, ErrAlreadyCompleted
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusCompleted); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Complete: failed to update status for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	appt.Status = domain.StatusCompleted

	s.logger.Info("Complete: successfully completed appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// Cancel отменяет запись: копирует строку в архив canceled_appointments и
// удаляет её из живой таблицы. Копирование и удаление выполняются в одной
// транзакции — после любого сбоя запись либо осталась confirmed, либо
// заархивирована и удалена; состояния "в обеих таблицах" не бывает.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) (*models.CanceledAppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	if req.CancelReason != nil && len(*req.CancelReason) > domain.MaxCancelReasonLength {
		s.logger.Warn("Cancel: cancel reason too long for appointment id=%d", id)
		return nil, fmt.Errorf("%w: cancel reason must not exceed %d characters", ErrInvalidInput, domain.MaxCancelReasonLength)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, appt.Status)
		return nil, ErrCannotCancel
	}

	archived := &domain.CanceledAppointment{
		OriginalAppointmentID: appt.ID,
		EmployeeID:            appt.EmployeeID,
		ServiceID:             appt.ServiceID,
		ClientName:            appt.ClientName,
		ClientEmail:           appt.ClientEmail,
		ClientPhone:           appt.ClientPhone,
		AppointmentDate:       appt.AppointmentDate,
		StartTime:             appt.StartTime,
		EndTime:               appt.EndTime,
		Status:                domain.StatusCanceled,
		FinalPrice:            appt.FinalPrice,
		OriginalPrice:         appt.OriginalPrice,
		CouponCode:            appt.CouponCode,
		Notes:                 appt.Notes,
		CancelReason:          req.CancelReason,
		CanceledAt:            s.timeProvider.Now(),
		CreatedAt:             appt.CreatedAt,
		UpdatedAt:             appt.UpdatedAt,
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := s.canceledRepo.Create(txCtx, archived)
		if err != nil {
			s.logger.Error("Cancel: failed to archive appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - failed to archive: %v", ErrInternal, err)
		}
		archived = created

		if err := s.appointmentRepo.Delete(txCtx, id); err != nil {
			s.logger.Error("Cancel: failed to delete appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - failed to delete live row: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d, archive id=%d", id, archived.ID)
	return models.FromDomainCanceledAppointment(archived), nil
}
