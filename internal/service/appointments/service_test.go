package appointments

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/SLN-BookingService/internal/service/appointments/models"
	"github.com/m04kA/SLN-BookingService/pkg/ptr"
	"github.com/m04kA/SLN-BookingService/pkg/types"
)

type fakeAppointmentRepo struct {
	byID          map[int64]*domain.Appointment
	updatedStatus map[int64]domain.AppointmentStatus
	deleted       []int64
	listResult    []*domain.Appointment
}

func newFakeAppointmentRepo(appts ...*domain.Appointment) *fakeAppointmentRepo {
	repo := &fakeAppointmentRepo{
		byID:          make(map[int64]*domain.Appointment),
		updatedStatus: make(map[int64]domain.AppointmentStatus),
	}
	for _, a := range appts {
		repo.byID[a.ID] = a
	}
	return repo
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeAppointmentRepo) ListWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.listResult, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	appt, ok := f.byID[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	appt.Status = status
	f.updatedStatus[id] = status
	return nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCanceledRepo struct {
	created   []*domain.CanceledAppointment
	createErr error
	nextID    int64
}

func (f *fakeCanceledRepo) Create(_ context.Context, archived *domain.CanceledAppointment) (*domain.CanceledAppointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	copied := *archived
	copied.ID = f.nextID
	f.created = append(f.created, &copied)
	return &copied, nil
}

func (f *fakeCanceledRepo) ListWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.CanceledAppointment, error) {
	return nil, nil
}

// fakeTxManager выполняет fn без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func confirmedAppointment(id int64) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		EmployeeID:      1,
		ServiceID:       2,
		ClientName:      "Анна Иванова",
		ClientEmail:     "anna@example.com",
		ClientPhone:     "+7 900 000-00-00",
		AppointmentDate: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		EndTime:         types.TimeString("10:30"),
		Status:          domain.StatusConfirmed,
		FinalPrice:      1500,
		OriginalPrice:   1500,
	}
}

func newTestService(apptRepo *fakeAppointmentRepo, canceledRepo *fakeCanceledRepo) *Service {
	return NewService(apptRepo, canceledRepo, fakeTxManager{}, nopLogger{})
}

func TestComplete_ConfirmedAppointment(t *testing.T) {
	apptRepo := newFakeAppointmentRepo(confirmedAppointment(1))
	svc := newTestService(apptRepo, &fakeCanceledRepo{nextID: 100})

	resp, err := svc.Complete(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	assert.Equal(t, domain.StatusCompleted, apptRepo.updatedStatus[1])
}

func TestComplete_AlreadyCompleted(t *testing.T) {
	appt := confirmedAppointment(1)
	appt.Status = domain.StatusCompleted
	apptRepo := newFakeAppointmentRepo(appt)
	svc := newTestService(apptRepo, &fakeCanceledRepo{nextID: 100})

	_, err := svc.Complete(context.Background(), 1)

	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	assert.Empty(t, apptRepo.updatedStatus)
}

func TestComplete_NotFound(t *testing.T) {
	svc := newTestService(newFakeAppointmentRepo(), &fakeCanceledRepo{nextID: 100})

	_, err := svc.Complete(context.Background(), 99)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_ArchivesAndDeletesLiveRow(t *testing.T) {
	apptRepo := newFakeAppointmentRepo(confirmedAppointment(1))
	canceledRepo := &fakeCanceledRepo{nextID: 100}
	svc := newTestService(apptRepo, canceledRepo)

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		CancelReason: ptr.Ptr("клиент попросил перенести"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, int64(1), resp.OriginalAppointmentID)
	assert.Equal(t, string(domain.StatusCanceled), resp.Status)

	// Ровно одна строка в архиве, живая строка удалена
	require.Len(t, canceledRepo.created, 1)
	assert.Equal(t, []int64{1}, apptRepo.deleted)

	archived := canceledRepo.created[0]
	assert.Equal(t, "клиент попросил перенести", *archived.CancelReason)
	assert.False(t, archived.CanceledAt.IsZero())

	// Повторная отмена — уже not found
	_, err = svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_CompletedAppointment(t *testing.T) {
	appt := confirmedAppointment(1)
	appt.Status = domain.StatusCompleted
	apptRepo := newFakeAppointmentRepo(appt)
	canceledRepo := &fakeCanceledRepo{nextID: 100}
	svc := newTestService(apptRepo, canceledRepo)

	_, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{})

	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Empty(t, canceledRepo.created)
	assert.Empty(t, apptRepo.deleted)
}

func TestCancel_ArchiveFailureKeepsLiveRow(t *testing.T) {
	apptRepo := newFakeAppointmentRepo(confirmedAppointment(1))
	canceledRepo := &fakeCanceledRepo{createErr: errors.New("insert failed")}
	svc := newTestService(apptRepo, canceledRepo)

	_, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{})

	// Сбой архивации откатывает транзакцию: живая строка на месте
	require.Error(t, err)
	assert.Empty(t, apptRepo.deleted)

	appt, getErr := apptRepo.GetByID(context.Background(), 1)
	require.NoError(t, getErr)
	assert.Equal(t, domain.StatusConfirmed, appt.Status)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	svc := newTestService(newFakeAppointmentRepo(confirmedAppointment(1)), &fakeCanceledRepo{nextID: 100})

	reason := strings.Repeat("п", domain.MaxCancelReasonLength+1)
	_, err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		CancelReason: ptr.Ptr(reason),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Тело запроса на отмену приходит со snake_case ключом
func TestCancelAppointmentRequest_WireFormat(t *testing.T) {
	var req models.CancelAppointmentRequest
	require.NoError(t, json.Unmarshal([]byte(`{"cancel_reason":"клиент заболел"}`), &req))
	require.NotNil(t, req.CancelReason)
	assert.Equal(t, "клиент заболел", *req.CancelReason)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(newFakeAppointmentRepo(), &fakeCanceledRepo{})

	_, err := svc.GetByID(context.Background(), 5)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
