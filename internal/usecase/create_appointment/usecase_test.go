package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/schedule"
	couponClient "github.com/m04kA/SLN-BookingService/internal/integrations/couponservice"
	"github.com/m04kA/SLN-BookingService/pkg/ptr"
	"github.com/m04kA/SLN-BookingService/pkg/types"
)

type fakeAppointmentRepo struct {
	existing []*domain.Appointment
	created  *domain.Appointment
	nextID   int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	created := *appt
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeAppointmentRepo) ListByEmployeeAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Appointment, error) {
	return f.existing, nil
}

type fakeScheduleRepo struct {
	schedule *domain.WorkSchedule
	err      error
}

func (f *fakeScheduleRepo) GetByEmployeeAndDay(_ context.Context, _ int64, _ int) (*domain.WorkSchedule, error) {
	return f.schedule, f.err
}

type fakeCouponClient struct {
	validation *couponClient.Validation
	err        error
	calls      int
}

func (f *fakeCouponClient) ValidateWithGracefulDegradation(_ context.Context, _ string, _ int64) (*couponClient.Validation, error) {
	f.calls++
	return f.validation, f.err
}

// fakeTxManager выполняет fn без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// monday — понедельник, day_of_week = 1
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		EmployeeID:    1,
		ServiceID:     2,
		ClientName:    "Анна Иванова",
		ClientEmail:   "anna@example.com",
		ClientPhone:   "+7 900 000-00-00",
		Date:          monday,
		StartTime:     types.TimeString("10:00"),
		EndTime:       types.TimeString("10:30"),
		FinalPrice:    1500,
		OriginalPrice: 1500,
	}
}

func newTestUseCase(apptRepo *fakeAppointmentRepo, schedRepo *fakeScheduleRepo, coupons *fakeCouponClient) *UseCase {
	return NewUseCase(apptRepo, schedRepo, coupons, fakeTxManager{}, nopLogger{})
}

func defaultSchedule() *domain.WorkSchedule {
	return &domain.WorkSchedule{
		EmployeeID:  1,
		DayOfWeek:   int(monday.Weekday()),
		StartTime:   types.TimeString("09:00"),
		EndTime:     types.TimeString("18:00"),
		IsAvailable: true,
	}
}

func TestExecute_CreatesConfirmedAppointment(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{nextID: 42}
	uc := newTestUseCase(apptRepo, &fakeScheduleRepo{schedule: defaultSchedule()}, &fakeCouponClient{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	require.NotNil(t, apptRepo.created)
	assert.Equal(t, domain.StatusConfirmed, apptRepo.created.Status)
}

func TestExecute_RejectsOverlappingWindow(t *testing.T) {
	existing := []*domain.Appointment{
		{
			ID:        7,
			StartTime: types.TimeString("10:15"),
			EndTime:   types.TimeString("10:45"),
			Status:    domain.StatusConfirmed,
		},
	}
	apptRepo := &fakeAppointmentRepo{existing: existing, nextID: 42}
	uc := newTestUseCase(apptRepo, &fakeScheduleRepo{schedule: defaultSchedule()}, &fakeCouponClient{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, apptRepo.created)
}

func TestExecute_AllowsTouchingWindow(t *testing.T) {
	existing := []*domain.Appointment{
		{
			ID:        7,
			StartTime: types.TimeString("10:30"),
			EndTime:   types.TimeString("11:00"),
			Status:    domain.StatusConfirmed,
		},
	}
	apptRepo := &fakeAppointmentRepo{existing: existing, nextID: 42}
	uc := newTestUseCase(apptRepo, &fakeScheduleRepo{schedule: defaultSchedule()}, &fakeCouponClient{})

	// Окно 10:00-10:30 заканчивается ровно там, где начинается запись
	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, apptRepo.created)
}

func TestExecute_RejectsWindowOutsideWorkingHours(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{schedule: defaultSchedule()}, &fakeCouponClient{})

	req := validRequest()
	req.StartTime = types.TimeString("17:45")
	req.EndTime = types.TimeString("18:15")

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_RejectsDayWithoutSchedule(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{err: scheduleRepo.ErrScheduleNotFound}, &fakeCouponClient{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrScheduleUnavailable)
}

func TestExecute_RejectsDayOff(t *testing.T) {
	schedule := defaultSchedule()
	schedule.IsAvailable = false
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{schedule: schedule}, &fakeCouponClient{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrScheduleUnavailable)
}

func TestExecute_RejectsInvalidCoupon(t *testing.T) {
	coupons := &fakeCouponClient{
		validation: &couponClient.Validation{Valid: false, Message: "купон истёк"},
	}
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{schedule: defaultSchedule()}, coupons)

	req := validRequest()
	req.CouponCode = ptr.Ptr("SALE10")

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidCoupon)
	assert.Equal(t, 1, coupons.calls)
}

func TestExecute_ProceedsWhenCouponServiceDegraded(t *testing.T) {
	coupons := &fakeCouponClient{err: couponClient.ErrServiceDegraded}
	apptRepo := &fakeAppointmentRepo{nextID: 42}
	uc := newTestUseCase(apptRepo, &fakeScheduleRepo{schedule: defaultSchedule()}, coupons)

	req := validRequest()
	req.CouponCode = ptr.Ptr("SALE10")

	// Недоступность сервиса купонов не блокирует бронирование
	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestExecute_SkipsCouponCheckWithoutCode(t *testing.T) {
	coupons := &fakeCouponClient{}
	uc := newTestUseCase(&fakeAppointmentRepo{nextID: 1}, &fakeScheduleRepo{schedule: defaultSchedule()}, coupons)

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, 0, coupons.calls)
}

func TestValidateRequest_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"zero employee", func(r *Request) { r.EmployeeID = 0 }},
		{"zero service", func(r *Request) { r.ServiceID = 0 }},
		{"empty client name", func(r *Request) { r.ClientName = "" }},
		{"empty client email", func(r *Request) { r.ClientEmail = "" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"start after end", func(r *Request) {
			r.StartTime = types.TimeString("11:00")
			r.EndTime = types.TimeString("10:00")
		}},
		{"start equals end", func(r *Request) {
			r.StartTime = types.TimeString("10:00")
			r.EndTime = types.TimeString("10:00")
		}},
		{"negative price", func(r *Request) { r.FinalPrice = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}
}
