package list_canceled_appointments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-BookingService/internal/service/appointments/models"
)

type fakeService struct {
	lastReq *models.ListAppointmentsRequest
}

func (f *fakeService) ListCanceled(_ context.Context, req *models.ListAppointmentsRequest) (*models.CanceledAppointmentListResponse, error) {
	f.lastReq = req
	return &models.CanceledAppointmentListResponse{CanceledAppointments: []models.CanceledAppointmentResponse{}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Период в query задается параметрами start_date/end_date
func TestHandle_PeriodFilter(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/admin/canceled_appointments?start_date=2026-09-01&end_date=2026-09-07", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastReq)
	require.NotNil(t, svc.lastReq.StartDate)
	require.NotNil(t, svc.lastReq.EndDate)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *svc.lastReq.StartDate)
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), *svc.lastReq.EndDate)
}
