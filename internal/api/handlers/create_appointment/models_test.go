package create_appointment

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-BookingService/pkg/types"
)

// Тело запроса клиенты шлют со snake_case ключами
func TestCreateAppointmentRequest_WireFormat(t *testing.T) {
	body := `{
		"client_name": "Анна Иванова",
		"client_email": "anna@example.com",
		"client_phone": "+79001234567",
		"service_id": 3,
		"employee_id": 7,
		"date": "2026-09-15",
		"start_time": "10:00",
		"end_time": "10:30",
		"final_price": 1350.00,
		"original_price": 1500.00,
		"coupon_code": "SALE10"
	}`

	var req CreateAppointmentRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, int64(7), req.EmployeeID)
	assert.Equal(t, int64(3), req.ServiceID)
	assert.Equal(t, "Анна Иванова", req.ClientName)
	assert.Equal(t, "anna@example.com", req.ClientEmail)
	assert.Equal(t, "+79001234567", req.ClientPhone)
	assert.Equal(t, "2026-09-15", req.Date)
	assert.Equal(t, "10:00", req.StartTime)
	assert.Equal(t, "10:30", req.EndTime)
	assert.Equal(t, 1350.00, req.FinalPrice)
	assert.Equal(t, 1500.00, req.OriginalPrice)
	require.NotNil(t, req.CouponCode)
	assert.Equal(t, "SALE10", *req.CouponCode)

	ucReq, err := req.ToUseCaseRequest()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), ucReq.Date)
	assert.Equal(t, types.TimeString("10:00"), ucReq.StartTime)
	assert.Equal(t, types.TimeString("10:30"), ucReq.EndTime)
}

func TestCreateAppointmentRequest_ToUseCaseRequest_BadTime(t *testing.T) {
	req := CreateAppointmentRequest{
		EmployeeID: 7,
		ServiceID:  3,
		Date:       "2026-09-15",
		StartTime:  "ten o'clock",
		EndTime:    "10:30",
	}

	_, err := req.ToUseCaseRequest()
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)
}
