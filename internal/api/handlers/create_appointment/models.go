package create_appointment

import (
	"time"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	createAppointment "github.com/m04kA/SLN-BookingService/internal/usecase/create_appointment"
	"github.com/m04kA/SLN-BookingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model.
// Тело запроса публичного API использует snake_case ключи.
type CreateAppointmentRequest struct {
	EmployeeID    int64   `json:"employee_id"`
	ServiceID     int64   `json:"service_id"`
	ClientName    string  `json:"client_name"`
	ClientEmail   string  `json:"client_email"`
	ClientPhone   string  `json:"client_phone"`
	Date          string  `json:"date"`       // "2026-09-15"
	StartTime     string  `json:"start_time"` // "10:00"
	EndTime       string  `json:"end_time"`   // "10:30"
	FinalPrice    float64 `json:"final_price"`
	OriginalPrice float64 `json:"original_price"`
	CouponCode    *string `json:"coupon_code,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	EmployeeID      int64   `json:"employeeId"`
	ServiceID       int64   `json:"serviceId"`
	ClientName      string  `json:"clientName"`
	ClientEmail     string  `json:"clientEmail"`
	ClientPhone     string  `json:"clientPhone"`
	AppointmentDate string  `json:"appointmentDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Status          string  `json:"status"`
	FinalPrice      float64 `json:"finalPrice"`
	OriginalPrice   float64 `json:"originalPrice"`
	CouponCode      *string `json:"couponCode,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время начала и конца окна
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		EmployeeID:    r.EmployeeID,
		ServiceID:     r.ServiceID,
		ClientName:    r.ClientName,
		ClientEmail:   r.ClientEmail,
		ClientPhone:   r.ClientPhone,
		Date:          date,
		StartTime:     startTime,
		EndTime:       endTime,
		FinalPrice:    r.FinalPrice,
		OriginalPrice: r.OriginalPrice,
		CouponCode:    r.CouponCode,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		EmployeeID:      resp.EmployeeID,
		ServiceID:       resp.ServiceID,
		ClientName:      resp.ClientName,
		ClientEmail:     resp.ClientEmail,
		ClientPhone:     resp.ClientPhone,
		AppointmentDate: resp.AppointmentDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		Status:          resp.Status,
		FinalPrice:      resp.FinalPrice,
		OriginalPrice:   resp.OriginalPrice,
		CouponCode:      resp.CouponCode,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
