package models

import (
	"errors"
	"time"

	"github.com/m04kA/SLN-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи.
// Тело запроса публичного API использует snake_case ключи.
type CancelAppointmentRequest struct {
	CancelReason *string `json:"cancel_reason,omitempty"`
}

// ListAppointmentsRequest запрос на получение списка записей с фильтрами
type ListAppointmentsRequest struct {
	Search      *string    `json:"search,omitempty"`      // ILIKE по имени/email/телефону клиента
	Date        *time.Time `json:"date,omitempty"`        // Конкретная дата
	EmployeeID  *int64     `json:"employee,omitempty"`    // Фильтр по мастеру
	StartDate   *time.Time `json:"startDate,omitempty"`   // Начало периода
	EndDate     *time.Time `json:"endDate,omitempty"`     // Конец периода
	Status      *string    `json:"status,omitempty"`      // Фильтр по статусу
	ClientEmail *string    `json:"clientEmail,omitempty"` // Точный email (личный кабинет)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		Search:      r.Search,
		Date:        r.Date,
		EmployeeID:  r.EmployeeID,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		ClientEmail: r.ClientEmail,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainStatus валидирует и конвертирует строковый статус
func ToDomainStatus(s string) (domain.AppointmentStatus, error) {
	switch domain.AppointmentStatus(s) {
	case domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCanceled:
		return domain.AppointmentStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID         int64 `json:"id"`
	EmployeeID int64 `json:"employeeId"`
	ServiceID  int64 `json:"serviceId"`

	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ClientPhone string `json:"clientPhone"`

	AppointmentDate string `json:"appointmentDate"` // "2026-09-01"
	StartTime       string `json:"startTime"`       // "10:00"
	EndTime         string `json:"endTime"`         // "10:30"
	Status          string `json:"status"`

	FinalPrice    float64 `json:"finalPrice"`
	OriginalPrice float64 `json:"originalPrice"`
	CouponCode    *string `json:"couponCode,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CanceledAppointmentResponse ответ с данными архивной записи
type CanceledAppointmentResponse struct {
	ID                    int64 `json:"id"`
	OriginalAppointmentID int64 `json:"originalAppointmentId"`
	EmployeeID            int64 `json:"employeeId"`
	ServiceID             int64 `json:"serviceId"`

	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ClientPhone string `json:"clientPhone"`

	AppointmentDate string `json:"appointmentDate"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Status          string `json:"status"`

	FinalPrice    float64 `json:"finalPrice"`
	OriginalPrice float64 `json:"originalPrice"`
	CouponCode    *string `json:"couponCode,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	CancelReason *string   `json:"cancelReason,omitempty"`
	CanceledAt   time.Time `json:"canceledAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// CanceledAppointmentListResponse ответ со списком архивных записей
type CanceledAppointmentListResponse struct {
	CanceledAppointments []CanceledAppointmentResponse `json:"canceledAppointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		EmployeeID:      a.EmployeeID,
		ServiceID:       a.ServiceID,
		ClientName:      a.ClientName,
		ClientEmail:     a.ClientEmail,
		ClientPhone:     a.ClientPhone,
		AppointmentDate: a.AppointmentDate.Format(domain.DateFormat),
		StartTime:       a.StartTime.String(),
		EndTime:         a.EndTime.String(),
		Status:          string(a.Status),
		FinalPrice:      a.FinalPrice,
		OriginalPrice:   a.OriginalPrice,
		CouponCode:      a.CouponCode,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(items []*domain.Appointment) *AppointmentListResponse {
	result := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(items)),
	}
	for _, item := range items {
		result.Appointments = append(result.Appointments, *FromDomainAppointment(item))
	}
	return result
}

// FromDomainCanceledAppointment конвертирует архивную domain модель в DTO
func FromDomainCanceledAppointment(a *domain.CanceledAppointment) *CanceledAppointmentResponse {
	if a == nil {
		return nil
	}

	return &CanceledAppointmentResponse{
		ID:                    a.ID,
		OriginalAppointmentID: a.OriginalAppointmentID,
		EmployeeID:            a.EmployeeID,
		ServiceID:             a.ServiceID,
		ClientName:            a.ClientName,
		ClientEmail:           a.ClientEmail,
		ClientPhone:           a.ClientPhone,
		AppointmentDate:       a.AppointmentDate.Format(domain.DateFormat),
		StartTime:             a.StartTime.String(),
		EndTime:               a.EndTime.String(),
		Status:                string(a.Status),
		FinalPrice:            a.FinalPrice,
		OriginalPrice:         a.OriginalPrice,
		CouponCode:            a.CouponCode,
		Notes:                 a.Notes,
		CancelReason:          a.CancelReason,
		CanceledAt:            a.CanceledAt,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
}

// FromDomainCanceledAppointmentList конвертирует список архивных моделей в DTO
func FromDomainCanceledAppointmentList(items []*domain.CanceledAppointment) *CanceledAppointmentListResponse {
	result := &CanceledAppointmentListResponse{
		CanceledAppointments: make([]CanceledAppointmentResponse, 0, len(items)),
	}
	for _, item := range items {
		result.CanceledAppointments = append(result.CanceledAppointments, *FromDomainCanceledAppointment(item))
	}
	return result
}
