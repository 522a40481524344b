package create_appointment

import (
	"time"

	"github.com/m04kA/SLN-BookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	EmployeeID int64 // ID мастера
	ServiceID  int64 // ID услуги

	ClientName  string
	ClientEmail string
	ClientPhone string

	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Начало окна, "HH:MM"
	EndTime   types.TimeString // Конец окна, "HH:MM" (начало + длительность услуги)

	FinalPrice    float64 // Цена после скидки; ядро её не пересчитывает
	OriginalPrice float64 // Цена до скидки
	CouponCode    *string // Код купона (опционально)
	Notes         *string // Заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID         int64
	EmployeeID int64
	ServiceID  int64

	ClientName  string
	ClientEmail string
	ClientPhone string

	AppointmentDate time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	Status          string

	FinalPrice    float64
	OriginalPrice float64
	CouponCode    *string
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
