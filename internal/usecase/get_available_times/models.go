package get_available_times

import (
	"time"

	"github.com/m04kA/SLN-BookingService/internal/domain"
)

// Request модель запроса на получение свободных окон
type Request struct {
	EmployeeID      int64     // ID мастера
	Date            time.Time // Дата, на которую запрашиваются окна (без времени)
	DurationMinutes int       // Длительность услуги в минутах
}

// Response модель ответа со списком свободных окон
type Response struct {
	EmployeeID      int64             // ID мастера
	Date            time.Time         // Дата запроса
	DurationMinutes int               // Длительность услуги
	Slots           []domain.TimeSlot // Свободные окна по возрастанию времени начала
}
