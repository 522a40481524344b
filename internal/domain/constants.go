package domain

// Slot generation defaults
const (
	// DefaultSlotStepMinutes шаг сетки слотов. Независим от длительности
	// услуги: кандидаты генерируются каждые 15 минут.
	DefaultSlotStepMinutes = 15
)

// Business validation constants
const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 480 // 8 hours

	MaxCancelReasonLength = 500
	MaxNotesLength        = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses статусы живых записей, которые занимают время мастера.
// Отменённые записи физически отсутствуют в живой таблице, но фильтр по
// статусу оставлен, чтобы случайная строка не блокировала перезапись слота.
var BlockingStatuses = []AppointmentStatus{
	StatusConfirmed,
	StatusCompleted,
}
