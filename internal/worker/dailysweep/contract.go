package dailysweep

import (
	"context"
	"time"
)

// AppointmentRepository интерфейс репозитория живых записей
type AppointmentRepository interface {
	CompleteBefore(ctx context.Context, before time.Time) ([]int64, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
