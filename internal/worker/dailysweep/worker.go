package dailysweep

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SLN-BookingService/pkg/metrics"
)

// Триггеры запуска, попадают в метрики и логи.
const (
	TriggerScheduled = "scheduled"
	TriggerManual    = "manual"
)

// Worker ежедневный воркер автозавершения: переводит все confirmed-записи
// с датой раньше сегодняшней в completed. Запускается раз в сутки в
// настроенное время (runAt, "HH:MM") и повторно — вручную через админский
// эндпоинт. Повторный запуск в тот же день безопасен: после первого прохода
// просроченных confirmed-записей не остаётся, и UPDATE затрагивает 0 строк.
type Worker struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	metrics         *metrics.Metrics
	logger          Logger
	runAt           string
}

// NewWorker создает новый воркер автозавершения. metrics может быть nil,
// если сбор метрик выключен.
func NewWorker(
	appointmentRepo AppointmentRepository,
	m *metrics.Metrics,
	logger Logger,
	runAt string,
) (*Worker, error) {
	if _, err := time.Parse("15:04", runAt); err != nil {
		return nil, fmt.Errorf("invalid run_at %q: %w", runAt, err)
	}

	return &Worker{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		metrics:         m,
		logger:          logger,
		runAt:           runAt,
	}, nil
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Run запускает цикл воркера и блокируется до отмены контекста.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("dailysweep: worker started, scheduled at %s", w.runAt)

	for {
		next := w.nextRun(w.timeProvider.Now())
		w.logger.Info("dailysweep: next run at %s", next.Format(time.RFC3339))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			w.logger.Info("dailysweep: worker stopped")
			return
		case <-timer.C:
		}

		if _, err := w.RunOnce(ctx, TriggerScheduled); err != nil {
			w.logger.Error("dailysweep: scheduled run failed: %v", err)
		}
	}
}

// RunOnce выполняет один проход: завершает все confirmed-записи с датой
// раньше сегодняшней. Возвращает идентификаторы обновлённых записей.
func (w *Worker) RunOnce(ctx context.Context, trigger string) ([]int64, error) {
	now := w.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	w.logger.Info("dailysweep: completing appointments before %s (trigger=%s)", today.Format("2006-01-02"), trigger)

	ids, err := w.appointmentRepo.CompleteBefore(ctx, today)
	if err != nil {
		if w.metrics != nil {
			w.metrics.SweeperRunsTotal.WithLabelValues("error").Inc()
		}
		w.logger.Error("dailysweep: CompleteBefore failed: %v", err)
		return nil, fmt.Errorf("dailysweep: %w", err)
	}

	if w.metrics != nil {
		w.metrics.SweeperRunsTotal.WithLabelValues("success").Inc()
		w.metrics.SweeperCompletedRows.WithLabelValues(trigger).Add(float64(len(ids)))
	}

	w.logger.Info("dailysweep: completed %d appointments (trigger=%s)", len(ids), trigger)
	return ids, nil
}

// nextRun возвращает ближайший момент запуска строго после now.
func (w *Worker) nextRun(now time.Time) time.Time {
	at, _ := time.Parse("15:04", w.runAt)

	next := time.Date(now.Year(), now.Month(), now.Day(), at.Hour(), at.Minute(), 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
