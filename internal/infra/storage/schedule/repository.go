package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	"github.com/m04kA/SLN-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SLN-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий недельных шаблонов рабочих часов (work_schedules).
// Таблица редактируется CRUD-сервисом персонала; здесь только чтение.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEmployeeAndDay получает расписание мастера на день недели (0=воскресенье).
// Система полагается на уникальность (employee_id, day_of_week); LIMIT 1
// защищает от дублей, структурно уникальность не навязывается.
func (r *Repository) GetByEmployeeAndDay(ctx context.Context, employeeID int64, dayOfWeek int) (*domain.WorkSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"employee_id",
		"day_of_week",
		"start_time",
		"end_time",
		"is_available",
	).
		From("work_schedules").
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmployeeAndDay - build select query: %v", ErrBuildQuery, err)
	}

	var ws domain.WorkSchedule
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&ws.ID,
		&ws.EmployeeID,
		&ws.DayOfWeek,
		&ws.StartTime,
		&ws.EndTime,
		&ws.IsAvailable,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmployeeAndDay - scan schedule: %v", ErrScanRow, err)
	}

	return &ws, nil
}
