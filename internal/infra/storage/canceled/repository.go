package canceled

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	"github.com/m04kA/SLN-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SLN-BookingService/pkg/psqlbuilder"
)

var canceledColumns = []string{
	"id",
	"original_appointment_id",
	"employee_id",
	"service_id",
	"client_name",
	"client_email",
	"client_phone",
	"appointment_date",
	"start_time",
	"end_time",
	"status",
	"final_price",
	"original_price",
	"coupon_code",
	"notes",
	"cancel_reason",
	"canceled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий архива отменённых записей (canceled_appointments).
// Таблица append-only: строки только вставляются, никогда не обновляются.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория архива
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет архивную копию отменённой записи. Вызывается внутри
// транзакции отмены вместе с удалением живой строки.
func (r *Repository) Create(ctx context.Context, archived *domain.CanceledAppointment) (*domain.CanceledAppointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("canceled_appointments").
		Columns(
			"original_appointment_id",
			"employee_id",
			"service_id",
			"client_name",
			"client_email",
			"client_phone",
			"appointment_date",
			"start_time",
			"end_time",
			"status",
			"final_price",
			"original_price",
			"coupon_code",
			"notes",
			"cancel_reason",
			"canceled_at",
			"created_at",
			"updated_at",
		).
		Values(
			archived.OriginalAppointmentID,
			archived.EmployeeID,
			archived.ServiceID,
			archived.ClientName,
			archived.ClientEmail,
			archived.ClientPhone,
			archived.AppointmentDate,
			archived.StartTime,
			archived.EndTime,
			archived.Status,
			archived.FinalPrice,
			archived.OriginalPrice,
			archived.CouponCode,
			archived.Notes,
			archived.CancelReason,
			archived.CanceledAt,
			archived.CreatedAt,
			archived.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&archived.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return archived, nil
}

// ListWithFilter получает архивные записи с теми же фильтрами, что и живые
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.CanceledAppointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(canceledColumns...).
		From("canceled_appointments").
		OrderBy("appointment_date ASC", "start_time ASC")

	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"client_name": pattern},
			squirrel.ILike{"client_email": pattern},
			squirrel.ILike{"client_phone": pattern},
		})
	}

	if filter.EmployeeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"employee_id": *filter.EmployeeID})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": *filter.Date})
	} else {
		if filter.StartDate != nil {
			selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": *filter.StartDate})
		}
		if filter.EndDate != nil {
			selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"appointment_date": *filter.EndDate})
		}
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanCanceledAppointments(rows)
}

// scanCanceledAppointments сканирует результаты запроса в слайс архивных записей
func scanCanceledAppointments(rows *sql.Rows) ([]*domain.CanceledAppointment, error) {
	archived := make([]*domain.CanceledAppointment, 0)

	for rows.Next() {
		var item domain.CanceledAppointment
		var createdAt, updatedAt, canceledAt sql.NullTime

		err := rows.Scan(
			&item.ID,
			&item.OriginalAppointmentID,
			&item.EmployeeID,
			&item.ServiceID,
			&item.ClientName,
			&item.ClientEmail,
			&item.ClientPhone,
			&item.AppointmentDate,
			&item.StartTime,
			&item.EndTime,
			&item.Status,
			&item.FinalPrice,
			&item.OriginalPrice,
			&item.CouponCode,
			&item.Notes,
			&item.CancelReason,
			&canceledAt,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanCanceledAppointments - scan row: %v", ErrScanRow, err)
		}

		item.CanceledAt = canceledAt.Time
		item.CreatedAt = createdAt.Time
		item.UpdatedAt = updatedAt.Time

		archived = append(archived, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanCanceledAppointments - rows error: %v", ErrScanRow, err)
	}

	return archived, nil
}
