package bookinglog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий журнала бронирований.
// Журнал не участвует в вычислении слотов: источником правды о занятости
// остаётся календарь провайдера. Здесь фиксируется история попыток
// бронирования через сервис, включая частичные исходы (буфер или задача
// не создались).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет строку журнала.
// Если в контексте передана активная транзакция (через context.Value), использует её:
// основная и буферная записи одного бронирования пишутся атомарно.
func (r *Repository) Create(ctx context.Context, record *domain.BookingRecord) (*domain.BookingRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_log").
		Columns(
			"session_id",
			"slot_id",
			"appointment_type_id",
			"type_display_name",
			"start_time",
			"duration_minutes",
			"is_buffer",
			"has_dual_booking",
			"patient_name",
			"outcome",
		).
		Values(
			record.SessionID,
			record.SlotID,
			int64(record.AppointmentTypeID),
			record.TypeDisplayName,
			record.StartTime,
			record.DurationMinutes,
			record.IsBuffer,
			record.HasDualBooking,
			record.PatientName,
			record.Outcome,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time

	return record, nil
}

// GetBySessionID получает строки журнала одной сессии
func (r *Repository) GetBySessionID(ctx context.Context, sessionID string) ([]*domain.BookingRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectColumns().
		Where(squirrel.Eq{"session_id": sessionID}).
		OrderBy("start_time ASC, is_buffer ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySessionID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySessionID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRecords(rows)
}

// GetByPeriod получает строки журнала за период по времени начала записи
// Опционально фильтрует по исходу
func (r *Repository) GetByPeriod(ctx context.Context, from, to time.Time, outcome *domain.BookingOutcome) ([]*domain.BookingRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectColumns().
		Where(squirrel.GtOrEq{"start_time": from}).
		Where(squirrel.Lt{"start_time": to}).
		OrderBy("start_time ASC, is_buffer ASC")

	// Фильтрация по исходу, если указан
	if outcome != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"outcome": *outcome})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRecords(rows)
}

func selectColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"session_id",
		"slot_id",
		"appointment_type_id",
		"type_display_name",
		"start_time",
		"duration_minutes",
		"is_buffer",
		"has_dual_booking",
		"patient_name",
		"outcome",
		"created_at",
	).From("booking_log")
}

// scanRecords сканирует результаты запроса в слайс строк журнала
func (r *Repository) scanRecords(rows *sql.Rows) ([]*domain.BookingRecord, error) {
	records := make([]*domain.BookingRecord, 0)

	for rows.Next() {
		var record domain.BookingRecord
		var typeID int64
		var createdAt sql.NullTime

		err := rows.Scan(
			&record.ID,
			&record.SessionID,
			&record.SlotID,
			&typeID,
			&record.TypeDisplayName,
			&record.StartTime,
			&record.DurationMinutes,
			&record.IsBuffer,
			&record.HasDualBooking,
			&record.PatientName,
			&record.Outcome,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanRecords - scan row: %v", ErrScanRow, err)
		}

		record.AppointmentTypeID = domain.AppointmentTypeID(typeID)
		record.CreatedAt = createdAt.Time

		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRecords - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
