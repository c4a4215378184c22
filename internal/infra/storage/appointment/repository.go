package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/kc-frost/vet-clinic/internal/domain"
	"github.com/kc-frost/vet-clinic/pkg/dbmetrics"
	"github.com/kc-frost/vet-clinic/pkg/psqlbuilder"
)

// Repository репозиторий для работы с записями о приёмах
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория приёмов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись о приёме
// Если в контексте передана активная транзакция (через context.Value),
// использует её — бронирование всегда создаётся внутри сериализуемой
// транзакции, чтобы проверка вместимости и вставка были атомарны.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"user_email",
			"vet_id",
			"pet_id",
			"reason_key",
			"reason_details",
			"start_at",
			"equipment_summary",
		).
		Values(
			appt.UserEmail,
			appt.VetID,
			appt.PetID,
			appt.ReasonKey,
			appt.ReasonDetails,
			appt.StartAt,
			appt.EquipmentSummary,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись о приёме по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetRowsInRange получает все приёмы в диапазоне дат [startDate, endDate]
// (включительно) в «сыром» виде для агрегатора занятости слотов.
//
// Если вызов идёт внутри транзакции и диапазон сужен до одного дня,
// к запросу добавляется FOR UPDATE — это блокировка, сериализующая
// конкурентные попытки бронирования на одну и ту же дату: чтение
// занятости дня и последующая вставка становятся атомарной парой.
func (r *Repository) GetRowsInRange(ctx context.Context, startDate, endDate time.Time) ([]domain.AppointmentRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayStart := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	dayEnd := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, endDate.Location()).AddDate(0, 0, 1)

	selectBuilder := psqlbuilder.Select(
		"start_at",
		"reason_key",
	).
		From("appointments").
		Where(squirrel.GtOrEq{"start_at": dayStart}).
		Where(squirrel.Lt{"start_at": dayEnd}).
		OrderBy("start_at ASC")

	// Блокировка строк только в транзакции бронирования (один день)
	if dbmetrics.IsInTransaction(ctx) && sameDay(startDate, endDate) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRowsInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRowsInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.AppointmentRow, 0)
	for rows.Next() {
		var startAt time.Time
		var reasonKey string
		if err := rows.Scan(&startAt, &reasonKey); err != nil {
			return nil, fmt.Errorf("%w: GetRowsInRange - scan row: %v", ErrScanRow, err)
		}
		result = append(result, domain.AppointmentRow{
			StartAt:   startAt.Format(domain.DateTimeFormat),
			ReasonKey: reasonKey,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRowsInRange - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetUpcoming получает текущие и будущие приёмы начиная с from,
// отсортированные по времени начала. Опциональный фильтр по email контакта.
func (r *Repository) GetUpcoming(ctx context.Context, from time.Time, userEmail *string) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.GtOrEq{"start_at": from}).
		OrderBy("start_at ASC")

	if userEmail != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_email": *userEmail})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetUpcoming - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetUpcoming - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// Delete удаляет запись о приёме по ID
// Отмена приёма — это удаление строки: занятость слота пересчитывается
// из существующих строк при каждом чтении, отдельного «освобождения» нет.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

var appointmentColumns = []string{
	"id",
	"user_email",
	"vet_id",
	"pet_id",
	"reason_key",
	"reason_details",
	"start_at",
	"equipment_summary",
	"created_at",
	"updated_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.UserEmail,
		&appt.VetID,
		&appt.PetID,
		&appt.ReasonKey,
		&appt.ReasonDetails,
		&appt.StartAt,
		&appt.EquipmentSummary,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appts := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan appointment: %v", ErrScanRow, err)
		}
		appts = append(appts, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}

	return appts, nil
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
