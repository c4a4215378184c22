package appointment

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kc-frost/vet-clinic/internal/domain"
	"github.com/kc-frost/vet-clinic/pkg/dbmetrics"
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	createdAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO appointments (user_email,vet_id,pet_id,reason_key,reason_details,start_at,equipment_summary) "+
			"VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id, created_at, updated_at",
	)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(7), createdAt, createdAt))

	appt := &domain.Appointment{
		UserEmail: "owner@example.com",
		ReasonKey: domain.ReasonWellnessExam,
		StartAt:   time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC),
	}

	created, err := repo.Create(context.Background(), appt)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "apt_7", created.ReservationRef())
	assert.Equal(t, createdAt, created.CreatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("INSERT INTO appointments").
		WillReturnError(assert.AnError)

	_, err = repo.Create(context.Background(), &domain.Appointment{
		UserEmail: "owner@example.com",
		ReasonKey: domain.ReasonWellnessExam,
		StartAt:   time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT .+ FROM appointments WHERE id = ").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	_, err = repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_GetRowsInRange_NoLockOutsideTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	// без транзакции запрос не должен содержать FOR UPDATE
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT start_at, reason_key FROM appointments "+
			"WHERE start_at >= $1 AND start_at < $2 ORDER BY start_at ASC",
	) + "$").
		WillReturnRows(sqlmock.NewRows([]string{"start_at", "reason_key"}).
			AddRow(time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC), "wellness_exam"))

	day := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	rows, err := repo.GetRowsInRange(context.Background(), day, day)
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "2026-02-15 09:00:00", rows[0].StartAt)
	assert.Equal(t, "wellness_exam", rows[0].ReasonKey)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetRowsInRange_LocksDayInsideTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	// внутри транзакции бронирования однодневный диапазон читается
	// с блокировкой строк дня
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT start_at, reason_key FROM appointments "+
			"WHERE start_at >= $1 AND start_at < $2 ORDER BY start_at ASC FOR UPDATE",
	)).
		WillReturnRows(sqlmock.NewRows([]string{"start_at", "reason_key"}))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	txCtx := dbmetrics.WithTx(ctx, tx)

	day := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	_, err = repo.GetRowsInRange(txCtx, day, day)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetRowsInRange_NoLockForMultiDayRange(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	// диапазон шире одного дня не блокируется даже в транзакции
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY start_at ASC") + "$").
		WillReturnRows(sqlmock.NewRows([]string{"start_at", "reason_key"}))
	mock.ExpectRollback()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	txCtx := dbmetrics.WithTx(ctx, tx)

	start := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC)
	_, err = repo.GetRowsInRange(txCtx, start, end)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetUpcoming_FiltersByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	email := "owner@example.com"

	mock.ExpectQuery("SELECT .+ FROM appointments WHERE start_at >= .+ AND user_email = .+ ORDER BY start_at ASC").
		WithArgs(from, email).
		WillReturnRows(sqlmock.NewRows(appointmentColumns).
			AddRow(int64(1), email, nil, nil, "wellness_exam", nil,
				time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC), nil, from, from))

	appts, err := repo.GetUpcoming(context.Background(), from, &email)
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, email, appts[0].UserEmail)
	assert.Equal(t, "2026-02-15", appts[0].Date())
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM appointments WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("DELETE FROM appointments").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
