package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kc-frost/vet-clinic/internal/domain"
)

// Фейки зависимостей use case

type fakeAppointmentRepo struct {
	rows []domain.AppointmentRow
	err  error

	calls int
}

func (f *fakeAppointmentRepo) GetRowsInRange(_ context.Context, _, _ time.Time) ([]domain.AppointmentRow, error) {
	f.calls++
	return f.rows, f.err
}

type fakeResourceRepo struct {
	capacity domain.ResourceCapacity
	err      error
}

func (f *fakeResourceRepo) Snapshot(_ context.Context) (domain.ResourceCapacity, error) {
	return f.capacity, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func singleCheckupCapacity() domain.ResourceCapacity {
	return domain.ResourceCapacity{
		Rooms:     map[string]int{domain.RoomCheckup: 1},
		Equipment: map[string]int{},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExecute_AllSlotsFreeSingleDay(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeResourceRepo{capacity: singleCheckupCapacity()},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ReasonKey: domain.ReasonWellnessExam,
		StartDate: day(2026, 2, 15),
		EndDate:   day(2026, 2, 15),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 6)
	assert.Equal(t, "slot_2026-02-15_0900_1000_roomA", resp.Slots[0].SlotID)
	assert.Equal(t, "slot_2026-02-15_1500_1600_roomB", resp.Slots[5].SlotID)
}

func TestExecute_BookedSlotFiltersOut(t *testing.T) {
	// Один приём на 09:00 занимает единственный смотровой кабинет:
	// из шести слотов дня остаются пять.
	uc := NewUseCase(
		&fakeAppointmentRepo{rows: []domain.AppointmentRow{
			{Date: "2026-02-15", StartTime: "09:00", ReasonKey: "wellness_exam"},
		}},
		&fakeResourceRepo{capacity: singleCheckupCapacity()},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ReasonKey: domain.ReasonWellnessExam,
		StartDate: day(2026, 2, 15),
		EndDate:   day(2026, 2, 15),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 5)
	for _, s := range resp.Slots {
		assert.NotEqual(t, "09:00", s.StartTime.String())
	}
}

func TestExecute_EmptyRequirementIgnoresBookings(t *testing.T) {
	// medication_refill ничего не потребляет: занятость не влияет
	uc := NewUseCase(
		&fakeAppointmentRepo{rows: []domain.AppointmentRow{
			{Date: "2026-02-15", StartTime: "09:00", ReasonKey: "wellness_exam"},
		}},
		&fakeResourceRepo{capacity: singleCheckupCapacity()},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ReasonKey: domain.ReasonMedicationRefill,
		StartDate: day(2026, 2, 15),
		EndDate:   day(2026, 2, 15),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 6)
}

func TestExecute_NoCapacityInstalled_EmptyListIsSuccess(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeResourceRepo{capacity: domain.NewResourceCapacity()},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ReasonKey: domain.ReasonWellnessExam,
		StartDate: day(2026, 2, 15),
		EndDate:   day(2026, 2, 15),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_IdempotentRead(t *testing.T) {
	repo := &fakeAppointmentRepo{rows: []domain.AppointmentRow{
		{Date: "2026-02-15", StartTime: "09:00", ReasonKey: "wellness_exam"},
	}}
	uc := NewUseCase(repo, &fakeResourceRepo{capacity: singleCheckupCapacity()}, nopLogger{})

	req := &Request{
		ReasonKey: domain.ReasonWellnessExam,
		StartDate: day(2026, 2, 15),
		EndDate:   day(2026, 2, 16),
	}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, repo.calls)
}

func TestExecute_UnknownReason(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeResourceRepo{capacity: singleCheckupCapacity()},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		ReasonKey: "grooming",
		StartDate: day(2026, 2, 15),
		EndDate:   day(2026, 2, 15),
	})

	assert.ErrorIs(t, err, ErrUnknownReason)
}

func TestExecute_InvertedDateRange(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeResourceRepo{capacity: singleCheckupCapacity()},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		ReasonKey: domain.ReasonWellnessExam,
		StartDate: day(2026, 2, 16),
		EndDate:   day(2026, 2, 15),
	})

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestExecute_SnapshotFailure(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeResourceRepo{err: errors.New("connection refused")},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		ReasonKey: domain.ReasonWellnessExam,
		StartDate: day(2026, 2, 15),
		EndDate:   day(2026, 2, 15),
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_AppointmentLoadFailure(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{err: errors.New("query timeout")},
		&fakeResourceRepo{capacity: singleCheckupCapacity()},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		ReasonKey: domain.ReasonWellnessExam,
		StartDate: day(2026, 2, 15),
		EndDate:   day(2026, 2, 15),
	})

	assert.ErrorIs(t, err, ErrInternal)
}
