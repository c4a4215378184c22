package resource

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kc-frost/vet-clinic/internal/domain"
)

func TestRepository_RoomCapacity_MergesSpellings(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	// GROUP BY в базе разводит написания по разным строкам;
	// нормализация должна склеить их в один пул
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT room_type, COALESCE(SUM(capacity), 0) AS total_capacity FROM rooms GROUP BY room_type",
	)).
		WillReturnRows(sqlmock.NewRows([]string{"room_type", "total_capacity"}).
			AddRow("checkup_room", 2).
			AddRow("Checkup Room", 1).
			AddRow("imaging_room", 1))

	totals, err := repo.RoomCapacity(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, totals[domain.RoomCheckup])
	assert.Equal(t, 1, totals[domain.RoomImaging])
	assert.Len(t, totals, 2)
}

func TestRepository_EquipmentCapacity(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT e.equipment_type, COALESCE(SUM(i.quantity), 0) AS total_stock "+
			"FROM inventory i JOIN equipment e ON e.id = i.equipment_id "+
			"WHERE i.inventory_type = $1 GROUP BY e.equipment_type",
	)).
		WithArgs("equipment").
		WillReturnRows(sqlmock.NewRows([]string{"equipment_type", "total_stock"}).
			AddRow("x-ray machine", 1).
			AddRow("x_ray_machine", 1).
			AddRow("otoscope", 2))

	totals, err := repo.EquipmentCapacity(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, totals[domain.EquipXRayMachine])
	assert.Equal(t, 2, totals[domain.EquipOtoscope])
}

func TestRepository_Snapshot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("FROM rooms GROUP BY room_type").
		WillReturnRows(sqlmock.NewRows([]string{"room_type", "total_capacity"}).
			AddRow("checkup_room", 1))
	mock.ExpectQuery("FROM inventory i JOIN equipment e").
		WillReturnRows(sqlmock.NewRows([]string{"equipment_type", "total_stock"}).
			AddRow("vaccine_fridge", 1))

	capacity, err := repo.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, capacity.Rooms[domain.RoomCheckup])
	assert.Equal(t, 1, capacity.Equipment[domain.EquipVaccineFridge])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Snapshot_WholeOrNothing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("FROM rooms GROUP BY room_type").
		WillReturnRows(sqlmock.NewRows([]string{"room_type", "total_capacity"}).
			AddRow("checkup_room", 1))
	mock.ExpectQuery("FROM inventory i JOIN equipment e").
		WillReturnError(assert.AnError)

	// при отказе одной из частей среза не должно быть частичного результата
	_, err = repo.Snapshot(context.Background())
	assert.ErrorIs(t, err, ErrExecQuery)
}
