package resource

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/kc-frost/vet-clinic/internal/domain"
	"github.com/kc-frost/vet-clinic/pkg/dbmetrics"
	"github.com/kc-frost/vet-clinic/pkg/psqlbuilder"
)

// Repository читает текущую установленную базу ресурсов клиники:
// вместимость кабинетов и количество единиц оборудования на складе.
// Это срез «что установлено вообще», а не доступность по слотам —
// вместимость одинакова для всех слотов, по слотам меняется только
// занятость.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресурсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Snapshot загружает полный срез вместимости: кабинеты и оборудование.
// Частичных результатов не бывает: любая ошибка чтения прерывает весь
// запрос доступности/бронирования, кеш не подставляется.
func (r *Repository) Snapshot(ctx context.Context) (domain.ResourceCapacity, error) {
	capacity := domain.NewResourceCapacity()

	rooms, err := r.RoomCapacity(ctx)
	if err != nil {
		return domain.ResourceCapacity{}, err
	}
	capacity.Rooms = rooms

	equipment, err := r.EquipmentCapacity(ctx)
	if err != nil {
		return domain.ResourceCapacity{}, err
	}
	capacity.Equipment = equipment

	return capacity, nil
}

// RoomCapacity суммирует вместимость кабинетов по типу. Типы из таблицы
// нормализуются до канонического ключа; разные написания одного типа
// складываются в один пул.
func (r *Repository) RoomCapacity(ctx context.Context) (map[string]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"room_type",
		"COALESCE(SUM(capacity), 0) AS total_capacity",
	).
		From("rooms").
		GroupBy("room_type").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: RoomCapacity - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: RoomCapacity - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var roomType string
		var total int
		if err := rows.Scan(&roomType, &total); err != nil {
			return nil, fmt.Errorf("%w: RoomCapacity - scan row: %v", ErrScanRow, err)
		}
		// суммируем, а не присваиваем: нормализация может склеить группы
		totals[domain.NormalizeResourceKey(roomType)] += total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: RoomCapacity - rows error: %v", ErrScanRow, err)
	}

	return totals, nil
}

// EquipmentCapacity суммирует складские остатки оборудования по типу.
// Идентичность оборудования и количество живут в разных таблицах:
// inventory хранит количество, equipment — тип.
func (r *Repository) EquipmentCapacity(ctx context.Context) (map[string]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"e.equipment_type",
		"COALESCE(SUM(i.quantity), 0) AS total_stock",
	).
		From("inventory i").
		Join("equipment e ON e.id = i.equipment_id").
		Where(squirrel.Eq{"i.inventory_type": "equipment"}).
		GroupBy("e.equipment_type").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: EquipmentCapacity - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: EquipmentCapacity - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var equipmentType string
		var total int
		if err := rows.Scan(&equipmentType, &total); err != nil {
			return nil, fmt.Errorf("%w: EquipmentCapacity - scan row: %v", ErrScanRow, err)
		}
		totals[domain.NormalizeResourceKey(equipmentType)] += total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: EquipmentCapacity - rows error: %v", ErrScanRow, err)
	}

	return totals, nil
}
