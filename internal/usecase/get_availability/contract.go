package get_availability

import (
	"context"
	"time"

	"github.com/kc-frost/vet-clinic/internal/domain"
)

// AppointmentRepository интерфейс репозитория приёмов
type AppointmentRepository interface {
	// GetRowsInRange получает «сырые» строки приёмов в диапазоне дат (включительно)
	GetRowsInRange(ctx context.Context, startDate, endDate time.Time) ([]domain.AppointmentRow, error)
}

// ResourceRepository интерфейс репозитория ресурсов клиники
type ResourceRepository interface {
	// Snapshot читает текущий срез установленной вместимости
	Snapshot(ctx context.Context) (domain.ResourceCapacity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
