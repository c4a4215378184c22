package create_appointment

import (
	"context"
	"time"

	"github.com/kc-frost/vet-clinic/internal/domain"
)

// AppointmentRepository интерфейс репозитория приёмов
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// GetRowsInRange внутри транзакции на один день читает строки под
	// блокировкой FOR UPDATE
	GetRowsInRange(ctx context.Context, startDate, endDate time.Time) ([]domain.AppointmentRow, error)
}

// ResourceRepository интерфейс репозитория ресурсов клиники
type ResourceRepository interface {
	Snapshot(ctx context.Context) (domain.ResourceCapacity, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
