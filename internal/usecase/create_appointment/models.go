package create_appointment

import (
	"time"

	"github.com/kc-frost/vet-clinic/internal/domain"
	"github.com/kc-frost/vet-clinic/pkg/types"
)

// Request модель запроса на создание записи о приёме.
// Слот задаётся либо парой Date + StartTime, либо идентификатором SlotID
// (slot_YYYY-MM-DD_HHMM_HHMM_room) — тогда он обязан распарситься и
// совпасть с Date.
type Request struct {
	UserEmail     string           // Контакт владельца (обязательно)
	ReasonKey     domain.ReasonKey // Причина визита (закрытый словарь)
	ReasonDetails *string          // Свободный текст (опционально)
	Date          time.Time        // Дата приёма (без времени)
	StartTime     types.TimeString // Время начала слота ("09:00"), опционально при SlotID
	SlotID        string           // Идентификатор слота (опционально)

	// Связанные записи, прозрачные для логики вместимости
	VetID *int64
	PetID *int64
}

// Response модель ответа с созданной записью
type Response struct {
	ID             int64            // ID созданной записи
	ReservationRef string           // Публичная ссылка, "apt_<id>"
	UserEmail      string           // Контакт владельца
	ReasonKey      domain.ReasonKey // Причина визита (каноническая)
	Date           string           // YYYY-MM-DD
	StartTime      types.TimeString // "09:00"

	// Сводка оборудования, зафиксированная на момент бронирования
	EquipmentSummary *string

	CreatedAt time.Time
}
