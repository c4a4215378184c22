package get_availability

import (
	"time"

	"github.com/kc-frost/vet-clinic/internal/domain"
	"github.com/kc-frost/vet-clinic/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	ReasonKey domain.ReasonKey // Причина визита (закрытый словарь)
	StartDate time.Time        // Начало диапазона (включительно, без времени)
	EndDate   time.Time        // Конец диапазона (включительно, без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ReasonKey domain.ReasonKey // Причина, для которой считалась доступность
	Slots     []AvailableSlot  // Доступные слоты в порядке день → шаблон
}

// AvailableSlot модель доступного временного слота
type AvailableSlot struct {
	SlotID       string           // slot_YYYY-MM-DD_HHMM_HHMM_room
	Date         string           // YYYY-MM-DD
	StartTime    types.TimeString // "09:00"
	EndTime      types.TimeString // "10:00"
	DisplayLabel string           // "09:00 - 10:00"
}

func fromDomainSlot(s domain.Slot) AvailableSlot {
	return AvailableSlot{
		SlotID:       s.SlotID,
		Date:         s.Date,
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		DisplayLabel: s.DisplayLabel,
	}
}
