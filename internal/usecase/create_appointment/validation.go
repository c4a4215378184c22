package create_appointment

import (
	"fmt"
	"time"

	"github.com/kc-frost/vet-clinic/internal/domain"
	"github.com/kc-frost/vet-clinic/pkg/types"
)

// validateRequest валидирует запрос и возвращает каноническое время начала
// слота. Выполняется строго до любого обращения к хранилищу: ошибки отсюда
// не имеют побочных эффектов.
func validateRequest(req *Request, now time.Time) error {
	if req.UserEmail == "" {
		return fmt.Errorf("%w: userEmail is required", ErrInvalidInput)
	}
	if len(req.UserEmail) > domain.MaxEmailLength {
		return fmt.Errorf("%w: userEmail is too long", ErrInvalidInput)
	}
	if req.ReasonDetails != nil && len(*req.ReasonDetails) > domain.MaxReasonDetailsLength {
		return fmt.Errorf("%w: reasonDetails is too long", ErrInvalidInput)
	}

	if req.ReasonKey == "" {
		return fmt.Errorf("%w: reasonKey is required", ErrInvalidInput)
	}
	// Неизвестная причина — отказ до похода в базу, без требования по умолчанию
	if !domain.IsKnownReason(req.ReasonKey) {
		return fmt.Errorf("%w: %q", ErrUnknownReason, req.ReasonKey)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: appointmentDate is required", ErrInvalidInput)
	}
	if isDateInPast(req.Date, now) {
		return ErrPastDate
	}

	return validateSlot(req)
}

// validateSlot сверяет слот с шаблоном рабочего дня. Если передан SlotID,
// он обязан распарситься, совпасть с датой запроса и с шаблоном; время
// начала из него становится канонным.
func validateSlot(req *Request) error {
	if req.SlotID != "" {
		parsed, err := domain.ParseSlotID(req.SlotID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSlot, err)
		}
		if parsed.Date != req.Date.Format(domain.DateFormat) {
			return fmt.Errorf("%w: slot id date does not match appointmentDate", ErrInvalidSlot)
		}

		// Слот должен входить в сгенерированный набор на эту дату —
		// защита от подделанных и устаревших идентификаторов
		if !slotIDIsGenerated(req.SlotID, parsed.Date) {
			return fmt.Errorf("%w: slot id is not a bookable slot", ErrInvalidSlot)
		}

		start := hhmmToTimeString(parsed.StartHHMM)

		if req.StartTime != "" && req.StartTime != start {
			return fmt.Errorf("%w: startTime does not match slot id", ErrInvalidSlot)
		}
		req.StartTime = start
		return nil
	}

	if req.StartTime == "" {
		return fmt.Errorf("%w: startTime or slotId is required", ErrInvalidInput)
	}
	if !req.StartTime.IsValid() {
		return fmt.Errorf("%w: startTime must be HH:MM", ErrInvalidInput)
	}
	// Время начала обязано точно совпадать с началом одного из слотов шаблона
	if !domain.IsTemplateStartTime(req.StartTime) {
		return fmt.Errorf("%w: startTime %s is not a template slot", ErrInvalidSlot, req.StartTime)
	}

	return nil
}

// slotIDIsGenerated проверяет, что слот входит в набор генератора на дату
func slotIDIsGenerated(slotID, date string) bool {
	for _, s := range domain.SlotsForDate(date) {
		if s.SlotID == slotID {
			return true
		}
	}
	return false
}

func hhmmToTimeString(hhmm string) (ts types.TimeString) {
	if len(hhmm) == 4 {
		ts = types.TimeString(hhmm[:2] + ":" + hhmm[2:])
	}
	return ts
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня.
// Сравниваются календарные даты, а не моменты: текущее время сначала
// приводится к локации даты запроса, иначе на сервере западнее UTC
// полночь UTC сегодняшнего дня оказывается раньше локальной полуночи
// и сегодняшняя дата отбрасывается как прошедшая.
func isDateInPast(date, now time.Time) bool {
	nowThere := now.In(date.Location())
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(nowThere.Year(), nowThere.Month(), nowThere.Day(), 0, 0, 0, 0, date.Location())
	return dateOnly.Before(nowOnly)
}
