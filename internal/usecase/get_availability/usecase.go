package get_availability

import (
	"context"
	"fmt"

	"github.com/kc-frost/vet-clinic/internal/domain"
)

// UseCase use case получения доступных слотов для записи на приём.
// Чтение без побочных эффектов: два запуска подряд без новых бронирований
// возвращают идентичные списки в одном и том же порядке.
type UseCase struct {
	apptRepo     AppointmentRepository
	resourceRepo ResourceRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	resourceRepo ResourceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: reason=%s, range=%s..%s",
		req.ReasonKey, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных (причина, формат и порядок дат)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	requirement, _ := domain.RequirementFor(req.ReasonKey)

	// 2. Срез вместимости — один раз на весь диапазон
	capacity, err := uc.resourceRepo.Snapshot(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to load capacity snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to load capacity snapshot: %v", ErrInternal, err)
	}

	// 3. Существующие приёмы в диапазоне — тоже один раз
	rows, err := uc.apptRepo.GetRowsInRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}

	// 4. Сворачиваем приёмы в занятость по слотам
	usage := domain.BuildSlotUsage(rows)

	// 5. Генерируем календарь слотов и фильтруем по вместимости
	slots := make([]AvailableSlot, 0)
	for slot := range domain.SlotCalendar(req.StartDate, req.EndDate) {
		slotUsage := usage.Lookup(slot.Date, slot.StartTime)
		if domain.RequirementFits(requirement, capacity, slotUsage) {
			slots = append(slots, fromDomainSlot(slot))
		}
	}

	// Пустой список — нормальный ответ, а не ошибка
	uc.logger.Info("GetAvailability: %d bookable slots for reason=%s in %s..%s",
		len(slots), req.ReasonKey, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	return &Response{
		ReasonKey: req.ReasonKey,
		Slots:     slots,
	}, nil
}
