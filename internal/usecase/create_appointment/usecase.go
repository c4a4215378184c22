package create_appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/kc-frost/vet-clinic/internal/domain"
	"github.com/kc-frost/vet-clinic/pkg/types"
)

// UseCase use case создания записи о приёме.
// Единственная мутирующая операция ядра. Проверка вместимости и вставка
// выполняются в сериализуемой транзакции с блокировкой строк дня (FOR
// UPDATE в репозитории), иначе две конкурентные заявки могут обе увидеть
// свободный слот и обе закоммититься, превысив вместимость.
type UseCase struct {
	apptRepo     AppointmentRepository
	resourceRepo ResourceRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	resourceRepo ResourceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		resourceRepo: resourceRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи о приёме
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: email=%s, reason=%s, date=%s, start=%s, slotId=%q",
		req.UserEmail, req.ReasonKey, req.Date.Format(domain.DateFormat), req.StartTime, req.SlotID)

	// 1. Валидация входных данных — до любого обращения к хранилищу.
	// Заполняет req.StartTime каноническим временем начала слота.
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	reasonKey := domain.NormalizeReasonKey(string(req.ReasonKey))
	requirement, _ := domain.RequirementFor(reasonKey)

	var result *domain.Appointment

	// 2. Проверка вместимости и вставка — одна атомарная единица
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Срез установленной вместимости
		capacity, err := uc.resourceRepo.Snapshot(txCtx)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to load capacity snapshot: %v", err)
			return fmt.Errorf("%w: failed to load capacity snapshot: %v", ErrInternal, err)
		}

		// 2.2. Все приёмы целевого дня под блокировкой FOR UPDATE.
		// Блокируется день целиком, а не слот: занятость любого слота
		// зависит от полного набора приёмов этой даты.
		rows, err := uc.apptRepo.GetRowsInRange(txCtx, req.Date, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to load day appointments: %v", err)
			return fmt.Errorf("%w: failed to load day appointments: %v", ErrInternal, err)
		}

		// 2.3. Занятость дня и проверка целевого слота
		usage := domain.BuildSlotUsage(rows)
		slotUsage := usage.Lookup(req.Date.Format(domain.DateFormat), req.StartTime)

		if !domain.RequirementFits(requirement, capacity, slotUsage) {
			uc.logger.Warn("CreateAppointment: capacity conflict for reason=%s, date=%s, start=%s",
				reasonKey, req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrSlotCapacityExceeded
		}

		// 2.4. Вставка записи с комбинированной датой-временем
		startAt, err := combineDateTime(req.Date, req.StartTime)
		if err != nil {
			return fmt.Errorf("%w: failed to combine date and time: %v", ErrInternal, err)
		}

		appt := &domain.Appointment{
			UserEmail:        req.UserEmail,
			VetID:            req.VetID,
			PetID:            req.PetID,
			ReasonKey:        reasonKey,
			ReasonDetails:    req.ReasonDetails,
			StartAt:          startAt,
			EquipmentSummary: domain.EquipmentSummaryFor(requirement),
		}

		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d (%s)",
		result.ID, result.ReservationRef())

	return &Response{
		ID:               result.ID,
		ReservationRef:   result.ReservationRef(),
		UserEmail:        result.UserEmail,
		ReasonKey:        result.ReasonKey,
		Date:             result.Date(),
		StartTime:        req.StartTime,
		EquipmentSummary: result.EquipmentSummary,
		CreatedAt:        result.CreatedAt,
	}, nil
}

// combineDateTime склеивает дату приёма и время начала слота
func combineDateTime(date time.Time, start types.TimeString) (time.Time, error) {
	minutes, err := start.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location()), nil
}
