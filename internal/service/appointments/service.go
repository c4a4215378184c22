package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	apptRepo "github.com/kc-frost/vet-clinic/internal/infra/storage/appointment"
	"github.com/kc-frost/vet-clinic/internal/service/appointments/models"
	"github.com/kc-frost/vet-clinic/pkg/ptr"
)

// Service сервис для простых операций над приёмами: просмотр и удаление.
// Логика вместимости сюда не входит — она живёт в usecase'ах.
type Service struct {
	apptRepo     AppointmentRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса приёмов
func NewService(
	apptRepo AppointmentRepository,
	logger Logger,
) *Service {
	return &Service{
		apptRepo:     apptRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает запись о приёме по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// ListUpcoming получает текущие и будущие приёмы начиная с сегодняшней
// полуночи, по возрастанию времени начала. Опциональный фильтр по email.
func (s *Service) ListUpcoming(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListUpcoming: fetching upcoming appointments (email filter=%q)", ptr.Deref(req.UserEmail))

	// Отсечка считается по календарю UTC: start_at приёмов собирается из
	// дат, разобранных в UTC, поэтому локальная зона сервера не должна
	// сдвигать границу "сегодня"
	now := s.timeProvider.Now().In(time.UTC)
	todayMidnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	appts, err := s.apptRepo.GetUpcoming(ctx, todayMidnight, req.UserEmail)
	if err != nil {
		s.logger.Error("ListUpcoming: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUpcoming - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListUpcoming: fetched %d appointments", len(appts))
	return models.FromDomainAppointmentList(appts), nil
}

// Delete удаляет запись о приёме. Освобождение слота происходит само собой:
// занятость пересчитывается из существующих строк при следующем чтении.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := s.apptRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}
