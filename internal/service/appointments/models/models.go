package models

import (
	"time"

	"github.com/kc-frost/vet-clinic/internal/domain"
)

// Request модели

// ListAppointmentsRequest запрос списка текущих и будущих приёмов
type ListAppointmentsRequest struct {
	UserEmail *string `json:"userEmail,omitempty"` // Фильтр по контакту (опционально)
}

// Response модели

// AppointmentResponse ответ с данными приёма
type AppointmentResponse struct {
	ID               int64   `json:"id"`
	ReservationRef   string  `json:"reservationRef"` // "apt_<id>"
	UserEmail        string  `json:"userEmail"`
	VetID            *int64  `json:"vetId,omitempty"`
	PetID            *int64  `json:"petId,omitempty"`
	ReasonKey        string  `json:"reasonKey"`
	ReasonDetails    *string `json:"reasonDetails,omitempty"`
	Date             string  `json:"date"`      // "2026-02-15"
	StartTime        string  `json:"startTime"` // "09:00"
	StartAt          string  `json:"startAt"`   // ISO 8601
	EquipmentSummary *string `json:"equipmentSummary,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком приёмов
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:               a.ID,
		ReservationRef:   a.ReservationRef(),
		UserEmail:        a.UserEmail,
		VetID:            a.VetID,
		PetID:            a.PetID,
		ReasonKey:        string(a.ReasonKey),
		ReasonDetails:    a.ReasonDetails,
		Date:             a.Date(),
		StartTime:        a.StartTimeString(),
		StartAt:          a.StartAt.Format(time.RFC3339),
		EquipmentSummary: a.EquipmentSummary,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	if appts == nil {
		return &AppointmentListResponse{
			Appointments: []AppointmentResponse{},
		}
	}

	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appts)),
	}

	for i, appt := range appts {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments[i] = *apptResp
		}
	}

	return resp
}
