package create_appointment

import (
	"time"

	"github.com/kc-frost/vet-clinic/internal/domain"
	createAppointment "github.com/kc-frost/vet-clinic/internal/usecase/create_appointment"
	"github.com/kc-frost/vet-clinic/pkg/types"
)

// CreateAppointmentRequest HTTP request model.
// Слот задаётся либо appointmentTimeSlot (slot_YYYY-MM-DD_HHMM_HHMM_room),
// либо парой appointmentDate + startTime.
type CreateAppointmentRequest struct {
	Email               string  `json:"email"`
	ReasonForVisit      string  `json:"reasonForVisit"`
	ReasonDetails       *string `json:"reasonDetails,omitempty"`
	AppointmentDate     string  `json:"appointmentDate"`
	StartTime           string  `json:"startTime,omitempty"`
	AppointmentTimeSlot string  `json:"appointmentTimeSlot,omitempty"`
	VetID               *int64  `json:"vetId,omitempty"`
	PetID               *int64  `json:"petId,omitempty"`
}

// CreateAppointmentResponse HTTP response model созданной записи
type CreateAppointmentResponse struct {
	ID               int64   `json:"id"`
	ReservationRef   string  `json:"reservationRef"`
	Email            string  `json:"email"`
	ReasonForVisit   string  `json:"reasonForVisit"`
	AppointmentDate  string  `json:"appointmentDate"`
	StartTime        string  `json:"startTime"`
	EquipmentSummary *string `json:"equipmentSummary,omitempty"`
	CreatedAt        string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		UserEmail:     r.Email,
		ReasonKey:     domain.ReasonKey(r.ReasonForVisit),
		ReasonDetails: r.ReasonDetails,
		Date:          date,
		StartTime:     types.TimeString(r.StartTime),
		SlotID:        r.AppointmentTimeSlot,
		VetID:         r.VetID,
		PetID:         r.PetID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		ID:               resp.ID,
		ReservationRef:   resp.ReservationRef,
		Email:            resp.UserEmail,
		ReasonForVisit:   string(resp.ReasonKey),
		AppointmentDate:  resp.Date,
		StartTime:        resp.StartTime.String(),
		EquipmentSummary: resp.EquipmentSummary,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}
