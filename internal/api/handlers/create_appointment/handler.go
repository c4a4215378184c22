package create_appointment

import (
	"errors"
	"net/http"

	"github.com/kc-frost/vet-clinic/internal/api/handlers"
	createAppointment "github.com/kc-frost/vet-clinic/internal/usecase/create_appointment"
)

const (
	msgInvalidBody      = "invalid request body"
	msgMissingData      = "email, reasonForVisit and appointmentDate are required"
	msgInvalidDate      = "appointmentDate must be YYYY-MM-DD"
	msgPastDate         = "appointmentDate must not be in the past"
	msgUnknownReasonKey = "unknown reasonForVisit"
	msgInvalidSlot      = "requested time slot is not bookable"
	msgSlotConflict     = "the selected slot is no longer available"
)

const (
	codeMissingData      = "MISSING_DATA"
	codeInvalidDate      = "INVALID_DATE_FORMAT"
	codePastDate         = "PAST_DATE"
	codeInvalidReasonKey = "INVALID_REASON_KEY"
	codeInvalidSlot      = "INVALID_SLOT"
	codeConflict         = "CONFLICT"
	codeServerError      = "SERVER_ERROR"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondErrorCode(w, http.StatusBadRequest, msgInvalidBody, codeMissingData)
		return
	}

	// Базовая проверка наличия полей до парсинга даты, чтобы отличать
	// MISSING_DATA от INVALID_DATE_FORMAT
	if req.Email == "" || req.ReasonForVisit == "" || req.AppointmentDate == "" {
		h.logger.Warn("POST /appointments - Missing required fields")
		handlers.RespondErrorCode(w, http.StatusBadRequest, msgMissingData, codeMissingData)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date format: %s", req.AppointmentDate)
		handlers.RespondErrorCode(w, http.StatusBadRequest, msgInvalidDate, codeInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotCapacityExceeded):
			// Конфликт вместимости: запрос корректен, ресурс занят
			h.logger.Warn("POST /appointments - Slot conflict: reason=%s, date=%s, start=%s",
				req.ReasonForVisit, req.AppointmentDate, req.StartTime)
			handlers.RespondErrorCode(w, http.StatusConflict, msgSlotConflict, codeConflict)

		case errors.Is(err, createAppointment.ErrUnknownReason):
			h.logger.Warn("POST /appointments - Unknown reason key: %s", req.ReasonForVisit)
			handlers.RespondErrorCode(w, http.StatusBadRequest, msgUnknownReasonKey, codeInvalidReasonKey)

		case errors.Is(err, createAppointment.ErrPastDate):
			h.logger.Warn("POST /appointments - Past date: %s", req.AppointmentDate)
			handlers.RespondErrorCode(w, http.StatusBadRequest, msgPastDate, codePastDate)

		case errors.Is(err, createAppointment.ErrInvalidSlot):
			h.logger.Warn("POST /appointments - Invalid slot: %v", err)
			handlers.RespondErrorCode(w, http.StatusBadRequest, msgInvalidSlot, codeInvalidSlot)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: %v", err)
			handlers.RespondErrorCode(w, http.StatusBadRequest, msgInvalidDate, codeInvalidDate)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondErrorCode(w, http.StatusBadRequest, msgMissingData, codeMissingData)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: email=%s, error=%v",
				req.Email, err)
			handlers.RespondErrorCode(w, http.StatusInternalServerError, "internal server error", codeServerError)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: ref=%s, reason=%s, date=%s, start=%s",
		result.ReservationRef, result.ReasonKey, result.Date, result.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
