package delete_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kc-frost/vet-clinic/internal/api/handlers"
	"github.com/kc-frost/vet-clinic/internal/api/middleware"
	"github.com/kc-frost/vet-clinic/internal/service/appointments"
)

const (
	msgInvalidID = "appointment id must be a positive integer"
	msgNotFound  = "appointment not found"
	codeNotFound = "NOT_FOUND"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/appointments/{id}
// Отмена приёма удаляет строку; занятость слота пересчитается при
// следующем чтении.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /appointments/{id} - Invalid id: %s", idStr)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{id} - Not found: id=%d", id)
			handlers.RespondErrorCode(w, http.StatusNotFound, msgNotFound, codeNotFound)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("DELETE /appointments/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidID)

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed to delete appointment id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	staffEmail, _ := middleware.StaffEmailFromContext(r.Context())
	h.logger.Info("DELETE /appointments/{id} - Appointment id=%d deleted by %s", id, staffEmail)
	handlers.RespondNoContent(w)
}
