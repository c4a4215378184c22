package get_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kc-frost/vet-clinic/internal/api/handlers"
	"github.com/kc-frost/vet-clinic/internal/service/appointments"
)

const (
	msgInvalidID  = "appointment id must be a positive integer"
	msgNotFound   = "appointment not found"
	codeNotFound  = "NOT_FOUND"
	codeServerErr = "SERVER_ERROR"
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

// Handle GET /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("GET /appointments/{id} - Invalid id: %s", idStr)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id} - Not found: id=%d", id)
			handlers.RespondErrorCode(w, http.StatusNotFound, msgNotFound, codeNotFound)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidID)

		default:
			h.logger.Error("GET /appointments/{id} - Failed to get appointment id=%d: %v", id, err)
			handlers.RespondErrorCode(w, http.StatusInternalServerError, "internal server error", codeServerErr)
		}
		return
	}

	h.logger.Info("GET /appointments/{id} - Appointment id=%d returned", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
