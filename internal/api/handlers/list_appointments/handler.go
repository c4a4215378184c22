package list_appointments

import (
	"errors"
	"net/http"

	"github.com/kc-frost/vet-clinic/internal/api/handlers"
	"github.com/kc-frost/vet-clinic/internal/service/appointments"
	"github.com/kc-frost/vet-clinic/internal/service/appointments/models"
)

const (
	msgInvalidInput = "invalid request parameters"
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

// Handle GET /api/v1/appointments
// Query params: userEmail (опциональный фильтр)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListAppointmentsRequest{}
	if email := r.URL.Query().Get("userEmail"); email != "" {
		req.UserEmail = &email
	}

	result, err := h.service.ListUpcoming(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - %d appointments returned", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
