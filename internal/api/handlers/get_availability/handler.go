package get_availability

import (
	"errors"
	"net/http"

	"github.com/kc-frost/vet-clinic/internal/api/handlers"
	getAvailability "github.com/kc-frost/vet-clinic/internal/usecase/get_availability"
)

const (
	msgMissingReasonKey = "reasonKey is required"
	msgUnknownReasonKey = "unknown reasonKey"
	msgMissingDates     = "startDate and endDate are required"
	msgInvalidDate      = "startDate and endDate must be YYYY-MM-DD"
	msgInvalidDateRange = "startDate must be before or equal to endDate"
)

const (
	codeInvalidReasonKey = "INVALID_REASON_KEY"
	codeInvalidDate      = "INVALID_DATE_FORMAT"
	codeInvalidRange     = "INVALID_DATE_RANGE"
	codeServerError      = "SERVER_ERROR"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/availability
// Query params: reasonKey, startDate, endDate (все обязательны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	reasonKey := query.Get("reasonKey")
	if reasonKey == "" {
		h.logger.Warn("GET /appointments/availability - Missing reason key")
		handlers.RespondErrorCode(w, http.StatusBadRequest, msgMissingReasonKey, codeInvalidReasonKey)
		return
	}

	startDateStr := query.Get("startDate")
	endDateStr := query.Get("endDate")
	if startDateStr == "" || endDateStr == "" {
		h.logger.Warn("GET /appointments/availability - Missing dates")
		handlers.RespondErrorCode(w, http.StatusBadRequest, msgMissingDates, codeInvalidDate)
		return
	}

	// Формируем запрос к use case (с парсингом дат)
	useCaseReq, err := ToUseCaseRequest(reasonKey, startDateStr, endDateStr)
	if err != nil {
		h.logger.Warn("GET /appointments/availability - Invalid date format: %v", err)
		handlers.RespondErrorCode(w, http.StatusBadRequest, msgInvalidDate, codeInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrUnknownReason):
			h.logger.Warn("GET /appointments/availability - Unknown reason key: %s", reasonKey)
			handlers.RespondErrorCode(w, http.StatusBadRequest, msgUnknownReasonKey, codeInvalidReasonKey)

		case errors.Is(err, getAvailability.ErrInvalidDateRange):
			h.logger.Warn("GET /appointments/availability - Inverted date range: %s..%s", startDateStr, endDateStr)
			handlers.RespondErrorCode(w, http.StatusBadRequest, msgInvalidDateRange, codeInvalidRange)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /appointments/availability - Invalid input: %v", err)
			handlers.RespondErrorCode(w, http.StatusBadRequest, msgInvalidDate, codeInvalidDate)

		default:
			h.logger.Error("GET /appointments/availability - Failed to get availability: reason=%s, error=%v",
				reasonKey, err)
			handlers.RespondErrorCode(w, http.StatusInternalServerError, "internal server error", codeServerError)
		}
		return
	}

	// Пустой список слотов — валидный ответ 200
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /appointments/availability - %d slots returned: reason=%s, range=%s..%s",
		len(response.Slots), reasonKey, startDateStr, endDateStr)
	handlers.RespondJSON(w, http.StatusOK, response)
}
