package get_availability

import (
	"fmt"

	"github.com/kc-frost/vet-clinic/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Выполняется до любого обращения к хранилищу.
func validateRequest(req *Request) error {
	if req.ReasonKey == "" {
		return fmt.Errorf("%w: reasonKey is required", ErrInvalidInput)
	}

	// Неизвестная причина — отказ, а не требование по умолчанию
	if !domain.IsKnownReason(req.ReasonKey) {
		return fmt.Errorf("%w: %q", ErrUnknownReason, req.ReasonKey)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.StartDate.After(req.EndDate) {
		return ErrInvalidDateRange
	}

	return nil
}
