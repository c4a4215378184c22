package get_availability

import "errors"

var (
	// ErrUnknownReason возвращается, когда причина визита отсутствует в таблице требований
	ErrUnknownReason = errors.New("get_availability: unknown reason key")

	// ErrInvalidDateRange возвращается, когда startDate > endDate
	ErrInvalidDateRange = errors.New("get_availability: start date must be before or equal to end date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
