package create_appointment

import "errors"

var (
	// ErrUnknownReason возвращается, когда причина визита отсутствует в таблице требований
	ErrUnknownReason = errors.New("create_appointment: unknown reason key")

	// ErrInvalidDate возвращается при некорректной или прошедшей дате приёма
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrPastDate возвращается, когда дата приёма уже прошла
	ErrPastDate = errors.New("create_appointment: appointment date is in the past")

	// ErrInvalidSlot возвращается, когда идентификатор слота не парсится,
	// не совпадает с выбранной датой либо время начала не из шаблона
	ErrInvalidSlot = errors.New("create_appointment: invalid time slot")

	// ErrSlotCapacityExceeded возвращается, когда требование причины не
	// помещается в оставшуюся вместимость слота. Это конфликт вместимости,
	// а не ошибка валидации: запрос корректен, ресурс занят.
	ErrSlotCapacityExceeded = errors.New("create_appointment: slot capacity exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
