package get_available_slots

import "errors"

var (
	// ErrTypeNotFound возвращается, когда запрошенный тип приёма отсутствует в каталоге
	ErrTypeNotFound = errors.New("appointment type not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrPeriodInPast возвращается, когда запрошенный период целиком в прошлом
	ErrPeriodInPast = errors.New("requested period is in the past")

	// ErrPeriodTooLong возвращается, когда запрошенный период превышает допустимый
	ErrPeriodTooLong = errors.New("requested period is too long")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
