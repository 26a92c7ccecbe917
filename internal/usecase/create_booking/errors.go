package create_booking

import "errors"

var (
	// ErrSlotExpired возвращается, когда снапшот слота не найден в сессии:
	// слот никогда не показывался или сессия истекла
	ErrSlotExpired = errors.New("slot snapshot expired or unknown")

	// ErrSlotNotAvailable возвращается, когда upstream-система отклонила запись из-за конфликта
	ErrSlotNotAvailable = errors.New("slot is no longer available")

	// ErrTypeNotFound возвращается, когда тип приёма отсутствует в каталоге
	ErrTypeNotFound = errors.New("appointment type not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
