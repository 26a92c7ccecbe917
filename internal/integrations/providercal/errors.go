package providercal

import "errors"

var (
	// ErrTypeNotFound возвращается, когда запрошенный тип приёма не известен upstream-системе
	ErrTypeNotFound = errors.New("providercal client: appointment type not found")

	// ErrSlotConflict возвращается, когда upstream-система отклонила запись из-за конфликта времени
	ErrSlotConflict = errors.New("providercal client: slot conflict")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("providercal client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от календаря провайдера
	ErrInvalidResponse = errors.New("providercal client: invalid response")
)
