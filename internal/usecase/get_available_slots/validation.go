package get_available_slots

import (
	"fmt"
	"time"
)

// maxPeriodDays максимальная длина периода поиска слотов
const maxPeriodDays = 31

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if req.AppointmentTypeID <= 0 {
		return fmt.Errorf("%w: appointmentTypeID must be positive", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: period is required", ErrInvalidInput)
	}

	if !req.To.After(req.From) {
		return fmt.Errorf("%w: period end must be after start", ErrInvalidInput)
	}

	return nil
}

// validatePeriod проверяет период относительно текущего времени
func validatePeriod(from, to, now time.Time) error {
	if to.Before(now) {
		return ErrPeriodInPast
	}

	if to.Sub(from) > maxPeriodDays*24*time.Hour {
		return fmt.Errorf("%w: at most %d days per request", ErrPeriodTooLong, maxPeriodDays)
	}

	return nil
}
