package domain

import "time"

// BookingOutcome итог попытки бронирования для журнала
type BookingOutcome string

const (
	OutcomeBooked       BookingOutcome = "booked"
	OutcomeBufferFailed BookingOutcome = "buffer_failed"
	OutcomeTaskFailed   BookingOutcome = "task_failed"
)

// BookingRecord строка журнала бронирований, выполненных через сервис.
// Журнал денормализован для истории: сами записи живут в upstream-системе.
type BookingRecord struct {
	ID                int64
	SessionID         string
	SlotID            string
	AppointmentTypeID AppointmentTypeID
	TypeDisplayName   string
	StartTime         time.Time
	DurationMinutes   int
	IsBuffer          bool
	HasDualBooking    bool
	PatientName       string
	Outcome           BookingOutcome
	CreatedAt         time.Time
}
