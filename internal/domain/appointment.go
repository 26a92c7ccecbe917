package domain

import "time"

// AppointmentStatus статус записи в календаре провайдера
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCheckedIn AppointmentStatus = "checked_in"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment существующая запись в календаре провайдера.
// Только чтение: создаётся на время одного вычисления и не мутируется.
type Appointment struct {
	Start            time.Time // UTC
	End              time.Time // UTC
	InternalTypeName string    // Upstream идентифицирует записи по internal name, не по id
	Status           AppointmentStatus
}

// IsConfirmedOrCheckedIn true для статусов, которые блокируют размещение буфера
func (a Appointment) IsConfirmedOrCheckedIn() bool {
	return a.Status == StatusConfirmed || a.Status == StatusCheckedIn
}

// DurationMinutes длительность записи в минутах
func (a Appointment) DurationMinutes() int {
	return int(a.End.Sub(a.Start) / time.Minute)
}

// AvailabilityWindow непрерывный период, в который провайдер принимает
// пациентов по одному типу приёма. Окон на тип может быть несколько,
// в том числе несмежных.
type AvailabilityWindow struct {
	Start             time.Time
	End               time.Time
	AppointmentTypeID AppointmentTypeID
}
