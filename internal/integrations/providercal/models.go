package providercal

import "time"

// AppointmentType модель типа приёма из календаря провайдера
type AppointmentType struct {
	ID              int64  `json:"id"`
	DisplayName     string `json:"display_name"`
	InternalName    string `json:"internal_name"`
	DurationMinutes int    `json:"duration_minutes"`
	DualBookable    bool   `json:"dual_bookable"`
}

// AvailabilityWindow окно доступности провайдера для одного типа приёма.
// Времена уже приведены upstream-системой к UTC.
type AvailabilityWindow struct {
	Start             time.Time `json:"start"`
	End               time.Time `json:"end"`
	AppointmentTypeID int64     `json:"appointment_type_id"`
}

// Appointment существующая запись в календаре провайдера
type Appointment struct {
	ID               int64     `json:"id"`
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	InternalTypeName string    `json:"internal_type_name"`
	Status           string    `json:"status"`
}

// CreateAppointmentRequest запрос на создание записи
type CreateAppointmentRequest struct {
	AppointmentTypeID int64     `json:"appointment_type_id"`
	Start             time.Time `json:"start"`
	DurationMinutes   int       `json:"duration_minutes"`
	PatientName       string    `json:"patient_name"`
	PatientEmail      *string   `json:"patient_email,omitempty"`
	Notes             *string   `json:"notes,omitempty"`
}

// CreatedAppointment ответ upstream-системы на создание записи
type CreatedAppointment struct {
	ID                int64     `json:"id"`
	AppointmentTypeID int64     `json:"appointment_type_id"`
	Start             time.Time `json:"start"`
	End               time.Time `json:"end"`
	Status            string    `json:"status"`
}

// CreateTaskRequest запрос на создание задачи-напоминания для провайдера
type CreateTaskRequest struct {
	Description string    `json:"description"`
	DueAt       time.Time `json:"due_at"`
}

// ErrorResponse модель ошибки от календаря провайдера
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
