package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SlotID       string  `json:"slotId"`
	PatientName  string  `json:"patientName"`
	PatientEmail *string `json:"patientEmail,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	AppointmentID  int64    `json:"appointmentId"`
	Start          string   `json:"start"`
	End            string   `json:"end"`
	BufferBooked   bool     `json:"bufferBooked"`
	HasDualBooking bool     `json:"hasDualBooking"`
	Warnings       []string `json:"warnings,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(sessionID string) *createBooking.Request {
	return &createBooking.Request{
		SessionID:    sessionID,
		SlotID:       r.SlotID,
		PatientName:  r.PatientName,
		PatientEmail: r.PatientEmail,
		Notes:        r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		AppointmentID:  resp.AppointmentID,
		Start:          resp.Start.Format(time.RFC3339),
		End:            resp.End.Format(time.RFC3339),
		BufferBooked:   resp.BufferBooked,
		HasDualBooking: resp.HasDualBooking,
		Warnings:       resp.Warnings,
	}
}
