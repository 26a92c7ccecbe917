package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	AppointmentTypeID int64           `json:"appointmentTypeId"`
	From              string          `json:"from"`
	To                string          `json:"to"`
	Slots             []AvailableSlot `json:"slots"`
}

// AvailableSlot модель доступного слота
type AvailableSlot struct {
	SlotID          string  `json:"slotId"`
	Start           string  `json:"start"`
	End             string  `json:"end"`
	DurationMinutes int     `json:"durationMinutes"`
	HasDualBooking  bool    `json:"hasDualBooking"`
	RequiresBuffer  bool    `json:"requiresBuffer"`
	BufferStart     *string `json:"bufferStart,omitempty"`
}

// ToUseCaseRequest создает запрос use case из query параметров.
// Даты в формате YYYY-MM-DD; дата to включается в период целиком.
func ToUseCaseRequest(sessionID string, appointmentTypeID int64, fromStr, toStr string) (*getAvailableSlots.Request, error) {
	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		return nil, err
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		SessionID:         sessionID,
		AppointmentTypeID: appointmentTypeID,
		From:              from,
		To:                to.AddDate(0, 0, 1),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		out := AvailableSlot{
			SlotID:          slot.SlotID,
			Start:           slot.Start.Format(time.RFC3339),
			End:             slot.End.Format(time.RFC3339),
			DurationMinutes: slot.DurationMinutes,
			HasDualBooking:  slot.HasDualBooking,
			RequiresBuffer:  slot.RequiresBuffer,
		}
		if slot.BufferStart != nil {
			formatted := slot.BufferStart.Format(time.RFC3339)
			out.BufferStart = &formatted
		}
		slots[i] = out
	}

	return &AvailableSlotsResponse{
		AppointmentTypeID: resp.AppointmentTypeID,
		From:              resp.From.Format(domain.DateFormat),
		To:                resp.To.AddDate(0, 0, -1).Format(domain.DateFormat),
		Slots:             slots,
	}
}
