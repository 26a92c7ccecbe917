package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	SessionID         string    // Сессия пациента; к ней привязываются снапшоты слотов
	AppointmentTypeID int64     // ID запрашиваемого типа приёма
	From              time.Time // Начало периода поиска
	To                time.Time // Конец периода поиска (не включается)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	AppointmentTypeID int64     // ID типа приёма
	From              time.Time // Начало периода
	To                time.Time // Конец периода
	Slots             []Slot    // Слоты в хронологическом порядке
}

// Slot модель доступного слота.
// SlotID — непрозрачный идентификатор: бронирование ссылается на снапшот,
// а не пересобирает интервал из времени.
type Slot struct {
	SlotID          string     // Идентификатор снапшота для последующего бронирования
	Start           time.Time  // Время начала приёма
	End             time.Time  // Время окончания приёма
	DurationMinutes int        // Длительность приёма
	HasDualBooking  bool       // Слот делит интервал с существующей dual-записью
	RequiresBuffer  bool       // Бронирование слота создаст буферную запись
	BufferStart     *time.Time // Начало буфера (если RequiresBuffer)
}

// fromDomainSlot конвертирует слот движка в модель ответа
func fromDomainSlot(slotID string, s domain.TimeSlot) Slot {
	out := Slot{
		SlotID:          slotID,
		Start:           s.Start,
		End:             s.End,
		DurationMinutes: s.Primary.DurationMinutes,
		HasDualBooking:  s.HasDualBooking,
		RequiresBuffer:  s.RequiresBuffer(),
	}
	if s.Buffer != nil {
		start := s.Buffer.Start
		out.BufferStart = &start
	}
	return out
}
