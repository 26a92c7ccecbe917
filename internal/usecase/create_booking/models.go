package create_booking

import "time"

// Request модель запроса на бронирование слота
type Request struct {
	SessionID    string  // Сессия, в которой слот был показан
	SlotID       string  // Идентификатор снапшота из ответа со слотами
	PatientName  string  // Имя пациента
	PatientEmail *string // Email пациента (опционально)
	Notes        *string // Комментарий к записи (опционально)
}

// Response модель ответа на бронирование.
// Warnings заполняется при частичном успехе: основная запись создана,
// но буфер или напоминание создать не удалось.
type Response struct {
	AppointmentID  int64     // ID основной записи в upstream-системе
	Start          time.Time // Время начала приёма
	End            time.Time // Время окончания приёма
	BufferBooked   bool      // Буферная запись создана
	HasDualBooking bool      // Слот делил интервал с существующей dual-записью
	Warnings       []string  // Предупреждения частичного успеха
}

// Предупреждения частичного успеха
const (
	WarningBufferFailed = "buffer appointment could not be created; provider workload protection is not in place"
	WarningTaskFailed   = "reminder task could not be created"
	WarningLogFailed    = "booking was created but could not be journaled"
)
