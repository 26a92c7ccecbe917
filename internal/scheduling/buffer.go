package scheduling

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// bufferInterval интервал буферной записи: начинается ровно в конце кандидата
func bufferInterval(candidate Interval, duration time.Duration) Interval {
	return NewInterval(candidate.End, candidate.End.Add(duration))
}

// bufferCollides проверяет, пересекается ли буфер с подтверждённой или
// зарегистрированной (checked-in) записью. Остальные статусы размещению
// буфера не мешают.
//
// Буферы защищают перерыв провайдера: основная запись, чей буфер
// гарантировать нельзя, отклоняется целиком, а не бронируется без защиты.
func bufferCollides(buffer Interval, appointments []domain.Appointment) bool {
	for _, appt := range appointments {
		if !appt.IsConfirmedOrCheckedIn() {
			continue
		}
		if buffer.Overlaps(NewInterval(appt.Start, appt.End)) {
			return true
		}
	}
	return false
}
