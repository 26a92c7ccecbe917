package scheduling

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// CandidateSlot гипотетический интервал, порождённый генератором.
// Живёт только внутри одного вычисления.
type CandidateSlot struct {
	Interval Interval

	// DualBookingAlreadyPresent выставляется для кандидатов, синтезированных
	// поверх существующей dual-записи (вторая запись на занятый dual-слот)
	DualBookingAlreadyPresent bool
}

// alignToStep выравнивает время вверх к ближайшей границе :00 или :30.
// Уже выровненное время не меняется.
func alignToStep(t time.Time, step time.Duration) time.Time {
	aligned := t.Truncate(step)
	if aligned.Equal(t) {
		return t
	}
	return aligned.Add(step)
}

// generateCandidates перебирает кандидатов внутри окон доступности запрошенного типа.
// От выровненного начала окна шагаем фиксированными шагами; кандидат попадает
// в результат, только если его длительность целиком помещается в окно.
func generateCandidates(typ domain.AppointmentType, windows []domain.AvailabilityWindow, step time.Duration) []CandidateSlot {
	duration := time.Duration(typ.DurationMinutes) * time.Minute

	candidates := make([]CandidateSlot, 0)

	for _, w := range windows {
		if w.AppointmentTypeID != typ.ID {
			continue
		}

		for start := alignToStep(w.Start, step); start.Before(w.End); start = start.Add(step) {
			end := start.Add(duration)
			if end.After(w.End) {
				continue
			}
			candidates = append(candidates, CandidateSlot{
				Interval: NewInterval(start, end),
			})
		}
	}

	return candidates
}

// synthesizeDualCandidates для dual-bookable типа порождает кандидатов,
// зеркалящих существующие dual-записи той же длительности: вторая запись
// может лечь ровно на уже занятый dual-слот. Добавляются после обычной серии.
func synthesizeDualCandidates(typ domain.AppointmentType, appointments []domain.Appointment, catalog *domain.Catalog) []CandidateSlot {
	if !typ.DualBookable {
		return nil
	}

	candidates := make([]CandidateSlot, 0)

	for _, appt := range appointments {
		apptType, ok := catalog.ByInternalName(appt.InternalTypeName)
		if !ok || !apptType.DualBookable {
			continue
		}
		if appt.DurationMinutes() != typ.DurationMinutes {
			continue
		}

		candidates = append(candidates, CandidateSlot{
			Interval:                  NewInterval(appt.Start, appt.End),
			DualBookingAlreadyPresent: true,
		})
	}

	return candidates
}
