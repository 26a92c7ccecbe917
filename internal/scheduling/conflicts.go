package scheduling

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// survivingSlot кандидат, прошедший фильтр конфликтов, с пометкой dual-бронирования
type survivingSlot struct {
	candidate      CandidateSlot
	hasDualBooking bool
}

// filterConflicts отбрасывает кандидатов, пересекающихся с существующими записями.
//
// Для обычных типов любое пересечение отклоняет кандидата.
// Для dual-bookable типов действует узкое исключение: кандидат может
// сосуществовать не более чем с ОДНОЙ пересекающейся записью, и только если
// та сама dual-bookable и её интервал ТОЧНО совпадает с кандидатом.
// Частичное пересечение с dual-записью или вторая пересекающаяся dual-запись
// всё равно отклоняют кандидата.
//
// appointments уже очищены от игнорируемых типов (см. Engine.blockingAppointments).
func filterConflicts(
	candidates []CandidateSlot,
	appointments []domain.Appointment,
	typ domain.AppointmentType,
	catalog *domain.Catalog,
) []survivingSlot {
	survivors := make([]survivingSlot, 0, len(candidates))

	for _, cand := range candidates {
		overlapping := make([]domain.Appointment, 0, 2)
		for _, appt := range appointments {
			if cand.Interval.Overlaps(NewInterval(appt.Start, appt.End)) {
				overlapping = append(overlapping, appt)
			}
		}

		if len(overlapping) == 0 {
			survivors = append(survivors, survivingSlot{candidate: cand})
			continue
		}

		if !typ.DualBookable || len(overlapping) > 1 {
			continue
		}

		// Единственное пересечение: допустимо только точное совпадение
		// с dual-bookable записью
		appt := overlapping[0]
		apptType, ok := catalog.ByInternalName(appt.InternalTypeName)
		if !ok || !apptType.DualBookable {
			continue
		}
		if !cand.Interval.Equal(NewInterval(appt.Start, appt.End)) {
			continue
		}

		survivors = append(survivors, survivingSlot{candidate: cand, hasDualBooking: true})
	}

	return survivors
}
