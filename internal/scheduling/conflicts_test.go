package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

func confirmed(start, end [3]int, internalName string) domain.Appointment {
	return domain.Appointment{
		Start:            ts(start[0], start[1], start[2]),
		End:              ts(end[0], end[1], end[2]),
		InternalTypeName: internalName,
		Status:           domain.StatusConfirmed,
	}
}

func TestFilterConflicts_NonDualType(t *testing.T) {
	catalog := testCatalog(t)

	candidates := []CandidateSlot{
		{Interval: iv(29, 10, 0, 10, 50)},  // пересекается с записью
		{Interval: iv(29, 11, 0, 11, 50)},  // впритык после записи — не конфликт
		{Interval: iv(29, 10, 30, 11, 20)}, // частичное пересечение
		{Interval: iv(29, 14, 0, 14, 50)},  // свободно
	}
	appointments := []domain.Appointment{
		confirmed([3]int{29, 10, 10}, [3]int{29, 11, 0}, "acupuncture"),
	}

	survivors := filterConflicts(candidates, appointments, testAcupuncture, catalog)

	require.Len(t, survivors, 2)
	assert.Equal(t, ts(29, 11, 0), survivors[0].candidate.Interval.Start)
	assert.Equal(t, ts(29, 14, 0), survivors[1].candidate.Interval.Start)
	for _, s := range survivors {
		assert.False(t, s.hasDualBooking)
	}
}

func TestFilterConflicts_DualExactMatchSurvives(t *testing.T) {
	catalog := testCatalog(t)

	candidates := []CandidateSlot{
		{Interval: iv(29, 15, 0, 15, 30)},
	}
	appointments := []domain.Appointment{
		confirmed([3]int{29, 15, 0}, [3]int{29, 15, 30}, "followup"),
	}

	survivors := filterConflicts(candidates, appointments, testFollowUp, catalog)

	require.Len(t, survivors, 1)
	assert.True(t, survivors[0].hasDualBooking)
}

func TestFilterConflicts_DualPartialOverlapRejected(t *testing.T) {
	// Частичное пересечение с dual-записью — всё равно отказ:
	// правило требует точного совпадения, а не нечёткого допуска
	catalog := testCatalog(t)

	candidates := []CandidateSlot{
		{Interval: iv(29, 15, 0, 15, 30)},
	}
	appointments := []domain.Appointment{
		confirmed([3]int{29, 15, 15}, [3]int{29, 15, 45}, "followup"),
	}

	survivors := filterConflicts(candidates, appointments, testFollowUp, catalog)
	assert.Empty(t, survivors)
}

func TestFilterConflicts_DualNonDualOverlapRejected(t *testing.T) {
	// Точное совпадение интервала, но запись не dual-bookable типа
	catalog := testCatalog(t)

	candidates := []CandidateSlot{
		{Interval: iv(29, 15, 0, 15, 30)},
	}
	appointments := []domain.Appointment{
		confirmed([3]int{29, 15, 0}, [3]int{29, 15, 30}, "acupuncture"),
	}

	survivors := filterConflicts(candidates, appointments, testFollowUp, catalog)
	assert.Empty(t, survivors)
}

func TestFilterConflicts_SecondOverlappingDualRejected(t *testing.T) {
	// Две пересекающиеся dual-записи: слот уже занят дважды
	catalog := testCatalog(t)

	candidates := []CandidateSlot{
		{Interval: iv(29, 15, 0, 15, 30)},
	}
	appointments := []domain.Appointment{
		confirmed([3]int{29, 15, 0}, [3]int{29, 15, 30}, "followup"),
		confirmed([3]int{29, 15, 0}, [3]int{29, 15, 30}, "followup"),
	}

	survivors := filterConflicts(candidates, appointments, testFollowUp, catalog)
	assert.Empty(t, survivors)
}

func TestFilterConflicts_UnknownTypeBlocks(t *testing.T) {
	// Запись неизвестного upstream-типа консервативно блокирует кандидата
	catalog := testCatalog(t)

	candidates := []CandidateSlot{
		{Interval: iv(29, 15, 0, 15, 30)},
	}
	appointments := []domain.Appointment{
		confirmed([3]int{29, 15, 0}, [3]int{29, 15, 30}, "mystery"),
	}

	survivors := filterConflicts(candidates, appointments, testFollowUp, catalog)
	assert.Empty(t, survivors)
}

func TestFilterConflicts_NoAppointments(t *testing.T) {
	catalog := testCatalog(t)

	candidates := []CandidateSlot{
		{Interval: iv(29, 15, 0, 15, 30)},
	}

	survivors := filterConflicts(candidates, nil, testFollowUp, catalog)

	require.Len(t, survivors, 1)
	assert.False(t, survivors[0].hasDualBooking, "free slot is not a dual booking")
}
