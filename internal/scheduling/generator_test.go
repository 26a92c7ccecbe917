package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Тестовый каталог: акупунктура 50 минут, повторный приём 30 минут (dual),
// буфер 30 минут
var (
	testAcupuncture = domain.AppointmentType{
		ID:              2,
		DisplayName:     "Acupuncture",
		InternalName:    "acupuncture",
		DurationMinutes: 50,
	}
	testFollowUp = domain.AppointmentType{
		ID:              3,
		DisplayName:     "Follow-up",
		InternalName:    "followup",
		DurationMinutes: 30,
		DualBookable:    true,
	}
	testBuffer = domain.AppointmentType{
		ID:              99,
		DisplayName:     "Buffer",
		InternalName:    "buffer",
		DurationMinutes: 30,
	}
)

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	catalog, err := domain.NewCatalog([]domain.AppointmentType{testAcupuncture, testFollowUp, testBuffer})
	require.NoError(t, err)
	return catalog
}

func TestAlignToStep(t *testing.T) {
	step := 30 * time.Minute

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"already on the hour", ts(29, 12, 0), ts(29, 12, 0)},
		{"already on half hour", ts(29, 12, 30), ts(29, 12, 30)},
		{"minutes in (0,30) snap to :30", ts(29, 12, 5), ts(29, 12, 30)},
		{"minutes in (30,60) snap to next hour", ts(29, 12, 45), ts(29, 13, 0)},
		{"one minute past the hour", ts(29, 12, 1), ts(29, 12, 30)},
		{"one minute before the hour", ts(29, 12, 59), ts(29, 13, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, alignToStep(tt.in, step))
		})
	}
}

func TestGenerateCandidates_HourType(t *testing.T) {
	// Окно 12:00–20:00 для 60-минутного типа: кандидаты 12:00, 12:30, ..., 19:00
	hourType := domain.AppointmentType{ID: 5, InternalName: "consult", DurationMinutes: 60}
	windows := []domain.AvailabilityWindow{
		{Start: ts(29, 12, 0), End: ts(29, 20, 0), AppointmentTypeID: 5},
	}

	candidates := generateCandidates(hourType, windows, 30*time.Minute)

	require.Len(t, candidates, 15)
	for i, cand := range candidates {
		wantStart := ts(29, 12, 0).Add(time.Duration(i) * 30 * time.Minute)
		assert.Equal(t, wantStart, cand.Interval.Start)
		assert.Equal(t, 60, cand.Interval.Minutes(), "duration must equal the type duration")
		assert.False(t, cand.Interval.End.After(ts(29, 20, 0)), "candidate must end inside the window")
	}
}

func TestGenerateCandidates_SampleAcupuncture(t *testing.T) {
	// Документированный набор данных: 50-минутная акупунктура, два окна
	windows := []domain.AvailabilityWindow{
		{Start: ts(28, 17, 30), End: ts(28, 20, 0), AppointmentTypeID: testAcupuncture.ID},
		{Start: ts(29, 12, 0), End: ts(29, 20, 0), AppointmentTypeID: testAcupuncture.ID},
	}

	candidates := generateCandidates(testAcupuncture, windows, 30*time.Minute)

	require.Len(t, candidates, 19)

	// Первое окно: 17:30, 18:00, 18:30, 19:00
	assert.Equal(t, ts(28, 17, 30), candidates[0].Interval.Start)
	assert.Equal(t, ts(28, 18, 0), candidates[1].Interval.Start)
	assert.Equal(t, ts(28, 18, 30), candidates[2].Interval.Start)
	assert.Equal(t, ts(28, 19, 0), candidates[3].Interval.Start)

	// Второе окно: получасовая серия с 12:00 по 19:00
	for i := 0; i < 15; i++ {
		assert.Equal(t, ts(29, 12, 0).Add(time.Duration(i)*30*time.Minute), candidates[4+i].Interval.Start)
	}

	for _, cand := range candidates {
		assert.Equal(t, 50, cand.Interval.Minutes())
		assert.False(t, cand.DualBookingAlreadyPresent)
	}
}

func TestGenerateCandidates_WindowOfOtherTypeSkipped(t *testing.T) {
	windows := []domain.AvailabilityWindow{
		{Start: ts(29, 12, 0), End: ts(29, 20, 0), AppointmentTypeID: testFollowUp.ID},
	}

	candidates := generateCandidates(testAcupuncture, windows, 30*time.Minute)
	assert.Empty(t, candidates)
}

func TestGenerateCandidates_UnalignedWindowStart(t *testing.T) {
	windows := []domain.AvailabilityWindow{
		{Start: ts(29, 12, 5), End: ts(29, 14, 0), AppointmentTypeID: testFollowUp.ID},
	}

	candidates := generateCandidates(testFollowUp, windows, 30*time.Minute)

	require.Len(t, candidates, 3)
	assert.Equal(t, ts(29, 12, 30), candidates[0].Interval.Start)
	assert.Equal(t, ts(29, 13, 0), candidates[1].Interval.Start)
	assert.Equal(t, ts(29, 13, 30), candidates[2].Interval.Start)
}

func TestGenerateCandidates_EmptyWindows(t *testing.T) {
	assert.Empty(t, generateCandidates(testAcupuncture, nil, 30*time.Minute))
}

func TestSynthesizeDualCandidates_SampleFollowUp(t *testing.T) {
	// Документированный набор данных: 30-минутный dual-тип, 23 обычных
	// кандидата + 2 синтезированных поверх существующих dual-записей,
	// добавленных после обычной серии. Итого 25.
	catalog := testCatalog(t)

	windows := []domain.AvailabilityWindow{
		{Start: ts(27, 18, 0), End: ts(27, 20, 0), AppointmentTypeID: testFollowUp.ID},
		{Start: ts(28, 14, 0), End: ts(28, 17, 30), AppointmentTypeID: testFollowUp.ID},
		{Start: ts(29, 12, 0), End: ts(29, 18, 0), AppointmentTypeID: testFollowUp.ID},
	}
	appointments := []domain.Appointment{
		{Start: ts(27, 18, 30), End: ts(27, 19, 0), InternalTypeName: "followup", Status: domain.StatusConfirmed},
		{Start: ts(28, 15, 0), End: ts(28, 15, 30), InternalTypeName: "followup", Status: domain.StatusConfirmed},
	}

	regular := generateCandidates(testFollowUp, windows, 30*time.Minute)
	require.Len(t, regular, 23)

	dual := synthesizeDualCandidates(testFollowUp, appointments, catalog)
	require.Len(t, dual, 2)

	all := append(regular, dual...)
	require.Len(t, all, 25)

	// Dual-кандидаты идут после обычной серии и зеркалят записи точно
	assert.True(t, all[23].DualBookingAlreadyPresent)
	assert.Equal(t, ts(27, 18, 30), all[23].Interval.Start)
	assert.True(t, all[24].DualBookingAlreadyPresent)
	assert.Equal(t, ts(28, 15, 0), all[24].Interval.Start)
}

func TestSynthesizeDualCandidates_Filters(t *testing.T) {
	catalog := testCatalog(t)

	appointments := []domain.Appointment{
		// Не dual-bookable тип
		{Start: ts(29, 10, 0), End: ts(29, 10, 50), InternalTypeName: "acupuncture", Status: domain.StatusConfirmed},
		// Dual, но длительность не совпадает с запрошенным типом
		{Start: ts(29, 11, 0), End: ts(29, 12, 0), InternalTypeName: "followup", Status: domain.StatusConfirmed},
		// Неизвестный upstream-тип
		{Start: ts(29, 13, 0), End: ts(29, 13, 30), InternalTypeName: "mystery", Status: domain.StatusConfirmed},
		// Подходит
		{Start: ts(29, 14, 0), End: ts(29, 14, 30), InternalTypeName: "followup", Status: domain.StatusConfirmed},
	}

	dual := synthesizeDualCandidates(testFollowUp, appointments, catalog)

	require.Len(t, dual, 1)
	assert.Equal(t, ts(29, 14, 0), dual[0].Interval.Start)

	// Для не-dual типа синтез не выполняется вовсе
	assert.Empty(t, synthesizeDualCandidates(testAcupuncture, appointments, catalog))
}
