package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/providercal"
	"github.com/m04kA/SMC-AppointmentService/internal/service/slotcache"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

type fakeCalendar struct {
	appointments []providercal.CreateAppointmentRequest
	tasks        []providercal.CreateTaskRequest

	// Ошибки по порядковому номеру вызова CreateAppointment (0 — основная запись)
	appointmentErrs map[int]error
	taskErr         error

	nextID int64
}

func (f *fakeCalendar) CreateAppointment(_ context.Context, req providercal.CreateAppointmentRequest) (*providercal.CreatedAppointment, error) {
	call := len(f.appointments)
	f.appointments = append(f.appointments, req)
	if err, ok := f.appointmentErrs[call]; ok {
		return nil, err
	}
	f.nextID++
	return &providercal.CreatedAppointment{
		ID:                f.nextID,
		AppointmentTypeID: req.AppointmentTypeID,
		Start:             req.Start,
		End:               req.Start.Add(time.Duration(req.DurationMinutes) * time.Minute),
		Status:            "confirmed",
	}, nil
}

func (f *fakeCalendar) CreateTask(_ context.Context, req providercal.CreateTaskRequest) error {
	if f.taskErr != nil {
		return f.taskErr
	}
	f.tasks = append(f.tasks, req)
	return nil
}

type fakeCatalogService struct {
	catalog *domain.Catalog
	err     error
}

func (f *fakeCatalogService) Catalog(_ context.Context) (*domain.Catalog, domain.AppointmentTypeID, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.catalog, 99, nil
}

type fakeSlotCache struct {
	snapshots map[string]slotcache.Snapshot
	deleted   []string
}

func (f *fakeSlotCache) Get(sessionID, slotID string) (slotcache.Snapshot, bool) {
	s, ok := f.snapshots[sessionID+"/"+slotID]
	return s, ok
}

func (f *fakeSlotCache) Delete(sessionID, slotID string) {
	f.deleted = append(f.deleted, sessionID+"/"+slotID)
	delete(f.snapshots, sessionID+"/"+slotID)
}

type fakeBookingLog struct {
	records []*domain.BookingRecord
	err     error
}

func (f *fakeBookingLog) Create(_ context.Context, record *domain.BookingRecord) (*domain.BookingRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.records = append(f.records, record)
	return record, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	catalog, err := domain.NewCatalog([]domain.AppointmentType{
		{ID: 5, DisplayName: "Consultation", InternalName: "consult", DurationMinutes: 60},
		{ID: 99, DisplayName: "Buffer", InternalName: "buffer", DurationMinutes: 30},
	})
	require.NoError(t, err)
	return catalog
}

func slotStart() time.Time {
	return time.Date(2025, 3, 29, 12, 0, 0, 0, time.UTC)
}

// Слот 12:00–13:00 с буфером 13:00–13:30
func snapshotWithBuffer() slotcache.Snapshot {
	start := slotStart()
	return slotcache.Snapshot{
		Slot: domain.TimeSlot{
			Start: start,
			End:   start.Add(60 * time.Minute),
			Primary: domain.ProposedBooking{
				AppointmentTypeID: 5,
				Start:             start,
				DurationMinutes:   60,
			},
			Buffer: &domain.ProposedBooking{
				AppointmentTypeID: 99,
				Start:             start.Add(60 * time.Minute),
				DurationMinutes:   30,
				IsBuffer:          true,
			},
		},
	}
}

type testEnv struct {
	uc       *UseCase
	calendar *fakeCalendar
	cache    *fakeSlotCache
	log      *fakeBookingLog
}

func newTestEnv(t *testing.T, snapshot slotcache.Snapshot) *testEnv {
	t.Helper()

	calendar := &fakeCalendar{appointmentErrs: map[int]error{}}
	cache := &fakeSlotCache{snapshots: map[string]slotcache.Snapshot{
		"session-1/slot-1": snapshot,
	}}
	log := &fakeBookingLog{}

	uc := NewUseCase(
		calendar,
		&fakeCatalogService{catalog: testCatalog(t)},
		cache,
		log,
		passthroughTxManager{},
		time.UTC,
		nopLogger{},
	)

	return &testEnv{uc: uc, calendar: calendar, cache: cache, log: log}
}

func validRequest() *Request {
	return &Request{
		SessionID:    "session-1",
		SlotID:       "slot-1",
		PatientName:  "Anna Schmidt",
		PatientEmail: ptr.Ptr("anna.schmidt@example.com"),
		Notes:        ptr.Ptr("first visit"),
	}
}

func TestExecuteBooksSlotWithBuffer(t *testing.T) {
	env := newTestEnv(t, snapshotWithBuffer())

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.AppointmentID)
	assert.Equal(t, slotStart(), resp.Start)
	assert.Equal(t, slotStart().Add(60*time.Minute), resp.End)
	assert.True(t, resp.BufferBooked)
	assert.Empty(t, resp.Warnings)

	// Основная запись, затем буфер
	require.Len(t, env.calendar.appointments, 2)
	assert.Equal(t, int64(5), env.calendar.appointments[0].AppointmentTypeID)
	assert.Equal(t, ptr.Ptr("anna.schmidt@example.com"), env.calendar.appointments[0].PatientEmail)
	assert.Equal(t, ptr.Ptr("first visit"), env.calendar.appointments[0].Notes)
	assert.Equal(t, int64(99), env.calendar.appointments[1].AppointmentTypeID)
	assert.Equal(t, slotStart().Add(60*time.Minute), env.calendar.appointments[1].Start)

	// Напоминание с человекочитаемым временем
	require.Len(t, env.calendar.tasks, 1)
	assert.Contains(t, env.calendar.tasks[0].Description, "Anna Schmidt")
	assert.Contains(t, env.calendar.tasks[0].Description, "2025-03-29 12:00")

	// Журнал: основная и буферная строки
	require.Len(t, env.log.records, 2)
	assert.Equal(t, domain.OutcomeBooked, env.log.records[0].Outcome)
	assert.False(t, env.log.records[0].IsBuffer)
	assert.Equal(t, domain.OutcomeBooked, env.log.records[1].Outcome)
	assert.True(t, env.log.records[1].IsBuffer)

	// Снапшот отработал и удалён
	assert.Equal(t, []string{"session-1/slot-1"}, env.cache.deleted)
}

func TestExecuteValidation(t *testing.T) {
	env := newTestEnv(t, snapshotWithBuffer())

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing session", func(r *Request) { r.SessionID = "" }},
		{"missing slot", func(r *Request) { r.SlotID = "" }},
		{"missing patient name", func(r *Request) { r.PatientName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecuteSnapshotExpired(t *testing.T) {
	env := newTestEnv(t, snapshotWithBuffer())

	req := validRequest()
	req.SlotID = "slot-unknown"

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotExpired)
	assert.Empty(t, env.calendar.appointments)
}

func TestExecutePrimaryConflictIsFatal(t *testing.T) {
	env := newTestEnv(t, snapshotWithBuffer())
	env.calendar.appointmentErrs[0] = providercal.ErrSlotConflict

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Буфер не бронируется, журнал не пишется, снапшот инвалидирован
	assert.Len(t, env.calendar.appointments, 1)
	assert.Empty(t, env.log.records)
	assert.Equal(t, []string{"session-1/slot-1"}, env.cache.deleted)
}

func TestExecuteBufferFailureIsPartialSuccess(t *testing.T) {
	env := newTestEnv(t, snapshotWithBuffer())
	env.calendar.appointmentErrs[1] = providercal.ErrSlotConflict

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err, "primary booking succeeded, buffer failure must not fail the request")

	assert.False(t, resp.BufferBooked)
	assert.Equal(t, []string{WarningBufferFailed}, resp.Warnings)

	// Журнал фиксирует частичный исход
	require.Len(t, env.log.records, 2)
	assert.Equal(t, domain.OutcomeBooked, env.log.records[0].Outcome)
	assert.Equal(t, domain.OutcomeBufferFailed, env.log.records[1].Outcome)
}

func TestExecuteTaskFailureIsPartialSuccess(t *testing.T) {
	env := newTestEnv(t, snapshotWithBuffer())
	env.calendar.taskErr = errors.New("tasks endpoint unavailable")

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.BufferBooked)
	assert.Equal(t, []string{WarningTaskFailed}, resp.Warnings)

	require.Len(t, env.log.records, 2)
	assert.Equal(t, domain.OutcomeTaskFailed, env.log.records[0].Outcome)
}

func TestExecuteJournalFailureIsPartialSuccess(t *testing.T) {
	env := newTestEnv(t, snapshotWithBuffer())
	env.log.err = errors.New("database unavailable")

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{WarningLogFailed}, resp.Warnings)
}

func TestExecuteSlotWithoutBuffer(t *testing.T) {
	snapshot := snapshotWithBuffer()
	snapshot.Slot.Buffer = nil
	env := newTestEnv(t, snapshot)

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.BufferBooked)
	assert.Len(t, env.calendar.appointments, 1)
	require.Len(t, env.log.records, 1)
	assert.False(t, env.log.records[0].IsBuffer)
}
