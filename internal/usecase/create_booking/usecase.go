package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/providercal"
)

// UseCase use case бронирования слота по снапшоту из сессии.
//
// Гарантии намеренно асимметричны: неудача основной записи — ошибка всего
// бронирования; неудача буфера или напоминания после успешной основной
// записи — частичный успех с предупреждением. Откатывать основную запись
// из-за буфера хуже, чем отдать провайдеру плотный день.
type UseCase struct {
	calendarClient CalendarClient
	catalogService CatalogService
	slotCache      SlotCache
	bookingLog     BookingLogRepository
	txManager      TransactionManager
	location       *time.Location
	logger         Logger
}

// NewUseCase создает новый экземпляр use case.
// location — таймзона провайдера для человекочитаемых времён в напоминаниях.
func NewUseCase(
	calendarClient CalendarClient,
	catalogService CatalogService,
	slotCache SlotCache,
	bookingLog BookingLogRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		calendarClient: calendarClient,
		catalogService: catalogService,
		slotCache:      slotCache,
		bookingLog:     bookingLog,
		txManager:      txManager,
		location:       location,
		logger:         logger,
	}
}

// Execute выполняет use case бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: session=%s, slot=%s, patient=%s",
		req.SessionID, req.SlotID, req.PatientName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Снапшот слота из сессии: бронируем ровно то, что показывали
	snapshot, ok := uc.slotCache.Get(req.SessionID, req.SlotID)
	if !ok {
		uc.logger.Warn("CreateBooking: snapshot session=%s slot=%s not found", req.SessionID, req.SlotID)
		return nil, ErrSlotExpired
	}
	slot := snapshot.Slot

	// 3. Каталог для отображаемого имени типа
	catalog, _, err := uc.catalogService.Catalog(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to get catalog: %v", ErrInternal, err)
	}

	primaryType, ok := catalog.ByID(slot.Primary.AppointmentTypeID)
	if !ok {
		uc.logger.Error("CreateBooking: snapshot references unknown type id=%d", slot.Primary.AppointmentTypeID)
		return nil, ErrTypeNotFound
	}

	// 4. Основная запись. Её неудача фатальна для всего бронирования.
	created, err := uc.calendarClient.CreateAppointment(ctx, providercal.CreateAppointmentRequest{
		AppointmentTypeID: int64(slot.Primary.AppointmentTypeID),
		Start:             slot.Primary.Start,
		DurationMinutes:   slot.Primary.DurationMinutes,
		PatientName:       req.PatientName,
		PatientEmail:      req.PatientEmail,
		Notes:             req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, providercal.ErrSlotConflict):
			// Слот заняли между показом и бронированием; снапшот больше не валиден
			uc.slotCache.Delete(req.SessionID, req.SlotID)
			uc.logger.Warn("CreateBooking: slot=%s conflict in provider calendar", req.SlotID)
			return nil, ErrSlotNotAvailable
		case errors.Is(err, providercal.ErrTypeNotFound):
			uc.logger.Warn("CreateBooking: type id=%d rejected by provider calendar", slot.Primary.AppointmentTypeID)
			return nil, ErrTypeNotFound
		default:
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
	}

	warnings := make([]string, 0, 2)

	// 5. Буферная запись: best effort после успешной основной
	bufferBooked := false
	if slot.RequiresBuffer() {
		_, err := uc.calendarClient.CreateAppointment(ctx, providercal.CreateAppointmentRequest{
			AppointmentTypeID: int64(slot.Buffer.AppointmentTypeID),
			Start:             slot.Buffer.Start,
			DurationMinutes:   slot.Buffer.DurationMinutes,
			PatientName:       req.PatientName,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: appointment id=%d created, buffer failed: %v", created.ID, err)
			warnings = append(warnings, WarningBufferFailed)
		} else {
			bufferBooked = true
		}
	}

	// 6. Задача-напоминание для провайдера: тоже best effort
	taskCreated := true
	if err := uc.createReminderTask(ctx, req.PatientName, primaryType.DisplayName, slot.Primary.Start); err != nil {
		uc.logger.Error("CreateBooking: appointment id=%d created, reminder task failed: %v", created.ID, err)
		warnings = append(warnings, WarningTaskFailed)
		taskCreated = false
	}

	// 7. Журнал: строки основной и буферной записи атомарно
	if err := uc.journal(ctx, req, catalog, slot, bufferBooked, taskCreated); err != nil {
		uc.logger.Error("CreateBooking: appointment id=%d created, journaling failed: %v", created.ID, err)
		warnings = append(warnings, WarningLogFailed)
	}

	// 8. Снапшот отработал
	uc.slotCache.Delete(req.SessionID, req.SlotID)

	uc.logger.Info("CreateBooking: appointment id=%d booked, session=%s, buffer=%t, warnings=%d",
		created.ID, req.SessionID, bufferBooked, len(warnings))

	return &Response{
		AppointmentID:  created.ID,
		Start:          created.Start,
		End:            created.End,
		BufferBooked:   bufferBooked,
		HasDualBooking: slot.HasDualBooking,
		Warnings:       warnings,
	}, nil
}

// createReminderTask создает задачу-напоминание со временем в таймзоне провайдера
func (uc *UseCase) createReminderTask(ctx context.Context, patientName, typeName string, start time.Time) error {
	local := start.In(uc.location)
	return uc.calendarClient.CreateTask(ctx, providercal.CreateTaskRequest{
		Description: fmt.Sprintf("%s: %s, %s %s",
			typeName, patientName, local.Format(domain.DateFormat), local.Format(domain.TimeFormat)),
		DueAt: start,
	})
}

// journal пишет строки журнала бронирования в одной транзакции
func (uc *UseCase) journal(
	ctx context.Context,
	req *Request,
	catalog *domain.Catalog,
	slot domain.TimeSlot,
	bufferBooked, taskCreated bool,
) error {
	primaryType, _ := catalog.ByID(slot.Primary.AppointmentTypeID)

	primaryOutcome := domain.OutcomeBooked
	if !taskCreated {
		primaryOutcome = domain.OutcomeTaskFailed
	}

	records := []*domain.BookingRecord{
		{
			SessionID:         req.SessionID,
			SlotID:            req.SlotID,
			AppointmentTypeID: slot.Primary.AppointmentTypeID,
			TypeDisplayName:   primaryType.DisplayName,
			StartTime:         slot.Primary.Start,
			DurationMinutes:   slot.Primary.DurationMinutes,
			IsBuffer:          false,
			HasDualBooking:    slot.HasDualBooking,
			PatientName:       req.PatientName,
			Outcome:           primaryOutcome,
		},
	}

	if slot.RequiresBuffer() {
		bufferOutcome := domain.OutcomeBooked
		if !bufferBooked {
			bufferOutcome = domain.OutcomeBufferFailed
		}

		bufferName := "Buffer"
		if t, ok := catalog.ByID(slot.Buffer.AppointmentTypeID); ok {
			bufferName = t.DisplayName
		}

		records = append(records, &domain.BookingRecord{
			SessionID:         req.SessionID,
			SlotID:            req.SlotID,
			AppointmentTypeID: slot.Buffer.AppointmentTypeID,
			TypeDisplayName:   bufferName,
			StartTime:         slot.Buffer.Start,
			DurationMinutes:   slot.Buffer.DurationMinutes,
			IsBuffer:          true,
			PatientName:       req.PatientName,
			Outcome:           bufferOutcome,
		})
	}

	return uc.txManager.Do(ctx, func(ctx context.Context) error {
		for _, record := range records {
			if _, err := uc.bookingLog.Create(ctx, record); err != nil {
				return err
			}
		}
		return nil
	})
}
