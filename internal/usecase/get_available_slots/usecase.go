package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
	"github.com/m04kA/SMC-AppointmentService/internal/service/slotcache"
)

// appointmentFetchPadding запас по краям периода при загрузке записей.
// Записи, начавшиеся до периода или заканчивающиеся после него, участвуют
// в анализе рабочих блоков и конфликтов соседних кандидатов.
const appointmentFetchPadding = 3 * time.Hour

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	calendarClient CalendarClient
	catalogService CatalogService
	slotCache      SlotCache
	timeProvider   TimeProvider
	idGenerator    IDGenerator
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendarClient CalendarClient,
	catalogService CatalogService,
	slotCache SlotCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendarClient: calendarClient,
		catalogService: catalogService,
		slotCache:      slotCache,
		timeProvider:   &RealTimeProvider{},
		idGenerator:    &UUIDGenerator{},
		logger:         logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: session=%s, type=%d, period=%s..%s",
		req.SessionID, req.AppointmentTypeID,
		req.From.Format(time.RFC3339), req.To.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validatePeriod(req.From, req.To, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: period validation failed: %v", err)
		return nil, err
	}

	// 2. Каталог типов приёма
	catalog, bufferTypeID, err := uc.catalogService.Catalog(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to get catalog: %v", ErrInternal, err)
	}

	typeID := domain.AppointmentTypeID(req.AppointmentTypeID)
	if _, ok := catalog.ByID(typeID); !ok {
		uc.logger.Warn("GetAvailableSlots: appointment type id=%d not found", req.AppointmentTypeID)
		return nil, ErrTypeNotFound
	}

	// 3. Окна доступности за период
	rawWindows, err := uc.calendarClient.GetAvailability(ctx, req.From, req.To)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 4. Записи календаря с запасом по краям периода
	rawAppointments, err := uc.calendarClient.GetAppointments(ctx,
		req.From.Add(-appointmentFetchPadding), req.To.Add(appointmentFetchPadding))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	windows := make([]domain.AvailabilityWindow, 0, len(rawWindows))
	for _, w := range rawWindows {
		windows = append(windows, domain.AvailabilityWindow{
			Start:             w.Start,
			End:               w.End,
			AppointmentTypeID: domain.AppointmentTypeID(w.AppointmentTypeID),
		})
	}

	appointments := make([]domain.Appointment, 0, len(rawAppointments))
	for _, a := range rawAppointments {
		appointments = append(appointments, domain.Appointment{
			Start:            a.Start,
			End:              a.End,
			InternalTypeName: a.InternalTypeName,
			Status:           domain.AppointmentStatus(a.Status),
		})
	}

	// 5. Вычисление слотов
	engine := scheduling.NewEngine(catalog, bufferTypeID, scheduling.DefaultPolicy())
	timeSlots, err := engine.AvailableSlots(typeID, windows, appointments)
	if err != nil {
		if errors.Is(err, scheduling.ErrUnknownAppointmentType) {
			return nil, ErrTypeNotFound
		}
		uc.logger.Error("GetAvailableSlots: engine failed: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	// 6. Снапшоты в кэш сессии: бронирование позже использует ровно то,
	// что было показано
	slots := make([]Slot, 0, len(timeSlots))
	for _, ts := range timeSlots {
		slotID := uc.idGenerator.NewID()
		uc.slotCache.Put(req.SessionID, slotID, slotcache.Snapshot{Slot: ts})
		slots = append(slots, fromDomainSlot(slotID, ts))
	}

	uc.logger.Info("GetAvailableSlots: computed %d slots for session=%s, type=%d",
		len(slots), req.SessionID, req.AppointmentTypeID)

	return &Response{
		AppointmentTypeID: req.AppointmentTypeID,
		From:              req.From,
		To:                req.To,
		Slots:             slots,
	}, nil
}
