package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/providercal"
	"github.com/m04kA/SMC-AppointmentService/internal/service/slotcache"
)

// CalendarClient интерфейс клиента календаря провайдера
type CalendarClient interface {
	GetAvailability(ctx context.Context, from, to time.Time) ([]providercal.AvailabilityWindow, error)
	GetAppointments(ctx context.Context, from, to time.Time) ([]providercal.Appointment, error)
}

// CatalogService интерфейс сервиса каталога типов приёма
type CatalogService interface {
	Catalog(ctx context.Context) (*domain.Catalog, domain.AppointmentTypeID, error)
}

// SlotCache интерфейс кэша снапшотов слотов
type SlotCache interface {
	Put(sessionID, slotID string, snapshot slotcache.Snapshot)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// IDGenerator интерфейс генератора идентификаторов слотов (для тестирования)
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// UUIDGenerator генератор идентификаторов слотов на базе UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый идентификатор слота
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
