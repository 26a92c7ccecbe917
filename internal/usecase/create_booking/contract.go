package create_booking

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/providercal"
	"github.com/m04kA/SMC-AppointmentService/internal/service/slotcache"
)

// CalendarClient интерфейс клиента календаря провайдера
type CalendarClient interface {
	CreateAppointment(ctx context.Context, req providercal.CreateAppointmentRequest) (*providercal.CreatedAppointment, error)
	CreateTask(ctx context.Context, req providercal.CreateTaskRequest) error
}

// CatalogService интерфейс сервиса каталога типов приёма
type CatalogService interface {
	Catalog(ctx context.Context) (*domain.Catalog, domain.AppointmentTypeID, error)
}

// SlotCache интерфейс кэша снапшотов слотов
type SlotCache interface {
	Get(sessionID, slotID string) (slotcache.Snapshot, bool)
	Delete(sessionID, slotID string)
}

// BookingLogRepository интерфейс репозитория журнала бронирований
type BookingLogRepository interface {
	Create(ctx context.Context, record *domain.BookingRecord) (*domain.BookingRecord, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
