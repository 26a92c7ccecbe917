package appointmenttypes

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/integrations/providercal"
)

// CalendarClient интерфейс клиента календаря провайдера
type CalendarClient interface {
	GetAppointmentTypes(ctx context.Context) ([]providercal.AppointmentType, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
