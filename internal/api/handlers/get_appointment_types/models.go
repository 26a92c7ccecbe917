package get_appointment_types

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// AppointmentTypesResponse HTTP response model
type AppointmentTypesResponse struct {
	Types []AppointmentType `json:"types"`
}

// AppointmentType модель типа приёма.
// Internal name наружу не отдаётся: это деталь upstream-системы.
type AppointmentType struct {
	ID              int64  `json:"id"`
	DisplayName     string `json:"displayName"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromDomainTypes конвертирует типы каталога в HTTP response
func FromDomainTypes(types []domain.AppointmentType) *AppointmentTypesResponse {
	out := make([]AppointmentType, len(types))
	for i, t := range types {
		out[i] = AppointmentType{
			ID:              int64(t.ID),
			DisplayName:     t.DisplayName,
			DurationMinutes: t.DurationMinutes,
		}
	}
	return &AppointmentTypesResponse{Types: out}
}
