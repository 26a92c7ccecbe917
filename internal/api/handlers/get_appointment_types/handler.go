package get_appointment_types

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

type Handler struct {
	service AppointmentTypesService
	logger  Logger
}

func NewHandler(service AppointmentTypesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointment-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /appointment-types - Failed to get types: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointment-types - Types retrieved successfully: count=%d", len(types))
	handlers.RespondJSON(w, http.StatusOK, FromDomainTypes(types))
}
