package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

const (
	msgMissingSession = "сессия обязательна"
	msgMissingTypeID  = "ID типа приёма обязателен"
	msgInvalidTypeID  = "некорректный ID типа приёма"
	msgMissingPeriod  = "параметры from и to обязательны"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgTypeNotFound   = "тип приёма не найден"
	msgPeriodInPast   = "запрошенный период в прошлом"
	msgPeriodTooLong  = "запрошенный период слишком длинный"
	msgInvalidInput   = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: appointmentTypeId (required), from и to (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionID(r.Context())
	if !ok {
		h.logger.Warn("GET /available-slots - Missing session in context")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	// Извлекаем appointmentTypeId из query параметров
	typeIDStr := r.URL.Query().Get("appointmentTypeId")
	if typeIDStr == "" {
		h.logger.Warn("GET /available-slots - Missing appointment type ID")
		handlers.RespondBadRequest(w, msgMissingTypeID)
		return
	}

	typeID, err := strconv.ParseInt(typeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid appointment type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTypeID)
		return
	}

	// Извлекаем период из query параметров
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /available-slots - Missing period")
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	// Формируем запрос к use case (с парсингом дат)
	useCaseReq, err := ToUseCaseRequest(sessionID, typeID, fromStr, toStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrTypeNotFound):
			h.logger.Warn("GET /available-slots - Appointment type not found: type_id=%d", typeID)
			handlers.RespondNotFound(w, msgTypeNotFound)

		case errors.Is(err, getAvailableSlots.ErrPeriodInPast):
			h.logger.Warn("GET /available-slots - Period in the past: from=%s, to=%s", fromStr, toStr)
			handlers.RespondBadRequest(w, msgPeriodInPast)

		case errors.Is(err, getAvailableSlots.ErrPeriodTooLong):
			h.logger.Warn("GET /available-slots - Period too long: from=%s, to=%s", fromStr, toStr)
			handlers.RespondBadRequest(w, msgPeriodTooLong)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: type_id=%d, error=%v", typeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /available-slots - Slots retrieved successfully: type_id=%d, slots_count=%d",
		typeID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
