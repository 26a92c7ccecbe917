package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
)

const (
	msgMissingSession     = "сессия обязательна"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSlotExpired        = "слот устарел, запросите доступные слоты заново"
	msgSlotNotAvailable   = "выбранный слот больше недоступен"
	msgTypeNotFound       = "тип приёма не найден"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing session in context")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotExpired):
			h.logger.Warn("POST /bookings - Slot expired: session=%s, slot=%s", sessionID, req.SlotID)
			handlers.RespondError(w, http.StatusGone, msgSlotExpired)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: session=%s, slot=%s", sessionID, req.SlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrTypeNotFound):
			h.logger.Warn("POST /bookings - Appointment type not found: slot=%s", req.SlotID)
			handlers.RespondNotFound(w, msgTypeNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: session=%s, slot=%s, error=%v",
				sessionID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: appointment_id=%d, session=%s, warnings=%d",
		result.AppointmentID, sessionID, len(result.Warnings))
	handlers.RespondJSON(w, http.StatusCreated, response)
}
