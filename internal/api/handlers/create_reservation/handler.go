package create_reservation

import (
	"errors"
	"net/http"

	"github.com/courtclub/court-booking-service/internal/api/handlers"
	"github.com/courtclub/court-booking-service/internal/api/middleware"
	createReservation "github.com/courtclub/court-booking-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSlotTaken          = "выбранный слот уже занят"
	msgCourtNotFound      = "корт не найден"
	msgUserNotFound       = "пользователь не найден"
	msgCourtUnavailable   = "корт недоступен для бронирования"
	msgInvalidTimeOrder   = "время начала должно быть раньше времени окончания"
	msgPastDate           = "нельзя забронировать слот в прошлом"
	msgBeforeOpening      = "время начала раньше открытия корта"
	msgAfterClosing       = "время окончания позже закрытия корта"
	msgQuotaExceeded      = "превышен лимит будущих бронирований"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken: user_id=%s, court_id=%s", userID, req.CourtID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createReservation.ErrCourtNotFound):
			h.logger.Warn("POST /reservations - Court not found: court_id=%s", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createReservation.ErrUserNotFound):
			h.logger.Warn("POST /reservations - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createReservation.ErrCourtUnavailable):
			h.logger.Warn("POST /reservations - Court unavailable: court_id=%s", req.CourtID)
			handlers.RespondBadRequest(w, msgCourtUnavailable)

		case errors.Is(err, createReservation.ErrInvalidTimeOrder):
			h.logger.Warn("POST /reservations - Invalid time order: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgInvalidTimeOrder)

		case errors.Is(err, createReservation.ErrPastDate):
			h.logger.Warn("POST /reservations - Past date: user_id=%s, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createReservation.ErrBeforeOpening):
			h.logger.Warn("POST /reservations - Before opening: user_id=%s, court_id=%s", userID, req.CourtID)
			handlers.RespondBadRequest(w, msgBeforeOpening)

		case errors.Is(err, createReservation.ErrAfterClosing):
			h.logger.Warn("POST /reservations - After closing: user_id=%s, court_id=%s", userID, req.CourtID)
			handlers.RespondBadRequest(w, msgAfterClosing)

		case errors.Is(err, createReservation.ErrQuotaExceeded):
			h.logger.Warn("POST /reservations - Quota exceeded: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgQuotaExceeded)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%s, court_id=%s, error=%v",
				userID, req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%s, user_id=%s, court_id=%s",
		result.ID, userID, req.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
