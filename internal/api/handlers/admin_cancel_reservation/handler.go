package admin_cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/courtclub/court-booking-service/internal/api/handlers"
	"github.com/courtclub/court-booking-service/internal/api/middleware"
	"github.com/courtclub/court-booking-service/internal/service/reservations"
	"github.com/courtclub/court-booking-service/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "бронирование не найдено"
	msgForbidden            = "доступ запрещен"
	msgInvalidState         = "бронирование нельзя отменить в текущем статусе"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID := vars["reservationId"]

	if _, err := uuid.Parse(reservationID); err != nil {
		h.logger.Warn("PATCH /admin/reservations/{id}/cancel - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /admin/reservations/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.AdminCancel(r.Context(), reservationID, &models.AdminCancelRequest{AdminID: adminID})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /admin/reservations/{id}/cancel - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrUserNotFound):
			h.logger.Warn("PATCH /admin/reservations/{id}/cancel - Admin not found: admin_id=%s", adminID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /admin/reservations/{id}/cancel - Access denied: admin_id=%s", adminID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidState):
			h.logger.Warn("PATCH /admin/reservations/{id}/cancel - Invalid state: reservation_id=%s", reservationID)
			handlers.RespondBadRequest(w, msgInvalidState)

		default:
			h.logger.Error("PATCH /admin/reservations/{id}/cancel - Failed to cancel: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/reservations/{id}/cancel - Reservation cancelled by admin: reservation_id=%s, admin_id=%s",
		reservationID, adminID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
