package get_user_reservations

import (
	"net/http"
	"strconv"

	"github.com/courtclub/court-booking-service/internal/api/handlers"
	"github.com/courtclub/court-booking-service/internal/api/middleware"
	"github.com/courtclub/court-booking-service/internal/service/reservations/models"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidPaging = "некорректные параметры пагинации"
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

// Handle GET /api/v1/reservations/me?page=&size=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /reservations/me - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	page, size, err := parsePaging(r)
	if err != nil {
		h.logger.Warn("GET /reservations/me - Invalid paging: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPaging)
		return
	}

	result, err := h.service.ListByUser(r.Context(), &models.ListUserReservationsRequest{
		UserID: userID,
		Page:   page,
		Size:   size,
	})
	if err != nil {
		h.logger.Error("GET /reservations/me - Failed to list reservations: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations/me - Retrieved %d of %d reservations: user_id=%s",
		len(result.Reservations), result.Total, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// parsePaging извлекает параметры пагинации из query string
func parsePaging(r *http.Request) (int, int, error) {
	page := 0
	size := 0

	if v := r.URL.Query().Get("page"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return 0, 0, strconv.ErrSyntax
		}
		page = parsed
	}

	if v := r.URL.Query().Get("size"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return 0, 0, strconv.ErrSyntax
		}
		size = parsed
	}

	return page, size, nil
}
