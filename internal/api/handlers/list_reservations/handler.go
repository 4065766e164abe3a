package list_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/courtclub/court-booking-service/internal/api/handlers"
	"github.com/courtclub/court-booking-service/internal/api/middleware"
	"github.com/courtclub/court-booking-service/internal/domain"
	"github.com/courtclub/court-booking-service/internal/service/reservations"
	"github.com/courtclub/court-booking-service/internal/service/reservations/models"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus = "некорректный статус бронирования"
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

// Handle GET /api/v1/admin/reservations?courtId=&date=&status=&page=&size=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()

	req := &models.ListReservationsRequest{AdminID: adminID}

	if v := query.Get("courtId"); v != "" {
		req.CourtID = &v
	}

	if v := query.Get("date"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			h.logger.Warn("GET /admin/reservations - Invalid date %q: %v", v, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	var err error
	req.Page, req.Size, err = parsePaging(r)
	if err != nil {
		h.logger.Warn("GET /admin/reservations - Invalid paging: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPaging)
		return
	}

	result, err := h.service.ListWithFilter(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrUserNotFound):
			h.logger.Warn("GET /admin/reservations - Admin not found: admin_id=%s", adminID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /admin/reservations - Access denied: admin_id=%s", adminID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidStatus):
			h.logger.Warn("GET /admin/reservations - Invalid status filter: admin_id=%s", adminID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/reservations - Failed to list reservations: admin_id=%s, error=%v", adminID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/reservations - Retrieved %d of %d reservations: admin_id=%s",
		len(result.Reservations), result.Total, adminID)
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
