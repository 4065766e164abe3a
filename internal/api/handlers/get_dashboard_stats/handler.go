package get_dashboard_stats

import (
	"errors"
	"net/http"
	"time"

	"github.com/courtclub/court-booking-service/internal/api/handlers"
	"github.com/courtclub/court-booking-service/internal/api/middleware"
	"github.com/courtclub/court-booking-service/internal/domain"
	"github.com/courtclub/court-booking-service/internal/service/stats"
	"github.com/courtclub/court-booking-service/internal/service/stats/models"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange  = "некорректный период: конечная дата раньше начальной"
)

type Handler struct {
	service StatsService
	logger  Logger
}

func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/dashboard/stats?fromDate=&toDate=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/dashboard/stats - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.DashboardStatsRequest{AdminID: adminID}

	if v := r.URL.Query().Get("fromDate"); v != "" {
		from, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			h.logger.Warn("GET /admin/dashboard/stats - Invalid fromDate %q: %v", v, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.From = &from
	}

	if v := r.URL.Query().Get("toDate"); v != "" {
		to, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			h.logger.Warn("GET /admin/dashboard/stats - Invalid toDate %q: %v", v, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.To = &to
	}

	result, err := h.service.GetDashboardStats(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, stats.ErrUserNotFound):
			h.logger.Warn("GET /admin/dashboard/stats - Admin not found: admin_id=%s", adminID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, stats.ErrAccessDenied):
			h.logger.Warn("GET /admin/dashboard/stats - Access denied: admin_id=%s", adminID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, stats.ErrInvalidInput):
			h.logger.Warn("GET /admin/dashboard/stats - Invalid range: admin_id=%s, error=%v", adminID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /admin/dashboard/stats - Failed to get stats: admin_id=%s, error=%v", adminID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/dashboard/stats - Stats retrieved: admin_id=%s", adminID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
