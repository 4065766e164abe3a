package get_week_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/courtclub/court-booking-service/internal/api/handlers"
	"github.com/courtclub/court-booking-service/internal/domain"
	getWeekSchedule "github.com/courtclub/court-booking-service/internal/usecase/get_week_schedule"
)

const (
	msgInvalidCourtID   = "некорректный ID корта"
	msgInvalidStartDate = "некорректный формат начальной даты, ожидается YYYY-MM-DD"
	msgCourtNotFound    = "корт не найден"
)

type Handler struct {
	useCase GetWeekScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/week-schedule?startDate=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courtID := vars["courtId"]

	if _, err := uuid.Parse(courtID); err != nil {
		h.logger.Warn("GET /courts/{id}/week-schedule - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	startDateStr := r.URL.Query().Get("startDate")
	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/week-schedule - Invalid start date %q: %v", startDateStr, err)
		handlers.RespondBadRequest(w, msgInvalidStartDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getWeekSchedule.Request{
		CourtID:   courtID,
		StartDate: startDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, getWeekSchedule.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id}/week-schedule - Court not found: court_id=%s", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, getWeekSchedule.ErrInvalidInput):
			h.logger.Warn("GET /courts/{id}/week-schedule - Invalid input: court_id=%s, error=%v", courtID, err)
			handlers.RespondBadRequest(w, msgInvalidStartDate)

		default:
			h.logger.Error("GET /courts/{id}/week-schedule - Failed to get schedule: court_id=%s, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{id}/week-schedule - Schedule retrieved: court_id=%s, start_date=%s",
		courtID, startDateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
