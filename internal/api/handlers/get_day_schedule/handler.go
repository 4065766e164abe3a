package get_day_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/courtclub/court-booking-service/internal/api/handlers"
	"github.com/courtclub/court-booking-service/internal/domain"
	getDaySchedule "github.com/courtclub/court-booking-service/internal/usecase/get_day_schedule"
)

const (
	msgInvalidCourtID = "некорректный ID корта"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCourtNotFound  = "корт не найден"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/schedule?date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courtID := vars["courtId"]

	if _, err := uuid.Parse(courtID); err != nil {
		h.logger.Warn("GET /courts/{id}/schedule - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/schedule - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySchedule.Request{
		CourtID: courtID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDaySchedule.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id}/schedule - Court not found: court_id=%s", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, getDaySchedule.ErrInvalidInput):
			h.logger.Warn("GET /courts/{id}/schedule - Invalid input: court_id=%s, error=%v", courtID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /courts/{id}/schedule - Failed to get schedule: court_id=%s, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{id}/schedule - Schedule retrieved: court_id=%s, date=%s, slots=%d",
		courtID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
