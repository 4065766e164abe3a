package get_week_schedule

import (
	"time"

	"github.com/courtclub/court-booking-service/internal/usecase/get_day_schedule"
)

// Request модель запроса расписания корта на неделю
type Request struct {
	CourtID   string    // ID корта
	StartDate time.Time // Первый день недели (любой день, не обязательно понедельник)
}

// Response модель ответа с расписанием корта на неделю
type Response struct {
	CourtID   string                       // ID корта
	CourtName string                       // Название корта
	StartDate time.Time                    // Первый день недели
	Days      []*get_day_schedule.Response // Расписания по дням, 7 подряд
}
