package get_week_schedule

import (
	"context"

	"github.com/courtclub/court-booking-service/internal/usecase/get_day_schedule"
)

// DayScheduleProvider интерфейс провайдера расписания на день
type DayScheduleProvider interface {
	Execute(ctx context.Context, req *get_day_schedule.Request) (*get_day_schedule.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
