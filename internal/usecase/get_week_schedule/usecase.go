package get_week_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/courtclub/court-booking-service/internal/domain"
	"github.com/courtclub/court-booking-service/internal/usecase/get_day_schedule"
)

// UseCase use case для получения расписания корта на неделю
type UseCase struct {
	dayProvider DayScheduleProvider
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(dayProvider DayScheduleProvider, logger Logger) *UseCase {
	return &UseCase{
		dayProvider: dayProvider,
		logger:      logger,
	}
}

// Execute строит расписание корта на 7 дней подряд, начиная со StartDate.
// Валидируется только стартовая дата: остальные шесть выводятся из неё.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.CourtID == "" {
		return nil, fmt.Errorf("%w: courtID is required", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	days := make([]*get_day_schedule.Response, 0, domain.WeekDays)

	for i := 0; i < domain.WeekDays; i++ {
		date := req.StartDate.AddDate(0, 0, i)

		day, err := uc.dayProvider.Execute(ctx, &get_day_schedule.Request{
			CourtID: req.CourtID,
			Date:    date,
		})
		if err != nil {
			if errors.Is(err, get_day_schedule.ErrCourtNotFound) {
				return nil, ErrCourtNotFound
			}
			uc.logger.Error("GetWeekSchedule: failed to get day schedule for court id=%s date=%s: %v",
				req.CourtID, date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to get day schedule: %v", ErrInternal, err)
		}

		days = append(days, day)
	}

	return &Response{
		CourtID:   req.CourtID,
		CourtName: days[0].CourtName,
		StartDate: req.StartDate,
		Days:      days,
	}, nil
}
