package get_week_schedule

import (
	"github.com/courtclub/court-booking-service/internal/domain"
	getWeekSchedule "github.com/courtclub/court-booking-service/internal/usecase/get_week_schedule"
)

// SlotResponse HTTP модель слота расписания
type SlotResponse struct {
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Available     bool    `json:"available"`
	ReservationID *string `json:"reservationId,omitempty"`
}

// DayResponse HTTP модель расписания одного дня недели
type DayResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// WeekScheduleResponse HTTP модель расписания на неделю
type WeekScheduleResponse struct {
	CourtID   string        `json:"courtId"`
	CourtName string        `json:"courtName"`
	StartDate string        `json:"startDate"`
	Days      []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekSchedule.Response) *WeekScheduleResponse {
	days := make([]DayResponse, len(resp.Days))
	for i, day := range resp.Days {
		slots := make([]SlotResponse, len(day.Slots))
		for j, slot := range day.Slots {
			slots[j] = SlotResponse{
				StartTime:     slot.StartTime.String(),
				EndTime:       slot.EndTime.String(),
				Available:     slot.Available,
				ReservationID: slot.ReservationID,
			}
		}
		days[i] = DayResponse{
			Date:  day.Date.Format(domain.DateFormat),
			Slots: slots,
		}
	}

	return &WeekScheduleResponse{
		CourtID:   resp.CourtID,
		CourtName: resp.CourtName,
		StartDate: resp.StartDate.Format(domain.DateFormat),
		Days:      days,
	}
}
