package get_day_schedule

import (
	"github.com/courtclub/court-booking-service/internal/domain"
	getDaySchedule "github.com/courtclub/court-booking-service/internal/usecase/get_day_schedule"
)

// SlotResponse HTTP модель слота расписания
type SlotResponse struct {
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Available     bool    `json:"available"`
	ReservationID *string `json:"reservationId,omitempty"`
}

// DayScheduleResponse HTTP модель расписания на день
type DayScheduleResponse struct {
	CourtID   string         `json:"courtId"`
	CourtName string         `json:"courtName"`
	Date      string         `json:"date"`
	Slots     []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:     slot.StartTime.String(),
			EndTime:       slot.EndTime.String(),
			Available:     slot.Available,
			ReservationID: slot.ReservationID,
		}
	}

	return &DayScheduleResponse{
		CourtID:   resp.CourtID,
		CourtName: resp.CourtName,
		Date:      resp.Date.Format(domain.DateFormat),
		Slots:     slots,
	}
}
