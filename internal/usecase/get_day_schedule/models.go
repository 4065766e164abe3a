package get_day_schedule

import (
	"time"

	"github.com/courtclub/court-booking-service/pkg/types"
)

// Request модель запроса расписания корта на день
type Request struct {
	CourtID string    // ID корта
	Date    time.Time // Дата (без времени)
}

// Response модель ответа с расписанием корта на день
type Response struct {
	CourtID   string    // ID корта
	CourtName string    // Название корта
	Date      time.Time // Дата расписания
	Slots     []Slot    // Сетка слотов с отметками занятости
}

// Slot модель слота в расписании
type Slot struct {
	StartTime     types.TimeString // Время начала слота
	EndTime       types.TimeString // Время окончания слота
	Available     bool             // Свободен ли слот
	ReservationID *string          // ID занимающего бронирования (для занятых слотов)
}
