package get_day_schedule

import (
	"context"
	"time"

	"github.com/courtclub/court-booking-service/internal/domain"
	"github.com/courtclub/court-booking-service/internal/integrations/courtservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByCourtAndDate(ctx context.Context, courtID string, date time.Time, status domain.ReservationStatus) ([]*domain.Reservation, error)
}

// CourtServiceClient интерфейс клиента для CourtService
type CourtServiceClient interface {
	GetCourt(ctx context.Context, courtID string) (*courtservice.Court, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
