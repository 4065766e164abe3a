package cancel_reservation

import (
	"context"

	"github.com/courtclub/court-booking-service/internal/service/reservations/models"
)

type ReservationService interface {
	Cancel(ctx context.Context, reservationID string, req *models.CancelRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
