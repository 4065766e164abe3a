package admin_cancel_reservation

import (
	"context"

	"github.com/courtclub/court-booking-service/internal/service/reservations/models"
)

type ReservationService interface {
	AdminCancel(ctx context.Context, reservationID string, req *models.AdminCancelRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
