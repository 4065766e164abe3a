package get_user_reservations

import (
	"context"

	"github.com/courtclub/court-booking-service/internal/service/reservations/models"
)

type ReservationService interface {
	ListByUser(ctx context.Context, req *models.ListUserReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
