package list_reservations

import (
	"context"

	"github.com/courtclub/court-booking-service/internal/service/reservations/models"
)

type ReservationService interface {
	ListWithFilter(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
