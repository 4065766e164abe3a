package create_reservation

import (
	"context"
	"time"

	"github.com/courtclub/court-booking-service/internal/domain"
	"github.com/courtclub/court-booking-service/internal/integrations/courtservice"
	"github.com/courtclub/court-booking-service/internal/integrations/userservice"
	"github.com/courtclub/court-booking-service/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetByCourtAndDate(ctx context.Context, courtID string, date time.Time, status domain.ReservationStatus) ([]*domain.Reservation, error)
	CountFutureConfirmed(ctx context.Context, userID string, today time.Time, now types.TimeString) (int64, error)
}

// CourtServiceClient интерфейс клиента для CourtService
type CourtServiceClient interface {
	GetCourt(ctx context.Context, courtID string) (*courtservice.Court, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUser(ctx context.Context, userID string) (*userservice.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
