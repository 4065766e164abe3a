package stats

import (
	"context"
	"time"

	"github.com/courtclub/court-booking-service/internal/domain"
	"github.com/courtclub/court-booking-service/internal/integrations/courtservice"
	"github.com/courtclub/court-booking-service/internal/integrations/userservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	CountByDateRange(ctx context.Context, from, to time.Time, statuses []domain.ReservationStatus) (int64, error)
	TotalRevenue(ctx context.Context, from, to time.Time, statuses []domain.ReservationStatus) (float64, error)
	CourtUsageStats(ctx context.Context, from, to time.Time, statuses []domain.ReservationStatus) ([]domain.CourtUsage, error)
}

// CourtServiceClient интерфейс клиента для CourtService
type CourtServiceClient interface {
	ListCourts(ctx context.Context) ([]courtservice.Court, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUser(ctx context.Context, userID string) (*userservice.User, error)
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
