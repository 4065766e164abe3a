package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/courtclub/court-booking-service/internal/domain"
	userClient "github.com/courtclub/court-booking-service/internal/integrations/userservice"
	"github.com/courtclub/court-booking-service/internal/service/stats/models"
)

// Service сервис статистики для панели администратора
type Service struct {
	reservationRepo ReservationRepository
	courtClient     CourtServiceClient
	userClient      UserServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(
	reservationRepo ReservationRepository,
	courtClient CourtServiceClient,
	userClient UserServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		courtClient:     courtClient,
		userClient:      userClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetDashboardStats собирает статистику: количество бронирований за сегодня,
// неделю и месяц, выручка и использование кортов за период.
// Период по умолчанию: с первого числа текущего месяца по сегодня.
// Учитываются только статусы CONFIRMED и COMPLETED.
func (s *Service) GetDashboardStats(ctx context.Context, req *models.DashboardStatsRequest) (*models.DashboardStatsResponse, error) {
	s.logger.Info("GetDashboardStats: fetching stats for admin=%s", req.AdminID)

	if err := s.checkAdminAccess(ctx, req.AdminID); err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// Календарная неделя с понедельника по воскресенье
	weekday := int(today.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := today.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)

	// Календарный месяц целиком
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	from := monthStart
	if req.From != nil {
		from = *req.From
	}
	to := today
	if req.To != nil {
		to = *req.To
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: toDate is before fromDate", ErrInvalidInput)
	}

	statuses := domain.CountedStatuses

	todayCount, err := s.reservationRepo.CountByDateRange(ctx, today, today, statuses)
	if err != nil {
		s.logger.Error("GetDashboardStats: failed to count today reservations: %v", err)
		return nil, fmt.Errorf("%w: GetDashboardStats - repository error: %v", ErrInternal, err)
	}

	weekCount, err := s.reservationRepo.CountByDateRange(ctx, weekStart, weekEnd, statuses)
	if err != nil {
		s.logger.Error("GetDashboardStats: failed to count week reservations: %v", err)
		return nil, fmt.Errorf("%w: GetDashboardStats - repository error: %v", ErrInternal, err)
	}

	monthCount, err := s.reservationRepo.CountByDateRange(ctx, monthStart, monthEnd, statuses)
	if err != nil {
		s.logger.Error("GetDashboardStats: failed to count month reservations: %v", err)
		return nil, fmt.Errorf("%w: GetDashboardStats - repository error: %v", ErrInternal, err)
	}

	revenue, err := s.reservationRepo.TotalRevenue(ctx, from, to, statuses)
	if err != nil {
		s.logger.Error("GetDashboardStats: failed to calculate revenue: %v", err)
		return nil, fmt.Errorf("%w: GetDashboardStats - repository error: %v", ErrInternal, err)
	}

	usage, err := s.reservationRepo.CourtUsageStats(ctx, from, to, statuses)
	if err != nil {
		s.logger.Error("GetDashboardStats: failed to get court usage: %v", err)
		return nil, fmt.Errorf("%w: GetDashboardStats - repository error: %v", ErrInternal, err)
	}

	courtUsage := s.enrichCourtNames(ctx, usage)

	s.logger.Info("GetDashboardStats: today=%d, week=%d, month=%d, revenue=%.2f, courts=%d",
		todayCount, weekCount, monthCount, revenue, len(courtUsage))

	return &models.DashboardStatsResponse{
		ReservationsToday:     todayCount,
		ReservationsThisWeek:  weekCount,
		ReservationsThisMonth: monthCount,
		TotalRevenue:          revenue,
		RevenueFrom:           from.Format(domain.DateFormat),
		RevenueTo:             to.Format(domain.DateFormat),
		CourtUsage:            courtUsage,
	}, nil
}

// enrichCourtNames добавляет названия кортов из CourtService.
// Таблица бронирований хранит только court_id. При недоступности каталога
// статистика возвращается без названий.
func (s *Service) enrichCourtNames(ctx context.Context, usage []domain.CourtUsage) []models.CourtUsageResponse {
	names := make(map[string]string)

	courts, err := s.courtClient.ListCourts(ctx)
	if err != nil {
		s.logger.Warn("GetDashboardStats: failed to list courts, stats returned without names: %v", err)
	} else {
		for _, court := range courts {
			names[court.ID] = court.Name
		}
	}

	result := make([]models.CourtUsageResponse, len(usage))
	for i, u := range usage {
		result[i] = models.CourtUsageResponse{
			CourtID:          u.CourtID,
			CourtName:        names[u.CourtID],
			ReservationCount: u.ReservationCount,
			Revenue:          u.Revenue,
		}
	}

	return result
}

// checkAdminAccess проверяет, что пользователь имеет роль администратора
func (s *Service) checkAdminAccess(ctx context.Context, userID string) error {
	user, err := s.userClient.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			s.logger.Warn("checkAdminAccess: user id=%s not found", userID)
			return ErrUserNotFound
		}
		s.logger.Error("checkAdminAccess: failed to get user id=%s: %v", userID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to get user: %v", ErrInternal, err)
	}

	role, err := domain.ParseRole(user.Role)
	if err != nil {
		s.logger.Error("checkAdminAccess: user id=%s has unknown role %q", userID, user.Role)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if role != domain.RoleAdmin {
		s.logger.Warn("checkAdminAccess: user id=%s is not an admin", userID)
		return ErrAccessDenied
	}

	return nil
}
