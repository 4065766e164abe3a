package get_dashboard_stats

import (
	"context"

	"github.com/courtclub/court-booking-service/internal/service/stats/models"
)

type StatsService interface {
	GetDashboardStats(ctx context.Context, req *models.DashboardStatsRequest) (*models.DashboardStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
