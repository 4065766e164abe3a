package models

import "time"

// DashboardStatsRequest запрос статистики для панели администратора
type DashboardStatsRequest struct {
	AdminID string     `json:"adminId"`
	From    *time.Time `json:"fromDate,omitempty"` // Начало периода выручки (опционально)
	To      *time.Time `json:"toDate,omitempty"`   // Конец периода выручки (опционально)
}

// CourtUsageResponse использование одного корта за период
type CourtUsageResponse struct {
	CourtID          string  `json:"courtId"`
	CourtName        string  `json:"courtName"`
	ReservationCount int64   `json:"reservationCount"`
	Revenue          float64 `json:"revenue"`
}

// DashboardStatsResponse статистика для панели администратора
type DashboardStatsResponse struct {
	ReservationsToday     int64                `json:"reservationsToday"`
	ReservationsThisWeek  int64                `json:"reservationsThisWeek"`
	ReservationsThisMonth int64                `json:"reservationsThisMonth"`
	TotalRevenue          float64              `json:"totalRevenue"`
	RevenueFrom           string               `json:"revenueFrom"` // "2026-03-01"
	RevenueTo             string               `json:"revenueTo"`   // "2026-03-15"
	CourtUsage            []CourtUsageResponse `json:"courtUsage"`
}
