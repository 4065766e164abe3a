package models

import (
	"time"

	"github.com/courtclub/court-booking-service/internal/domain"
)

// Request модели

// CancelRequest запрос на отмену бронирования владельцем
type CancelRequest struct {
	UserID string `json:"userId"`
}

// AdminCancelRequest запрос на отмену бронирования администратором
type AdminCancelRequest struct {
	AdminID string `json:"adminId"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	AdminID string `json:"adminId"`
	Status  string `json:"status"`
}

// ListUserReservationsRequest запрос на получение бронирований пользователя
type ListUserReservationsRequest struct {
	UserID string `json:"userId"`
	Page   int    `json:"page"`
	Size   int    `json:"size"`
}

// ListReservationsRequest запрос администратора на список бронирований с фильтрами
type ListReservationsRequest struct {
	AdminID string     `json:"adminId"`
	CourtID *string    `json:"courtId,omitempty"` // Фильтр по корту (опционально)
	Date    *time.Time `json:"date,omitempty"`    // Фильтр по дате (опционально)
	Status  *string    `json:"status,omitempty"`  // Фильтр по статусу (опционально)
	Page    int        `json:"page"`
	Size    int        `json:"size"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		CourtID: r.CourtID,
		Date:    r.Date,
	}

	if r.Status != nil {
		status, err := domain.ParseReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	CourtID   string  `json:"courtId"`
	Date      string  `json:"date"`      // "2026-03-15"
	StartTime string  `json:"startTime"` // "10:00"
	EndTime   string  `json:"endTime"`   // "11:00"
	Status    string  `json:"status"`
	PaidPrice float64 `json:"paidPrice"`
	Notes     *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со страницей бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Page         int                   `json:"page"`
	Size         int                   `json:"size"`
	Total        int64                 `json:"total"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		CourtID:   r.CourtID,
		Date:      r.Date.Format(domain.DateFormat),
		StartTime: r.StartTime.String(),
		EndTime:   r.EndTime.String(),
		Status:    string(r.Status),
		PaidPrice: r.PaidPrice,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует страницу domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation, page, size int, total int64) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
		Page:         page,
		Size:         size,
		Total:        total,
	}

	for _, reservation := range reservations {
		if r := FromDomainReservation(reservation); r != nil {
			resp.Reservations = append(resp.Reservations, *r)
		}
	}

	return resp
}
