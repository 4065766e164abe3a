package create_reservation

import (
	"fmt"
	"time"

	"github.com/courtclub/court-booking-service/internal/domain"
	"github.com/courtclub/court-booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.CourtID == "" {
		return fmt.Errorf("%w: courtID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не раньше сегодняшней.
// Сравниваются только даты: слот на сегодня принимается независимо от
// текущего времени.
func validateDate(date time.Time, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrPastDate
	}

	return nil
}

// validateWithinHours проверяет, что интервал целиком внутри рабочих часов корта
func validateWithinHours(court *domain.Court, start, end types.TimeString) error {
	if start.IsBefore(court.OpeningTime) {
		return ErrBeforeOpening
	}

	if end.IsAfter(court.ClosingTime) {
		return ErrAfterClosing
	}

	return nil
}

// hasOverlap проверяет пересечение запрошенного интервала с активными
// бронированиями. Интервалы полуоткрытые: смежные слоты не конфликтуют.
func hasOverlap(start, end types.TimeString, reservations []*domain.Reservation) bool {
	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}

		if domain.Overlaps(start, end, res.StartTime, res.EndTime) {
			return true
		}
	}

	return false
}
