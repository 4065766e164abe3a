package get_day_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/courtclub/court-booking-service/internal/domain"
	courtClient "github.com/courtclub/court-booking-service/internal/integrations/courtservice"
	"github.com/courtclub/court-booking-service/pkg/types"
)

// UseCase use case для получения расписания корта на день
type UseCase struct {
	reservationRepo ReservationRepository
	courtClient     CourtServiceClient
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	courtClient CourtServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		courtClient:     courtClient,
		logger:          logger,
	}
}

// Execute строит расписание корта на день: сетка слотов от открытия до
// закрытия, занятые слоты отмечены ID бронирования. Чтение без кэша —
// каждый вызов отражает текущее состояние.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.CourtID == "" {
		return nil, fmt.Errorf("%w: courtID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 1. Получаем корт
	court, err := uc.courtClient.GetCourt(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtClient.ErrCourtNotFound) {
			uc.logger.Warn("GetDaySchedule: court id=%s not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetDaySchedule: failed to get court id=%s: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	opening, err := types.NewTimeStringFromString(court.OpeningTime)
	if err != nil {
		uc.logger.Error("GetDaySchedule: court id=%s has invalid opening time %q", req.CourtID, court.OpeningTime)
		return nil, fmt.Errorf("%w: invalid court record: %v", ErrInternal, err)
	}

	closing, err := types.NewTimeStringFromString(court.ClosingTime)
	if err != nil {
		uc.logger.Error("GetDaySchedule: court id=%s has invalid closing time %q", req.CourtID, court.ClosingTime)
		return nil, fmt.Errorf("%w: invalid court record: %v", ErrInternal, err)
	}

	slotMinutes := court.SlotDurationMinutes
	if slotMinutes <= 0 {
		slotMinutes = domain.DefaultSlotDurationMinutes
	}

	// 2. Строим сетку слотов
	grid := domain.BuildSlotGrid(opening, closing, slotMinutes)

	// 3. Получаем подтвержденные бронирования на дату
	reservations, err := uc.reservationRepo.GetByCourtAndDate(ctx, req.CourtID, req.Date, domain.StatusConfirmed)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get reservations for court id=%s: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Проецируем бронирования на сетку: слот недоступен, только если
	// пересекается с подтвержденным бронированием. Статус корта на
	// проекцию не влияет — создание бронирования проверяет его отдельно.
	slots := make([]Slot, len(grid))
	for i, interval := range grid {
		slot := Slot{
			StartTime: interval.Start,
			EndTime:   interval.End,
			Available: true,
		}

		for _, res := range reservations {
			if domain.Overlaps(interval.Start, interval.End, res.StartTime, res.EndTime) {
				slot.Available = false
				reservationID := res.ID
				slot.ReservationID = &reservationID
				break
			}
		}

		slots[i] = slot
	}

	return &Response{
		CourtID:   court.ID,
		CourtName: court.Name,
		Date:      req.Date,
		Slots:     slots,
	}, nil
}
