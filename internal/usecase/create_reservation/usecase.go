package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/courtclub/court-booking-service/internal/domain"
	reservationRepo "github.com/courtclub/court-booking-service/internal/infra/storage/reservation"
	courtClient "github.com/courtclub/court-booking-service/internal/integrations/courtservice"
	userClient "github.com/courtclub/court-booking-service/internal/integrations/userservice"
	"github.com/courtclub/court-booking-service/pkg/types"
)

// UseCase use case для создания бронирования корта
type UseCase struct {
	reservationRepo       ReservationRepository
	courtClient           CourtServiceClient
	userClient            UserServiceClient
	txManager             TransactionManager
	timeProvider          TimeProvider
	maxFutureReservations int
	logger                Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	courtClient CourtServiceClient,
	userClient UserServiceClient,
	txManager TransactionManager,
	maxFutureReservations int,
	logger Logger,
) *UseCase {
	if maxFutureReservations <= 0 {
		maxFutureReservations = domain.DefaultMaxFutureReservations
	}

	return &UseCase{
		reservationRepo:       reservationRepo,
		courtClient:           courtClient,
		userClient:            userClient,
		txManager:             txManager,
		timeProvider:          &RealTimeProvider{},
		maxFutureReservations: maxFutureReservations,
		logger:                logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка пересечений и вставка выполняются в одной сериализуемой
// транзакции — проверка и запись неразделимы, гонка двух одновременных
// запросов на один слот исключена. Exclusion constraint в БД страхует
// на случай записи в обход сервиса.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%s, court=%s, date=%s, time=%s-%s",
		req.UserID, req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация формата входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем пользователя и его роль
	user, err := uc.userClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateReservation: user id=%s not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateReservation: failed to get user id=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	role, err := domain.ParseRole(user.Role)
	if err != nil {
		uc.logger.Error("CreateReservation: user id=%s has unknown role %q", req.UserID, user.Role)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Получаем корт
	court, err := uc.getCourt(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}

	// 4. Корт должен принимать бронирования; проверяется раньше остальных
	// бизнес-правил — первая нарушенная проверка определяет ошибку
	if !court.IsActive() {
		uc.logger.Warn("CreateReservation: court id=%s is not active (status=%s)", court.ID, court.Status)
		return nil, ErrCourtUnavailable
	}

	// 5. Время начала строго раньше времени окончания
	if !req.StartTime.IsBefore(req.EndTime) {
		uc.logger.Warn("CreateReservation: invalid time order %s-%s", req.StartTime, req.EndTime)
		return nil, ErrInvalidTimeOrder
	}

	// 6. Дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	// 7. Интервал внутри рабочих часов корта
	if err := validateWithinHours(court, req.StartTime, req.EndTime); err != nil {
		uc.logger.Warn("CreateReservation: working hours validation failed: %v", err)
		return nil, err
	}

	// 8. Фиксируем цену по роли пользователя
	price := court.PriceFor(role)

	// Переменная для хранения результата
	var result *domain.Reservation

	// 9. Проверка квоты, проверка пересечений и вставка — в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 9.1. Лимит будущих бронирований пользователя
		today := dateOnly(now)
		futureCount, err := uc.reservationRepo.CountFutureConfirmed(txCtx, req.UserID, today, types.NewTimeString(now))
		if err != nil {
			uc.logger.Error("CreateReservation: failed to count future reservations: %v", err)
			return fmt.Errorf("%w: failed to count future reservations: %v", ErrInternal, err)
		}

		if futureCount >= int64(uc.maxFutureReservations) {
			uc.logger.Warn("CreateReservation: user id=%s has %d/%d future reservations",
				req.UserID, futureCount, uc.maxFutureReservations)
			return ErrQuotaExceeded
		}

		// 9.2. Получаем подтвержденные бронирования корта на дату с блокировкой (FOR UPDATE)
		reservations, err := uc.reservationRepo.GetByCourtAndDate(txCtx, req.CourtID, req.Date, domain.StatusConfirmed)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 9.3. Проверяем пересечение с запрошенным интервалом
		if hasOverlap(req.StartTime, req.EndTime, reservations) {
			uc.logger.Warn("CreateReservation: slot %s-%s on court id=%s is taken",
				req.StartTime, req.EndTime, req.CourtID)
			return ErrSlotTaken
		}

		// 9.4. Создаем бронирование
		reservation := &domain.Reservation{
			UserID:    req.UserID,
			CourtID:   req.CourtID,
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Status:    domain.StatusConfirmed,
			PaidPrice: price,
			Notes:     req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%s", result.ID)

	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		CourtID:   result.CourtID,
		Date:      result.Date,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Status:    string(result.Status),
		PaidPrice: result.PaidPrice,
		Notes:     result.Notes,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}

// getCourt получает корт из CourtService и конвертирует в доменную модель
func (uc *UseCase) getCourt(ctx context.Context, courtID string) (*domain.Court, error) {
	court, err := uc.courtClient.GetCourt(ctx, courtID)
	if err != nil {
		if errors.Is(err, courtClient.ErrCourtNotFound) {
			uc.logger.Warn("CreateReservation: court id=%s not found", courtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateReservation: failed to get court id=%s: %v", courtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	domainCourt, err := toDomainCourt(court)
	if err != nil {
		uc.logger.Error("CreateReservation: invalid court id=%s in catalog: %v", courtID, err)
		return nil, fmt.Errorf("%w: invalid court record: %v", ErrInternal, err)
	}

	return domainCourt, nil
}

// toDomainCourt конвертирует модель CourtService в доменную.
// Ошибки означают некорректные данные каталога.
func toDomainCourt(court *courtClient.Court) (*domain.Court, error) {
	opening, err := types.NewTimeStringFromString(court.OpeningTime)
	if err != nil {
		return nil, fmt.Errorf("invalid opening time %q: %w", court.OpeningTime, err)
	}

	closing, err := types.NewTimeStringFromString(court.ClosingTime)
	if err != nil {
		return nil, fmt.Errorf("invalid closing time %q: %w", court.ClosingTime, err)
	}

	if !opening.IsBefore(closing) {
		return nil, fmt.Errorf("opening time %s is not before closing time %s", opening, closing)
	}

	if court.SlotDurationMinutes != 0 &&
		(court.SlotDurationMinutes < domain.MinSlotDurationMinutes || court.SlotDurationMinutes > domain.MaxSlotDurationMinutes) {
		return nil, fmt.Errorf("slot duration %d is out of range [%d, %d] minutes",
			court.SlotDurationMinutes, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	return &domain.Court{
		ID:                  court.ID,
		Name:                court.Name,
		Status:              domain.CourtStatus(court.Status),
		OpeningTime:         opening,
		ClosingTime:         closing,
		SlotDurationMinutes: court.SlotDurationMinutes,
		BasePrice:           court.BasePrice,
		MemberPrice:         court.MemberPrice,
	}, nil
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
