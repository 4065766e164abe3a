package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/courtclub/court-booking-service/internal/domain"
	reservationRepo "github.com/courtclub/court-booking-service/internal/infra/storage/reservation"
	userClient "github.com/courtclub/court-booking-service/internal/integrations/userservice"
	"github.com/courtclub/court-booking-service/internal/service/reservations/models"
)

// Service сервис жизненного цикла бронирований
type Service struct {
	reservationRepo           ReservationRepository
	userClient                UserServiceClient
	timeProvider              TimeProvider
	cancellationDeadlineHours int
	logger                    Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	userClient UserServiceClient,
	cancellationDeadlineHours int,
	logger Logger,
) *Service {
	if cancellationDeadlineHours <= 0 {
		cancellationDeadlineHours = domain.DefaultCancellationDeadlineHours
	}

	return &Service{
		reservationRepo:           reservationRepo,
		userClient:                userClient,
		timeProvider:              &RealTimeProvider{},
		cancellationDeadlineHours: cancellationDeadlineHours,
		logger:                    logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только своё бронирование, администратор — любое
func (s *Service) GetByID(ctx context.Context, id string, requesterID string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s for user=%s", id, requesterID)

	reservation, err := s.getReservation(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if reservation.UserID != requesterID {
		if err := s.checkAdminAccess(ctx, requesterID); err != nil {
			s.logger.Warn("GetByID: access denied for user=%s to reservation id=%s", requesterID, id)
			return nil, ErrAccessDenied
		}
	}

	return models.FromDomainReservation(reservation), nil
}

// Cancel отменяет бронирование владельцем.
// Отменить можно только подтвержденное бронирование и не позже чем за
// cancellationDeadlineHours часов до начала.
func (s *Service) Cancel(ctx context.Context, reservationID string, req *models.CancelRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%s by user=%s", reservationID, req.UserID)

	reservation, err := s.getReservation(ctx, reservationID, "Cancel")
	if err != nil {
		return nil, err
	}

	// Владелец отменяет только своё бронирование
	if reservation.UserID != req.UserID {
		s.logger.Warn("Cancel: access denied for user=%s to reservation id=%s", req.UserID, reservationID)
		return nil, ErrAccessDenied
	}

	if !reservation.IsActive() {
		s.logger.Warn("Cancel: reservation id=%s is not cancellable, status=%s", reservationID, reservation.Status)
		return nil, ErrInvalidState
	}

	// Дедлайн отмены: не позже чем за N часов до начала.
	// Отмена ровно в момент дедлайна еще разрешена.
	now := s.timeProvider.Now()
	deadline := reservation.StartsAt().Add(-time.Duration(s.cancellationDeadlineHours) * time.Hour)
	if now.After(deadline) {
		s.logger.Warn("Cancel: deadline passed for reservation id=%s (starts at %s)",
			reservationID, reservation.StartsAt().Format(time.RFC3339))
		return nil, ErrDeadlinePassed
	}

	if err := s.updateStatus(ctx, reservationID, domain.StatusCancelled, "Cancel"); err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%s", reservationID)

	reservation.Status = domain.StatusCancelled
	return models.FromDomainReservation(reservation), nil
}

// AdminCancel отменяет бронирование администратором.
// Безусловная отмена: ни дедлайн, ни текущий статус не проверяются.
func (s *Service) AdminCancel(ctx context.Context, reservationID string, req *models.AdminCancelRequest) (*models.ReservationResponse, error) {
	s.logger.Info("AdminCancel: cancelling reservation id=%s by admin=%s", reservationID, req.AdminID)

	if err := s.checkAdminAccess(ctx, req.AdminID); err != nil {
		return nil, err
	}

	reservation, err := s.getReservation(ctx, reservationID, "AdminCancel")
	if err != nil {
		return nil, err
	}

	if err := s.updateStatus(ctx, reservationID, domain.StatusCancelled, "AdminCancel"); err != nil {
		return nil, err
	}

	s.logger.Info("AdminCancel: successfully cancelled reservation id=%s", reservationID)

	reservation.Status = domain.StatusCancelled
	return models.FromDomainReservation(reservation), nil
}

// UpdateStatus обновляет статус бронирования. Доступно только администраторам.
// Возврат в CONFIRMED может конфликтовать с занятым слотом — тогда ErrSlotTaken.
func (s *Service) UpdateStatus(ctx context.Context, reservationID string, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: updating reservation id=%s to status=%s by admin=%s",
		reservationID, req.Status, req.AdminID)

	if err := s.checkAdminAccess(ctx, req.AdminID); err != nil {
		return nil, err
	}

	newStatus, err := domain.ParseReservationStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for reservation id=%s", req.Status, reservationID)
		return nil, ErrInvalidStatus
	}

	reservation, err := s.getReservation(ctx, reservationID, "UpdateStatus")
	if err != nil {
		return nil, err
	}

	if err := s.updateStatus(ctx, reservationID, newStatus, "UpdateStatus"); err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: successfully updated reservation id=%s to status=%s", reservationID, newStatus)

	reservation.Status = newStatus
	return models.FromDomainReservation(reservation), nil
}

// ListByUser получает страницу бронирований пользователя, новые первыми
func (s *Service) ListByUser(ctx context.Context, req *models.ListUserReservationsRequest) (*models.ReservationListResponse, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	page, size := normalizePaging(req.Page, req.Size)

	s.logger.Info("ListByUser: fetching reservations for user=%s, page=%d, size=%d", req.UserID, page, size)

	reservations, total, err := s.reservationRepo.ListByUser(ctx, req.UserID, page, size)
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByUser: successfully fetched %d of %d reservations for user=%s",
		len(reservations), total, req.UserID)
	return models.FromDomainReservationList(reservations, page, size, total), nil
}

// ListWithFilter получает страницу бронирований по фильтрам администратора
func (s *Service) ListWithFilter(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("ListWithFilter: fetching reservations for admin=%s", req.AdminID)

	if err := s.checkAdminAccess(ctx, req.AdminID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListWithFilter: invalid filter: %v", err)
		return nil, ErrInvalidStatus
	}

	page, size := normalizePaging(req.Page, req.Size)

	reservations, total, err := s.reservationRepo.ListWithFilter(ctx, filter, page, size)
	if err != nil {
		s.logger.Error("ListWithFilter: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListWithFilter - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListWithFilter: successfully fetched %d of %d reservations", len(reservations), total)
	return models.FromDomainReservationList(reservations, page, size, total), nil
}

// Вспомогательные методы

func (s *Service) getReservation(ctx context.Context, id string, op string) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%s not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return reservation, nil
}

func (s *Service) updateStatus(ctx context.Context, id string, status domain.ReservationStatus, op string) error {
	if err := s.reservationRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%s not found during update", op, id)
			return ErrReservationNotFound
		}
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			s.logger.Warn("%s: reservation id=%s conflicts with a taken slot", op, id)
			return ErrSlotTaken
		}
		s.logger.Error("%s: repository error for reservation id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return nil
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

// normalizePaging приводит параметры пагинации к допустимым значениям
func normalizePaging(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = domain.DefaultPageSize
	}
	if size > domain.MaxPageSize {
		size = domain.MaxPageSize
	}
	return page, size
}
