package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/courtclub/court-booking-service/internal/domain"
	reservationRepo "github.com/courtclub/court-booking-service/internal/infra/storage/reservation"
	"github.com/courtclub/court-booking-service/internal/integrations/userservice"
	"github.com/courtclub/court-booking-service/internal/service/reservations/models"
	"github.com/courtclub/court-booking-service/pkg/types"
)

// MockReservationRepository mock репозитория бронирований
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockReservationRepository) ListByUser(ctx context.Context, userID string, page, size int) ([]*domain.Reservation, int64, error) {
	args := m.Called(ctx, userID, page, size)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Reservation), args.Get(1).(int64), args.Error(2)
}

func (m *MockReservationRepository) ListWithFilter(ctx context.Context, filter domain.ReservationsFilter, page, size int) ([]*domain.Reservation, int64, error) {
	args := m.Called(ctx, filter, page, size)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Reservation), args.Get(1).(int64), args.Error(2)
}

// MockUserServiceClient mock клиента UserService
type MockUserServiceClient struct {
	mock.Mock
}

func (m *MockUserServiceClient) GetUser(ctx context.Context, userID string) (*userservice.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userservice.User), args.Error(1)
}

// fixedTimeProvider возвращает фиксированное время
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

// nopLogger логгер-заглушка для тестов
type nopLogger struct{}

func (l *nopLogger) Info(format string, v ...interface{})  {}
func (l *nopLogger) Warn(format string, v ...interface{})  {}
func (l *nopLogger) Error(format string, v ...interface{}) {}

const (
	ownerID       = "8f14e45f-ceea-467f-a34e-5ad8b0f0ed1c"
	adminID       = "a87ff679-a2f3-471d-9181-d61e38a01b2f"
	strangerID    = "e4da3b7f-bbce-4345-b7e8-2f3a611f0a3d"
	reservationID = "45c48cce-2e2d-4fbd-aa4c-60f5d3f2b1aa"
)

func confirmedReservation(startsAt time.Time) *domain.Reservation {
	return &domain.Reservation{
		ID:        reservationID,
		UserID:    ownerID,
		CourtID:   "court-1",
		Date:      time.Date(startsAt.Year(), startsAt.Month(), startsAt.Day(), 0, 0, 0, 0, time.UTC),
		StartTime: types.NewTimeString(startsAt),
		EndTime:   types.NewTimeString(startsAt.Add(time.Hour)),
		Status:    domain.StatusConfirmed,
		PaidPrice: 25.00,
	}
}

func adminUser() *userservice.User {
	return &userservice.User{ID: adminID, Role: "ADMIN"}
}

func standardUser(id string) *userservice.User {
	return &userservice.User{ID: id, Role: "STANDARD"}
}

func newTestService(repo *MockReservationRepository, users *MockUserServiceClient, now time.Time) *Service {
	s := NewService(repo, users, 2, &nopLogger{})
	s.timeProvider = &fixedTimeProvider{now: now}
	return s
}

func TestService_Cancel(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("owner cancels well before deadline", func(t *testing.T) {
		repo := new(MockReservationRepository)
		users := new(MockUserServiceClient)

		// Начало через 3 часа, дедлайн 2 часа — отмена разрешена
		res := confirmedReservation(now.Add(3 * time.Hour))
		repo.On("GetByID", mock.Anything, reservationID).Return(res, nil)
		repo.On("UpdateStatus", mock.Anything, reservationID, domain.StatusCancelled).Return(nil)

		s := newTestService(repo, users, now)

		resp, err := s.Cancel(context.Background(), reservationID, &models.CancelRequest{UserID: ownerID})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)

		repo.AssertExpectations(t)
	})

	t.Run("deadline passed", func(t *testing.T) {
		repo := new(MockReservationRepository)
		users := new(MockUserServiceClient)

		// Начало через 1 час — меньше дедлайна в 2 часа
		res := confirmedReservation(now.Add(time.Hour))
		repo.On("GetByID", mock.Anything, reservationID).Return(res, nil)

		s := newTestService(repo, users, now)

		_, err := s.Cancel(context.Background(), reservationID, &models.CancelRequest{UserID: ownerID})
		assert.ErrorIs(t, err, ErrDeadlinePassed)

		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("exactly at deadline is still allowed", func(t *testing.T) {
		repo := new(MockReservationRepository)
		users := new(MockUserServiceClient)

		res := confirmedReservation(now.Add(2 * time.Hour))
		repo.On("GetByID", mock.Anything, reservationID).Return(res, nil)
		repo.On("UpdateStatus", mock.Anything, reservationID, domain.StatusCancelled).Return(nil)

		s := newTestService(repo, users, now)

		resp, err := s.Cancel(context.Background(), reservationID, &models.CancelRequest{UserID: ownerID})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	})

	t.Run("one second past deadline is rejected", func(t *testing.T) {
		repo := new(MockReservationRepository)
		users := new(MockUserServiceClient)

		res := confirmedReservation(now.Add(2*time.Hour - time.Second))
		repo.On("GetByID", mock.Anything, reservationID).Return(res, nil)

		s := newTestService(repo, users, now)

		_, err := s.Cancel(context.Background(), reservationID, &models.CancelRequest{UserID: ownerID})
		assert.ErrorIs(t, err, ErrDeadlinePassed)
	})

	t.Run("not owner", func(t *testing.T) {
		repo := new(MockReservationRepository)
		users := new(MockUserServiceClient)

		res := confirmedReservation(now.Add(5 * time.Hour))
		repo.On("GetByID", mock.Anything, reservationID).Return(res, nil)

		s := newTestService(repo, users, now)

		_, err := s.Cancel(context.Background(), reservationID, &models.CancelRequest{UserID: strangerID})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("already cancelled", func(t *testing.T) {
		repo := new(MockReservationRepository)
		users := new(MockUserServiceClient)

		res := confirmedReservation(now.Add(5 * time.Hour))
		res.Status = domain.StatusCancelled
		repo.On("GetByID", mock.Anything, reservationID).Return(res, nil)

		s := newTestService(repo, users, now)

		_, err := s.Cancel(context.Background(), reservationID, &models.CancelRequest{UserID: ownerID})
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("reservation not found", func(t *testing.T) {
		repo := new(MockReservationRepository)
		users := new(MockUserServiceClient)

		repo.On("GetByID", mock.Anything, reservationID).Return(nil, reservationRepo.ErrReservationNotFound)

		s := newTestService(repo, users, now)

		_, err := s.Cancel(context.Background(), reservationID, &models.CancelRequest{UserID: ownerID})
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestService_AdminCancel(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("admin cancels past deadline", func(t *testing.T) {
		repo := new(MockReservationRepository)
		users := new(MockUserServiceClient)

		// Начало через 30 минут — владельцу уже нельзя, администратору можно
		res := confirmedReservation(now.Add(30 * time.Minute))
		users.On("GetUser", mock.Anything, adminID).Return(adminUser(), nil)
		repo.On("GetByID", mock.Anything, reservationID).Return(res, nil)
		repo.On("UpdateStatus", mock.Anything, reservationID, domain.StatusCancelled).Return(nil)

		s := newTestService(repo, users, now)

		resp, err := s.AdminCancel(context.Background(), reservationID, &models.AdminCancelRequest{AdminID: adminID})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	})

	t.Run("admin cancels a completed reservation", func(t *testing.T) {
		repo := new(MockReservationRepository)
		users := new(MockUserServiceClient)

		// Отмена администратором безусловна: статус не проверяется
		res := confirmedReservation(now.Add(-24 * time.Hour))
		res.Status = domain.StatusCompleted
		users.On("GetUser", mock.Anything, adminID).Return(adminUser(), nil)
		repo.On("GetByID", mock.Anything, reservationID).Return(res, nil)
		repo.On("UpdateStatus", mock.Anything, reservationID, domain.StatusCancelled).Return(nil)

		s := newTestService(repo, users, now)

		resp, err := s.AdminCancel(context.Background(), reservationID, &models.AdminCancelRequest{AdminID: adminID})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		repo := new(MockReservationRepository)
		users := new(MockUserServiceClient)

		users.On("GetUser", mock.Anything, strangerID).Return(standardUser(strangerID), nil)

		s := newTestService(repo, users, now)

		_, err := s.AdminCancel(context.Background(), reservationID, &models.AdminCancelRequest{AdminID: strangerID})
		assert.ErrorIs(t, err, ErrAccessDenied)

		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("admin marks completed", func(t *testing.T) {
		repo := new(MockReservationRepository)
		users := new(MockUserServiceClient)

		res := confirmedReservation(now.Add(-2 * time.Hour))
		users.On("GetUser", mock.Anything, adminID).Return(adminUser(), nil)
		repo.On("GetByID", mock.Anything, reservationID).Return(res, nil)
		repo.On("UpdateStatus", mock.Anything, reservationID, domain.StatusCompleted).Return(nil)

		s := newTestService(repo, users, now)

		resp, err := s.UpdateStatus(context.Background(), reservationID, &models.UpdateStatusRequest{
			AdminID: adminID,
			Status:  "completed",
		})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		repo := new(MockReservationRepository)
		users := new(MockUserServiceClient)

		users.On("GetUser", mock.Anything, adminID).Return(adminUser(), nil)

		s := newTestService(repo, users, now)

		_, err := s.UpdateStatus(context.Background(), reservationID, &models.UpdateStatusRequest{
			AdminID: adminID,
			Status:  "BOOKED",
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("restoring to confirmed over taken slot", func(t *testing.T) {
		repo := new(MockReservationRepository)
		users := new(MockUserServiceClient)

		res := confirmedReservation(now.Add(5 * time.Hour))
		res.Status = domain.StatusCancelled
		users.On("GetUser", mock.Anything, adminID).Return(adminUser(), nil)
		repo.On("GetByID", mock.Anything, reservationID).Return(res, nil)
		repo.On("UpdateStatus", mock.Anything, reservationID, domain.StatusConfirmed).
			Return(reservationRepo.ErrSlotTaken)

		s := newTestService(repo, users, now)

		_, err := s.UpdateStatus(context.Background(), reservationID, &models.UpdateStatusRequest{
			AdminID: adminID,
			Status:  "CONFIRMED",
		})
		assert.ErrorIs(t, err, ErrSlotTaken)
	})
}

func TestService_GetByID(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	res := confirmedReservation(now.Add(5 * time.Hour))

	t.Run("owner sees own reservation", func(t *testing.T) {
		repo := new(MockReservationRepository)
		users := new(MockUserServiceClient)

		repo.On("GetByID", mock.Anything, reservationID).Return(res, nil)

		s := newTestService(repo, users, now)

		resp, err := s.GetByID(context.Background(), reservationID, ownerID)
		require.NoError(t, err)
		assert.Equal(t, reservationID, resp.ID)

		users.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
	})

	t.Run("admin sees any reservation", func(t *testing.T) {
		repo := new(MockReservationRepository)
		users := new(MockUserServiceClient)

		repo.On("GetByID", mock.Anything, reservationID).Return(res, nil)
		users.On("GetUser", mock.Anything, adminID).Return(adminUser(), nil)

		s := newTestService(repo, users, now)

		resp, err := s.GetByID(context.Background(), reservationID, adminID)
		require.NoError(t, err)
		assert.Equal(t, reservationID, resp.ID)
	})

	t.Run("stranger denied", func(t *testing.T) {
		repo := new(MockReservationRepository)
		users := new(MockUserServiceClient)

		repo.On("GetByID", mock.Anything, reservationID).Return(res, nil)
		users.On("GetUser", mock.Anything, strangerID).Return(standardUser(strangerID), nil)

		s := newTestService(repo, users, now)

		_, err := s.GetByID(context.Background(), reservationID, strangerID)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_ListByUser(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("paging is normalized", func(t *testing.T) {
		repo := new(MockReservationRepository)
		users := new(MockUserServiceClient)

		repo.On("ListByUser", mock.Anything, ownerID, 0, domain.DefaultPageSize).
			Return([]*domain.Reservation{confirmedReservation(now.Add(5 * time.Hour))}, int64(1), nil)

		s := newTestService(repo, users, now)

		resp, err := s.ListByUser(context.Background(), &models.ListUserReservationsRequest{
			UserID: ownerID,
			Page:   -1,
			Size:   0,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.Total)
		assert.Equal(t, domain.DefaultPageSize, resp.Size)
		require.Len(t, resp.Reservations, 1)
	})

	t.Run("size capped at maximum", func(t *testing.T) {
		repo := new(MockReservationRepository)
		users := new(MockUserServiceClient)

		repo.On("ListByUser", mock.Anything, ownerID, 2, domain.MaxPageSize).
			Return([]*domain.Reservation{}, int64(0), nil)

		s := newTestService(repo, users, now)

		resp, err := s.ListByUser(context.Background(), &models.ListUserReservationsRequest{
			UserID: ownerID,
			Page:   2,
			Size:   1000,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.MaxPageSize, resp.Size)
	})

	t.Run("missing user id", func(t *testing.T) {
		s := newTestService(new(MockReservationRepository), new(MockUserServiceClient), now)

		_, err := s.ListByUser(context.Background(), &models.ListUserReservationsRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
