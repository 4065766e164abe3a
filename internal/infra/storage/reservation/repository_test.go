package reservation

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtclub/court-booking-service/internal/domain"
	"github.com/courtclub/court-booking-service/pkg/ptr"
	"github.com/courtclub/court-booking-service/pkg/types"
)

var (
	testDate      = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	testCreatedAt = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
)

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return NewRepository(db), mock, func() { db.Close() }
}

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "court_id", "reservation_date",
		"start_time", "end_time", "status", "paid_price",
		"notes", "created_at", "updated_at",
	})
}

func TestRepository_Create(t *testing.T) {
	reservation := &domain.Reservation{
		UserID:    "user-1",
		CourtID:   "court-1",
		Date:      testDate,
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    domain.StatusConfirmed,
		PaidPrice: 25.00,
	}

	t.Run("success", func(t *testing.T) {
		repo, mock, closeFn := newTestRepository(t)
		defer closeFn()

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations (user_id,court_id,reservation_date,start_time,end_time,status,paid_price,notes) VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id, created_at, updated_at")).
			WithArgs("user-1", "court-1", testDate, "10:00", "11:00", "CONFIRMED", 25.00, nil).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow("res-1", testCreatedAt, testCreatedAt))

		created, err := repo.Create(context.Background(), reservation)
		require.NoError(t, err)
		assert.Equal(t, "res-1", created.ID)
		assert.Equal(t, testCreatedAt, created.CreatedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exclusion constraint violation maps to slot taken", func(t *testing.T) {
		repo, mock, closeFn := newTestRepository(t)
		defer closeFn()

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).
			WillReturnError(&pq.Error{Code: "23P01"})

		_, err := repo.Create(context.Background(), reservation)
		assert.ErrorIs(t, err, ErrSlotTaken)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique constraint violation maps to slot taken", func(t *testing.T) {
		repo, mock, closeFn := newTestRepository(t)
		defer closeFn()

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.Create(context.Background(), reservation)
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("other database error is wrapped", func(t *testing.T) {
		repo, mock, closeFn := newTestRepository(t)
		defer closeFn()

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).
			WillReturnError(&pq.Error{Code: "53300"})

		_, err := repo.Create(context.Background(), reservation)
		assert.ErrorIs(t, err, ErrExecQuery)
	})
}

func TestRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, closeFn := newTestRepository(t)
		defer closeFn()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, court_id, reservation_date, start_time, end_time, status, paid_price, notes, created_at, updated_at FROM reservations WHERE id = $1")).
			WithArgs("res-1").
			WillReturnRows(reservationRows().AddRow(
				"res-1", "user-1", "court-1", testDate,
				"10:00", "11:00", "CONFIRMED", 25.00,
				nil, testCreatedAt, testCreatedAt,
			))

		res, err := repo.GetByID(context.Background(), "res-1")
		require.NoError(t, err)
		assert.Equal(t, "res-1", res.ID)
		assert.Equal(t, types.TimeString("10:00"), res.StartTime)
		assert.Equal(t, domain.StatusConfirmed, res.Status)
		assert.Nil(t, res.Notes)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, closeFn := newTestRepository(t)
		defer closeFn()

		mock.ExpectQuery("SELECT .+ FROM reservations WHERE id").
			WithArgs("missing").
			WillReturnRows(reservationRows())

		_, err := repo.GetByID(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestRepository_GetByCourtAndDate(t *testing.T) {
	repo, mock, closeFn := newTestRepository(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE court_id = $1 AND reservation_date = $2 AND status = $3 ORDER BY start_time ASC")).
		WithArgs("court-1", testDate, "CONFIRMED").
		WillReturnRows(reservationRows().
			AddRow("res-1", "user-1", "court-1", testDate, "09:00", "10:00", "CONFIRMED", 25.00, nil, testCreatedAt, testCreatedAt).
			AddRow("res-2", "user-2", "court-1", testDate, "11:00", "12:00", "CONFIRMED", 18.00, nil, testCreatedAt, testCreatedAt))

	reservations, err := repo.GetByCourtAndDate(context.Background(), "court-1", testDate, domain.StatusConfirmed)
	require.NoError(t, err)
	require.Len(t, reservations, 2)
	assert.Equal(t, "res-1", reservations[0].ID)
	assert.Equal(t, "res-2", reservations[1].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ExistsOverlapping(t *testing.T) {
	t.Run("overlap exists", func(t *testing.T) {
		repo, mock, closeFn := newTestRepository(t)
		defer closeFn()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM reservations")).
			WithArgs("court-1", testDate, "CONFIRMED", "11:00", "10:00").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsOverlapping(context.Background(), "court-1", testDate, "10:00", "11:00", nil)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("no overlap with excluded reservation", func(t *testing.T) {
		repo, mock, closeFn := newTestRepository(t)
		defer closeFn()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM reservations")).
			WithArgs("court-1", testDate, "CONFIRMED", "11:00", "10:00", "res-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsOverlapping(context.Background(), "court-1", testDate, "10:00", "11:00", ptr.Ptr("res-1"))
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestRepository_CountFutureConfirmed(t *testing.T) {
	repo, mock, closeFn := newTestRepository(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM reservations")).
		WithArgs("CONFIRMED", "user-1", testDate, testDate, "10:00").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountFutureConfirmed(context.Background(), "user-1", testDate, "10:00")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestRepository_UpdateStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, closeFn := newTestRepository(t)
		defer closeFn()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET status = $1 WHERE id = $2")).
			WithArgs("CANCELLED", "res-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(context.Background(), "res-1", domain.StatusCancelled)
		require.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, closeFn := newTestRepository(t)
		defer closeFn()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET status")).
			WithArgs("CANCELLED", "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), "missing", domain.StatusCancelled)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("restore to confirmed over taken slot", func(t *testing.T) {
		repo, mock, closeFn := newTestRepository(t)
		defer closeFn()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET status")).
			WithArgs("CONFIRMED", "res-1").
			WillReturnError(&pq.Error{Code: "23P01"})

		err := repo.UpdateStatus(context.Background(), "res-1", domain.StatusConfirmed)
		assert.ErrorIs(t, err, ErrSlotTaken)
	})
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock, closeFn := newTestRepository(t)
	defer closeFn()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM reservations WHERE user_id = $1")).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY reservation_date DESC, start_time DESC LIMIT 10 OFFSET 10")).
		WithArgs("user-1").
		WillReturnRows(reservationRows().
			AddRow("res-3", "user-1", "court-2", testDate, "18:00", "19:00", "COMPLETED", 25.00, nil, testCreatedAt, testCreatedAt))

	reservations, total, err := repo.ListByUser(context.Background(), "user-1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, reservations, 1)
	assert.Equal(t, "res-3", reservations[0].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListWithFilter(t *testing.T) {
	repo, mock, closeFn := newTestRepository(t)
	defer closeFn()

	status := domain.StatusConfirmed
	filter := domain.ReservationsFilter{
		CourtID: ptr.Ptr("court-1"),
		Status:  &status,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM reservations WHERE (court_id = $1 AND status = $2)")).
		WithArgs("court-1", "CONFIRMED").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(regexp.QuoteMeta("WHERE (court_id = $1 AND status = $2) ORDER BY reservation_date DESC, start_time DESC LIMIT 10 OFFSET 0")).
		WithArgs("court-1", "CONFIRMED").
		WillReturnRows(reservationRows().
			AddRow("res-1", "user-1", "court-1", testDate, "10:00", "11:00", "CONFIRMED", 25.00, nil, testCreatedAt, testCreatedAt))

	reservations, total, err := repo.ListWithFilter(context.Background(), filter, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, reservations, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Stats(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("total revenue", func(t *testing.T) {
		repo, mock, closeFn := newTestRepository(t)
		defer closeFn()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(paid_price), 0) FROM reservations")).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(143.50))

		revenue, err := repo.TotalRevenue(context.Background(), from, to, domain.CountedStatuses)
		require.NoError(t, err)
		assert.Equal(t, 143.50, revenue)
	})

	t.Run("court usage ordered by reservation count", func(t *testing.T) {
		repo, mock, closeFn := newTestRepository(t)
		defer closeFn()

		mock.ExpectQuery(regexp.QuoteMeta("GROUP BY court_id ORDER BY COUNT(*) DESC")).
			WillReturnRows(sqlmock.NewRows([]string{"court_id", "count", "coalesce"}).
				AddRow("court-1", 7, 175.00).
				AddRow("court-2", 3, 54.00))

		stats, err := repo.CourtUsageStats(context.Background(), from, to, domain.CountedStatuses)
		require.NoError(t, err)
		require.Len(t, stats, 2)
		assert.Equal(t, "court-1", stats[0].CourtID)
		assert.Equal(t, int64(7), stats[0].ReservationCount)
		assert.Equal(t, 175.00, stats[0].Revenue)
	})

	t.Run("count by date range", func(t *testing.T) {
		repo, mock, closeFn := newTestRepository(t)
		defer closeFn()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM reservations")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))

		count, err := repo.CountByDateRange(context.Background(), from, to, domain.CountedStatuses)
		require.NoError(t, err)
		assert.Equal(t, int64(9), count)
	})
}
