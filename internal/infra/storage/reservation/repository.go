package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/courtclub/court-booking-service/internal/domain"
	"github.com/courtclub/court-booking-service/pkg/dbmetrics"
	"github.com/courtclub/court-booking-service/pkg/psqlbuilder"
	"github.com/courtclub/court-booking-service/pkg/types"
)

// Коды ошибок PostgreSQL, означающие занятый слот
const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

// reservationColumns полный список колонок таблицы reservations
var reservationColumns = []string{
	"id",
	"user_id",
	"court_id",
	"reservation_date",
	"start_time",
	"end_time",
	"status",
	"paid_price",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями кортов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её — usecase
// создания выполняет проверку пересечений и вставку в одной сериализуемой
// транзакции. Exclusion constraint в БД дублирует проверку: при нарушении
// возвращается ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"user_id",
			"court_id",
			"reservation_date",
			"start_time",
			"end_time",
			"status",
			"paid_price",
			"notes",
		).
		Values(
			res.UserID,
			res.CourtID,
			res.Date,
			res.StartTime,
			res.EndTime,
			res.Status,
			res.PaidPrice,
			res.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isSlotConflict(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetByCourtAndDate получает бронирования корта на дату с указанным статусом,
// отсортированные по времени начала.
// Внутри транзакции добавляет FOR UPDATE — блокирует строки на время
// проверки пересечений в usecase создания бронирования.
func (r *Repository) GetByCourtAndDate(ctx context.Context, courtID string, date time.Time, status domain.ReservationStatus) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{
			"court_id":         courtID,
			"reservation_date": date,
			"status":           status,
		}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// ExistsOverlapping проверяет, есть ли подтвержденное бронирование на корте
// и дате, пересекающееся с полуоткрытым интервалом [start, end).
// excludeID исключает бронирование из проверки (для редактирования на месте);
// при создании не используется.
func (r *Repository) ExistsOverlapping(ctx context.Context, courtID string, date time.Time, start, end types.TimeString, excludeID *string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.Eq{
			"court_id":         courtID,
			"reservation_date": date,
			"status":           domain.StatusConfirmed,
		}).
		// Пересечение полуоткрытых интервалов: start < existing_end AND existing_start < end
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start})

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: ExistsOverlapping - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// CountFutureConfirmed подсчитывает будущие подтвержденные бронирования
// пользователя. Будущее бронирование: дата позже сегодняшней, либо сегодня
// с временем начала позже текущего.
func (r *Repository) CountFutureConfirmed(ctx context.Context, userID string, today time.Time, now types.TimeString) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.Eq{
			"user_id": userID,
			"status":  domain.StatusConfirmed,
		}).
		Where(squirrel.Or{
			squirrel.Gt{"reservation_date": today},
			squirrel.And{
				squirrel.Eq{"reservation_date": today},
				squirrel.Gt{"start_time": now},
			},
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountFutureConfirmed - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountFutureConfirmed - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// UpdateStatus обновляет статус бронирования.
// Переход обратно в CONFIRMED может нарушить exclusion constraint,
// если слот уже занят — возвращается ErrSlotTaken.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isSlotConflict(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// ListByUser получает страницу бронирований пользователя (новые первыми)
// и общее количество. page нумеруется с нуля.
func (r *Repository) ListByUser(ctx context.Context, userID string, page, size int) ([]*domain.Reservation, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	where := squirrel.Eq{"user_id": userID}

	total, err := r.count(ctx, executor, where, "ListByUser")
	if err != nil {
		return nil, 0, err
	}

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(where).
		OrderBy("reservation_date DESC, start_time DESC").
		Limit(uint64(size)).
		Offset(uint64(page * size)).
		ToSql()

	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations, err := r.scanReservations(rows)
	if err != nil {
		return nil, 0, err
	}

	return reservations, total, nil
}

// ListWithFilter получает страницу бронирований по фильтру администратора
// (корт, дата, статус — все опциональны) и общее количество
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.ReservationsFilter, page, size int) ([]*domain.Reservation, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	where := squirrel.And{}
	if filter.CourtID != nil {
		where = append(where, squirrel.Eq{"court_id": *filter.CourtID})
	}
	if filter.Date != nil {
		where = append(where, squirrel.Eq{"reservation_date": *filter.Date})
	}
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"status": *filter.Status})
	}

	selectBuilder := psqlbuilder.Select(reservationColumns...).From("reservations")
	countBuilder := psqlbuilder.Select("COUNT(*)").From("reservations")
	if len(where) > 0 {
		selectBuilder = selectBuilder.Where(where)
		countBuilder = countBuilder.Where(where)
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - scan count: %v", ErrScanRow, err)
	}

	query, args, err := selectBuilder.
		OrderBy("reservation_date DESC, start_time DESC").
		Limit(uint64(size)).
		Offset(uint64(page * size)).
		ToSql()

	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations, err := r.scanReservations(rows)
	if err != nil {
		return nil, 0, err
	}

	return reservations, total, nil
}

// CountByDateRange подсчитывает бронирования за период с одним из статусов
func (r *Repository) CountByDateRange(ctx context.Context, from, to time.Time, statuses []domain.ReservationStatus) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.GtOrEq{"reservation_date": from}).
		Where(squirrel.LtOrEq{"reservation_date": to}).
		Where(squirrel.Eq{"status": statusStrings(statuses)}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByDateRange - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// TotalRevenue суммирует оплаченные цены бронирований за период
func (r *Repository) TotalRevenue(ctx context.Context, from, to time.Time, statuses []domain.ReservationStatus) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(paid_price), 0)").
		From("reservations").
		Where(squirrel.GtOrEq{"reservation_date": from}).
		Where(squirrel.LtOrEq{"reservation_date": to}).
		Where(squirrel.Eq{"status": statusStrings(statuses)}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: TotalRevenue - build select query: %v", ErrBuildQuery, err)
	}

	var revenue float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&revenue); err != nil {
		return 0, fmt.Errorf("%w: TotalRevenue - scan revenue: %v", ErrScanRow, err)
	}

	return revenue, nil
}

// CourtUsageStats агрегирует использование кортов за период: количество
// бронирований и выручка по каждому корту, отсортировано по количеству
func (r *Repository) CourtUsageStats(ctx context.Context, from, to time.Time, statuses []domain.ReservationStatus) ([]domain.CourtUsage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"court_id",
		"COUNT(*)",
		"COALESCE(SUM(paid_price), 0)",
	).
		From("reservations").
		Where(squirrel.GtOrEq{"reservation_date": from}).
		Where(squirrel.LtOrEq{"reservation_date": to}).
		Where(squirrel.Eq{"status": statusStrings(statuses)}).
		GroupBy("court_id").
		OrderBy("COUNT(*) DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CourtUsageStats - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CourtUsageStats - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stats := make([]domain.CourtUsage, 0)
	for rows.Next() {
		var usage domain.CourtUsage
		if err := rows.Scan(&usage.CourtID, &usage.ReservationCount, &usage.Revenue); err != nil {
			return nil, fmt.Errorf("%w: CourtUsageStats - scan row: %v", ErrScanRow, err)
		}
		stats = append(stats, usage)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CourtUsageStats - rows error: %v", ErrScanRow, err)
	}

	return stats, nil
}

// Вспомогательные методы

func (r *Repository) count(ctx context.Context, executor DBExecutor, where squirrel.Sqlizer, op string) (int64, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(where).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: %s - build count query: %v", ErrBuildQuery, op, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: %s - scan count: %v", ErrScanRow, op, err)
	}

	return total, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.CourtID,
		&res.Date,
		&res.StartTime,
		&res.EndTime,
		&res.Status,
		&res.PaidPrice,
		&res.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

func statusStrings(statuses []domain.ReservationStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// isSlotConflict возвращает true для нарушений ограничений БД,
// означающих занятый слот
func isSlotConflict(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgExclusionViolation || string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
