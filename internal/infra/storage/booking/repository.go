package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
	"github.com/m04kA/SMC-YogaStore/internal/infra/storage/snapshot"
	"github.com/m04kA/SMC-YogaStore/pkg/dbmetrics"
	"github.com/m04kA/SMC-YogaStore/pkg/psqlbuilder"
	"github.com/m04kA/SMC-YogaStore/pkg/types"
)

// pgUniqueViolation код ошибки PostgreSQL при нарушении уникальности
const pgUniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"user_id",
	"user_email",
	"classes",
	"total_classes",
	"status",
	"checkout_key",
	"created_at",
	"updated_at",
}

var userBookingColumns = []string{
	"id",
	"booking_id",
	"yoga_class_id",
	"yoga_class",
	"user_email",
	"status",
	"booked_at",
	"attended_at",
}

// Repository репозиторий для работы с бронированиями и их позициями (user_bookings)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Повторный ключ оформления возвращает ErrCheckoutConflict.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	classesJSON, err := snapshot.EncodeClasses(booking.Classes)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - %w", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert(domain.CollectionBookings).
		Columns(
			"user_id",
			"user_email",
			"classes",
			"total_classes",
			"status",
			"checkout_key",
		).
		Values(
			booking.UserID,
			booking.UserEmail,
			classesJSON,
			booking.TotalClasses,
			booking.Status,
			booking.CheckoutKey,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt types.Timestamp
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: Create - checkout key %s", ErrCheckoutConflict, booking.CheckoutKey)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByCheckoutKey получает бронирование, созданное попыткой оформления с данным ключом
func (r *Repository) GetByCheckoutKey(ctx context.Context, checkoutKey string) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByCheckoutKey", squirrel.Eq{"checkout_key": checkoutKey})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(domain.CollectionBookings).
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - %w", ErrScanRow, op, err)
	}

	return booking, nil
}

// UpdateStatus устанавливает статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(domain.CollectionBookings).
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CreateUserBookings вставляет позиции бронирования одним запросом
// и заполняет ID и время бронирования в переданных структурах
func (r *Repository) CreateUserBookings(ctx context.Context, userBookings []*domain.UserBooking) ([]*domain.UserBooking, error) {
	if len(userBookings) == 0 {
		return userBookings, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert(domain.CollectionUserBookings).
		Columns(
			"booking_id",
			"yoga_class_id",
			"yoga_class",
			"user_email",
			"status",
		)

	for _, ub := range userBookings {
		classJSON, err := snapshot.EncodeClass(ub.YogaClass)
		if err != nil {
			return nil, fmt.Errorf("%w: CreateUserBookings - %w", ErrEncode, err)
		}
		insertBuilder = insertBuilder.Values(
			ub.BookingID,
			ub.YogaClassID,
			classJSON,
			ub.UserEmail,
			ub.Status,
		)
	}

	query, args, err := insertBuilder.Suffix("RETURNING id, booked_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateUserBookings - build insert query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateUserBookings - execute insert: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	// PostgreSQL возвращает строки RETURNING в порядке VALUES
	i := 0
	for rows.Next() {
		if i >= len(userBookings) {
			return nil, fmt.Errorf("%w: CreateUserBookings - unexpected extra row", ErrScanRow)
		}
		var bookedAt types.Timestamp
		if err := rows.Scan(&userBookings[i].ID, &bookedAt); err != nil {
			return nil, fmt.Errorf("%w: CreateUserBookings - scan row: %w", ErrScanRow, err)
		}
		userBookings[i].BookedAt = bookedAt.Time
		i++
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CreateUserBookings - rows error: %w", ErrScanRow, err)
	}

	if i != len(userBookings) {
		return nil, fmt.Errorf("%w: CreateUserBookings - inserted %d of %d rows", ErrExecQuery, i, len(userBookings))
	}

	return userBookings, nil
}

// GetUserBookingsByEmail получает историю бронирований пользователя, сначала новые
func (r *Repository) GetUserBookingsByEmail(ctx context.Context, email string) ([]*domain.UserBooking, error) {
	return r.listUserBookings(ctx, "GetUserBookingsByEmail", squirrel.Eq{"user_email": email}, "booked_at DESC", "id ASC")
}

// GetUserBookingsByBookingID получает позиции конкретного бронирования
func (r *Repository) GetUserBookingsByBookingID(ctx context.Context, bookingID string) ([]*domain.UserBooking, error) {
	return r.listUserBookings(ctx, "GetUserBookingsByBookingID", squirrel.Eq{"booking_id": bookingID}, "booked_at ASC", "id ASC")
}

func (r *Repository) listUserBookings(ctx context.Context, op string, where squirrel.Eq, orderBy ...string) ([]*domain.UserBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userBookingColumns...).
		From(domain.CollectionUserBookings).
		Where(where).
		OrderBy(orderBy...).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	result := make([]*domain.UserBooking, 0)
	for rows.Next() {
		ub, err := scanUserBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - %w", ErrScanRow, op, err)
		}
		result = append(result, ub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return result, nil
}

// CancelUserBookings переводит все позиции бронирования в статус cancelled
// Связь выполняется по booking_id. Возвращает количество обновлённых строк.
func (r *Repository) CancelUserBookings(ctx context.Context, bookingID string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(domain.CollectionUserBookings).
		Set("status", domain.UserBookingCancelled).
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CancelUserBookings - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CancelUserBookings - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CancelUserBookings - get rows affected: %w", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking              domain.Booking
		classesJSON          []byte
		createdAt, updatedAt types.Timestamp
	)

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.UserEmail,
		&classesJSON,
		&booking.TotalClasses,
		&booking.Status,
		&booking.CheckoutKey,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	classes, err := snapshot.DecodeClasses(classesJSON)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", booking.ID, err)
	}

	booking.Classes = classes
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func scanUserBooking(row rowScanner) (*domain.UserBooking, error) {
	var (
		ub         domain.UserBooking
		classJSON  []byte
		bookedAt   types.Timestamp
		attendedAt types.Timestamp
	)

	err := row.Scan(
		&ub.ID,
		&ub.BookingID,
		&ub.YogaClassID,
		&classJSON,
		&ub.UserEmail,
		&ub.Status,
		&bookedAt,
		&attendedAt,
	)
	if err != nil {
		return nil, err
	}

	class, err := snapshot.DecodeClass(classJSON)
	if err != nil {
		return nil, fmt.Errorf("user booking %s: %w", ub.ID, err)
	}

	ub.YogaClass = class
	ub.BookedAt = bookedAt.Time
	if !attendedAt.IsZero() {
		t := attendedAt.Time
		ub.AttendedAt = &t
	}

	return &ub, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}
