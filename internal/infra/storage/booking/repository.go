package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TeeTimeService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"payment_session_id",
	"cart_session_id",
	"cart_item_id",
	"course_id",
	"course_name",
	"provider_type",
	"tee_time",
	"players",
	"package_id",
	"package_name",
	"add_ons",
	"total_price",
	"customer_name",
	"customer_email",
	"customer_phone",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	addOns, err := json.Marshal(nonNilAddOns(booking.AddOns))
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal add-ons: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"payment_session_id",
			"cart_session_id",
			"cart_item_id",
			"course_id",
			"course_name",
			"provider_type",
			"tee_time",
			"players",
			"package_id",
			"package_name",
			"add_ons",
			"total_price",
			"customer_name",
			"customer_email",
			"customer_phone",
			"status",
		).
		Values(
			booking.PaymentSessionID,
			booking.CartSessionID,
			booking.CartItemID,
			booking.CourseID,
			booking.CourseName,
			booking.ProviderType,
			booking.TeeTime,
			booking.Players,
			booking.PackageID,
			booking.PackageName,
			string(addOns),
			booking.TotalPrice,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByPaymentSession получает бронирования платёжной сессии в порядке позиций корзины
// Внутри транзакции строки блокируются FOR UPDATE
func (r *Repository) GetByPaymentSession(ctx context.Context, paymentSessionID string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"payment_session_id": paymentSessionID}).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPaymentSession - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPaymentSession - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}
	return bookings, nil
}

// UpdateStatusByPaymentSession переводит бронирования сессии из статуса from в статус to
// Возвращает количество изменённых строк
func (r *Repository) UpdateStatusByPaymentSession(ctx context.Context, paymentSessionID string, from, to domain.BookingStatus) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"payment_session_id": paymentSessionID, "status": from}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: UpdateStatusByPaymentSession - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: UpdateStatusByPaymentSession - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: UpdateStatusByPaymentSession - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var addOns []byte
		var customerPhone sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.PaymentSessionID,
			&booking.CartSessionID,
			&booking.CartItemID,
			&booking.CourseID,
			&booking.CourseName,
			&booking.ProviderType,
			&booking.TeeTime,
			&booking.Players,
			&booking.PackageID,
			&booking.PackageName,
			&addOns,
			&booking.TotalPrice,
			&booking.CustomerName,
			&booking.CustomerEmail,
			&customerPhone,
			&booking.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		if len(addOns) > 0 {
			if err := json.Unmarshal(addOns, &booking.AddOns); err != nil {
				return nil, fmt.Errorf("%w: scanBookings - unmarshal add-ons of booking %d: %v", ErrScanRow, booking.ID, err)
			}
		}
		if customerPhone.Valid {
			booking.CustomerPhone = &customerPhone.String
		}
		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func nonNilAddOns(addOns []domain.AddOn) []domain.AddOn {
	if addOns == nil {
		return []domain.AddOn{}
	}
	return addOns
}
