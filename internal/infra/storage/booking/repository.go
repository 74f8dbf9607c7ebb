package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"salon_id",
	"staff_id",
	"customer_name",
	"booking_date",
	"start_time",
	"status",
	"notes",
	"cancelled_at",
	"created_at",
	"updated_at",
}

var serviceColumns = []string{
	"id",
	"booking_id",
	"service_id",
	"name",
	"duration_minutes",
	"position",
	"color",
	"border_color",
}

// Repository репозиторий для чтения бронирований салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает бронирование по ID вместе с его услугами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	if err := r.attachServices(ctx, []*domain.Booking{booking}); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetBySalonWithFilter получает бронирования салона с фильтрацией по мастерам,
// периоду и статусу. Услуги каждого бронирования подгружаются вторым запросом
// и упорядочены по position.
//
// Пример - активные бронирования двух мастеров за неделю:
//
//	filter := domain.BookingsFilter{SalonID: 1, StaffIDs: []int64{3, 4}, StartDate: &monday, EndDate: &sunday}
func (r *Repository) GetBySalonWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	query, args, err := buildFilterQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySalonWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySalonWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetBySalonWithFilter - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBySalonWithFilter - rows error: %v", ErrScanRow, err)
	}

	if err := r.attachServices(ctx, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

func buildFilterQuery(filter domain.BookingsFilter) (string, []interface{}, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"salon_id": filter.SalonID})

	// Фильтрация по мастерам (если указаны)
	if len(filter.StaffIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": filter.StaffIDs})
	}

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	return selectBuilder.
		OrderBy("booking_date ASC", "start_time ASC", "id ASC").
		ToSql()
}

// attachServices загружает услуги одним запросом для всех бронирований
func (r *Repository) attachServices(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.Booking, len(bookings))
	ids := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		byID[b.ID] = b
		ids = append(ids, b.ID)
	}

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("booking_services").
		Where(squirrel.Eq{"booking_id": ids}).
		OrderBy("booking_id ASC", "position ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.BookingService
		var color, borderColor sql.NullString
		if err := rows.Scan(
			&s.ID,
			&s.BookingID,
			&s.ServiceID,
			&s.Name,
			&s.DurationMinutes,
			&s.Position,
			&color,
			&borderColor,
		); err != nil {
			return fmt.Errorf("%w: attachServices - scan row: %v", ErrScanRow, err)
		}
		s.Color = color.String
		s.BorderColor = borderColor.String

		if b, ok := byID[s.BookingID]; ok {
			b.Services = append(b.Services, s)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachServices - rows error: %v", ErrScanRow, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.SalonID,
		&booking.StaffID,
		&booking.CustomerName,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.Status,
		&booking.Notes,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time
	return &booking, nil
}
