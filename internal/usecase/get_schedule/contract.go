package get_schedule

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/staffservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetBySalonWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	GetSalonStaff(ctx context.Context, salonID int64) ([]staffservice.Staff, error)
}

// MetricsRecorder интерфейс для метрик раскладки
type MetricsRecorder interface {
	ObserveLayout(view string, blocks int, seconds float64)
	IncInvalidItem(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
