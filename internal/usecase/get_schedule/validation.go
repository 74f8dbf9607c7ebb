package get_schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	switch req.View {
	case ViewDay, ViewWeek, ViewMonth:
	default:
		return fmt.Errorf("%w: unknown view %q", ErrInvalidInput, req.View)
	}

	for _, id := range req.StaffIDs {
		if id <= 0 {
			return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
		}
	}

	return nil
}

// dateRange возвращает первый и последний день периода для вида.
// Неделя начинается с понедельника
func dateRange(date time.Time, view View) (time.Time, time.Time) {
	day := domain.DateOnly(date)

	switch view {
	case ViewWeek:
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 6)
	case ViewMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return start, start.AddDate(0, 1, -1)
	default:
		return day, day
	}
}

// datesBetween все даты периода включительно
func datesBetween(start, end time.Time) []time.Time {
	dates := make([]time.Time, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
