package staffservice

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Staff мастер салона с проверенными рабочими часами
type Staff struct {
	ID           int64
	Name         string
	WorkingHours []domain.WorkingHours
}

// HoursOn возвращает рабочее окно мастера на день недели
func (s Staff) HoursOn(weekday time.Weekday) (domain.WorkingHours, bool) {
	for _, wh := range s.WorkingHours {
		if wh.Weekday == weekday {
			return wh, true
		}
	}
	return domain.WorkingHours{}, false
}

// SalonStaffResponse ответ StaffService со списком мастеров салона
type SalonStaffResponse struct {
	SalonID int64      `json:"salon_id" validate:"required,gt=0"`
	Staff   []StaffDTO `json:"staff" validate:"dive"`
}

// StaffDTO мастер в формате StaffService
type StaffDTO struct {
	ID           int64           `json:"id" validate:"required,gt=0"`
	Name         string          `json:"name" validate:"required"`
	WorkingHours []WorkingDayDTO `json:"working_hours" validate:"max=7,dive"`
}

// WorkingDayDTO рабочее окно на день недели (0 - воскресенье), время в формате "HHmm"
type WorkingDayDTO struct {
	Weekday   int    `json:"weekday" validate:"gte=0,lte=6"`
	IsWorking bool   `json:"is_working"`
	Start     string `json:"start" validate:"omitempty,len=4,numeric"`
	End       string `json:"end" validate:"omitempty,len=4,numeric"`
}

// ToStaff конвертирует DTO в модель клиента.
// Для рабочих дней коды времени обязательны, и конец должен быть позже начала
func (s StaffDTO) ToStaff() (Staff, error) {
	hours := make([]domain.WorkingHours, 0, len(s.WorkingHours))
	for _, day := range s.WorkingHours {
		wh := domain.WorkingHours{
			StaffID:   s.ID,
			Weekday:   time.Weekday(day.Weekday),
			IsWorking: day.IsWorking,
		}

		if day.IsWorking {
			start, err := types.ParseTimeCode(day.Start)
			if err != nil {
				return Staff{}, fmt.Errorf("%w: staff id=%d weekday=%d start: %v", ErrMalformedResponse, s.ID, day.Weekday, err)
			}
			end, err := types.ParseTimeCode(day.End)
			if err != nil {
				return Staff{}, fmt.Errorf("%w: staff id=%d weekday=%d end: %v", ErrMalformedResponse, s.ID, day.Weekday, err)
			}
			if !end.IsAfter(start) {
				return Staff{}, fmt.Errorf("%w: staff id=%d weekday=%d: end %s is not after start %s",
					ErrMalformedResponse, s.ID, day.Weekday, end, start)
			}
			wh.Start = start
			wh.End = end
		}

		hours = append(hours, wh)
	}

	return Staff{ID: s.ID, Name: s.Name, WorkingHours: hours}, nil
}
