package fixtures

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// File структура YAML файла с демо-расписанием
type File struct {
	Date     string           `yaml:"date" validate:"omitempty,datetime=2006-01-02"`
	Staff    []StaffFixture   `yaml:"staff" validate:"dive"`
	Items    []ItemFixture    `yaml:"items" validate:"dive"`
	Bookings []BookingFixture `yaml:"bookings" validate:"dive"`
}

// StaffFixture мастер и его рабочая неделя
type StaffFixture struct {
	ID           int64               `yaml:"id" validate:"required,gt=0"`
	Name         string              `yaml:"name" validate:"required"`
	WorkingHours []WorkingDayFixture `yaml:"working_hours" validate:"dive"`
}

// WorkingDayFixture рабочее окно в день недели, время в виде "HHmm"
type WorkingDayFixture struct {
	Weekday string `yaml:"weekday" validate:"required,oneof=sunday monday tuesday wednesday thursday friday saturday"`
	Off     bool   `yaml:"off"`
	Start   string `yaml:"start" validate:"omitempty,len=4,numeric"`
	End     string `yaml:"end" validate:"omitempty,len=4,numeric"`
}

// ItemFixture готовый элемент расписания
type ItemFixture struct {
	ID          string `yaml:"id" validate:"required"`
	Owner       string `yaml:"owner" validate:"required"`
	Start       string `yaml:"start" validate:"required,len=4,numeric"`
	End         string `yaml:"end" validate:"required,len=4,numeric"`
	Title       string `yaml:"title"`
	Color       string `yaml:"color" validate:"omitempty,hexcolor"`
	BorderColor string `yaml:"border_color" validate:"omitempty,hexcolor"`
	Date        string `yaml:"date" validate:"omitempty,datetime=2006-01-02"`
}

// BookingFixture бронирование, разворачиваемое в элементы по услугам
type BookingFixture struct {
	ID       int64            `yaml:"id" validate:"required,gt=0"`
	StaffID  int64            `yaml:"staff_id" validate:"required,gt=0"`
	Customer string           `yaml:"customer"`
	Date     string           `yaml:"date" validate:"required,datetime=2006-01-02"`
	Start    string           `yaml:"start" validate:"required,len=4,numeric"`
	Services []ServiceFixture `yaml:"services" validate:"required,min=1,dive"`
}

// ServiceFixture услуга бронирования
type ServiceFixture struct {
	Name     string `yaml:"name" validate:"required"`
	Duration int    `yaml:"duration" validate:"gte=0"`
	Color    string `yaml:"color" validate:"omitempty,hexcolor"`
}

// Staff мастер из фикстур
type Staff struct {
	ID           int64
	Name         string
	WorkingHours []domain.WorkingHours
}

// HoursOn рабочее окно мастера в день недели
func (s Staff) HoursOn(weekday time.Weekday) (domain.WorkingHours, bool) {
	for _, wh := range s.WorkingHours {
		if wh.Weekday == weekday {
			return wh, true
		}
	}
	return domain.WorkingHours{StaffID: s.ID, Weekday: weekday}, false
}

// Schedule разобранные фикстуры
type Schedule struct {
	Date  *time.Time // дата по умолчанию для отрисовки
	Staff []Staff
	Items []domain.ScheduleItem
}

// StaffByOwner находит мастера по ключу строки
func (s *Schedule) StaffByOwner(ownerKey string) (Staff, bool) {
	for _, member := range s.Staff {
		if domain.OwnerKey(member.ID) == ownerKey {
			return member, true
		}
	}
	return Staff{}, false
}
