package domain

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// ScheduleItem a time-ranged block (appointment or work block) shown in the schedule grid.
// Items are built fresh per render pass and never mutated by the layout engine
type ScheduleItem struct {
	ID          string
	OwnerKey    string // строка сетки: мастер, либо мастер+день
	Start       types.TimeOfDay
	End         types.TimeOfDay
	Title       string
	Color       string
	BorderColor string

	// Date задается, когда один и тот же OwnerKey встречается в нескольких днях (неделя/месяц)
	Date *time.Time

	// BookingID ссылка на исходное бронирование, 0 для статических данных
	BookingID int64
}

// DurationHours длительность в десятичных часах
func (i ScheduleItem) DurationHours() float64 {
	return i.End.DecimalHour() - i.Start.DecimalHour()
}

// HasPositiveDuration returns true if the item ends strictly after it starts
func (i ScheduleItem) HasPositiveDuration() bool {
	return i.End.IsAfter(i.Start)
}

// LayoutBlock a schedule item positioned inside one one-hour slot
type LayoutBlock struct {
	Item            ScheduleItem
	ColumnIndex     int
	WidthPixels     float64
	LeftPixelOffset float64 // может быть отрицательным или больше ширины слота
	SizePixels      float64 // max(WidthPixels, минимальный размер блока)
}

// TimeSlot a fixed one-hour window identified by its starting hour
type TimeSlot struct {
	Start types.TimeOfDay
	Label string
}

// StartDecimalHour начало слота в десятичных часах
func (s TimeSlot) StartDecimalHour() float64 {
	return s.Start.DecimalHour()
}

// EndDecimalHour конец слота (для 23:00 это 24.0, что не представимо как TimeOfDay)
func (s TimeSlot) EndDecimalHour() float64 {
	return s.Start.DecimalHour() + 1
}

// WorkingHours рабочее окно мастера в конкретный день недели
type WorkingHours struct {
	StaffID   int64
	Weekday   time.Weekday
	IsWorking bool
	Start     types.TimeOfDay
	End       types.TimeOfDay
}

// ShadedRange нерабочая часть ячейки слота в пикселях от начала слота
type ShadedRange struct {
	LeftPixelOffset float64
	WidthPixels     float64
}

// OwnerKey ключ строки сетки для мастера
func OwnerKey(staffID int64) string {
	return strconv.FormatInt(staffID, 10)
}

// SameDay проверяет, что две даты относятся к одному и тому же дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly обнуляет время, оставляя только дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
