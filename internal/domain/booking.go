package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending           BookingStatus = "pending"
	StatusConfirmed         BookingStatus = "confirmed"
	StatusInProgress        BookingStatus = "in_progress"
	StatusCompleted         BookingStatus = "completed"
	StatusCancelledByClient BookingStatus = "cancelled_by_client"
	StatusCancelledBySalon  BookingStatus = "cancelled_by_salon"
	StatusNoShow            BookingStatus = "no_show"
)

// Booking represents a salon visit assigned to one staff member
type Booking struct {
	ID           int64
	SalonID      int64
	StaffID      int64
	CustomerName string
	BookingDate  time.Time
	StartTime    types.TimeOfDay
	Status       BookingStatus
	Notes        *string

	// Services выполняются последовательно в порядке Position
	Services []BookingService

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BookingService одна услуга внутри бронирования
type BookingService struct {
	ID              int64
	BookingID       int64
	ServiceID       int64
	Name            string
	DurationMinutes int
	Position        int
	Color           string
	BorderColor     string
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByClient &&
		b.Status != StatusCancelledBySalon &&
		b.Status != StatusNoShow
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByClient || b.Status == StatusCancelledBySalon
}

// TotalDurationMinutes суммарная длительность всех услуг
func (b *Booking) TotalDurationMinutes() int {
	total := 0
	for _, s := range b.Services {
		total += s.DurationMinutes
	}
	return total
}

// ScheduleItems разворачивает бронирование в элементы расписания:
// одна услуга - один элемент, начало каждой услуги - время бронирования
// плюс длительности всех предыдущих услуг.
//
// Если очередная услуга выходит за пределы суток, возвращаются элементы,
// построенные до нее, и ошибка types.ErrMalformedTimeCode
func (b *Booking) ScheduleItems() ([]ScheduleItem, error) {
	items := make([]ScheduleItem, 0, len(b.Services))
	date := b.BookingDate
	cursor := b.StartTime

	for i, service := range b.Services {
		end, err := cursor.AddMinutes(service.DurationMinutes)
		if err != nil {
			return items, fmt.Errorf("booking id=%d service #%d: %w", b.ID, i, err)
		}

		items = append(items, ScheduleItem{
			ID:          fmt.Sprintf("%d-%d", b.ID, i),
			OwnerKey:    OwnerKey(b.StaffID),
			Start:       cursor,
			End:         end,
			Title:       service.Name,
			Color:       colorOrDefault(service.Color, DefaultItemColor),
			BorderColor: colorOrDefault(service.BorderColor, DefaultItemBorderColor),
			Date:        &date,
			BookingID:   b.ID,
		})
		cursor = end
	}

	return items, nil
}

// BookingsFilter фильтр для получения бронирований салона
type BookingsFilter struct {
	SalonID         int64          // Обязательный параметр
	StaffIDs        []int64        // Фильтр по мастерам (опционально, пустой - все мастера)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные и no-show
}

func colorOrDefault(color, fallback string) string {
	if color == "" {
		return fallback
	}
	return color
}
