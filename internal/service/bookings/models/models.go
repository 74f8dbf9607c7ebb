package models

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64   `json:"id"`
	SalonID         int64   `json:"salonId"`
	StaffID         int64   `json:"staffId"`
	CustomerName    string  `json:"customerName"`
	BookingDate     string  `json:"bookingDate"` // "2025-10-15"
	StartTime       string  `json:"startTime"`   // "1000"
	StartTimeLabel  string  `json:"startTimeLabel"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Active          bool    `json:"active"`    // отображается в сетке расписания
	Cancelled       bool    `json:"cancelled"` // отменено клиентом или салоном
	Notes           *string `json:"notes,omitempty"`

	Services []ServiceResponse      `json:"services"`
	Items    []ScheduleItemResponse `json:"items"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ServiceResponse услуга бронирования
type ServiceResponse struct {
	ServiceID       int64  `json:"serviceId"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	Position        int    `json:"position"`
}

// ScheduleItemResponse элемент расписания одной услуги
type ScheduleItemResponse struct {
	ID          string `json:"id"`
	OwnerKey    string `json:"ownerKey"`
	Start       string `json:"start"` // "HHmm"
	End         string `json:"end"`
	StartLabel  string `json:"startLabel"` // "9:30 AM"
	EndLabel    string `json:"endLabel"`
	Title       string `json:"title"`
	Color       string `json:"color"`
	BorderColor string `json:"borderColor"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель и ее элементы расписания в DTO
func FromDomainBooking(b *domain.Booking, items []domain.ScheduleItem) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		SalonID:         b.SalonID,
		StaffID:         b.StaffID,
		CustomerName:    b.CustomerName,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.Code(),
		StartTimeLabel:  b.StartTime.Clock12h(),
		DurationMinutes: b.TotalDurationMinutes(),
		Status:          string(b.Status),
		Active:          b.IsActive(),
		Cancelled:       b.IsCancelled(),
		Notes:           b.Notes,
		Services:        make([]ServiceResponse, 0, len(b.Services)),
		Items:           FromDomainItems(items),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	for _, s := range b.Services {
		resp.Services = append(resp.Services, ServiceResponse{
			ServiceID:       s.ServiceID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Position:        s.Position,
		})
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainItems конвертирует элементы расписания в DTO
func FromDomainItems(items []domain.ScheduleItem) []ScheduleItemResponse {
	result := make([]ScheduleItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, FromDomainItem(item))
	}
	return result
}

// FromDomainItem конвертирует один элемент расписания в DTO
func FromDomainItem(item domain.ScheduleItem) ScheduleItemResponse {
	return ScheduleItemResponse{
		ID:          item.ID,
		OwnerKey:    item.OwnerKey,
		Start:       item.Start.Code(),
		End:         item.End.Code(),
		StartLabel:  item.Start.Clock12h(),
		EndLabel:    item.End.Clock12h(),
		Title:       item.Title,
		Color:       item.Color,
		BorderColor: item.BorderColor,
	}
}
