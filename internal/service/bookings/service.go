package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ScheduleService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID вместе с элементами расписания его услуг.
// Услуги, выходящие за пределы суток, в элементы не попадают, но бронирование возвращается
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	if id <= 0 {
		s.logger.Warn("GetByID: invalid booking id=%d", id)
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	items, err := booking.ScheduleItems()
	if err != nil {
		s.logger.Warn("GetByID: booking id=%d has services past midnight: %v", id, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d (%d items)", id, len(items))
	return models.FromDomainBooking(booking, items), nil
}
