package get_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	staffClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-ScheduleService/internal/layout"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

const (
	reasonMalformedTime   = "malformed_time"
	reasonInvalidDuration = "invalid_duration"
)

// UseCase use case для построения сетки расписания мастеров
type UseCase struct {
	bookingRepo BookingRepository
	staffClient StaffServiceClient
	metrics     MetricsRecorder
	layoutOpts  layout.Options
	logger      Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil
func NewUseCase(
	bookingRepo BookingRepository,
	staffClient StaffServiceClient,
	metrics MetricsRecorder,
	layoutOpts layout.Options,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		staffClient: staffClient,
		metrics:     metrics,
		layoutOpts:  layoutOpts,
		logger:      logger,
	}
}

// Execute выполняет use case построения сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	r := *req
	if r.View == "" {
		r.View = ViewDay
	}

	uc.logger.Info("GetSchedule: salon=%d, date=%s, view=%s, staff=%v",
		r.SalonID, r.Date.Format(domain.DateFormat), r.View, r.StaffIDs)

	// 1. Валидация входных данных
	if err := validateRequest(&r); err != nil {
		uc.logger.Warn("GetSchedule: validation failed: %v", err)
		return nil, err
	}

	startDate, endDate := dateRange(r.Date, r.View)

	// 2. Получаем мастеров и их рабочие часы
	staff, err := uc.staffClient.GetSalonStaff(ctx, r.SalonID)
	if err != nil {
		if errors.Is(err, staffClient.ErrSalonNotFound) {
			uc.logger.Warn("GetSchedule: salon id=%d not found", r.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("GetSchedule: failed to get staff for salon id=%d: %v", r.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	staff = filterStaff(staff, r.StaffIDs)

	// 3. Получаем активные бронирования за период
	filter := domain.BookingsFilter{
		SalonID:   r.SalonID,
		StaffIDs:  r.StaffIDs,
		StartDate: ptr.Ptr(startDate),
		EndDate:   ptr.Ptr(endDate),
	}
	bookings, err := uc.bookingRepo.GetBySalonWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Разворачиваем бронирования в элементы расписания
	items, skipped := uc.collectItems(bookings)

	// 5. Диапазон видимых часов по рабочим окнам мастеров в этом периоде
	dates := datesBetween(startDate, endDate)
	minHour, maxHour := layout.VisibleHourRange(workingHoursOn(staff, dates))
	slots, err := layout.Slots(minHour, maxHour)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to build slots [%d, %d]: %v", minHour, maxHour, err)
		return nil, fmt.Errorf("%w: failed to build slots: %v", ErrInternal, err)
	}

	// 6. Раскладка каждой ячейки (строка, слот)
	startedAt := time.Now()
	rows := uc.buildRows(r.View, staff, dates, items, slots)

	resp := &Response{
		SalonID:        r.SalonID,
		View:           r.View,
		StartDate:      startDate,
		EndDate:        endDate,
		MinVisibleHour: minHour,
		MaxVisibleHour: maxHour,
		Slots:          slots,
		Rows:           rows,
		SkippedItems:   skipped,
	}

	if uc.metrics != nil {
		uc.metrics.ObserveLayout(string(r.View), resp.BlockCount(), time.Since(startedAt).Seconds())
	}

	uc.logger.Info("GetSchedule: built %d rows x %d slots (%d blocks, %d skipped items) for salon=%d",
		len(rows), len(slots), resp.BlockCount(), skipped, r.SalonID)

	return resp, nil
}

// collectItems разворачивает бронирования и отбрасывает элементы с некорректным временем.
// Ошибки отдельных бронирований не прерывают построение сетки
func (uc *UseCase) collectItems(bookings []*domain.Booking) ([]domain.ScheduleItem, int) {
	skipped := 0
	items := make([]domain.ScheduleItem, 0, len(bookings))

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		bookingItems, err := b.ScheduleItems()
		if err != nil {
			uc.logger.Warn("GetSchedule: booking id=%d partially skipped: %v", b.ID, err)
			skipped += len(b.Services) - len(bookingItems)
			uc.recordInvalid(reasonMalformedTime)
		}
		items = append(items, bookingItems...)
	}

	valid := layout.FilterValid(items, func(item domain.ScheduleItem, err error) {
		uc.logger.Warn("GetSchedule: skipping item: %v", err)
		skipped++
		uc.recordInvalid(reasonInvalidDuration)
	})

	return valid, skipped
}

func (uc *UseCase) recordInvalid(reason string) {
	if uc.metrics != nil {
		uc.metrics.IncInvalidItem(reason)
	}
}

func (uc *UseCase) buildRows(
	view View,
	staff []staffClient.Staff,
	dates []time.Time,
	items []domain.ScheduleItem,
	slots []domain.TimeSlot,
) []Row {
	byOwner := make(map[string][]domain.ScheduleItem)
	for _, item := range items {
		byOwner[item.OwnerKey] = append(byOwner[item.OwnerKey], item)
	}

	rows := make([]Row, 0, len(staff)*len(dates))
	for _, member := range staff {
		ownerKey := domain.OwnerKey(member.ID)
		ownerItems := byOwner[ownerKey]

		for _, date := range dates {
			query := layout.Query{OwnerKey: ownerKey}
			// В дневном виде у строки один день, дата в фильтре не нужна
			if view != ViewDay {
				query.Date = ptr.Ptr(date)
			}

			hours, _ := member.HoursOn(date.Weekday())

			cells := make([]Cell, len(slots))
			for i, slot := range slots {
				cells[i] = Cell{
					Slot:   slot,
					Blocks: layout.LayoutSlot(ownerItems, query, slot.Start, uc.layoutOpts),
					Shaded: layout.NonWorkingRanges(hours, slot, uc.layoutOpts.PixelsPerHour),
				}
			}

			rows = append(rows, Row{
				OwnerKey:  ownerKey,
				StaffID:   member.ID,
				StaffName: member.Name,
				Date:      date,
				Cells:     cells,
			})
		}
	}

	return rows
}

// filterStaff оставляет только запрошенных мастеров, сохраняя порядок StaffService
func filterStaff(staff []staffClient.Staff, ids []int64) []staffClient.Staff {
	if len(ids) == 0 {
		return staff
	}
	wanted := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	result := make([]staffClient.Staff, 0, len(ids))
	for _, member := range staff {
		if _, ok := wanted[member.ID]; ok {
			result = append(result, member)
		}
	}
	return result
}

// workingHoursOn рабочие окна мастеров на дни недели периода
func workingHoursOn(staff []staffClient.Staff, dates []time.Time) []domain.WorkingHours {
	weekdays := make(map[time.Weekday]struct{}, 7)
	for _, d := range dates {
		weekdays[d.Weekday()] = struct{}{}
	}

	hours := make([]domain.WorkingHours, 0)
	for _, member := range staff {
		for _, wh := range member.WorkingHours {
			if _, ok := weekdays[wh.Weekday]; ok {
				hours = append(hours, wh)
			}
		}
	}
	return hours
}
