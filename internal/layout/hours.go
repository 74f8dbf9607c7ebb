package layout

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// VisibleHourRange сводит рабочие окна мастеров к диапазону видимых часов:
// на час раньше самого раннего начала и на час позже самого позднего конца.
// Без рабочих окон показываются все сутки
func VisibleHourRange(hours []domain.WorkingHours) (minHour, maxHour int) {
	minStart, maxEnd := -1, -1
	for _, wh := range hours {
		if !wh.IsWorking {
			continue
		}
		if minStart < 0 || wh.Start.Hour < minStart {
			minStart = wh.Start.Hour
		}
		if maxEnd < 0 || wh.End.Hour > maxEnd {
			maxEnd = wh.End.Hour
		}
	}

	if minStart < 0 {
		return domain.MinVisibleHour, domain.MaxVisibleHour
	}

	return max(domain.MinVisibleHour, minStart-1), min(domain.MaxVisibleHour, maxEnd+1)
}

// Slots возвращает одночасовые слоты для диапазона [minHour, maxHour] включительно
func Slots(minHour, maxHour int) ([]domain.TimeSlot, error) {
	if minHour < domain.MinVisibleHour || maxHour > domain.MaxVisibleHour || minHour > maxHour {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidHourRange, minHour, maxHour)
	}

	slots := make([]domain.TimeSlot, 0, maxHour-minHour+1)
	for hour := minHour; hour <= maxHour; hour++ {
		label, err := types.FormatSlotLabel(hour)
		if err != nil {
			return nil, err
		}
		slots = append(slots, domain.TimeSlot{
			Start: types.MustTimeOfDay(hour, 0),
			Label: label,
		})
	}
	return slots, nil
}

// PartialHourOverlay ширина части часа до момента t: (минуты/60) * pixelsPerHour
func PartialHourOverlay(t types.TimeOfDay, pixelsPerHour float64) float64 {
	if pixelsPerHour <= 0 {
		pixelsPerHour = domain.DefaultPixelsPerHour
	}
	return float64(t.Minute) / 60 * pixelsPerHour
}

// NonWorkingRanges возвращает затененные (нерабочие) участки ячейки слота.
// Слоты целиком вне рабочего окна затеняются полностью, слоты с началом
// или концом рабочего дня - частично
func NonWorkingRanges(wh domain.WorkingHours, slot domain.TimeSlot, pixelsPerHour float64) []domain.ShadedRange {
	if pixelsPerHour <= 0 {
		pixelsPerHour = domain.DefaultPixelsPerHour
	}
	full := []domain.ShadedRange{{LeftPixelOffset: 0, WidthPixels: pixelsPerHour}}

	if !wh.IsWorking || !wh.End.IsAfter(wh.Start) {
		return full
	}

	hour := slot.Start.Hour
	if hour < wh.Start.Hour || hour > wh.End.Hour {
		return full
	}
	if hour == wh.End.Hour && wh.End.Minute == 0 {
		return full
	}

	ranges := make([]domain.ShadedRange, 0, 2)
	if hour == wh.Start.Hour && wh.Start.Minute > 0 {
		ranges = append(ranges, domain.ShadedRange{
			LeftPixelOffset: 0,
			WidthPixels:     PartialHourOverlay(wh.Start, pixelsPerHour),
		})
	}
	if hour == wh.End.Hour {
		offset := PartialHourOverlay(wh.End, pixelsPerHour)
		ranges = append(ranges, domain.ShadedRange{
			LeftPixelOffset: offset,
			WidthPixels:     pixelsPerHour - offset,
		})
	}
	return ranges
}
