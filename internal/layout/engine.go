package layout

import (
	"fmt"
	"math"
	"sort"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// LayoutSlot returns the blocks to paint in the one-hour cell starting at slotStart
// for the row described by query.
//
// Элементы фильтруются по строке и по пересечению с [slotStart, slotStart+1h),
// стабильно сортируются по началу и раскладываются по колонкам жадным first-fit.
// Один и тот же элемент попадает в каждый слот, который он задевает,
// с пересчитанным смещением. Входные данные не изменяются.
func LayoutSlot(items []domain.ScheduleItem, query Query, slotStart types.TimeOfDay, opts Options) []domain.LayoutBlock {
	opts = opts.withDefaults()

	slotFrom := slotStart.DecimalHour()
	slotTo := slotFrom + 1

	candidates := make([]domain.ScheduleItem, 0)
	for _, item := range items {
		if !query.Matches(item) {
			continue
		}
		if !item.HasPositiveDuration() {
			opts.report(item, invalidDurationError(item))
			continue
		}
		if !overlapsRange(item, slotFrom, slotTo) {
			continue
		}
		candidates = append(candidates, item)
	}

	sortByStart(candidates)
	columns := AssignColumns(candidates)

	blocks := make([]domain.LayoutBlock, len(candidates))
	for i, item := range candidates {
		blocks[i] = blockGeometry(item, columns[i], slotFrom, opts)
	}

	return blocks
}

// FilterValid оставляет элементы с положительной длительностью, остальные отдает в OnInvalid.
// Удобно вызвать один раз перед проходом по всем ячейкам сетки
func FilterValid(items []domain.ScheduleItem, onInvalid func(item domain.ScheduleItem, err error)) []domain.ScheduleItem {
	valid := make([]domain.ScheduleItem, 0, len(items))
	for _, item := range items {
		if !item.HasPositiveDuration() {
			if onInvalid != nil {
				onInvalid(item, invalidDurationError(item))
			}
			continue
		}
		valid = append(valid, item)
	}
	return valid
}

// Overlaps проверяет пересечение полуоткрытых интервалов [start, end).
// Элементы, которые лишь касаются друг друга, не пересекаются
func Overlaps(a, b domain.ScheduleItem) bool {
	return a.Start.DecimalHour() < b.End.DecimalHour() && a.End.DecimalHour() > b.Start.DecimalHour()
}

// AssignColumns раскладывает элементы по колонкам в порядке их следования.
// Каждый элемент попадает в первую колонку, где он не пересекается ни с одним
// уже размещенным элементом; если такой нет - открывается новая колонка.
// Это first-fit, а не минимальная раскраска: порядок колонок должен оставаться
// стабильным для уже существующих данных
func AssignColumns(items []domain.ScheduleItem) []int {
	result := make([]int, len(items))
	columns := make([][]domain.ScheduleItem, 0)

	for i, item := range items {
		placed := false
		for c, column := range columns {
			if fitsColumn(column, item) {
				columns[c] = append(column, item)
				result[i] = c
				placed = true
				break
			}
		}
		if !placed {
			columns = append(columns, []domain.ScheduleItem{item})
			result[i] = len(columns) - 1
		}
	}

	return result
}

func fitsColumn(column []domain.ScheduleItem, item domain.ScheduleItem) bool {
	for _, placed := range column {
		if Overlaps(placed, item) {
			return false
		}
	}
	return true
}

func overlapsRange(item domain.ScheduleItem, from, to float64) bool {
	return item.Start.DecimalHour() < to && item.End.DecimalHour() > from
}

func sortByStart(items []domain.ScheduleItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Start.DecimalHour() < items[j].Start.DecimalHour()
	})
}

func blockGeometry(item domain.ScheduleItem, column int, slotFrom float64, opts Options) domain.LayoutBlock {
	width := item.DurationHours() * opts.PixelsPerHour
	return domain.LayoutBlock{
		Item:            item,
		ColumnIndex:     column,
		WidthPixels:     width,
		LeftPixelOffset: (item.Start.DecimalHour() - slotFrom) * opts.PixelsPerHour,
		SizePixels:      math.Max(width, opts.MinimumBlockSize),
	}
}

func invalidDurationError(item domain.ScheduleItem) error {
	return fmt.Errorf("%w: item=%s owner=%s start=%s end=%s",
		ErrInvalidDuration, item.ID, item.OwnerKey, item.Start, item.End)
}
