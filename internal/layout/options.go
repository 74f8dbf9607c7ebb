package layout

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Options layout constants supplied by the rendering loop
type Options struct {
	PixelsPerHour    float64 // 0 = domain.DefaultPixelsPerHour
	MinimumBlockSize float64 // 0 = domain.DefaultMinimumBlockSize

	// OnInvalid вызывается для элементов с нулевой или отрицательной длительностью
	OnInvalid func(item domain.ScheduleItem, err error)
}

func (o Options) withDefaults() Options {
	if o.PixelsPerHour <= 0 {
		o.PixelsPerHour = domain.DefaultPixelsPerHour
	}
	if o.MinimumBlockSize <= 0 {
		o.MinimumBlockSize = domain.DefaultMinimumBlockSize
	}
	return o
}

func (o Options) report(item domain.ScheduleItem, err error) {
	if o.OnInvalid != nil {
		o.OnInvalid(item, err)
	}
}

// Query строка сетки, для которой строится раскладка
type Query struct {
	OwnerKey string
	// Date учитывается, только если дата есть и у запроса, и у элемента
	Date *time.Time
}

// Matches проверяет, что элемент принадлежит строке запроса
func (q Query) Matches(item domain.ScheduleItem) bool {
	if item.OwnerKey != q.OwnerKey {
		return false
	}
	if q.Date != nil && item.Date != nil && !domain.SameDay(*q.Date, *item.Date) {
		return false
	}
	return true
}
