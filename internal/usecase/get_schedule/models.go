package get_schedule

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// View вид расписания
type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// Request модель запроса на построение сетки расписания
type Request struct {
	SalonID  int64     // ID салона
	Date     time.Time // Опорная дата (для недели - любой день недели, для месяца - любой день месяца)
	View     View      // Вид, пустой = день
	StaffIDs []int64   // Фильтр по мастерам (опционально)
}

// Response готовая к отрисовке сетка
type Response struct {
	SalonID        int64
	View           View
	StartDate      time.Time
	EndDate        time.Time
	MinVisibleHour int
	MaxVisibleHour int
	Slots          []domain.TimeSlot
	Rows           []Row
	SkippedItems   int // элементы, исключенные из-за некорректного времени
}

// Row строка сетки: мастер (день) или мастер+дата (неделя, месяц)
type Row struct {
	OwnerKey  string
	StaffID   int64
	StaffName string
	Date      time.Time
	Cells     []Cell
}

// Cell одна ячейка (строка, слот)
type Cell struct {
	Slot   domain.TimeSlot
	Blocks []domain.LayoutBlock
	Shaded []domain.ShadedRange
}

// BlockCount количество блоков во всей сетке
func (r *Response) BlockCount() int {
	total := 0
	for _, row := range r.Rows {
		for _, cell := range row.Cells {
			total += len(cell.Blocks)
		}
	}
	return total
}
