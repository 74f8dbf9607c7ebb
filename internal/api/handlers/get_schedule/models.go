package get_schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/bookings/models"
	getSchedule "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	SalonID        int64          `json:"salonId"`
	View           string         `json:"view"`
	StartDate      string         `json:"startDate"`
	EndDate        string         `json:"endDate"`
	MinVisibleHour int            `json:"minVisibleHour"`
	MaxVisibleHour int            `json:"maxVisibleHour"`
	Slots          []SlotResponse `json:"slots"`
	Rows           []RowResponse  `json:"rows"`
	SkippedItems   int            `json:"skippedItems"`
}

// SlotResponse заголовок колонки часа
type SlotResponse struct {
	Hour  int    `json:"hour"`
	Start string `json:"start"` // "HHmm"
	Label string `json:"label"` // "9 am"
}

// RowResponse строка сетки
type RowResponse struct {
	OwnerKey  string         `json:"ownerKey"`
	StaffID   int64          `json:"staffId"`
	StaffName string         `json:"staffName"`
	Date      string         `json:"date"`
	Cells     []CellResponse `json:"cells"`
}

// CellResponse ячейка (строка, слот)
type CellResponse struct {
	Hour   int              `json:"hour"`
	Blocks []BlockResponse  `json:"blocks"`
	Shaded []ShadedResponse `json:"shaded,omitempty"`
}

// BlockResponse позиционированный блок
type BlockResponse struct {
	Item            models.ScheduleItemResponse `json:"item"`
	BookingID       int64                       `json:"bookingId,omitempty"`
	ColumnIndex     int                         `json:"columnIndex"`
	WidthPixels     float64                     `json:"widthPixels"`
	LeftPixelOffset float64                     `json:"leftPixelOffset"`
	SizePixels      float64                     `json:"sizePixels"`
}

// ShadedResponse нерабочий участок ячейки
type ShadedResponse struct {
	LeftPixelOffset float64 `json:"leftPixelOffset"`
	WidthPixels     float64 `json:"widthPixels"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSchedule.Response) *ScheduleResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			Hour:  slot.Start.Hour,
			Start: slot.Start.Code(),
			Label: slot.Label,
		}
	}

	rows := make([]RowResponse, len(resp.Rows))
	for i, row := range resp.Rows {
		rows[i] = RowResponse{
			OwnerKey:  row.OwnerKey,
			StaffID:   row.StaffID,
			StaffName: row.StaffName,
			Date:      row.Date.Format(domain.DateFormat),
			Cells:     fromCells(row.Cells),
		}
	}

	return &ScheduleResponse{
		SalonID:        resp.SalonID,
		View:           string(resp.View),
		StartDate:      resp.StartDate.Format(domain.DateFormat),
		EndDate:        resp.EndDate.Format(domain.DateFormat),
		MinVisibleHour: resp.MinVisibleHour,
		MaxVisibleHour: resp.MaxVisibleHour,
		Slots:          slots,
		Rows:           rows,
		SkippedItems:   resp.SkippedItems,
	}
}

func fromCells(cells []getSchedule.Cell) []CellResponse {
	result := make([]CellResponse, len(cells))
	for i, cell := range cells {
		blocks := make([]BlockResponse, len(cell.Blocks))
		for j, b := range cell.Blocks {
			blocks[j] = BlockResponse{
				Item:            models.FromDomainItem(b.Item),
				BookingID:       b.Item.BookingID,
				ColumnIndex:     b.ColumnIndex,
				WidthPixels:     b.WidthPixels,
				LeftPixelOffset: b.LeftPixelOffset,
				SizePixels:      b.SizePixels,
			}
		}

		var shaded []ShadedResponse
		for _, s := range cell.Shaded {
			shaded = append(shaded, ShadedResponse{
				LeftPixelOffset: s.LeftPixelOffset,
				WidthPixels:     s.WidthPixels,
			})
		}

		result[i] = CellResponse{
			Hour:   cell.Slot.Start.Hour,
			Blocks: blocks,
			Shaded: shaded,
		}
	}
	return result
}

// ToUseCaseRequest создает запрос use case из query параметров.
// staffId допускает повторение и список через запятую
func ToUseCaseRequest(salonID int64, dateStr, view string, staffParams []string) (*getSchedule.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	var staffIDs []int64
	for _, param := range staffParams {
		for _, raw := range strings.Split(param, ",") {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("staffId %q: %w", raw, err)
			}
			staffIDs = append(staffIDs, id)
		}
	}

	return &getSchedule.Request{
		SalonID:  salonID,
		Date:     date,
		View:     getSchedule.View(view),
		StaffIDs: staffIDs,
	}, nil
}
