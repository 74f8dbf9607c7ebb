package fixtures

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

var validate = validator.New()

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Load читает фикстуры из YAML файла
func Load(path string) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFixture, path, err)
	}
	return Parse(data)
}

// Parse разбирает и валидирует YAML фикстур.
// Элементы с нулевой или отрицательной длительностью не отбрасываются,
// их исключает раскладка
func Parse(data []byte) (*Schedule, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFixture, err)
	}

	if err := validate.Struct(file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
	}

	schedule := &Schedule{}

	if file.Date != "" {
		date, err := parseDate(file.Date)
		if err != nil {
			return nil, err
		}
		schedule.Date = ptr.Ptr(date)
	}

	for _, sf := range file.Staff {
		member, err := sf.toStaff()
		if err != nil {
			return nil, err
		}
		schedule.Staff = append(schedule.Staff, member)
	}

	for _, itf := range file.Items {
		item, err := itf.toItem()
		if err != nil {
			return nil, err
		}
		schedule.Items = append(schedule.Items, item)
	}

	for _, bf := range file.Bookings {
		booking, err := bf.toBooking()
		if err != nil {
			return nil, err
		}
		items, err := booking.ScheduleItems()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
		}
		schedule.Items = append(schedule.Items, items...)
	}

	return schedule, nil
}

func (sf StaffFixture) toStaff() (Staff, error) {
	member := Staff{ID: sf.ID, Name: sf.Name}

	for _, day := range sf.WorkingHours {
		wh := domain.WorkingHours{
			StaffID:   sf.ID,
			Weekday:   weekdays[day.Weekday],
			IsWorking: !day.Off,
		}

		if !day.Off {
			if day.Start == "" || day.End == "" {
				return Staff{}, fmt.Errorf("%w: staff id=%d %s: start and end are required on working days",
					ErrInvalidFixture, sf.ID, day.Weekday)
			}
			start, err := parseCode(day.Start)
			if err != nil {
				return Staff{}, err
			}
			end, err := parseCode(day.End)
			if err != nil {
				return Staff{}, err
			}
			if !end.IsAfter(start) {
				return Staff{}, fmt.Errorf("%w: staff id=%d %s: end %s is not after start %s",
					ErrInvalidFixture, sf.ID, day.Weekday, day.End, day.Start)
			}
			wh.Start, wh.End = start, end
		}

		member.WorkingHours = append(member.WorkingHours, wh)
	}

	return member, nil
}

func (itf ItemFixture) toItem() (domain.ScheduleItem, error) {
	start, err := parseCode(itf.Start)
	if err != nil {
		return domain.ScheduleItem{}, err
	}
	end, err := parseCode(itf.End)
	if err != nil {
		return domain.ScheduleItem{}, err
	}

	item := domain.ScheduleItem{
		ID:          itf.ID,
		OwnerKey:    itf.Owner,
		Start:       start,
		End:         end,
		Title:       itf.Title,
		Color:       valueOr(itf.Color, domain.DefaultItemColor),
		BorderColor: valueOr(itf.BorderColor, domain.DefaultItemBorderColor),
	}

	if itf.Date != "" {
		date, err := parseDate(itf.Date)
		if err != nil {
			return domain.ScheduleItem{}, err
		}
		item.Date = ptr.Ptr(date)
	}

	return item, nil
}

func (bf BookingFixture) toBooking() (*domain.Booking, error) {
	date, err := parseDate(bf.Date)
	if err != nil {
		return nil, err
	}
	start, err := parseCode(bf.Start)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:           bf.ID,
		StaffID:      bf.StaffID,
		CustomerName: bf.Customer,
		BookingDate:  date,
		StartTime:    start,
		Status:       domain.StatusConfirmed,
	}
	for i, sf := range bf.Services {
		booking.Services = append(booking.Services, domain.BookingService{
			BookingID:       bf.ID,
			Name:            sf.Name,
			DurationMinutes: sf.Duration,
			Position:        i,
			Color:           sf.Color,
		})
	}
	return booking, nil
}

func parseCode(code string) (types.TimeOfDay, error) {
	t, err := types.ParseTimeCode(code)
	if err != nil {
		return types.TimeOfDay{}, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
	}
	return t, nil
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q: %v", ErrInvalidFixture, value, err)
	}
	return date, nil
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
