package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMalformedTimeCode возвращается, когда время нельзя разобрать в корректные час и минуту
var ErrMalformedTimeCode = errors.New("types: malformed time code")

const (
	timeCodeLength = 4
	minutesPerHour = 60
	hoursPerDay    = 24
	minutesPerDay  = hoursPerDay * minutesPerHour
)

// TimeOfDay время внутри одних суток (час 0-23, минута 0-59)
// Нулевое значение - полночь
type TimeOfDay struct {
	Hour   int
	Minute int
}

// NewTimeOfDay создает время суток с проверкой диапазонов
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour >= hoursPerDay {
		return TimeOfDay{}, fmt.Errorf("%w: hour %d out of range 0-23", ErrMalformedTimeCode, hour)
	}
	if minute < 0 || minute >= minutesPerHour {
		return TimeOfDay{}, fmt.Errorf("%w: minute %d out of range 0-59", ErrMalformedTimeCode, minute)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// MustTimeOfDay как NewTimeOfDay, но паникует на некорректных значениях.
// Только для констант и тестовых данных
func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTimeOfDayFromTime берет час и минуту из time.Time
func NewTimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// ParseTimeCode разбирает компактный код "HHmm" (например, "0930")
func ParseTimeCode(code string) (TimeOfDay, error) {
	if len(code) != timeCodeLength {
		return TimeOfDay{}, fmt.Errorf("%w: %q must be exactly 4 digits", ErrMalformedTimeCode, code)
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return TimeOfDay{}, fmt.Errorf("%w: %q contains non-digit characters", ErrMalformedTimeCode, code)
		}
	}

	hour := int(code[0]-'0')*10 + int(code[1]-'0')
	minute := int(code[2]-'0')*10 + int(code[3]-'0')

	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w (code %q)", err, code)
	}
	return t, nil
}

// ParseHour возвращает час из кода "HHmm"
func ParseHour(code string) (int, error) {
	t, err := ParseTimeCode(code)
	if err != nil {
		return 0, err
	}
	return t.Hour, nil
}

// ParseMinute возвращает минуты из кода "HHmm"
func ParseMinute(code string) (int, error) {
	t, err := ParseTimeCode(code)
	if err != nil {
		return 0, err
	}
	return t.Minute, nil
}

// ToDecimalHour переводит код "HHmm" в десятичные часы (например, "0930" -> 9.5)
func ToDecimalHour(code string) (float64, error) {
	t, err := ParseTimeCode(code)
	if err != nil {
		return 0, err
	}
	return t.DecimalHour(), nil
}

// FormatClock12h форматирует код "HHmm" как "h:mm AM/PM"
// Примеры: "0005" -> "12:05 AM", "1430" -> "2:30 PM"
func FormatClock12h(code string) (string, error) {
	t, err := ParseTimeCode(code)
	if err != nil {
		return "", err
	}
	return t.Clock12h(), nil
}

// FormatSlotLabel форматирует час для заголовка колонки: 0 -> "12 am", 13 -> "1 pm"
func FormatSlotLabel(hour int) (string, error) {
	if hour < 0 || hour >= hoursPerDay {
		return "", fmt.Errorf("%w: slot hour %d out of range 0-23", ErrMalformedTimeCode, hour)
	}
	return fmt.Sprintf("%d %s", to12h(hour), strings.ToLower(meridiem(hour))), nil
}

// DecimalHour час + минуты/60, используется во всей интервальной арифметике
func (t TimeOfDay) DecimalHour() float64 {
	return float64(t.Hour) + float64(t.Minute)/minutesPerHour
}

// Minutes количество минут от полуночи
func (t TimeOfDay) Minutes() int {
	return t.Hour*minutesPerHour + t.Minute
}

// Code возвращает компактный код "HHmm"
func (t TimeOfDay) Code() string {
	return fmt.Sprintf("%02d%02d", t.Hour, t.Minute)
}

// String возвращает "HH:MM"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Clock12h возвращает "h:mm AM/PM"
func (t TimeOfDay) Clock12h() string {
	return fmt.Sprintf("%d:%02d %s", to12h(t.Hour), t.Minute, meridiem(t.Hour))
}

// AddMinutes сдвигает время на указанное количество минут.
// Выход за пределы суток - ошибка, время не переходит через полночь
func (t TimeOfDay) AddMinutes(minutes int) (TimeOfDay, error) {
	total := t.Minutes() + minutes
	if total < 0 || total >= minutesPerDay {
		return TimeOfDay{}, fmt.Errorf("%w: %s %+d min leaves the day", ErrMalformedTimeCode, t, minutes)
	}
	return TimeOfDay{Hour: total / minutesPerHour, Minute: total % minutesPerHour}, nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeOfDay) IsAfter(other TimeOfDay) bool {
	return t.Minutes() > other.Minutes()
}

// On возвращает момент времени t в день date
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, date.Location())
}

// MarshalJSON сериализует время как код "HHmm"
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Code())
}

// UnmarshalJSON принимает код "HHmm"
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedTimeCode, err)
	}
	parsed, err := ParseTimeCode(code)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Scan реализует sql.Scanner для колонок postgres TIME ("15:04:05")
func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t = NewTimeOfDayFromTime(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	case nil:
		return fmt.Errorf("%w: NULL time value", ErrMalformedTimeCode)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrMalformedTimeCode, src)
	}
}

func (t *TimeOfDay) scanString(s string) error {
	// "15:04:05" / "15:04" -> "1504"
	digits := strings.ReplaceAll(s, ":", "")
	if len(digits) < timeCodeLength {
		return fmt.Errorf("%w: %q", ErrMalformedTimeCode, s)
	}
	parsed, err := ParseTimeCode(digits[:timeCodeLength])
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeOfDay) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:00", t.Hour, t.Minute), nil
}

func to12h(hour int) int {
	h := hour % 12
	if h == 0 {
		return 12
	}
	return h
}

func meridiem(hour int) string {
	if hour < 12 {
		return "AM"
	}
	return "PM"
}
