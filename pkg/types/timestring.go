package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrMalformedTime возвращается, когда строка времени не соответствует формату HH:MM
var ErrMalformedTime = errors.New("types: malformed time, expected HH:MM")

// timePattern строгий формат времени: 24 часа, с ведущими нулями
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// TimeString represents a wall-clock time of day in "HH:MM" format (24-hour, zero-padded).
// It is the canonical representation for salon business hours and appointment start times.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит строку формата HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что значение соответствует строгому формату HH:MM
func (t TimeString) Validate() error {
	if !timePattern.MatchString(string(t)) {
		return fmt.Errorf("%w: %q", ErrMalformedTime, string(t))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Hour возвращает час (0-23). Значение должно быть предварительно провалидировано.
func (t TimeString) Hour() int {
	h, _ := t.parts()
	return h
}

// Minute возвращает минуты (0-59)
func (t TimeString) Minute() int {
	_, m := t.parts()
	return m
}

// MinutesFromMidnight возвращает количество минут с полуночи
func (t TimeString) MinutesFromMidnight() int {
	h, m := t.parts()
	return h*60 + m
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.MinutesFromMidnight() < other.MinutesFromMidnight()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.MinutesFromMidnight() > other.MinutesFromMidnight()
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед.
// Возвращает ошибку при выходе за границы суток.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total := t.MinutesFromMidnight() + minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %q +%dm is outside the day", ErrMalformedTime, string(t), minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// At combines the time of day with a calendar date in the date's location.
// The combination is naive: no timezone conversion is applied, business hours
// and requests are assumed to share one implicit zone.
func (t TimeString) At(date time.Time) time.Time {
	h, m := t.parts()
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())
}

// Format12Hour возвращает время в 12-часовом формате с AM/PM, например "9:00 AM".
// Час 0 отображается как 12.
func (t TimeString) Format12Hour() string {
	h, m := t.parts()
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h = h % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, m, suffix)
}

// String возвращает строковое представление HH:MM
func (t TimeString) String() string {
	return string(t)
}

// Scan реализует sql.Scanner. Поддерживает TIME колонки (строка или time.Time).
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		if len(v) > 5 {
			v = v[:5] // TIME колонки возвращают HH:MM:SS
		}
		*t = TimeString(v)
		return t.Validate()
	case []byte:
		return t.Scan(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrMalformedTime, value)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

func (t TimeString) parts() (int, int) {
	var h, m int
	fmt.Sscanf(string(t), "%d:%d", &h, &m)
	return h, m
}
