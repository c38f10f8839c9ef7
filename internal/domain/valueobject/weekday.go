package valueobject

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays - фиксированный домен дней недели.
var Weekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (d Weekday) IsValid() bool {
	return d.Index() >= 0
}

// Index возвращает позицию дня в неделе (понедельник = 0) или -1.
func (d Weekday) Index() int {
	for i, day := range Weekdays {
		if day == d {
			return i
		}
	}
	return -1
}

func NewWeekday(value string) (Weekday, error) {
	d := Weekday(strings.ToLower(strings.TrimSpace(value)))
	if !d.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, fmt.Sprintf("некорректный день недели %q", value))
	}
	return d, nil
}

// ClockTime - время суток в минутах от полуночи.
type ClockTime int

const minutesPerDay = 24 * 60

func ParseClockTime(value string) (ClockTime, error) {
	value = strings.TrimSpace(value)
	if len(value) != 5 || value[2] != ':' || !asciiDigits(value[:2]) || !asciiDigits(value[3:]) {
		return 0, apperror.New(apperror.ErrCodeValidation, fmt.Sprintf("время %q должно быть в формате ЧЧ:ММ", value))
	}
	h, errH := strconv.Atoi(value[:2])
	m, errM := strconv.Atoi(value[3:])
	if errH != nil || errM != nil {
		return 0, apperror.New(apperror.ErrCodeValidation, fmt.Sprintf("время %q должно быть в формате ЧЧ:ММ", value))
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, apperror.New(apperror.ErrCodeValidation, fmt.Sprintf("время %q вне допустимого диапазона", value))
	}
	return ClockTime(h*60 + m), nil
}

func asciiDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (t ClockTime) String() string {
	v := int(t) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", v/60, v%60)
}

// TimeRange - интервал внутри одного дня, Start строго меньше End.
type TimeRange struct {
	Start ClockTime
	End   ClockTime
}

func NewTimeRange(start, end ClockTime) (TimeRange, error) {
	if start >= end {
		return TimeRange{}, apperror.New(apperror.ErrCodeValidation,
			fmt.Sprintf("время начала %s должно быть раньше времени окончания %s", start, end))
	}
	return TimeRange{Start: start, End: end}, nil
}
