package entity

import (
	"iter"

	"github.com/google/uuid"

	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

// DaySlot - объявленная доступность на один день недели.
type DaySlot struct {
	Day    vo.Weekday
	Active bool
	Range  *vo.TimeRange
}

// IsComplete - день учитывается только если он активен и оба времени заданы.
func (s DaySlot) IsComplete() bool {
	return s.Active && s.Range != nil
}

// WeeklyAvailability - недельное расписание кандидата.
type WeeklyAvailability struct {
	CandidateID uuid.UUID
	days        [len(vo.Weekdays)]DaySlot
}

func NewWeeklyAvailability(candidateID uuid.UUID) *WeeklyAvailability {
	w := &WeeklyAvailability{CandidateID: candidateID}
	for i, d := range vo.Weekdays {
		w.days[i] = DaySlot{Day: d}
	}
	return w
}

// SetDay обновляет один день. Снятие активности очищает время; время для
// неактивного дня игнорируется. При ошибке день остаётся без изменений.
func (w *WeeklyAvailability) SetDay(day vo.Weekday, active bool, start, end *vo.ClockTime) error {
	idx := day.Index()
	if idx < 0 {
		return apperror.New(apperror.ErrCodeValidation, "некорректный день недели")
	}

	if !active {
		w.days[idx] = DaySlot{Day: day}
		return nil
	}

	slot := DaySlot{Day: day, Active: true}
	switch {
	case start != nil && end != nil:
		r, err := vo.NewTimeRange(*start, *end)
		if err != nil {
			return err
		}
		slot.Range = &r
	case start != nil || end != nil:
		return apperror.New(apperror.ErrCodeValidation, "время начала и окончания задаются вместе")
	}

	w.days[idx] = slot
	return nil
}

func (w *WeeklyAvailability) Day(day vo.Weekday) DaySlot {
	idx := day.Index()
	if idx < 0 {
		return DaySlot{Day: day}
	}
	return w.days[idx]
}

// Days возвращает все семь дней по порядку.
func (w *WeeklyAvailability) Days() []DaySlot {
	out := make([]DaySlot, len(w.days))
	copy(out, w.days[:])
	return out
}

// CompleteDays лениво перечисляет заполненные дни.
func (w *WeeklyAvailability) CompleteDays() iter.Seq[DaySlot] {
	return func(yield func(DaySlot) bool) {
		for _, s := range w.days {
			if !s.IsComplete() {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}

func (w *WeeklyAvailability) HasCompleteDay() bool {
	if w == nil {
		return false
	}
	for range w.CompleteDays() {
		return true
	}
	return false
}
