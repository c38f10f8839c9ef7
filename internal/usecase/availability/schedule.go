package availability

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	"github.com/ignatzorin/recruitment-backend/internal/domain/policy"
	"github.com/ignatzorin/recruitment-backend/internal/domain/repository"
	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/lockstate"
)

var scheduleWrite = policy.Mutation{Section: policy.SectionSchedule, Operation: policy.OperationWrite}

// DayInput - один день расписания в запросе.
type DayInput struct {
	Day    string
	Active bool
	Start  *string
	End    *string
}

func (in DayInput) parse() (vo.Weekday, *vo.ClockTime, *vo.ClockTime, error) {
	day, err := vo.NewWeekday(in.Day)
	if err != nil {
		return "", nil, nil, err
	}
	start, err := parseOptionalClock(in.Start)
	if err != nil {
		return "", nil, nil, err
	}
	end, err := parseOptionalClock(in.End)
	if err != nil {
		return "", nil, nil, err
	}
	return day, start, end, nil
}

func parseOptionalClock(v *string) (*vo.ClockTime, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := vo.ParseClockTime(*v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type GetScheduleUseCase struct {
	availabilityRepo repository.AvailabilityRepository
}

func NewGetScheduleUseCase(availabilityRepo repository.AvailabilityRepository) *GetScheduleUseCase {
	return &GetScheduleUseCase{availabilityRepo: availabilityRepo}
}

// Execute возвращает только заполненные дни - то же, что сохраняется в хранилище.
func (uc *GetScheduleUseCase) Execute(ctx context.Context, actor vo.Actor, candidateID uuid.UUID) ([]entity.DaySlot, error) {
	if !actor.CanViewCandidate(candidateID) {
		return nil, apperror.ErrForbidden
	}
	schedule, err := uc.availabilityRepo.FindSchedule(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	return slices.Collect(schedule.CompleteDays()), nil
}

type SaveScheduleUseCase struct {
	availabilityRepo repository.AvailabilityRepository
	locks            *lockstate.Loader
}

func NewSaveScheduleUseCase(availabilityRepo repository.AvailabilityRepository, locks *lockstate.Loader) *SaveScheduleUseCase {
	return &SaveScheduleUseCase{availabilityRepo: availabilityRepo, locks: locks}
}

// Execute заменяет расписание целиком. Любой некорректный день отклоняет весь запрос.
func (uc *SaveScheduleUseCase) Execute(ctx context.Context, actor vo.Actor, candidateID uuid.UUID, days []DayInput) ([]entity.DaySlot, error) {
	if !actor.CanActFor(candidateID) {
		return nil, apperror.ErrForbidden
	}

	schedule := entity.NewWeeklyAvailability(candidateID)
	seen := make(map[vo.Weekday]bool, len(days))
	for _, in := range days {
		day, start, end, err := in.parse()
		if err != nil {
			return nil, err
		}
		if seen[day] {
			return nil, apperror.New(apperror.ErrCodeValidation, "день "+string(day)+" указан дважды")
		}
		seen[day] = true
		if err := schedule.SetDay(day, in.Active, start, end); err != nil {
			return nil, err
		}
	}

	lock, err := uc.locks.Load(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if err := lock.Check(scheduleWrite); err != nil {
		return nil, err
	}

	if err := uc.availabilityRepo.ReplaceSchedule(ctx, schedule); err != nil {
		return nil, err
	}
	return slices.Collect(schedule.CompleteDays()), nil
}

type SetDayUseCase struct {
	availabilityRepo repository.AvailabilityRepository
	locks            *lockstate.Loader
}

func NewSetDayUseCase(availabilityRepo repository.AvailabilityRepository, locks *lockstate.Loader) *SetDayUseCase {
	return &SetDayUseCase{availabilityRepo: availabilityRepo, locks: locks}
}

// Execute меняет один день, остальные дни остаются как были.
func (uc *SetDayUseCase) Execute(ctx context.Context, actor vo.Actor, candidateID uuid.UUID, in DayInput) (entity.DaySlot, error) {
	if !actor.CanActFor(candidateID) {
		return entity.DaySlot{}, apperror.ErrForbidden
	}

	day, start, end, err := in.parse()
	if err != nil {
		return entity.DaySlot{}, err
	}

	lock, err := uc.locks.Load(ctx, candidateID)
	if err != nil {
		return entity.DaySlot{}, err
	}
	if err := lock.Check(scheduleWrite); err != nil {
		return entity.DaySlot{}, err
	}

	schedule, err := uc.availabilityRepo.FindSchedule(ctx, candidateID)
	if err != nil {
		return entity.DaySlot{}, err
	}
	if err := schedule.SetDay(day, in.Active, start, end); err != nil {
		return entity.DaySlot{}, err
	}

	if err := uc.availabilityRepo.ReplaceSchedule(ctx, schedule); err != nil {
		return entity.DaySlot{}, err
	}
	return schedule.Day(day), nil
}
