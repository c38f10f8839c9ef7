package availability_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
	"github.com/ignatzorin/recruitment-backend/internal/testutil/memrepo"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/availability"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/lockstate"
)

var (
	eduCourse  = entity.Course{ID: uuid.New(), Code: "EDU-C1", FacultyCode: "EDU", SpecialtyCode: "EDU-101"}
	mathCourse = entity.Course{ID: uuid.New(), Code: "MATH-C1", FacultyCode: "SCI", SpecialtyCode: "MATH-204"}
)

type env struct {
	candidateID  uuid.UUID
	actor        vo.Actor
	profiles     *memrepo.ProfileRepository
	repo         *memrepo.AvailabilityRepository
	applications *memrepo.ApplicationRepository
	catalog      *memrepo.Catalog
	locks        *lockstate.Loader
}

func newEnv() *env {
	e := &env{
		candidateID:  uuid.New(),
		profiles:     memrepo.NewProfileRepository(),
		repo:         memrepo.NewAvailabilityRepository(),
		applications: memrepo.NewApplicationRepository(),
		catalog:      memrepo.NewCatalog(eduCourse, mathCourse),
	}
	e.actor = vo.Actor{UserID: e.candidateID, Role: vo.RoleCandidate}
	e.locks = lockstate.NewLoader(e.profiles, e.applications)
	return e
}

// submit переводит профиль в поданное состояние с заявкой на EDU-101.
func (e *env) submit(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	p, err := entity.NewProfile(e.candidateID, entity.PersonalData{FirstName: "Ana"})
	require.NoError(t, err)
	require.NoError(t, e.profiles.Save(ctx, p))
	require.NoError(t, e.profiles.MarkCompleted(ctx, e.candidateID, p.CreatedAt))

	app, err := entity.NewApplication(e.candidateID, eduCourse.Specialty())
	require.NoError(t, err)
	require.NoError(t, e.applications.Create(ctx, app))
}

func str(s string) *string { return &s }

func TestSaveSchedule(t *testing.T) {
	e := newEnv()
	uc := availability.NewSaveScheduleUseCase(e.repo, e.locks)
	ctx := context.Background()

	days, err := uc.Execute(ctx, e.actor, e.candidateID, []availability.DayInput{
		{Day: "monday", Active: true, Start: str("09:00"), End: str("12:00")},
		{Day: "tuesday", Active: true},
		{Day: "friday", Active: false, Start: str("10:00"), End: str("11:00")},
	})
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, vo.Monday, days[0].Day)

	_, err = uc.Execute(ctx, e.actor, e.candidateID, []availability.DayInput{
		{Day: "monday", Active: true, Start: str("09:00"), End: str("08:00")},
	})
	assert.True(t, apperror.IsValidation(err))

	_, err = uc.Execute(ctx, e.actor, e.candidateID, []availability.DayInput{
		{Day: "monday", Active: true}, {Day: "Monday", Active: false},
	})
	assert.True(t, apperror.IsValidation(err))

	stored, err := availability.NewGetScheduleUseCase(e.repo).Execute(ctx, e.actor, e.candidateID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "12:00", stored[0].Range.End.String())
}

func TestSetDay_KeepsOtherDays(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	save := availability.NewSaveScheduleUseCase(e.repo, e.locks)
	_, err := save.Execute(ctx, e.actor, e.candidateID, []availability.DayInput{
		{Day: "monday", Active: true, Start: str("09:00"), End: str("12:00")},
	})
	require.NoError(t, err)

	setDay := availability.NewSetDayUseCase(e.repo, e.locks)
	slot, err := setDay.Execute(ctx, e.actor, e.candidateID, availability.DayInput{
		Day: "thursday", Active: true, Start: str("14:00"), End: str("18:00"),
	})
	require.NoError(t, err)
	assert.True(t, slot.IsComplete())

	_, err = setDay.Execute(ctx, e.actor, e.candidateID, availability.DayInput{Day: "thursday", Active: true, Start: str("14:00")})
	assert.True(t, apperror.IsValidation(err))

	days, err := availability.NewGetScheduleUseCase(e.repo).Execute(ctx, e.actor, e.candidateID)
	require.NoError(t, err)
	assert.Len(t, days, 2)
}

func TestSchedule_LockedAfterSubmit(t *testing.T) {
	e := newEnv()
	e.submit(t)

	_, err := availability.NewSaveScheduleUseCase(e.repo, e.locks).Execute(context.Background(), e.actor, e.candidateID,
		[]availability.DayInput{{Day: "monday", Active: true, Start: str("09:00"), End: str("12:00")}})
	assert.True(t, apperror.IsLocked(err))

	_, err = availability.NewSetDayUseCase(e.repo, e.locks).Execute(context.Background(), e.actor, e.candidateID,
		availability.DayInput{Day: "monday", Active: false})
	assert.True(t, apperror.IsLocked(err))
}

func TestChangeCourse_Toggle(t *testing.T) {
	e := newEnv()
	uc := availability.NewChangeCourseUseCase(e.repo, e.catalog, e.locks)
	ctx := context.Background()
	in := availability.ChangeCourseInput{CandidateID: e.candidateID, CourseID: eduCourse.ID}

	res, err := uc.Execute(ctx, e.actor, in)
	require.NoError(t, err)
	assert.True(t, res.Selected)

	res, err = uc.Execute(ctx, e.actor, in)
	require.NoError(t, err)
	assert.False(t, res.Selected)

	in.Change = availability.CourseSelect
	_, err = uc.Execute(ctx, e.actor, in)
	require.NoError(t, err)
	res, err = uc.Execute(ctx, e.actor, in)
	require.NoError(t, err)
	assert.True(t, res.Selected, "select is idempotent")

	_, err = uc.Execute(ctx, e.actor, availability.ChangeCourseInput{CandidateID: e.candidateID, CourseID: uuid.New()})
	assert.True(t, apperror.IsNotFound(err))
}

func TestChangeCourse_AfterSubmit(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	require.NoError(t, e.repo.AddCourse(ctx, e.candidateID, eduCourse.ID))
	e.submit(t)
	uc := availability.NewChangeCourseUseCase(e.repo, e.catalog, e.locks)

	_, err := uc.Execute(ctx, e.actor, availability.ChangeCourseInput{
		CandidateID: e.candidateID, CourseID: eduCourse.ID, Change: availability.CourseDeselect,
	})
	assert.True(t, apperror.IsLocked(err))

	res, err := uc.Execute(ctx, e.actor, availability.ChangeCourseInput{
		CandidateID: e.candidateID, CourseID: mathCourse.ID, Change: availability.CourseSelect,
	})
	require.NoError(t, err)
	assert.True(t, res.Selected)

	groups, err := availability.NewListCoursesUseCase(e.repo, e.catalog).Specialties(ctx, e.actor, e.candidateID)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "EDU-101", groups[0].Key.SpecialtyCode)

	status, err := availability.NewGetStatusUseCase(e.locks).Execute(ctx, e.actor, e.candidateID)
	require.NoError(t, err)
	assert.True(t, status.Completed)
	assert.False(t, status.CanModify)
	assert.Equal(t, []vo.SpecialtyKey{eduCourse.Specialty()}, status.CoveredSpecialties)
}

func TestChangeCourse_DirectorCannotModify(t *testing.T) {
	e := newEnv()
	director := vo.Actor{UserID: uuid.New(), Role: vo.RoleDirector, SpecialtyCode: "EDU-101"}
	_, err := availability.NewChangeCourseUseCase(e.repo, e.catalog, e.locks).Execute(context.Background(), director,
		availability.ChangeCourseInput{CandidateID: e.candidateID, CourseID: eduCourse.ID})
	assert.True(t, apperror.IsForbidden(err))
}
