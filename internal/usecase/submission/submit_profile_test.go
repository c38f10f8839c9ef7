package submission_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
	"github.com/ignatzorin/recruitment-backend/internal/testutil/memrepo"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/application"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/profile"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/submission"
)

var (
	eduCourse  = entity.Course{ID: uuid.New(), Code: "EDU-C1", FacultyCode: "EDU", SpecialtyCode: "EDU-101"}
	eduCourse2 = entity.Course{ID: uuid.New(), Code: "EDU-C2", FacultyCode: "EDU", SpecialtyCode: "EDU-101"}
	mathCourse = entity.Course{ID: uuid.New(), Code: "MATH-C1", FacultyCode: "SCI", SpecialtyCode: "MATH-204"}
)

type fixture struct {
	candidateID  uuid.UUID
	actor        vo.Actor
	profiles     *memrepo.ProfileRepository
	academic     *memrepo.AcademicRecordRepository
	experience   *memrepo.WorkExperienceRepository
	availability *memrepo.AvailabilityRepository
	applications *memrepo.ApplicationRepository
	catalog      *memrepo.Catalog
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		candidateID:  uuid.New(),
		profiles:     memrepo.NewProfileRepository(),
		academic:     memrepo.NewAcademicRecordRepository(),
		experience:   memrepo.NewWorkExperienceRepository(),
		availability: memrepo.NewAvailabilityRepository(),
		applications: memrepo.NewApplicationRepository(),
		catalog:      memrepo.NewCatalog(eduCourse, eduCourse2, mathCourse),
	}
	f.actor = vo.Actor{UserID: f.candidateID, Role: vo.RoleCandidate}
	return f
}

// fillProfile заполняет все разделы, кроме выбора курсов.
func (f *fixture) fillProfile(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	p, err := entity.NewProfile(f.candidateID, entity.PersonalData{
		FirstName: "Ana", LastName: "Lopez", NationalID: "AB123456", Phone: "+34600000000",
		Email: "ana@example.com", Gender: "female", Nationality: "ES", CVRef: "cv.pdf",
	})
	require.NoError(t, err)
	require.NoError(t, f.profiles.Save(ctx, p))

	record, err := entity.NewAcademicRecord(f.candidateID, entity.AcademicRecordInput{
		DegreeType: "BSc", Field: "Math", Institution: "UCM", Country: "ES", DocumentRef: "degree.pdf",
	})
	require.NoError(t, err)
	require.NoError(t, f.academic.Create(ctx, record))

	exp, err := entity.NewWorkExperience(f.candidateID, entity.WorkExperienceInput{
		Country: "ES", Sector: "Education", Employer: "School", Role: "Teacher",
		StartDate: time.Now().AddDate(-3, 0, 0), Current: true,
	})
	require.NoError(t, err)
	require.NoError(t, f.experience.Create(ctx, exp))

	schedule := entity.NewWeeklyAvailability(f.candidateID)
	start, _ := vo.ParseClockTime("09:00")
	end, _ := vo.ParseClockTime("13:00")
	require.NoError(t, schedule.SetDay(vo.Monday, true, &start, &end))
	require.NoError(t, f.availability.ReplaceSchedule(ctx, schedule))
}

func (f *fixture) selectCourses(t *testing.T, courses ...entity.Course) {
	t.Helper()
	for _, c := range courses {
		require.NoError(t, f.availability.AddCourse(context.Background(), f.candidateID, c.ID))
	}
}

func (f *fixture) useCase(creator submission.ApplicationCreator) *submission.SubmitProfileUseCase {
	if creator == nil {
		creator = application.NewCreateApplicationUseCase(f.applications, nil)
	}
	aggregator := profile.NewAggregator(f.profiles, f.academic, f.experience, f.availability)
	return submission.NewSubmitProfileUseCase(aggregator, f.profiles, f.catalog, f.applications, creator)
}

func TestSubmitProfile_CreatesOneApplicationPerSpecialty(t *testing.T) {
	f := newFixture(t)
	f.fillProfile(t)
	f.selectCourses(t, eduCourse, eduCourse2)
	uc := f.useCase(nil)
	ctx := context.Background()

	result, err := uc.Execute(ctx, f.actor, f.candidateID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ApplicationsCreated)
	assert.Empty(t, result.FailedSpecialties)

	p, err := f.profiles.FindByCandidateID(ctx, f.candidateID)
	require.NoError(t, err)
	assert.True(t, p.Completed)
	require.NotNil(t, p.SubmittedAt)

	_, err = uc.Execute(ctx, f.actor, f.candidateID)
	assert.True(t, apperror.IsNoNewSpecialty(err))
	assert.Equal(t, 1, f.applications.Count())

	f.selectCourses(t, mathCourse)
	result, err = uc.Execute(ctx, f.actor, f.candidateID)
	require.NoError(t, err)
	require.Equal(t, 1, result.ApplicationsCreated)
	assert.Equal(t, "MATH-204", result.Applications[0].SpecialtyCode)
	assert.Equal(t, 2, f.applications.Count())
}

func TestSubmitProfile_Incomplete(t *testing.T) {
	f := newFixture(t)
	f.fillProfile(t)
	uc := f.useCase(nil)

	_, err := uc.Execute(context.Background(), f.actor, f.candidateID)
	assert.True(t, apperror.IsIncompleteProfile(err))
	assert.Contains(t, err.Error(), "availability")
	assert.Equal(t, 0, f.applications.Count())

	p, err := f.profiles.FindByCandidateID(context.Background(), f.candidateID)
	require.NoError(t, err)
	assert.False(t, p.Completed)
}

func TestSubmitProfile_Forbidden(t *testing.T) {
	f := newFixture(t)
	other := vo.Actor{UserID: uuid.New(), Role: vo.RoleCandidate}
	_, err := f.useCase(nil).Execute(context.Background(), other, f.candidateID)
	assert.True(t, apperror.IsForbidden(err))
}

type failingCreator struct {
	next          submission.ApplicationCreator
	failSpecialty string
	err           error
}

func (c failingCreator) Execute(ctx context.Context, in application.CreateApplicationInput) (*entity.Application, error) {
	if in.SpecialtyCode == c.failSpecialty {
		return nil, c.err
	}
	return c.next.Execute(ctx, in)
}

func TestSubmitProfile_PartialFailure(t *testing.T) {
	dbErr := apperror.Wrap(errors.New(`pq: relation "applications" password=hunter2`),
		apperror.ErrCodeDatabaseError, "не удалось создать заявку")

	cases := []struct {
		name       string
		err        error
		wantCode   apperror.ErrorCode
		wantReason string
	}{
		{"plain error", errors.New("broker unavailable"), apperror.ErrCodeInternal, apperror.InternalMessage},
		{"database error", dbErr, apperror.ErrCodeInternal, apperror.InternalMessage},
		{"duplicate", apperror.ErrDuplicateApplication, apperror.ErrCodeDuplicateApplication, apperror.ErrDuplicateApplication.Message},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.fillProfile(t)
			f.selectCourses(t, eduCourse, mathCourse)

			creator := failingCreator{
				next:          application.NewCreateApplicationUseCase(f.applications, nil),
				failSpecialty: "MATH-204",
				err:           tc.err,
			}
			result, err := f.useCase(creator).Execute(context.Background(), f.actor, f.candidateID)
			require.NoError(t, err)

			assert.Equal(t, 1, result.ApplicationsCreated)
			require.Len(t, result.FailedSpecialties, 1)
			failure := result.FailedSpecialties[0]
			assert.Equal(t, "MATH-204", failure.SpecialtyCode)
			assert.Equal(t, tc.wantCode, failure.Code)
			assert.Equal(t, tc.wantReason, failure.Reason)
			assert.NotContains(t, failure.Reason, "pq:")
			assert.NotContains(t, failure.Reason, "hunter2")
		})
	}
}

type mockCreator struct {
	mock.Mock
}

func (m *mockCreator) Execute(ctx context.Context, in application.CreateApplicationInput) (*entity.Application, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Application), args.Error(1)
}

func TestSubmitProfile_CoursesLeftCatalog(t *testing.T) {
	f := newFixture(t)
	f.fillProfile(t)
	retired := entity.Course{ID: uuid.New(), Code: "OLD-C1", FacultyCode: "EDU", SpecialtyCode: "EDU-999"}
	f.selectCourses(t, retired)

	creator := new(mockCreator)
	_, err := f.useCase(creator).Execute(context.Background(), f.actor, f.candidateID)
	assert.True(t, apperror.IsIncompleteProfile(err))
	creator.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)

	p, err := f.profiles.FindByCandidateID(context.Background(), f.candidateID)
	require.NoError(t, err)
	assert.False(t, p.Completed)
}

func TestSubmitProfile_CreatorCalledPerNewSpecialty(t *testing.T) {
	f := newFixture(t)
	f.fillProfile(t)
	f.selectCourses(t, eduCourse, eduCourse2, mathCourse)
	ctx := context.Background()

	creator := new(mockCreator)
	creator.On("Execute", ctx, mock.MatchedBy(func(in application.CreateApplicationInput) bool {
		return in.CandidateID == f.candidateID
	})).Return(nil, apperror.ErrDuplicateApplication)

	result, err := f.useCase(creator).Execute(ctx, f.actor, f.candidateID)
	require.NoError(t, err)
	assert.Equal(t, 0, result.ApplicationsCreated)
	assert.Len(t, result.FailedSpecialties, 2)
	creator.AssertNumberOfCalls(t, "Execute", 2)
}
