package profile_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
	"github.com/ignatzorin/recruitment-backend/internal/testutil/memrepo"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/lockstate"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/profile"
)

type repos struct {
	profiles     *memrepo.ProfileRepository
	academic     *memrepo.AcademicRecordRepository
	experience   *memrepo.WorkExperienceRepository
	availability *memrepo.AvailabilityRepository
	locks        *lockstate.Loader
}

func newRepos() repos {
	r := repos{
		profiles:     memrepo.NewProfileRepository(),
		academic:     memrepo.NewAcademicRecordRepository(),
		experience:   memrepo.NewWorkExperienceRepository(),
		availability: memrepo.NewAvailabilityRepository(),
	}
	r.locks = lockstate.NewLoader(r.profiles, memrepo.NewApplicationRepository())
	return r
}

func TestSavePersonalData(t *testing.T) {
	r := newRepos()
	candidateID := uuid.New()
	actor := vo.Actor{UserID: candidateID, Role: vo.RoleCandidate}
	uc := profile.NewSavePersonalDataUseCase(r.profiles, r.locks)
	ctx := context.Background()

	p, err := uc.Execute(ctx, actor, candidateID, entity.PersonalData{FirstName: " Ana "})
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.FirstName)

	p, err = uc.Execute(ctx, actor, candidateID, entity.PersonalData{FirstName: "Ana", LastName: "Lopez"})
	require.NoError(t, err)
	assert.Equal(t, "Lopez", p.LastName)

	_, err = uc.Execute(ctx, actor, candidateID, entity.PersonalData{Phone: "call me"})
	assert.True(t, apperror.IsValidation(err))

	director := vo.Actor{UserID: uuid.New(), Role: vo.RoleDirector, SpecialtyCode: "EDU-101"}
	_, err = uc.Execute(ctx, director, candidateID, entity.PersonalData{FirstName: "X"})
	assert.True(t, apperror.IsForbidden(err))

	require.NoError(t, r.profiles.MarkCompleted(ctx, candidateID, time.Now()))
	_, err = uc.Execute(ctx, actor, candidateID, entity.PersonalData{FirstName: "Maria"})
	assert.True(t, apperror.IsLocked(err))

	stored, err := r.profiles.FindByCandidateID(ctx, candidateID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", stored.FirstName)
	assert.True(t, stored.Completed)
}

func TestAcademicRecords_AddRemove(t *testing.T) {
	r := newRepos()
	candidateID := uuid.New()
	actor := vo.Actor{UserID: candidateID, Role: vo.RoleCandidate}
	ctx := context.Background()

	add := profile.NewAddAcademicRecordUseCase(r.academic, r.locks)
	remove := profile.NewRemoveAcademicRecordUseCase(r.academic, r.locks)

	_, err := add.Execute(ctx, actor, candidateID, entity.AcademicRecordInput{DegreeType: "BSc"})
	assert.True(t, apperror.IsValidation(err))

	record, err := add.Execute(ctx, actor, candidateID, entity.AcademicRecordInput{
		DegreeType: "BSc", Field: "Math", Institution: "UCM", Country: "ES",
	})
	require.NoError(t, err)

	completeness, err := profile.NewGetCompletenessUseCase(profile.NewAggregator(r.profiles, r.academic, r.experience, r.availability)).
		Execute(ctx, actor, candidateID)
	require.NoError(t, err)
	assert.False(t, completeness.Academic, "record without document")

	require.NoError(t, remove.Execute(ctx, actor, candidateID, record.ID))
	assert.True(t, apperror.IsNotFound(remove.Execute(ctx, actor, candidateID, record.ID)))
}

func TestWorkExperience_LockedAfterSubmit(t *testing.T) {
	r := newRepos()
	candidateID := uuid.New()
	actor := vo.Actor{UserID: candidateID, Role: vo.RoleCandidate}
	ctx := context.Background()

	add := profile.NewAddWorkExperienceUseCase(r.experience, r.locks)
	in := entity.WorkExperienceInput{
		Country: "ES", Sector: "Education", Employer: "School", Role: "Teacher",
		StartDate: time.Now().AddDate(-1, 0, 0), Current: true,
	}
	exp, err := add.Execute(ctx, actor, candidateID, in)
	require.NoError(t, err)

	p, err := entity.NewProfile(candidateID, entity.PersonalData{})
	require.NoError(t, err)
	require.NoError(t, r.profiles.Save(ctx, p))
	require.NoError(t, r.profiles.MarkCompleted(ctx, candidateID, time.Now()))

	_, err = add.Execute(ctx, actor, candidateID, in)
	assert.True(t, apperror.IsLocked(err))

	err = profile.NewRemoveWorkExperienceUseCase(r.experience, r.locks).Execute(ctx, actor, candidateID, exp.ID)
	assert.True(t, apperror.IsLocked(err))

	snapshot, err := profile.NewGetProfileUseCase(profile.NewAggregator(r.profiles, r.academic, r.experience, r.availability)).
		Execute(ctx, actor, candidateID)
	require.NoError(t, err)
	assert.Len(t, snapshot.Experiences, 1)
}

func TestGetProfile_MissingProfileIsEmpty(t *testing.T) {
	r := newRepos()
	candidateID := uuid.New()
	uc := profile.NewGetProfileUseCase(profile.NewAggregator(r.profiles, r.academic, r.experience, r.availability))

	snapshot, err := uc.Execute(context.Background(), vo.Actor{UserID: candidateID, Role: vo.RoleCandidate}, candidateID)
	require.NoError(t, err)
	assert.Nil(t, snapshot.Profile)
	assert.False(t, snapshot.Completeness().IsProfileComplete())

	_, err = uc.Execute(context.Background(), vo.Actor{UserID: uuid.New(), Role: vo.RoleCandidate}, candidateID)
	assert.True(t, apperror.IsForbidden(err))
}
