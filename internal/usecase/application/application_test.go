package application_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/recruitment-backend/internal/domain/event"
	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
	"github.com/ignatzorin/recruitment-backend/internal/testutil/memrepo"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/application"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []event.ApplicationEvent
}

func (p *recordingPublisher) Publish(_ context.Context, e event.ApplicationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

func strPtr(s string) *string { return &s }

var eduDirector = vo.Actor{UserID: uuid.New(), Role: vo.RoleDirector, SpecialtyCode: "EDU-101"}

func createEDU(t *testing.T, repo *memrepo.ApplicationRepository, pub event.Publisher) uuid.UUID {
	t.Helper()
	uc := application.NewCreateApplicationUseCase(repo, pub)
	app, err := uc.Execute(context.Background(), application.CreateApplicationInput{
		CandidateID:   uuid.New(),
		FacultyCode:   "EDU",
		SpecialtyCode: "EDU-101",
	})
	require.NoError(t, err)
	return app.ID
}

func TestCreateApplication_Duplicate(t *testing.T) {
	repo := memrepo.NewApplicationRepository()
	pub := &recordingPublisher{}
	uc := application.NewCreateApplicationUseCase(repo, pub)
	input := application.CreateApplicationInput{CandidateID: uuid.New(), FacultyCode: "EDU", SpecialtyCode: "EDU-101"}

	app, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, vo.ApplicationStatusPending, app.Status)

	_, err = uc.Execute(context.Background(), input)
	assert.True(t, apperror.IsDuplicateApplication(err))
	assert.Equal(t, 1, repo.Count())
	assert.Equal(t, 1, pub.count())
}

func TestCreateApplication_ConcurrentCreatesAtMostOne(t *testing.T) {
	repo := memrepo.NewApplicationRepository()
	uc := application.NewCreateApplicationUseCase(repo, nil)
	input := application.CreateApplicationInput{CandidateID: uuid.New(), FacultyCode: "EDU", SpecialtyCode: "EDU-101"}

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), input)
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			assert.True(t, apperror.IsDuplicateApplication(err))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, repo.Count())
}

func TestEvaluateApplication(t *testing.T) {
	repo := memrepo.NewApplicationRepository()
	pub := &recordingPublisher{}
	appID := createEDU(t, repo, pub)
	uc := application.NewEvaluateApplicationUseCase(repo, pub)
	ctx := context.Background()

	_, err := uc.Execute(ctx, eduDirector, application.EvaluateApplicationInput{
		ApplicationID: appID, NewStatus: "APPROVED", InterviewMessage: strPtr(""),
	})
	assert.True(t, apperror.IsValidation(err))

	app, err := uc.Execute(ctx, eduDirector, application.EvaluateApplicationInput{
		ApplicationID: appID, NewStatus: "APPROVED", InterviewMessage: strPtr("Interview at 3pm"),
	})
	require.NoError(t, err)
	assert.Equal(t, vo.ApplicationStatusApproved, app.Status)

	stored, err := repo.FindByID(ctx, appID)
	require.NoError(t, err)
	assert.Equal(t, "Interview at 3pm", *stored.InterviewMessage)
	assert.Equal(t, 2, pub.count())
}

func TestEvaluateApplication_OtherSpecialtyDirector(t *testing.T) {
	repo := memrepo.NewApplicationRepository()
	appID := createEDU(t, repo, nil)
	uc := application.NewEvaluateApplicationUseCase(repo, nil)

	mathDirector := vo.Actor{UserID: uuid.New(), Role: vo.RoleDirector, SpecialtyCode: "MATH-204"}
	_, err := uc.Execute(context.Background(), mathDirector, application.EvaluateApplicationInput{
		ApplicationID: appID, NewStatus: "REJECTED",
	})
	assert.True(t, apperror.IsForbidden(err))

	stored, err := repo.FindByID(context.Background(), appID)
	require.NoError(t, err)
	assert.Equal(t, vo.ApplicationStatusPending, stored.Status)
}

func TestEvaluateApplication_EvaluatorMismatch(t *testing.T) {
	repo := memrepo.NewApplicationRepository()
	appID := createEDU(t, repo, nil)
	uc := application.NewEvaluateApplicationUseCase(repo, nil)

	_, err := uc.Execute(context.Background(), eduDirector, application.EvaluateApplicationInput{
		ApplicationID: appID, NewStatus: "REVIEWING", EvaluatorID: uuid.New(),
	})
	assert.True(t, apperror.IsForbidden(err))

	_, err = uc.Execute(context.Background(), eduDirector, application.EvaluateApplicationInput{
		ApplicationID: uuid.New(), NewStatus: "REVIEWING",
	})
	assert.True(t, apperror.IsNotFound(err))
}

func TestListApplications(t *testing.T) {
	repo := memrepo.NewApplicationRepository()
	create := application.NewCreateApplicationUseCase(repo, nil)
	ctx := context.Background()
	candidateID := uuid.New()

	for _, code := range []string{"EDU-101", "MATH-204"} {
		_, err := create.Execute(ctx, application.CreateApplicationInput{CandidateID: candidateID, FacultyCode: "F", SpecialtyCode: code})
		require.NoError(t, err)
	}

	list := application.NewListApplicationsUseCase(repo)

	apps, err := list.ByCandidate(ctx, vo.Actor{UserID: candidateID, Role: vo.RoleCandidate}, candidateID)
	require.NoError(t, err)
	assert.Len(t, apps, 2)

	apps, err = list.ByCandidate(ctx, eduDirector, candidateID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "EDU-101", apps[0].SpecialtyCode)

	_, err = list.ByCandidate(ctx, vo.Actor{UserID: uuid.New(), Role: vo.RoleCandidate}, candidateID)
	assert.True(t, apperror.IsForbidden(err))

	_, err = list.BySpecialty(ctx, eduDirector, "MATH-204")
	assert.True(t, apperror.IsForbidden(err))

	get := application.NewGetApplicationUseCase(repo)
	_, err = get.Execute(ctx, vo.Actor{UserID: uuid.New(), Role: vo.RoleCandidate}, apps[0].ID)
	assert.True(t, apperror.IsForbidden(err))
}
