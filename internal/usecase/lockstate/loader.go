package lockstate

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/recruitment-backend/internal/domain/policy"
	"github.com/ignatzorin/recruitment-backend/internal/domain/repository"
	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

// Loader собирает политику блокировки кандидата из профиля и его заявок.
type Loader struct {
	profileRepo     repository.ProfileRepository
	applicationRepo repository.ApplicationRepository
}

func NewLoader(profileRepo repository.ProfileRepository, applicationRepo repository.ApplicationRepository) *Loader {
	return &Loader{profileRepo: profileRepo, applicationRepo: applicationRepo}
}

func (l *Loader) Load(ctx context.Context, candidateID uuid.UUID) (policy.LockPolicy, error) {
	completed := false
	profile, err := l.profileRepo.FindByCandidateID(ctx, candidateID)
	switch {
	case err == nil:
		completed = profile.Completed
	case apperror.IsNotFound(err):
		// Профиль ещё не создан - всё открыто.
	default:
		return policy.LockPolicy{}, err
	}

	apps, err := l.applicationRepo.FindByCandidateID(ctx, candidateID)
	if err != nil {
		return policy.LockPolicy{}, err
	}

	covered := vo.NewSpecialtySet()
	for _, a := range apps {
		covered.Add(a.Specialty())
	}
	return policy.NewLockPolicy(completed, covered), nil
}
