package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	"github.com/ignatzorin/recruitment-backend/internal/domain/policy"
	"github.com/ignatzorin/recruitment-backend/internal/domain/repository"
	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/lockstate"
)

type SavePersonalDataUseCase struct {
	profileRepo repository.ProfileRepository
	locks       *lockstate.Loader
}

func NewSavePersonalDataUseCase(profileRepo repository.ProfileRepository, locks *lockstate.Loader) *SavePersonalDataUseCase {
	return &SavePersonalDataUseCase{profileRepo: profileRepo, locks: locks}
}

// Execute создаёт профиль при первом сохранении или обновляет личные данные.
func (uc *SavePersonalDataUseCase) Execute(ctx context.Context, actor vo.Actor, candidateID uuid.UUID, data entity.PersonalData) (*entity.Profile, error) {
	if !actor.CanActFor(candidateID) {
		return nil, apperror.ErrForbidden
	}

	lock, err := uc.locks.Load(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if err := lock.Check(policy.Mutation{Section: policy.SectionPersonalData, Operation: policy.OperationWrite}); err != nil {
		return nil, err
	}

	p, err := uc.profileRepo.FindByCandidateID(ctx, candidateID)
	switch {
	case err == nil:
		if err := p.UpdatePersonalData(data); err != nil {
			return nil, err
		}
	case apperror.IsNotFound(err):
		if p, err = entity.NewProfile(candidateID, data); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := uc.profileRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
