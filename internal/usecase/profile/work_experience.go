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

var experienceWrite = policy.Mutation{Section: policy.SectionExperience, Operation: policy.OperationWrite}

type AddWorkExperienceUseCase struct {
	experienceRepo repository.WorkExperienceRepository
	locks          *lockstate.Loader
}

func NewAddWorkExperienceUseCase(experienceRepo repository.WorkExperienceRepository, locks *lockstate.Loader) *AddWorkExperienceUseCase {
	return &AddWorkExperienceUseCase{experienceRepo: experienceRepo, locks: locks}
}

func (uc *AddWorkExperienceUseCase) Execute(ctx context.Context, actor vo.Actor, candidateID uuid.UUID, input entity.WorkExperienceInput) (*entity.WorkExperience, error) {
	if !actor.CanActFor(candidateID) {
		return nil, apperror.ErrForbidden
	}

	experience, err := entity.NewWorkExperience(candidateID, input)
	if err != nil {
		return nil, err
	}

	lock, err := uc.locks.Load(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if err := lock.Check(experienceWrite); err != nil {
		return nil, err
	}

	if err := uc.experienceRepo.Create(ctx, experience); err != nil {
		return nil, err
	}
	return experience, nil
}

type RemoveWorkExperienceUseCase struct {
	experienceRepo repository.WorkExperienceRepository
	locks          *lockstate.Loader
}

func NewRemoveWorkExperienceUseCase(experienceRepo repository.WorkExperienceRepository, locks *lockstate.Loader) *RemoveWorkExperienceUseCase {
	return &RemoveWorkExperienceUseCase{experienceRepo: experienceRepo, locks: locks}
}

func (uc *RemoveWorkExperienceUseCase) Execute(ctx context.Context, actor vo.Actor, candidateID, experienceID uuid.UUID) error {
	if !actor.CanActFor(candidateID) {
		return apperror.ErrForbidden
	}

	lock, err := uc.locks.Load(ctx, candidateID)
	if err != nil {
		return err
	}
	if err := lock.Check(experienceWrite); err != nil {
		return err
	}

	return uc.experienceRepo.Delete(ctx, candidateID, experienceID)
}
