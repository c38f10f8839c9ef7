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

var academicWrite = policy.Mutation{Section: policy.SectionAcademic, Operation: policy.OperationWrite}

type AddAcademicRecordUseCase struct {
	academicRepo repository.AcademicRecordRepository
	locks        *lockstate.Loader
}

func NewAddAcademicRecordUseCase(academicRepo repository.AcademicRecordRepository, locks *lockstate.Loader) *AddAcademicRecordUseCase {
	return &AddAcademicRecordUseCase{academicRepo: academicRepo, locks: locks}
}

func (uc *AddAcademicRecordUseCase) Execute(ctx context.Context, actor vo.Actor, candidateID uuid.UUID, input entity.AcademicRecordInput) (*entity.AcademicRecord, error) {
	if !actor.CanActFor(candidateID) {
		return nil, apperror.ErrForbidden
	}

	record, err := entity.NewAcademicRecord(candidateID, input)
	if err != nil {
		return nil, err
	}

	lock, err := uc.locks.Load(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if err := lock.Check(academicWrite); err != nil {
		return nil, err
	}

	if err := uc.academicRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

type RemoveAcademicRecordUseCase struct {
	academicRepo repository.AcademicRecordRepository
	locks        *lockstate.Loader
}

func NewRemoveAcademicRecordUseCase(academicRepo repository.AcademicRecordRepository, locks *lockstate.Loader) *RemoveAcademicRecordUseCase {
	return &RemoveAcademicRecordUseCase{academicRepo: academicRepo, locks: locks}
}

func (uc *RemoveAcademicRecordUseCase) Execute(ctx context.Context, actor vo.Actor, candidateID, recordID uuid.UUID) error {
	if !actor.CanActFor(candidateID) {
		return apperror.ErrForbidden
	}

	lock, err := uc.locks.Load(ctx, candidateID)
	if err != nil {
		return err
	}
	if err := lock.Check(academicWrite); err != nil {
		return err
	}

	return uc.academicRepo.Delete(ctx, candidateID, recordID)
}
