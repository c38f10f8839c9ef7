package availability

import (
	"context"

	"github.com/google/uuid"

	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/lockstate"
)

type Status struct {
	Completed          bool
	CanModify          bool
	CoveredSpecialties []vo.SpecialtyKey
}

type GetStatusUseCase struct {
	locks *lockstate.Loader
}

func NewGetStatusUseCase(locks *lockstate.Loader) *GetStatusUseCase {
	return &GetStatusUseCase{locks: locks}
}

func (uc *GetStatusUseCase) Execute(ctx context.Context, actor vo.Actor, candidateID uuid.UUID) (*Status, error) {
	if !actor.CanViewCandidate(candidateID) {
		return nil, apperror.ErrForbidden
	}

	lock, err := uc.locks.Load(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	return &Status{
		Completed:          !lock.CanModifyProfile(),
		CanModify:          lock.CanModifyProfile(),
		CoveredSpecialties: lock.CoveredSpecialties(),
	}, nil
}
