package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

type GetProfileUseCase struct {
	aggregator *Aggregator
}

func NewGetProfileUseCase(aggregator *Aggregator) *GetProfileUseCase {
	return &GetProfileUseCase{aggregator: aggregator}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, actor vo.Actor, candidateID uuid.UUID) (*entity.ProfileSnapshot, error) {
	if !actor.CanViewCandidate(candidateID) {
		return nil, apperror.ErrForbidden
	}
	return uc.aggregator.Snapshot(ctx, candidateID)
}

type GetCompletenessUseCase struct {
	aggregator *Aggregator
}

func NewGetCompletenessUseCase(aggregator *Aggregator) *GetCompletenessUseCase {
	return &GetCompletenessUseCase{aggregator: aggregator}
}

func (uc *GetCompletenessUseCase) Execute(ctx context.Context, actor vo.Actor, candidateID uuid.UUID) (entity.Completeness, error) {
	if !actor.CanViewCandidate(candidateID) {
		return entity.Completeness{}, apperror.ErrForbidden
	}
	return uc.aggregator.Completeness(ctx, candidateID)
}
