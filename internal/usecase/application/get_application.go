package application

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	"github.com/ignatzorin/recruitment-backend/internal/domain/repository"
	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

type GetApplicationUseCase struct {
	applicationRepo repository.ApplicationRepository
}

func NewGetApplicationUseCase(applicationRepo repository.ApplicationRepository) *GetApplicationUseCase {
	return &GetApplicationUseCase{applicationRepo: applicationRepo}
}

func (uc *GetApplicationUseCase) Execute(ctx context.Context, actor vo.Actor, applicationID uuid.UUID) (*entity.Application, error) {
	app, err := uc.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !canRead(actor, app) {
		return nil, apperror.ErrForbidden
	}
	return app, nil
}

type ListApplicationsUseCase struct {
	applicationRepo repository.ApplicationRepository
}

func NewListApplicationsUseCase(applicationRepo repository.ApplicationRepository) *ListApplicationsUseCase {
	return &ListApplicationsUseCase{applicationRepo: applicationRepo}
}

// ByCandidate возвращает заявки кандидата. Директор видит только заявки своей специальности.
func (uc *ListApplicationsUseCase) ByCandidate(ctx context.Context, actor vo.Actor, candidateID uuid.UUID) ([]*entity.Application, error) {
	if !actor.CanViewCandidate(candidateID) {
		return nil, apperror.ErrForbidden
	}

	apps, err := uc.applicationRepo.FindByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	visible := make([]*entity.Application, 0, len(apps))
	for _, a := range apps {
		if canRead(actor, a) {
			visible = append(visible, a)
		}
	}
	return visible, nil
}

// BySpecialty - экран директора со списком заявок специальности.
func (uc *ListApplicationsUseCase) BySpecialty(ctx context.Context, actor vo.Actor, specialtyCode string) ([]*entity.Application, error) {
	specialtyCode = strings.TrimSpace(specialtyCode)
	if specialtyCode == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "не указана специальность")
	}
	if !actor.CanEvaluate(specialtyCode) {
		return nil, apperror.ErrForbidden
	}
	return uc.applicationRepo.FindBySpecialtyCode(ctx, specialtyCode)
}

func canRead(actor vo.Actor, app *entity.Application) bool {
	if actor.Role == vo.RoleCandidate {
		return app.IsOwnedBy(actor.UserID)
	}
	return actor.CanEvaluate(app.SpecialtyCode)
}
