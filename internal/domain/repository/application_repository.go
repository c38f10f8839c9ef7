package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
)

type ApplicationRepository interface {
	// Create возвращает ErrDuplicateApplication при нарушении уникальности (кандидат, специальность).
	Create(ctx context.Context, application *entity.Application) error
	Update(ctx context.Context, application *entity.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Application, error)
	FindByCandidateID(ctx context.Context, candidateID uuid.UUID) ([]*entity.Application, error)
	FindBySpecialtyCode(ctx context.Context, specialtyCode string) ([]*entity.Application, error)
	FindByCandidateAndSpecialty(ctx context.Context, candidateID uuid.UUID, specialtyCode string) (*entity.Application, error)
}
