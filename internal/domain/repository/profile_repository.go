package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
)

type ProfileRepository interface {
	FindByCandidateID(ctx context.Context, candidateID uuid.UUID) (*entity.Profile, error)
	Save(ctx context.Context, profile *entity.Profile) error
	MarkCompleted(ctx context.Context, candidateID uuid.UUID, at time.Time) error
}

type AcademicRecordRepository interface {
	Create(ctx context.Context, record *entity.AcademicRecord) error
	Delete(ctx context.Context, candidateID, recordID uuid.UUID) error
	FindByCandidateID(ctx context.Context, candidateID uuid.UUID) ([]entity.AcademicRecord, error)
}

type WorkExperienceRepository interface {
	Create(ctx context.Context, experience *entity.WorkExperience) error
	Delete(ctx context.Context, candidateID, experienceID uuid.UUID) error
	FindByCandidateID(ctx context.Context, candidateID uuid.UUID) ([]entity.WorkExperience, error)
}
