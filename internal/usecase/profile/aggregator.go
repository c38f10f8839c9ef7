package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	"github.com/ignatzorin/recruitment-backend/internal/domain/repository"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

// Aggregator собирает все разделы профиля и вычисляет их заполненность.
type Aggregator struct {
	profileRepo      repository.ProfileRepository
	academicRepo     repository.AcademicRecordRepository
	experienceRepo   repository.WorkExperienceRepository
	availabilityRepo repository.AvailabilityRepository
}

func NewAggregator(
	profileRepo repository.ProfileRepository,
	academicRepo repository.AcademicRecordRepository,
	experienceRepo repository.WorkExperienceRepository,
	availabilityRepo repository.AvailabilityRepository,
) *Aggregator {
	return &Aggregator{
		profileRepo:      profileRepo,
		academicRepo:     academicRepo,
		experienceRepo:   experienceRepo,
		availabilityRepo: availabilityRepo,
	}
}

// Snapshot читает все разделы. Отсутствующий профиль даёт пустой снимок, а не ошибку.
func (a *Aggregator) Snapshot(ctx context.Context, candidateID uuid.UUID) (*entity.ProfileSnapshot, error) {
	snapshot := &entity.ProfileSnapshot{}

	p, err := a.profileRepo.FindByCandidateID(ctx, candidateID)
	if err != nil && !apperror.IsNotFound(err) {
		return nil, err
	}
	snapshot.Profile = p

	if snapshot.AcademicRecords, err = a.academicRepo.FindByCandidateID(ctx, candidateID); err != nil {
		return nil, err
	}
	if snapshot.Experiences, err = a.experienceRepo.FindByCandidateID(ctx, candidateID); err != nil {
		return nil, err
	}
	if snapshot.Availability, err = a.availabilityRepo.FindSchedule(ctx, candidateID); err != nil {
		return nil, err
	}
	if snapshot.Selection, err = a.availabilityRepo.FindSelection(ctx, candidateID); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (a *Aggregator) Completeness(ctx context.Context, candidateID uuid.UUID) (entity.Completeness, error) {
	snapshot, err := a.Snapshot(ctx, candidateID)
	if err != nil {
		return entity.Completeness{}, err
	}
	return snapshot.Completeness(), nil
}
