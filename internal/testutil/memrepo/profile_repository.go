// Package memrepo - тестовые хранилища в памяти с той же семантикой, что и адаптеры Postgres.
// Используются только в тестах use case и HTTP слоя.
package memrepo

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

type ProfileRepository struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]entity.Profile
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{profiles: make(map[uuid.UUID]entity.Profile)}
}

func (r *ProfileRepository) FindByCandidateID(_ context.Context, candidateID uuid.UUID) (*entity.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[candidateID]
	if !ok {
		return nil, apperror.ErrProfileNotFound
	}
	return &p, nil
}

// Save не меняет флаг подачи, как и upsert в Postgres.
func (r *ProfileRepository) Save(_ context.Context, profile *entity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := *profile
	if existing, ok := r.profiles[profile.CandidateID]; ok {
		p.Completed = existing.Completed
		p.SubmittedAt = existing.SubmittedAt
		p.CreatedAt = existing.CreatedAt
	} else {
		p.Completed = false
		p.SubmittedAt = nil
	}
	r.profiles[profile.CandidateID] = p
	return nil
}

func (r *ProfileRepository) MarkCompleted(_ context.Context, candidateID uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[candidateID]
	if !ok {
		return apperror.ErrProfileNotFound
	}
	p.MarkCompleted(at)
	r.profiles[candidateID] = p
	return nil
}

type AcademicRecordRepository struct {
	mu      sync.RWMutex
	records []entity.AcademicRecord
}

func NewAcademicRecordRepository() *AcademicRecordRepository {
	return &AcademicRecordRepository{}
}

func (r *AcademicRecordRepository) Create(_ context.Context, record *entity.AcademicRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *record)
	return nil
}

func (r *AcademicRecordRepository) Delete(_ context.Context, candidateID, recordID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := slices.IndexFunc(r.records, func(rec entity.AcademicRecord) bool {
		return rec.ID == recordID && rec.CandidateID == candidateID
	})
	if idx < 0 {
		return apperror.ErrAcademicRecordNotFound
	}
	r.records = slices.Delete(r.records, idx, idx+1)
	return nil
}

func (r *AcademicRecordRepository) FindByCandidateID(_ context.Context, candidateID uuid.UUID) ([]entity.AcademicRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entity.AcademicRecord{}
	for _, rec := range r.records {
		if rec.CandidateID == candidateID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type WorkExperienceRepository struct {
	mu    sync.RWMutex
	items []entity.WorkExperience
}

func NewWorkExperienceRepository() *WorkExperienceRepository {
	return &WorkExperienceRepository{}
}

func (r *WorkExperienceRepository) Create(_ context.Context, experience *entity.WorkExperience) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *experience)
	return nil
}

func (r *WorkExperienceRepository) Delete(_ context.Context, candidateID, experienceID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := slices.IndexFunc(r.items, func(w entity.WorkExperience) bool {
		return w.ID == experienceID && w.CandidateID == candidateID
	})
	if idx < 0 {
		return apperror.ErrExperienceNotFound
	}
	r.items = slices.Delete(r.items, idx, idx+1)
	return nil
}

func (r *WorkExperienceRepository) FindByCandidateID(_ context.Context, candidateID uuid.UUID) ([]entity.WorkExperience, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entity.WorkExperience{}
	for _, w := range r.items {
		if w.CandidateID == candidateID {
			out = append(out, w)
		}
	}
	return out, nil
}
