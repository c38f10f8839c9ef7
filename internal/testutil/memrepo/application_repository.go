package memrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

type pairKey struct {
	candidateID   uuid.UUID
	specialtyCode string
}

// ApplicationRepository соблюдает уникальность пары (кандидат, специальность)
// так же, как ограничение UNIQUE в базе.
type ApplicationRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]entity.Application
	byPair map[pairKey]uuid.UUID
}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{
		byID:   make(map[uuid.UUID]entity.Application),
		byPair: make(map[pairKey]uuid.UUID),
	}
}

func (r *ApplicationRepository) Create(_ context.Context, application *entity.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey{candidateID: application.CandidateID, specialtyCode: application.SpecialtyCode}
	if _, exists := r.byPair[key]; exists {
		return apperror.ErrDuplicateApplication
	}
	r.byPair[key] = application.ID
	r.byID[application.ID] = *application
	return nil
}

func (r *ApplicationRepository) Update(_ context.Context, application *entity.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[application.ID]; !ok {
		return apperror.ErrApplicationNotFound
	}
	r.byID[application.ID] = *application
	return nil
}

func (r *ApplicationRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, apperror.ErrApplicationNotFound
	}
	return &a, nil
}

func (r *ApplicationRepository) FindByCandidateID(_ context.Context, candidateID uuid.UUID) ([]*entity.Application, error) {
	return r.filter(func(a entity.Application) bool { return a.CandidateID == candidateID }), nil
}

func (r *ApplicationRepository) FindBySpecialtyCode(_ context.Context, specialtyCode string) ([]*entity.Application, error) {
	return r.filter(func(a entity.Application) bool { return a.SpecialtyCode == specialtyCode }), nil
}

func (r *ApplicationRepository) FindByCandidateAndSpecialty(ctx context.Context, candidateID uuid.UUID, specialtyCode string) (*entity.Application, error) {
	r.mu.RLock()
	id, ok := r.byPair[pairKey{candidateID: candidateID, specialtyCode: specialtyCode}]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return r.FindByID(ctx, id)
}

// Count - число всех сохранённых заявок.
func (r *ApplicationRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

func (r *ApplicationRepository) filter(match func(entity.Application) bool) []*entity.Application {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*entity.Application{}
	for _, a := range r.byID {
		if match(a) {
			a := a
			out = append(out, &a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.Before(out[j].SubmittedAt) })
	return out
}
