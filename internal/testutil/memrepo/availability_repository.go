package memrepo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

type AvailabilityRepository struct {
	mu         sync.RWMutex
	schedules  map[uuid.UUID]entity.WeeklyAvailability
	selections map[uuid.UUID]map[uuid.UUID]struct{}
}

func NewAvailabilityRepository() *AvailabilityRepository {
	return &AvailabilityRepository{
		schedules:  make(map[uuid.UUID]entity.WeeklyAvailability),
		selections: make(map[uuid.UUID]map[uuid.UUID]struct{}),
	}
}

func (r *AvailabilityRepository) FindSchedule(_ context.Context, candidateID uuid.UUID) (*entity.WeeklyAvailability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.schedules[candidateID]
	if !ok {
		return entity.NewWeeklyAvailability(candidateID), nil
	}
	return &w, nil
}

// ReplaceSchedule хранит только заполненные дни, незаполненные теряются.
func (r *AvailabilityRepository) ReplaceSchedule(_ context.Context, availability *entity.WeeklyAvailability) error {
	stored := entity.NewWeeklyAvailability(availability.CandidateID)
	for slot := range availability.CompleteDays() {
		start, end := slot.Range.Start, slot.Range.End
		if err := stored.SetDay(slot.Day, true, &start, &end); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.schedules[availability.CandidateID] = *stored
	return nil
}

func (r *AvailabilityRepository) FindSelection(_ context.Context, candidateID uuid.UUID) (*entity.CourseSelection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]uuid.UUID, 0, len(r.selections[candidateID]))
	for id := range r.selections[candidateID] {
		ids = append(ids, id)
	}
	return entity.NewCourseSelection(candidateID, ids...), nil
}

func (r *AvailabilityRepository) AddCourse(_ context.Context, candidateID, courseID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.selections[candidateID] == nil {
		r.selections[candidateID] = make(map[uuid.UUID]struct{})
	}
	r.selections[candidateID][courseID] = struct{}{}
	return nil
}

func (r *AvailabilityRepository) RemoveCourse(_ context.Context, candidateID, courseID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.selections[candidateID], courseID)
	return nil
}

// Catalog - статический справочник курсов.
type Catalog struct {
	courses map[uuid.UUID]entity.Course
}

func NewCatalog(courses ...entity.Course) *Catalog {
	c := &Catalog{courses: make(map[uuid.UUID]entity.Course, len(courses))}
	for _, course := range courses {
		c.courses[course.ID] = course
	}
	return c
}

func (c *Catalog) FindCourse(_ context.Context, courseID uuid.UUID) (*entity.Course, error) {
	course, ok := c.courses[courseID]
	if !ok {
		return nil, apperror.ErrCourseNotFound
	}
	return &course, nil
}

// FindCourses пропускает неизвестные идентификаторы, как запрос с ANY в Postgres.
func (c *Catalog) FindCourses(_ context.Context, courseIDs []uuid.UUID) ([]entity.Course, error) {
	out := make([]entity.Course, 0, len(courseIDs))
	for _, id := range courseIDs {
		if course, ok := c.courses[id]; ok {
			out = append(out, course)
		}
	}
	return out, nil
}
