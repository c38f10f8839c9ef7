package entity

import (
	"sort"

	"github.com/google/uuid"
)

// CourseSelection - множество курсов, выбранных кандидатом.
type CourseSelection struct {
	CandidateID uuid.UUID
	courses     map[uuid.UUID]struct{}
}

func NewCourseSelection(candidateID uuid.UUID, courseIDs ...uuid.UUID) *CourseSelection {
	s := &CourseSelection{CandidateID: candidateID, courses: make(map[uuid.UUID]struct{}, len(courseIDs))}
	for _, id := range courseIDs {
		s.courses[id] = struct{}{}
	}
	return s
}

// Toggle добавляет курс или убирает его, если он уже выбран. Возвращает true при добавлении.
func (s *CourseSelection) Toggle(courseID uuid.UUID) bool {
	if s.Contains(courseID) {
		delete(s.courses, courseID)
		return false
	}
	s.courses[courseID] = struct{}{}
	return true
}

func (s *CourseSelection) Contains(courseID uuid.UUID) bool {
	if s == nil {
		return false
	}
	_, ok := s.courses[courseID]
	return ok
}

func (s *CourseSelection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.courses)
}

// IDs возвращает выбранные курсы в стабильном порядке.
func (s *CourseSelection) IDs() []uuid.UUID {
	if s == nil {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(s.courses))
	for id := range s.courses {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}
