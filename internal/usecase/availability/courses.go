package availability

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	"github.com/ignatzorin/recruitment-backend/internal/domain/policy"
	"github.com/ignatzorin/recruitment-backend/internal/domain/repository"
	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/logger"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/lockstate"
)

type CourseChange int

const (
	CourseToggle CourseChange = iota
	CourseSelect
	CourseDeselect
)

type ChangeCourseInput struct {
	CandidateID uuid.UUID
	CourseID    uuid.UUID
	Change      CourseChange
}

type ChangeCourseResult struct {
	Course   *entity.Course
	Selected bool
}

type ChangeCourseUseCase struct {
	availabilityRepo repository.AvailabilityRepository
	catalog          repository.CourseCatalog
	locks            *lockstate.Loader
}

func NewChangeCourseUseCase(availabilityRepo repository.AvailabilityRepository, catalog repository.CourseCatalog, locks *lockstate.Loader) *ChangeCourseUseCase {
	return &ChangeCourseUseCase{availabilityRepo: availabilityRepo, catalog: catalog, locks: locks}
}

func (uc *ChangeCourseUseCase) Execute(ctx context.Context, actor vo.Actor, input ChangeCourseInput) (*ChangeCourseResult, error) {
	if !actor.CanActFor(input.CandidateID) {
		return nil, apperror.ErrForbidden
	}

	course, err := uc.catalog.FindCourse(ctx, input.CourseID)
	if err != nil {
		return nil, err
	}

	selection, err := uc.availabilityRepo.FindSelection(ctx, input.CandidateID)
	if err != nil {
		return nil, err
	}

	wasSelected := selection.Contains(course.ID)
	var selected bool
	switch input.Change {
	case CourseSelect:
		selected = true
	case CourseDeselect:
		selected = false
	default:
		selected = selection.Toggle(course.ID)
	}

	if selected == wasSelected {
		return &ChangeCourseResult{Course: course, Selected: selected}, nil
	}

	op := policy.OperationRemoveCourse
	if selected {
		op = policy.OperationAddCourse
	}
	lock, err := uc.locks.Load(ctx, input.CandidateID)
	if err != nil {
		return nil, err
	}
	if err := lock.Check(policy.Mutation{Section: policy.SectionCourses, Operation: op, Specialty: course.Specialty()}); err != nil {
		return nil, err
	}

	if selected {
		err = uc.availabilityRepo.AddCourse(ctx, input.CandidateID, course.ID)
	} else {
		err = uc.availabilityRepo.RemoveCourse(ctx, input.CandidateID, course.ID)
	}
	if err != nil {
		return nil, err
	}

	logger.ForCandidate(input.CandidateID).WithFields(logrus.Fields{
		"course_id": course.ID,
		"selected":  selected,
	}).Debug("availability: выбор курса изменён")

	return &ChangeCourseResult{Course: course, Selected: selected}, nil
}

type ListCoursesUseCase struct {
	availabilityRepo repository.AvailabilityRepository
	catalog          repository.CourseCatalog
}

func NewListCoursesUseCase(availabilityRepo repository.AvailabilityRepository, catalog repository.CourseCatalog) *ListCoursesUseCase {
	return &ListCoursesUseCase{availabilityRepo: availabilityRepo, catalog: catalog}
}

// Execute возвращает выбранные курсы с данными каталога.
func (uc *ListCoursesUseCase) Execute(ctx context.Context, actor vo.Actor, candidateID uuid.UUID) ([]entity.Course, error) {
	if !actor.CanViewCandidate(candidateID) {
		return nil, apperror.ErrForbidden
	}
	return SelectedCourses(ctx, uc.availabilityRepo, uc.catalog, candidateID)
}

// Specialties возвращает группировку выбранных курсов по специальностям.
func (uc *ListCoursesUseCase) Specialties(ctx context.Context, actor vo.Actor, candidateID uuid.UUID) ([]entity.SpecialtyGroup, error) {
	courses, err := uc.Execute(ctx, actor, candidateID)
	if err != nil {
		return nil, err
	}

	groups := entity.GroupBySpecialty(courses)
	result := make([]entity.SpecialtyGroup, 0, len(groups))
	for _, g := range groups {
		result = append(result, g)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key.String() < result[j].Key.String() })
	return result, nil
}

// SelectedCourses разворачивает выбор кандидата в курсы каталога.
func SelectedCourses(ctx context.Context, availabilityRepo repository.AvailabilityRepository, catalog repository.CourseCatalog, candidateID uuid.UUID) ([]entity.Course, error) {
	selection, err := availabilityRepo.FindSelection(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if selection.Len() == 0 {
		return []entity.Course{}, nil
	}
	return catalog.FindCourses(ctx, selection.IDs())
}
