package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
)

type AvailabilityRepository interface {
	FindSchedule(ctx context.Context, candidateID uuid.UUID) (*entity.WeeklyAvailability, error)
	// ReplaceSchedule атомарно заменяет сохранённые дни на заполненные дни расписания.
	ReplaceSchedule(ctx context.Context, availability *entity.WeeklyAvailability) error
	FindSelection(ctx context.Context, candidateID uuid.UUID) (*entity.CourseSelection, error)
	AddCourse(ctx context.Context, candidateID, courseID uuid.UUID) error
	RemoveCourse(ctx context.Context, candidateID, courseID uuid.UUID) error
}

// CourseCatalog - внешний справочник факультетов, специальностей и курсов (только чтение).
type CourseCatalog interface {
	FindCourse(ctx context.Context, courseID uuid.UUID) (*entity.Course, error)
	FindCourses(ctx context.Context, courseIDs []uuid.UUID) ([]entity.Course, error)
}
