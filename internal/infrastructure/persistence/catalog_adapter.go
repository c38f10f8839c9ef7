package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

// CatalogAdapter читает справочник курсов. Факультет курса берётся из специальности.
type CatalogAdapter struct {
	db *sqlx.DB
}

func NewCatalogAdapter(db *sqlx.DB) *CatalogAdapter {
	return &CatalogAdapter{db: db}
}

const courseSelect = `SELECT c.id, c.code, c.name, s.faculty_code, c.specialty_code, c.cycle, c.modality
	FROM courses c JOIN specialties s ON s.code = c.specialty_code`

func (r *CatalogAdapter) FindCourse(ctx context.Context, courseID uuid.UUID) (*entity.Course, error) {
	var row courseRow
	if err := r.db.GetContext(ctx, &row, courseSelect+` WHERE c.id = $1`, courseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrCourseNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить курс")
	}
	course := row.toEntity()
	return &course, nil
}

// FindCourses возвращает найденные курсы; отсутствующие в каталоге идентификаторы пропускаются.
func (r *CatalogAdapter) FindCourses(ctx context.Context, courseIDs []uuid.UUID) ([]entity.Course, error) {
	if len(courseIDs) == 0 {
		return []entity.Course{}, nil
	}

	ids := make([]string, len(courseIDs))
	for i, id := range courseIDs {
		ids[i] = id.String()
	}

	var rows []courseRow
	query := courseSelect + ` WHERE c.id = ANY($1::uuid[]) ORDER BY c.code`
	if err := r.db.SelectContext(ctx, &rows, query, pq.StringArray(ids)); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить курсы")
	}
	result := make([]entity.Course, len(rows))
	for i, row := range rows {
		result[i] = row.toEntity()
	}
	return result, nil
}

type courseRow struct {
	ID            uuid.UUID `db:"id"`
	Code          string    `db:"code"`
	Name          string    `db:"name"`
	FacultyCode   string    `db:"faculty_code"`
	SpecialtyCode string    `db:"specialty_code"`
	Cycle         string    `db:"cycle"`
	Modality      string    `db:"modality"`
}

func (c *courseRow) toEntity() entity.Course {
	return entity.Course{
		ID:            c.ID,
		Code:          c.Code,
		Name:          c.Name,
		FacultyCode:   c.FacultyCode,
		SpecialtyCode: c.SpecialtyCode,
		Cycle:         c.Cycle,
		Modality:      c.Modality,
	}
}
