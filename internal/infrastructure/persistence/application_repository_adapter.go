package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/recruitment-backend/internal/db"
	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

type ApplicationRepositoryAdapter struct {
	db *sqlx.DB
}

func NewApplicationRepositoryAdapter(db *sqlx.DB) *ApplicationRepositoryAdapter {
	return &ApplicationRepositoryAdapter{db: db}
}

const applicationColumns = `id, candidate_id, faculty_code, specialty_code, status, submitted_at,
	evaluator_id, interview_message, evaluated_at, updated_at`

// Create полагается на UNIQUE (candidate_id, specialty_code): из двух
// конкурирующих вставок одна получает ErrDuplicateApplication.
func (r *ApplicationRepositoryAdapter) Create(ctx context.Context, app *entity.Application) error {
	query := `INSERT INTO applications (` + applicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query, app.ID, app.CandidateID, app.FacultyCode, app.SpecialtyCode,
		string(app.Status), app.SubmittedAt, app.EvaluatorID, app.InterviewMessage, app.EvaluatedAt, app.UpdatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return apperror.ErrDuplicateApplication
		}
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать заявку")
	}
	return nil
}

func (r *ApplicationRepositoryAdapter) Update(ctx context.Context, app *entity.Application) error {
	query := `UPDATE applications
		SET status = $2, evaluator_id = $3, interview_message = $4, evaluated_at = $5, updated_at = $6
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, app.ID, string(app.Status), app.EvaluatorID, app.InterviewMessage,
		app.EvaluatedAt, app.UpdatedAt)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось обновить заявку")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	var row applicationRow
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrApplicationNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить заявку")
	}
	return row.toEntity(), nil
}

func (r *ApplicationRepositoryAdapter) FindByCandidateID(ctx context.Context, candidateID uuid.UUID) ([]*entity.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE candidate_id = $1 ORDER BY submitted_at`
	return r.selectMany(ctx, query, candidateID)
}

func (r *ApplicationRepositoryAdapter) FindBySpecialtyCode(ctx context.Context, specialtyCode string) ([]*entity.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE specialty_code = $1 ORDER BY submitted_at`
	return r.selectMany(ctx, query, specialtyCode)
}

func (r *ApplicationRepositoryAdapter) FindByCandidateAndSpecialty(ctx context.Context, candidateID uuid.UUID, specialtyCode string) (*entity.Application, error) {
	var row applicationRow
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE candidate_id = $1 AND specialty_code = $2`
	if err := r.db.GetContext(ctx, &row, query, candidateID, specialtyCode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить заявку")
	}
	return row.toEntity(), nil
}

func (r *ApplicationRepositoryAdapter) selectMany(ctx context.Context, query string, args ...interface{}) ([]*entity.Application, error) {
	var rows []applicationRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить заявки")
	}
	result := make([]*entity.Application, len(rows))
	for i := range rows {
		result[i] = rows[i].toEntity()
	}
	return result, nil
}

type applicationRow struct {
	ID               uuid.UUID      `db:"id"`
	CandidateID      uuid.UUID      `db:"candidate_id"`
	FacultyCode      string         `db:"faculty_code"`
	SpecialtyCode    string         `db:"specialty_code"`
	Status           string         `db:"status"`
	SubmittedAt      time.Time      `db:"submitted_at"`
	EvaluatorID      uuid.NullUUID  `db:"evaluator_id"`
	InterviewMessage sql.NullString `db:"interview_message"`
	EvaluatedAt      sql.NullTime   `db:"evaluated_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

func (a *applicationRow) toEntity() *entity.Application {
	app := &entity.Application{
		ID:               a.ID,
		CandidateID:      a.CandidateID,
		FacultyCode:      a.FacultyCode,
		SpecialtyCode:    a.SpecialtyCode,
		Status:           vo.ApplicationStatus(a.Status),
		SubmittedAt:      a.SubmittedAt,
		InterviewMessage: nullStringPtr(a.InterviewMessage),
		EvaluatedAt:      nullTimePtr(a.EvaluatedAt),
		UpdatedAt:        a.UpdatedAt,
	}
	if a.EvaluatorID.Valid {
		id := a.EvaluatorID.UUID
		app.EvaluatorID = &id
	}
	return app
}
