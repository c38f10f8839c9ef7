package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

type AcademicRecordRepositoryAdapter struct {
	db *sqlx.DB
}

func NewAcademicRecordRepositoryAdapter(db *sqlx.DB) *AcademicRecordRepositoryAdapter {
	return &AcademicRecordRepositoryAdapter{db: db}
}

func (r *AcademicRecordRepositoryAdapter) Create(ctx context.Context, rec *entity.AcademicRecord) error {
	query := `INSERT INTO academic_records (id, candidate_id, degree_type, field, institution, country, obtained_at, document_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query, rec.ID, rec.CandidateID, rec.DegreeType, rec.Field, rec.Institution,
		rec.Country, rec.ObtainedAt, rec.DocumentRef, rec.CreatedAt)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить запись об образовании")
	}
	return nil
}

func (r *AcademicRecordRepositoryAdapter) Delete(ctx context.Context, candidateID, recordID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM academic_records WHERE id = $1 AND candidate_id = $2`, recordID, candidateID)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось удалить запись об образовании")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.ErrAcademicRecordNotFound
	}
	return nil
}

func (r *AcademicRecordRepositoryAdapter) FindByCandidateID(ctx context.Context, candidateID uuid.UUID) ([]entity.AcademicRecord, error) {
	var rows []academicRecordRow
	query := `SELECT id, candidate_id, degree_type, field, institution, country, obtained_at, document_ref, created_at
		FROM academic_records WHERE candidate_id = $1 ORDER BY created_at`
	if err := r.db.SelectContext(ctx, &rows, query, candidateID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить записи об образовании")
	}
	result := make([]entity.AcademicRecord, len(rows))
	for i, row := range rows {
		result[i] = entity.AcademicRecord{
			ID:          row.ID,
			CandidateID: row.CandidateID,
			DegreeType:  row.DegreeType,
			Field:       row.Field,
			Institution: row.Institution,
			Country:     row.Country,
			ObtainedAt:  nullTimePtr(row.ObtainedAt),
			DocumentRef: row.DocumentRef,
			CreatedAt:   row.CreatedAt,
		}
	}
	return result, nil
}

type academicRecordRow struct {
	ID          uuid.UUID    `db:"id"`
	CandidateID uuid.UUID    `db:"candidate_id"`
	DegreeType  string       `db:"degree_type"`
	Field       string       `db:"field"`
	Institution string       `db:"institution"`
	Country     string       `db:"country"`
	ObtainedAt  sql.NullTime `db:"obtained_at"`
	DocumentRef string       `db:"document_ref"`
	CreatedAt   time.Time    `db:"created_at"`
}

type WorkExperienceRepositoryAdapter struct {
	db *sqlx.DB
}

func NewWorkExperienceRepositoryAdapter(db *sqlx.DB) *WorkExperienceRepositoryAdapter {
	return &WorkExperienceRepositoryAdapter{db: db}
}

func (r *WorkExperienceRepositoryAdapter) Create(ctx context.Context, w *entity.WorkExperience) error {
	query := `INSERT INTO work_experiences (id, candidate_id, country, sector, employer, tax_id, role, start_date, end_date, is_current, document_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecContext(ctx, query, w.ID, w.CandidateID, w.Country, w.Sector, w.Employer, w.TaxID, w.Role,
		w.StartDate, w.EndDate, w.Current, w.DocumentRef, w.CreatedAt)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить опыт работы")
	}
	return nil
}

func (r *WorkExperienceRepositoryAdapter) Delete(ctx context.Context, candidateID, experienceID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM work_experiences WHERE id = $1 AND candidate_id = $2`, experienceID, candidateID)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось удалить опыт работы")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.ErrExperienceNotFound
	}
	return nil
}

func (r *WorkExperienceRepositoryAdapter) FindByCandidateID(ctx context.Context, candidateID uuid.UUID) ([]entity.WorkExperience, error) {
	var rows []workExperienceRow
	query := `SELECT id, candidate_id, country, sector, employer, tax_id, role, start_date, end_date, is_current, document_ref, created_at
		FROM work_experiences WHERE candidate_id = $1 ORDER BY start_date DESC`
	if err := r.db.SelectContext(ctx, &rows, query, candidateID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить опыт работы")
	}
	result := make([]entity.WorkExperience, len(rows))
	for i, row := range rows {
		result[i] = entity.WorkExperience{
			ID:          row.ID,
			CandidateID: row.CandidateID,
			Country:     row.Country,
			Sector:      row.Sector,
			Employer:    row.Employer,
			TaxID:       nullStringPtr(row.TaxID),
			Role:        row.Role,
			StartDate:   row.StartDate,
			EndDate:     nullTimePtr(row.EndDate),
			Current:     row.Current,
			DocumentRef: nullStringPtr(row.DocumentRef),
			CreatedAt:   row.CreatedAt,
		}
	}
	return result, nil
}

type workExperienceRow struct {
	ID          uuid.UUID      `db:"id"`
	CandidateID uuid.UUID      `db:"candidate_id"`
	Country     string         `db:"country"`
	Sector      string         `db:"sector"`
	Employer    string         `db:"employer"`
	TaxID       sql.NullString `db:"tax_id"`
	Role        string         `db:"role"`
	StartDate   time.Time      `db:"start_date"`
	EndDate     sql.NullTime   `db:"end_date"`
	Current     bool           `db:"is_current"`
	DocumentRef sql.NullString `db:"document_ref"`
	CreatedAt   time.Time      `db:"created_at"`
}
