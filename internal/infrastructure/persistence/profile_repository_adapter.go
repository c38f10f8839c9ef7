package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

type ProfileRepositoryAdapter struct {
	db *sqlx.DB
}

func NewProfileRepositoryAdapter(db *sqlx.DB) *ProfileRepositoryAdapter {
	return &ProfileRepositoryAdapter{db: db}
}

const profileColumns = `candidate_id, first_name, last_name, national_id, phone, email, gender,
	nationality, address, birth_date, cv_ref, completed, submitted_at, created_at, updated_at`

func (r *ProfileRepositoryAdapter) FindByCandidateID(ctx context.Context, candidateID uuid.UUID) (*entity.Profile, error) {
	var row profileRow
	query := `SELECT ` + profileColumns + ` FROM candidate_profiles WHERE candidate_id = $1`
	if err := r.db.GetContext(ctx, &row, query, candidateID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrProfileNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить профиль")
	}
	return row.toEntity(), nil
}

// Save создаёт профиль или обновляет личные данные. Флаг подачи здесь не меняется.
func (r *ProfileRepositoryAdapter) Save(ctx context.Context, p *entity.Profile) error {
	query := `INSERT INTO candidate_profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, FALSE, NULL, $12, $13)
		ON CONFLICT (candidate_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			national_id = EXCLUDED.national_id,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			gender = EXCLUDED.gender,
			nationality = EXCLUDED.nationality,
			address = EXCLUDED.address,
			birth_date = EXCLUDED.birth_date,
			cv_ref = EXCLUDED.cv_ref,
			updated_at = EXCLUDED.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.CandidateID, p.FirstName, p.LastName, p.NationalID, p.Phone, p.Email, p.Gender,
		p.Nationality, p.Address, p.BirthDate, p.CVRef, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить профиль")
	}
	return nil
}

// MarkCompleted идемпотентна: дата первой подачи не перезаписывается.
func (r *ProfileRepositoryAdapter) MarkCompleted(ctx context.Context, candidateID uuid.UUID, at time.Time) error {
	query := `UPDATE candidate_profiles
		SET completed = TRUE, submitted_at = COALESCE(submitted_at, $2), updated_at = $2
		WHERE candidate_id = $1`
	res, err := r.db.ExecContext(ctx, query, candidateID, at)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось отметить подачу профиля")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.ErrProfileNotFound
	}
	return nil
}

type profileRow struct {
	CandidateID uuid.UUID    `db:"candidate_id"`
	FirstName   string       `db:"first_name"`
	LastName    string       `db:"last_name"`
	NationalID  string       `db:"national_id"`
	Phone       string       `db:"phone"`
	Email       string       `db:"email"`
	Gender      string       `db:"gender"`
	Nationality string       `db:"nationality"`
	Address     string       `db:"address"`
	BirthDate   sql.NullTime `db:"birth_date"`
	CVRef       string       `db:"cv_ref"`
	Completed   bool         `db:"completed"`
	SubmittedAt sql.NullTime `db:"submitted_at"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}

func (p *profileRow) toEntity() *entity.Profile {
	return &entity.Profile{
		CandidateID: p.CandidateID,
		PersonalData: entity.PersonalData{
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			NationalID:  p.NationalID,
			Phone:       p.Phone,
			Email:       p.Email,
			Gender:      p.Gender,
			Nationality: p.Nationality,
			Address:     p.Address,
			BirthDate:   nullTimePtr(p.BirthDate),
			CVRef:       p.CVRef,
		},
		Completed:   p.Completed,
		SubmittedAt: nullTimePtr(p.SubmittedAt),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
