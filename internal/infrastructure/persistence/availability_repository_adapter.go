package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/recruitment-backend/internal/db"
	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/logger"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

type AvailabilityRepositoryAdapter struct {
	db *sqlx.DB
}

func NewAvailabilityRepositoryAdapter(db *sqlx.DB) *AvailabilityRepositoryAdapter {
	return &AvailabilityRepositoryAdapter{db: db}
}

// FindSchedule возвращает расписание; дни без сохранённых интервалов неактивны.
func (r *AvailabilityRepositoryAdapter) FindSchedule(ctx context.Context, candidateID uuid.UUID) (*entity.WeeklyAvailability, error) {
	var rows []availabilitySlotRow
	query := `SELECT day, start_minute, end_minute FROM availability_slots WHERE candidate_id = $1`
	if err := r.db.SelectContext(ctx, &rows, query, candidateID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить расписание")
	}

	schedule := entity.NewWeeklyAvailability(candidateID)
	for _, row := range rows {
		start, end := vo.ClockTime(row.StartMinute), vo.ClockTime(row.EndMinute)
		if err := schedule.SetDay(vo.Weekday(row.Day), true, &start, &end); err != nil {
			// Строка нарушает инварианты, пропускаем её, а не ломаем чтение профиля.
			logger.ForCandidate(candidateID).WithFields(logrus.Fields{"day": row.Day}).WithError(err).
				Warn("availability: некорректная строка расписания")
		}
	}
	return schedule, nil
}

// ReplaceSchedule удаляет прежние дни и вставляет заполненные одной транзакцией.
func (r *AvailabilityRepositoryAdapter) ReplaceSchedule(ctx context.Context, schedule *entity.WeeklyAvailability) error {
	err := db.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM availability_slots WHERE candidate_id = $1`, schedule.CandidateID); err != nil {
			return err
		}

		inserter := db.NewBatchInserter(tx, `INSERT INTO availability_slots (candidate_id, day, start_minute, end_minute)`, 4)
		for slot := range schedule.CompleteDays() {
			if err := inserter.Add(schedule.CandidateID, string(slot.Day), int(slot.Range.Start), int(slot.Range.End)); err != nil {
				return err
			}
		}
		return inserter.Flush(ctx)
	})
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить расписание")
	}
	return nil
}

func (r *AvailabilityRepositoryAdapter) FindSelection(ctx context.Context, candidateID uuid.UUID) (*entity.CourseSelection, error) {
	var ids []uuid.UUID
	query := `SELECT course_id FROM course_selections WHERE candidate_id = $1`
	if err := r.db.SelectContext(ctx, &ids, query, candidateID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить выбранные курсы")
	}
	return entity.NewCourseSelection(candidateID, ids...), nil
}

func (r *AvailabilityRepositoryAdapter) AddCourse(ctx context.Context, candidateID, courseID uuid.UUID) error {
	query := `INSERT INTO course_selections (candidate_id, course_id) VALUES ($1, $2)
		ON CONFLICT (candidate_id, course_id) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, candidateID, courseID); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось добавить курс")
	}
	return nil
}

func (r *AvailabilityRepositoryAdapter) RemoveCourse(ctx context.Context, candidateID, courseID uuid.UUID) error {
	query := `DELETE FROM course_selections WHERE candidate_id = $1 AND course_id = $2`
	if _, err := r.db.ExecContext(ctx, query, candidateID, courseID); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось удалить курс")
	}
	return nil
}

type availabilitySlotRow struct {
	Day         string `db:"day"`
	StartMinute int    `db:"start_minute"`
	EndMinute   int    `db:"end_minute"`
}
