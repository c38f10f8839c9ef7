package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
	"github.com/ignatzorin/recruitment-backend/internal/validation"
)

// WorkExperience - место работы кандидата. EndDate отсутствует тогда и только тогда, когда Current.
type WorkExperience struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	Country     string
	Sector      string
	Employer    string
	TaxID       *string
	Role        string
	StartDate   time.Time
	EndDate     *time.Time
	Current     bool
	DocumentRef *string
	CreatedAt   time.Time
}

type WorkExperienceInput struct {
	Country     string
	Sector      string
	Employer    string
	TaxID       *string
	Role        string
	StartDate   time.Time
	EndDate     *time.Time
	Current     bool
	DocumentRef *string
}

func (in WorkExperienceInput) validate(now time.Time) error {
	if err := validation.ValidateNonEmpty("работодатель", in.Employer); err != nil {
		return err
	}
	if err := validation.ValidateLength("работодатель", in.Employer, 0, validation.MaxEmployerLength); err != nil {
		return err
	}
	if err := validation.ValidateNonEmpty("должность", in.Role); err != nil {
		return err
	}
	if err := validation.ValidateTaxID(in.TaxID); err != nil {
		return err
	}
	if in.StartDate.IsZero() {
		return errors.New("дата начала обязательна")
	}
	if err := validation.ValidateNotFuture("дата начала", in.StartDate, now); err != nil {
		return err
	}
	if in.Current && in.EndDate != nil {
		return errors.New("у текущего места работы не может быть даты окончания")
	}
	if !in.Current && in.EndDate == nil {
		return errors.New("укажите дату окончания или отметьте текущее место работы")
	}
	if in.EndDate != nil {
		if err := validation.ValidateNotFuture("дата окончания", *in.EndDate, now); err != nil {
			return err
		}
		if in.EndDate.Before(in.StartDate) {
			return errors.New("дата окончания не может быть раньше даты начала")
		}
	}
	return nil
}

func NewWorkExperience(candidateID uuid.UUID, in WorkExperienceInput) (*WorkExperience, error) {
	now := time.Now()
	in.Country = strings.TrimSpace(in.Country)
	in.Sector = strings.TrimSpace(in.Sector)
	in.Employer = strings.TrimSpace(in.Employer)
	in.Role = strings.TrimSpace(in.Role)

	if err := in.validate(now); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}

	return &WorkExperience{
		ID:          uuid.New(),
		CandidateID: candidateID,
		Country:     in.Country,
		Sector:      in.Sector,
		Employer:    in.Employer,
		TaxID:       in.TaxID,
		Role:        in.Role,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Current:     in.Current,
		DocumentRef: in.DocumentRef,
		CreatedAt:   now,
	}, nil
}

func (w WorkExperience) IsComplete() bool {
	for _, v := range []string{w.Country, w.Sector, w.Employer, w.Role} {
		if validation.IsBlank(v) {
			return false
		}
	}
	if w.StartDate.IsZero() {
		return false
	}
	return w.EndDate != nil || w.Current
}

// IsExperienceComplete - список не пуст и каждая запись заполнена.
func IsExperienceComplete(items []WorkExperience) bool {
	if len(items) == 0 {
		return false
	}
	for _, w := range items {
		if !w.IsComplete() {
			return false
		}
	}
	return true
}
