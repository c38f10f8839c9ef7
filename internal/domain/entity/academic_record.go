package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
	"github.com/ignatzorin/recruitment-backend/internal/validation"
)

// AcademicRecord - запись об образовании (диплом, степень, сертификат).
type AcademicRecord struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	DegreeType  string
	Field       string
	Institution string
	Country     string
	ObtainedAt  *time.Time
	DocumentRef string
	CreatedAt   time.Time
}

type AcademicRecordInput struct {
	DegreeType  string
	Field       string
	Institution string
	Country     string
	ObtainedAt  *time.Time
	DocumentRef string
}

func NewAcademicRecord(candidateID uuid.UUID, in AcademicRecordInput) (*AcademicRecord, error) {
	now := time.Now()
	in.DegreeType = strings.TrimSpace(in.DegreeType)
	in.Field = strings.TrimSpace(in.Field)
	in.Institution = strings.TrimSpace(in.Institution)
	in.Country = strings.TrimSpace(in.Country)
	in.DocumentRef = strings.TrimSpace(in.DocumentRef)

	if err := validation.ValidateNonEmpty("тип степени", in.DegreeType); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidateNonEmpty("учебное заведение", in.Institution); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidateLength("учебное заведение", in.Institution, 0, validation.MaxInstitutionLength); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if in.ObtainedAt != nil {
		if err := validation.ValidateNotFuture("дата получения", *in.ObtainedAt, now); err != nil {
			return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
		}
	}

	return &AcademicRecord{
		ID:          uuid.New(),
		CandidateID: candidateID,
		DegreeType:  in.DegreeType,
		Field:       in.Field,
		Institution: in.Institution,
		Country:     in.Country,
		ObtainedAt:  in.ObtainedAt,
		DocumentRef: in.DocumentRef,
		CreatedAt:   now,
	}, nil
}

// IsComplete - запись засчитывается только с подтверждающим документом.
func (r AcademicRecord) IsComplete() bool {
	for _, v := range []string{r.DegreeType, r.Field, r.Institution, r.Country, r.DocumentRef} {
		if validation.IsBlank(v) {
			return false
		}
	}
	return true
}

// IsAcademicComplete - список не пуст и каждая запись заполнена.
func IsAcademicComplete(records []AcademicRecord) bool {
	if len(records) == 0 {
		return false
	}
	for _, r := range records {
		if !r.IsComplete() {
			return false
		}
	}
	return true
}
