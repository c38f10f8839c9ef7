package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
	"github.com/ignatzorin/recruitment-backend/internal/validation"
)

// PersonalData - раздел личных данных кандидата.
type PersonalData struct {
	FirstName   string
	LastName    string
	NationalID  string
	Phone       string
	Email       string
	Gender      string
	Nationality string
	Address     string
	BirthDate   *time.Time
	CVRef       string
}

func (d PersonalData) normalized() PersonalData {
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.NationalID = strings.TrimSpace(d.NationalID)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Email = strings.ToLower(strings.TrimSpace(d.Email))
	d.Gender = strings.TrimSpace(d.Gender)
	d.Nationality = strings.TrimSpace(d.Nationality)
	d.Address = strings.TrimSpace(d.Address)
	d.CVRef = strings.TrimSpace(d.CVRef)
	return d
}

// Validate проверяет формат заполненных полей. Пустые поля допустимы для черновика.
func (d PersonalData) Validate(now time.Time) error {
	checks := []error{
		validation.ValidateLength("имя", d.FirstName, 0, validation.MaxNameLength),
		validation.ValidateLength("фамилия", d.LastName, 0, validation.MaxNameLength),
		validation.ValidateNationalID(d.NationalID),
		validation.ValidatePhone(d.Phone),
		validation.ValidateEmail(d.Email),
		validation.ValidateLength("адрес", d.Address, 0, validation.MaxAddressLength),
	}
	if d.BirthDate != nil {
		checks = append(checks, validation.ValidateNotFuture("дата рождения", *d.BirthDate, now))
	}
	for _, err := range checks {
		if err != nil {
			return apperror.New(apperror.ErrCodeValidation, err.Error())
		}
	}
	return nil
}

// IsComplete - все обязательные поля заполнены, включая ссылку на резюме.
func (d PersonalData) IsComplete() bool {
	required := []string{d.FirstName, d.LastName, d.NationalID, d.Phone, d.Email, d.Gender, d.Nationality, d.CVRef}
	for _, v := range required {
		if validation.IsBlank(v) {
			return false
		}
	}
	return true
}

// Profile - профиль кандидата. Создаётся при первом сохранении и никогда не удаляется.
type Profile struct {
	CandidateID uuid.UUID
	PersonalData
	Completed   bool
	SubmittedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewProfile(candidateID uuid.UUID, data PersonalData) (*Profile, error) {
	if candidateID == uuid.Nil {
		return nil, apperror.New(apperror.ErrCodeValidation, "не указан кандидат")
	}

	now := time.Now()
	data = data.normalized()
	if err := data.Validate(now); err != nil {
		return nil, err
	}

	return &Profile{
		CandidateID:  candidateID,
		PersonalData: data,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (p *Profile) UpdatePersonalData(data PersonalData) error {
	now := time.Now()
	data = data.normalized()
	if err := data.Validate(now); err != nil {
		return err
	}
	p.PersonalData = data
	p.UpdatedAt = now
	return nil
}

func (p *Profile) IsPersonalDataComplete() bool {
	return p != nil && p.PersonalData.IsComplete()
}

// MarkCompleted идемпотентно фиксирует подачу профиля.
func (p *Profile) MarkCompleted(at time.Time) {
	if p.Completed {
		return
	}
	p.Completed = true
	p.SubmittedAt = &at
	p.UpdatedAt = at
}
