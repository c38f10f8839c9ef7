package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
	"github.com/ignatzorin/recruitment-backend/internal/validation"
)

// Application - заявка кандидата на одну специальность. Не удаляется,
// изменяется только через Evaluate.
type Application struct {
	ID               uuid.UUID
	CandidateID      uuid.UUID
	FacultyCode      string
	SpecialtyCode    string
	Status           vo.ApplicationStatus
	SubmittedAt      time.Time
	EvaluatorID      *uuid.UUID
	InterviewMessage *string
	EvaluatedAt      *time.Time
	UpdatedAt        time.Time
}

func NewApplication(candidateID uuid.UUID, specialty vo.SpecialtyKey) (*Application, error) {
	if candidateID == uuid.Nil {
		return nil, apperror.New(apperror.ErrCodeValidation, "не указан кандидат")
	}
	if strings.TrimSpace(specialty.FacultyCode) == "" || specialty.IsZero() {
		return nil, apperror.New(apperror.ErrCodeValidation, "не указаны факультет или специальность")
	}

	now := time.Now()
	return &Application{
		ID:            uuid.New(),
		CandidateID:   candidateID,
		FacultyCode:   strings.TrimSpace(specialty.FacultyCode),
		SpecialtyCode: strings.TrimSpace(specialty.SpecialtyCode),
		Status:        vo.ApplicationStatusPending,
		SubmittedAt:   now,
		UpdatedAt:     now,
	}, nil
}

func (a *Application) Specialty() vo.SpecialtyKey {
	return vo.SpecialtyKey{FacultyCode: a.FacultyCode, SpecialtyCode: a.SpecialtyCode}
}

// Evaluate меняет статус от имени директора специальности или администратора.
// Все проверки выполняются до изменения состояния.
func (a *Application) Evaluate(evaluator vo.Actor, newStatus vo.ApplicationStatus, interviewMessage *string, at time.Time) error {
	if !evaluator.CanEvaluate(a.SpecialtyCode) {
		return apperror.New(apperror.ErrCodeForbidden, "оценивать заявку может только директор специальности")
	}
	if !newStatus.IsValid() {
		return apperror.New(apperror.ErrCodeValidation, "некорректный статус заявки")
	}
	if !a.Status.CanTransitionTo(newStatus) {
		return apperror.New(apperror.ErrCodeValidation, "недопустимый переход статуса заявки")
	}

	var message string
	if interviewMessage != nil {
		message = strings.TrimSpace(*interviewMessage)
	}
	if newStatus.RequiresInterviewMessage() {
		if message == "" {
			return apperror.New(apperror.ErrCodeValidation, "для одобрения заявки укажите сообщение о собеседовании")
		}
		if err := validation.ValidateLength("сообщение о собеседовании", message, 0, validation.MaxInterviewMessage); err != nil {
			return apperror.New(apperror.ErrCodeValidation, err.Error())
		}
	}

	evaluatorID := evaluator.UserID
	a.Status = newStatus
	a.EvaluatorID = &evaluatorID
	a.EvaluatedAt = &at
	a.UpdatedAt = at
	// Прежнее сообщение сохраняется при уходе из APPROVED.
	if newStatus.RequiresInterviewMessage() {
		a.InterviewMessage = &message
	}
	return nil
}

func (a *Application) IsOwnedBy(candidateID uuid.UUID) bool {
	return a.CandidateID == candidateID
}
