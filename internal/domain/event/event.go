package event

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
)

type Type string

const (
	ApplicationCreated   Type = "application.created"
	ApplicationEvaluated Type = "application.evaluated"
)

// ApplicationEvent - событие жизненного цикла заявки.
type ApplicationEvent struct {
	Type             Type       `json:"type"`
	ApplicationID    uuid.UUID  `json:"application_id"`
	CandidateID      uuid.UUID  `json:"candidate_id"`
	FacultyCode      string     `json:"faculty_code"`
	SpecialtyCode    string     `json:"specialty_code"`
	Status           string     `json:"status"`
	EvaluatorID      *uuid.UUID `json:"evaluator_id,omitempty"`
	InterviewMessage *string    `json:"interview_message,omitempty"`
	OccurredAt       time.Time  `json:"occurred_at"`
}

func NewApplicationEvent(t Type, app *entity.Application) ApplicationEvent {
	return ApplicationEvent{
		Type:             t,
		ApplicationID:    app.ID,
		CandidateID:      app.CandidateID,
		FacultyCode:      app.FacultyCode,
		SpecialtyCode:    app.SpecialtyCode,
		Status:           string(app.Status),
		EvaluatorID:      app.EvaluatorID,
		InterviewMessage: app.InterviewMessage,
		OccurredAt:       time.Now(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, e ApplicationEvent) error
}

// Publishers рассылает событие всем получателям и собирает ошибки.
type Publishers []Publisher

func (ps Publishers) Publish(ctx context.Context, e ApplicationEvent) error {
	var errs []error
	for _, p := range ps {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ApplicationEvent) error { return nil }
