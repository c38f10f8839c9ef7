package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	"github.com/ignatzorin/recruitment-backend/internal/domain/event"
	"github.com/ignatzorin/recruitment-backend/internal/domain/repository"
	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/logger"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

type EvaluateApplicationInput struct {
	ApplicationID    uuid.UUID
	NewStatus        string
	InterviewMessage *string
	// EvaluatorID, если передан, должен совпадать с аутентифицированным пользователем.
	EvaluatorID uuid.UUID
}

type EvaluateApplicationUseCase struct {
	applicationRepo repository.ApplicationRepository
	publisher       event.Publisher
}

func NewEvaluateApplicationUseCase(applicationRepo repository.ApplicationRepository, publisher event.Publisher) *EvaluateApplicationUseCase {
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	return &EvaluateApplicationUseCase{
		applicationRepo: applicationRepo,
		publisher:       publisher,
	}
}

func (uc *EvaluateApplicationUseCase) Execute(ctx context.Context, evaluator vo.Actor, input EvaluateApplicationInput) (*entity.Application, error) {
	if input.EvaluatorID != uuid.Nil && input.EvaluatorID != evaluator.UserID {
		return nil, apperror.New(apperror.ErrCodeForbidden, "нельзя оценивать заявку от имени другого пользователя")
	}

	newStatus, err := vo.NewApplicationStatus(input.NewStatus)
	if err != nil {
		return nil, err
	}

	app, err := uc.applicationRepo.FindByID(ctx, input.ApplicationID)
	if err != nil {
		return nil, err
	}

	if err := app.Evaluate(evaluator, newStatus, input.InterviewMessage, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.applicationRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	logger.L().WithFields(logrus.Fields{
		"application_id": app.ID,
		"evaluator_id":   evaluator.UserID,
		"status":         app.Status,
	}).Info("application: заявка оценена")

	if err := uc.publisher.Publish(ctx, event.NewApplicationEvent(event.ApplicationEvaluated, app)); err != nil {
		logger.L().WithFields(logrus.Fields{
			"application_id": app.ID,
			"error":          err.Error(),
		}).Warn("application: не удалось опубликовать событие оценки")
	}

	return app, nil
}
