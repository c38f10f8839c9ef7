package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	"github.com/ignatzorin/recruitment-backend/internal/domain/event"
	"github.com/ignatzorin/recruitment-backend/internal/domain/repository"
	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/logger"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

type CreateApplicationInput struct {
	CandidateID   uuid.UUID
	FacultyCode   string
	SpecialtyCode string
}

type CreateApplicationUseCase struct {
	applicationRepo repository.ApplicationRepository
	publisher       event.Publisher
}

func NewCreateApplicationUseCase(applicationRepo repository.ApplicationRepository, publisher event.Publisher) *CreateApplicationUseCase {
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	return &CreateApplicationUseCase{
		applicationRepo: applicationRepo,
		publisher:       publisher,
	}
}

// Execute создаёт заявку в статусе PENDING. Повторная заявка на ту же специальность
// отклоняется и предварительной проверкой, и ограничением уникальности в хранилище.
func (uc *CreateApplicationUseCase) Execute(ctx context.Context, input CreateApplicationInput) (*entity.Application, error) {
	app, err := entity.NewApplication(input.CandidateID, vo.SpecialtyKey{
		FacultyCode:   input.FacultyCode,
		SpecialtyCode: input.SpecialtyCode,
	})
	if err != nil {
		return nil, err
	}

	existing, err := uc.applicationRepo.FindByCandidateAndSpecialty(ctx, app.CandidateID, app.SpecialtyCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateApplication
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	if err := uc.publisher.Publish(ctx, event.NewApplicationEvent(event.ApplicationCreated, app)); err != nil {
		logger.L().WithFields(logrus.Fields{
			"application_id": app.ID,
			"error":          err.Error(),
		}).Warn("application: не удалось опубликовать событие создания")
	}

	return app, nil
}
