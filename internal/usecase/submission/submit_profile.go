package submission

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	"github.com/ignatzorin/recruitment-backend/internal/domain/repository"
	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/logger"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/application"
)

// SnapshotLoader читает разделы профиля для проверки заполненности.
type SnapshotLoader interface {
	Snapshot(ctx context.Context, candidateID uuid.UUID) (*entity.ProfileSnapshot, error)
}

// ApplicationCreator создаёт одну заявку через машину состояний заявок.
type ApplicationCreator interface {
	Execute(ctx context.Context, input application.CreateApplicationInput) (*entity.Application, error)
}

// FailedSpecialty - специальность, заявку на которую создать не удалось.
type FailedSpecialty struct {
	FacultyCode   string
	SpecialtyCode string
	Code          apperror.ErrorCode
	Reason        string
}

// Result - итог пакетного создания заявок.
type Result struct {
	ApplicationsCreated int
	Applications        []*entity.Application
	FailedSpecialties   []FailedSpecialty
}

type SubmitProfileUseCase struct {
	snapshots       SnapshotLoader
	profileRepo     repository.ProfileRepository
	catalog         repository.CourseCatalog
	applicationRepo repository.ApplicationRepository
	creator         ApplicationCreator
}

func NewSubmitProfileUseCase(
	snapshots SnapshotLoader,
	profileRepo repository.ProfileRepository,
	catalog repository.CourseCatalog,
	applicationRepo repository.ApplicationRepository,
	creator ApplicationCreator,
) *SubmitProfileUseCase {
	return &SubmitProfileUseCase{
		snapshots:       snapshots,
		profileRepo:     profileRepo,
		catalog:         catalog,
		applicationRepo: applicationRepo,
		creator:         creator,
	}
}

// Execute подаёт профиль: создаёт по одной заявке на каждую специальность из выбранных
// курсов, на которую заявки ещё нет. Каждая заявка создаётся независимо, ошибки
// собираются в результат, а не прерывают пакет.
func (uc *SubmitProfileUseCase) Execute(ctx context.Context, actor vo.Actor, candidateID uuid.UUID) (*Result, error) {
	if !actor.CanActFor(candidateID) {
		return nil, apperror.ErrForbidden
	}

	snapshot, err := uc.snapshots.Snapshot(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	completeness := snapshot.Completeness()
	if !completeness.IsProfileComplete() {
		return nil, apperror.New(apperror.ErrCodeIncompleteProfile,
			"профиль заполнен не полностью: "+strings.Join(completeness.MissingSections(), ", "))
	}

	courses, err := uc.catalog.FindCourses(ctx, snapshot.Selection.IDs())
	if err != nil {
		return nil, err
	}
	selected := entity.SelectedSpecialties(courses)
	if len(selected) == 0 {
		return nil, apperror.New(apperror.ErrCodeIncompleteProfile,
			"выбранные курсы отсутствуют в каталоге, выберите курсы заново")
	}

	existingApps, err := uc.applicationRepo.FindByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	existing := vo.NewSpecialtySet()
	for _, a := range existingApps {
		existing.Add(a.Specialty())
	}

	newSpecialties := selected.Difference(existing)
	if len(newSpecialties) == 0 && len(existing) > 0 {
		return nil, apperror.ErrNoNewSpecialty
	}

	if err := uc.profileRepo.MarkCompleted(ctx, candidateID, time.Now()); err != nil {
		return nil, err
	}

	log := logger.ForCandidate(candidateID)
	result := &Result{Applications: make([]*entity.Application, 0, len(newSpecialties))}
	for _, key := range newSpecialties {
		app, err := uc.creator.Execute(ctx, application.CreateApplicationInput{
			CandidateID:   candidateID,
			FacultyCode:   key.FacultyCode,
			SpecialtyCode: key.SpecialtyCode,
		})
		if err != nil {
			public, _ := apperror.Public(err)
			failure := FailedSpecialty{
				FacultyCode:   key.FacultyCode,
				SpecialtyCode: key.SpecialtyCode,
				Code:          public.Code,
				Reason:        public.Message,
			}
			result.FailedSpecialties = append(result.FailedSpecialties, failure)
			log.WithFields(logrus.Fields{
				"specialty_code": key.SpecialtyCode,
				"error":          err.Error(),
			}).Warn("submission: не удалось создать заявку")
			continue
		}
		result.Applications = append(result.Applications, app)
		result.ApplicationsCreated++
	}

	log.WithFields(logrus.Fields{
		"created": result.ApplicationsCreated,
		"failed":  len(result.FailedSpecialties),
	}).Info("submission: профиль подан")

	return result, nil
}
