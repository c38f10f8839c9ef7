package valueobject

import (
	"strings"

	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "PENDING"
	ApplicationStatusReviewing ApplicationStatus = "REVIEWING"
	ApplicationStatusApproved  ApplicationStatus = "APPROVED"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
)

// ApplicationStatuses перечисляет все статусы в порядке жизненного цикла.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusReviewing,
	ApplicationStatusApproved,
	ApplicationStatusRejected,
}

// applicationTransitions - полная таблица переходов. Оценка директора пересматриваема,
// поэтому из любого статуса (включая финальные) можно перейти в любой другой.
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusPending:   {ApplicationStatusPending, ApplicationStatusReviewing, ApplicationStatusApproved, ApplicationStatusRejected},
	ApplicationStatusReviewing: {ApplicationStatusPending, ApplicationStatusReviewing, ApplicationStatusApproved, ApplicationStatusRejected},
	ApplicationStatusApproved:  {ApplicationStatusPending, ApplicationStatusReviewing, ApplicationStatusApproved, ApplicationStatusRejected},
	ApplicationStatusRejected:  {ApplicationStatusPending, ApplicationStatusReviewing, ApplicationStatusApproved, ApplicationStatusRejected},
}

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewing, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

func (s ApplicationStatus) CanTransitionTo(newStatus ApplicationStatus) bool {
	allowed, ok := applicationTransitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == newStatus {
			return true
		}
	}
	return false
}

// RequiresInterviewMessage - одобрение без приглашения на собеседование невозможно.
func (s ApplicationStatus) RequiresInterviewMessage() bool {
	return s == ApplicationStatusApproved
}

func (s ApplicationStatus) IsFinal() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

func NewApplicationStatus(status string) (ApplicationStatus, error) {
	s := ApplicationStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !s.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, "некорректный статус заявки")
	}
	return s, nil
}
