package valueobject

import "github.com/google/uuid"

// Role - закрытый набор ролей портала.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleDirector  Role = "director"
	RoleAdmin     Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleCandidate, RoleDirector, RoleAdmin:
		return true
	}
	return false
}

// Actor - аутентифицированный пользователь, от имени которого выполняется операция.
// SpecialtyCode заполнен только у директоров.
type Actor struct {
	UserID        uuid.UUID
	Role          Role
	SpecialtyCode string
}

// CanEvaluate сообщает, может ли пользователь менять статус заявок по специальности.
func (a Actor) CanEvaluate(specialtyCode string) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RoleDirector:
		return a.SpecialtyCode != "" && a.SpecialtyCode == specialtyCode
	default:
		return false
	}
}

// CanActFor сообщает, может ли пользователь менять данные кандидата.
func (a Actor) CanActFor(candidateID uuid.UUID) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RoleCandidate:
		return a.UserID == candidateID
	default:
		return false
	}
}

// CanViewCandidate - директора читают профили, но не изменяют их.
func (a Actor) CanViewCandidate(candidateID uuid.UUID) bool {
	return a.Role == RoleDirector || a.CanActFor(candidateID)
}
