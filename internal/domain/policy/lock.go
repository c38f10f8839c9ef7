package policy

import (
	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

// LockState - состояние блокировки профиля кандидата.
type LockState string

const (
	// LockStateOpen - профиль ещё не подан, все разделы изменяемы.
	LockStateOpen LockState = "OPEN"
	// LockStateSubmitted - профиль подан, открыт только выбор курсов новых специальностей.
	LockStateSubmitted LockState = "SUBMITTED"
)

func LockStateFor(completed bool) LockState {
	if completed {
		return LockStateSubmitted
	}
	return LockStateOpen
}

type Section string

const (
	SectionPersonalData Section = "personal_data"
	SectionAcademic     Section = "academic"
	SectionExperience   Section = "experience"
	SectionSchedule     Section = "schedule"
	SectionCourses      Section = "courses"
)

type Operation string

const (
	OperationWrite        Operation = "write"
	OperationAddCourse    Operation = "add_course"
	OperationRemoveCourse Operation = "remove_course"
)

// Mutation описывает запрошенное изменение. Specialty заполняется для операций с курсами.
type Mutation struct {
	Section   Section
	Operation Operation
	Specialty vo.SpecialtyKey
}

// Coverage - есть ли у кандидата заявка на специальность мутации.
type Coverage int

const (
	CoverageNotApplicable Coverage = iota
	CoverageUncovered
	CoverageCovered
)

type rule struct {
	state    LockState
	section  Section
	op       Operation
	coverage Coverage
}

// lockTable - исчерпывающая таблица решений. Отсутствующая комбинация запрещена.
var lockTable = map[rule]bool{
	{LockStateOpen, SectionPersonalData, OperationWrite, CoverageNotApplicable}:      true,
	{LockStateOpen, SectionAcademic, OperationWrite, CoverageNotApplicable}:          true,
	{LockStateOpen, SectionExperience, OperationWrite, CoverageNotApplicable}:        true,
	{LockStateOpen, SectionSchedule, OperationWrite, CoverageNotApplicable}:          true,
	{LockStateOpen, SectionCourses, OperationAddCourse, CoverageUncovered}:           true,
	{LockStateOpen, SectionCourses, OperationAddCourse, CoverageCovered}:             true,
	{LockStateOpen, SectionCourses, OperationRemoveCourse, CoverageUncovered}:        true,
	{LockStateOpen, SectionCourses, OperationRemoveCourse, CoverageCovered}:          true,
	{LockStateSubmitted, SectionPersonalData, OperationWrite, CoverageNotApplicable}: false,
	{LockStateSubmitted, SectionAcademic, OperationWrite, CoverageNotApplicable}:     false,
	{LockStateSubmitted, SectionExperience, OperationWrite, CoverageNotApplicable}:   false,
	{LockStateSubmitted, SectionSchedule, OperationWrite, CoverageNotApplicable}:     false,
	{LockStateSubmitted, SectionCourses, OperationAddCourse, CoverageUncovered}:      true,
	{LockStateSubmitted, SectionCourses, OperationAddCourse, CoverageCovered}:        false,
	{LockStateSubmitted, SectionCourses, OperationRemoveCourse, CoverageUncovered}:   true,
	{LockStateSubmitted, SectionCourses, OperationRemoveCourse, CoverageCovered}:     false,
}

// LockPolicy решает, можно ли менять разделы профиля и доступности.
type LockPolicy struct {
	state   LockState
	covered vo.SpecialtySet
}

// NewLockPolicy строит политику по флагу подачи профиля и специальностям существующих заявок.
func NewLockPolicy(completed bool, covered vo.SpecialtySet) LockPolicy {
	if covered == nil {
		covered = vo.NewSpecialtySet()
	}
	return LockPolicy{state: LockStateFor(completed), covered: covered}
}

func (p LockPolicy) State() LockState {
	return p.state
}

// CanModifyProfile - полная изменяемость профиля (до подачи).
func (p LockPolicy) CanModifyProfile() bool {
	return p.state == LockStateOpen
}

// CoveredSpecialties возвращает специальности, по которым уже есть заявки.
func (p LockPolicy) CoveredSpecialties() []vo.SpecialtyKey {
	return p.covered.Sorted()
}

func (p LockPolicy) CanModify(m Mutation) bool {
	coverage := CoverageNotApplicable
	if m.Section == SectionCourses {
		coverage = CoverageUncovered
		if p.covered.HasSpecialty(m.Specialty.SpecialtyCode) {
			coverage = CoverageCovered
		}
	}
	return lockTable[rule{state: p.state, section: m.Section, op: m.Operation, coverage: coverage}]
}

// Check возвращает LOCKED-ошибку, если мутация запрещена.
func (p LockPolicy) Check(m Mutation) error {
	if p.CanModify(m) {
		return nil
	}
	if m.Section == SectionCourses {
		return apperror.New(apperror.ErrCodeLocked,
			"по специальности "+m.Specialty.SpecialtyCode+" уже подана заявка, выбор курсов изменить нельзя")
	}
	return apperror.ErrLocked
}
