package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/recruitment-backend/internal/domain/policy"
	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

var (
	edu  = vo.SpecialtyKey{FacultyCode: "EDU", SpecialtyCode: "EDU-101"}
	math = vo.SpecialtyKey{FacultyCode: "SCI", SpecialtyCode: "MATH-204"}
)

func TestLockPolicy_Table(t *testing.T) {
	sections := []policy.Section{policy.SectionPersonalData, policy.SectionAcademic, policy.SectionExperience, policy.SectionSchedule}

	open := policy.NewLockPolicy(false, vo.NewSpecialtySet(edu))
	submitted := policy.NewLockPolicy(true, vo.NewSpecialtySet(edu))

	for _, s := range sections {
		m := policy.Mutation{Section: s, Operation: policy.OperationWrite}
		assert.True(t, open.CanModify(m), "open %s", s)
		assert.False(t, submitted.CanModify(m), "submitted %s", s)
		assert.ErrorIs(t, submitted.Check(m), apperror.ErrLocked)
	}

	for _, op := range []policy.Operation{policy.OperationAddCourse, policy.OperationRemoveCourse} {
		covered := policy.Mutation{Section: policy.SectionCourses, Operation: op, Specialty: edu}
		uncovered := policy.Mutation{Section: policy.SectionCourses, Operation: op, Specialty: math}

		assert.True(t, open.CanModify(covered))
		assert.True(t, open.CanModify(uncovered))
		assert.False(t, submitted.CanModify(covered))
		assert.True(t, submitted.CanModify(uncovered))
		assert.True(t, apperror.IsLocked(submitted.Check(covered)))
	}
}

func TestLockPolicy_UnknownCombinationDenied(t *testing.T) {
	open := policy.NewLockPolicy(false, nil)
	assert.False(t, open.CanModify(policy.Mutation{Section: policy.SectionCourses, Operation: policy.OperationWrite}))
	assert.False(t, open.CanModify(policy.Mutation{Section: "documents", Operation: policy.OperationWrite}))
	assert.Empty(t, open.CoveredSpecialties())
	assert.Equal(t, policy.LockStateOpen, open.State())
}
