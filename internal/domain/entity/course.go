package entity

import (
	"sort"

	"github.com/google/uuid"

	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
)

// Course - справочная запись курса из каталога факультетов.
type Course struct {
	ID            uuid.UUID
	Code          string
	Name          string
	FacultyCode   string
	SpecialtyCode string
	Cycle         string
	Modality      string
}

func (c Course) Specialty() vo.SpecialtyKey {
	return vo.SpecialtyKey{FacultyCode: c.FacultyCode, SpecialtyCode: c.SpecialtyCode}
}

// SpecialtyGroup - выбранные курсы одной специальности.
type SpecialtyGroup struct {
	Key     vo.SpecialtyKey
	Courses []Course
}

// GroupBySpecialty строит группировку выбранных курсов по ключу "факультет-специальность".
// Результат всегда вычисляется из текущего набора курсов и нигде не хранится.
func GroupBySpecialty(courses []Course) map[string]SpecialtyGroup {
	groups := make(map[string]SpecialtyGroup)
	for _, c := range courses {
		key := c.Specialty()
		g := groups[key.String()]
		g.Key = key
		g.Courses = append(g.Courses, c)
		groups[key.String()] = g
	}
	for k, g := range groups {
		sort.Slice(g.Courses, func(i, j int) bool { return g.Courses[i].Code < g.Courses[j].Code })
		groups[k] = g
	}
	return groups
}

// SelectedSpecialties - множество различных специальностей среди курсов.
func SelectedSpecialties(courses []Course) vo.SpecialtySet {
	set := vo.NewSpecialtySet()
	for _, c := range courses {
		set.Add(c.Specialty())
	}
	return set
}
