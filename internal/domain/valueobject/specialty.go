package valueobject

import (
	"sort"
	"strings"
)

// SpecialtyKey идентифицирует специальность внутри факультета.
type SpecialtyKey struct {
	FacultyCode   string
	SpecialtyCode string
}

// String возвращает ключ группировки вида "факультет-специальность".
func (k SpecialtyKey) String() string {
	return k.FacultyCode + "-" + k.SpecialtyCode
}

func (k SpecialtyKey) IsZero() bool {
	return strings.TrimSpace(k.SpecialtyCode) == ""
}

// SpecialtySet - множество специальностей.
type SpecialtySet map[SpecialtyKey]struct{}

func NewSpecialtySet(keys ...SpecialtyKey) SpecialtySet {
	set := make(SpecialtySet, len(keys))
	for _, k := range keys {
		set.Add(k)
	}
	return set
}

func (s SpecialtySet) Add(k SpecialtyKey) {
	s[k] = struct{}{}
}

func (s SpecialtySet) Has(k SpecialtyKey) bool {
	_, ok := s[k]
	return ok
}

// HasSpecialty проверяет покрытие по коду специальности без учета факультета:
// уникальность заявок определяется парой (кандидат, специальность).
func (s SpecialtySet) HasSpecialty(code string) bool {
	for k := range s {
		if k.SpecialtyCode == code {
			return true
		}
	}
	return false
}

// Difference возвращает специальности из s, которых нет в other, в детерминированном порядке.
func (s SpecialtySet) Difference(other SpecialtySet) []SpecialtyKey {
	result := make([]SpecialtyKey, 0, len(s))
	for k := range s {
		if !other.HasSpecialty(k.SpecialtyCode) {
			result = append(result, k)
		}
	}
	SortSpecialtyKeys(result)
	return result
}

func (s SpecialtySet) Sorted() []SpecialtyKey {
	result := make([]SpecialtyKey, 0, len(s))
	for k := range s {
		result = append(result, k)
	}
	SortSpecialtyKeys(result)
	return result
}

func SortSpecialtyKeys(keys []SpecialtyKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].FacultyCode != keys[j].FacultyCode {
			return keys[i].FacultyCode < keys[j].FacultyCode
		}
		return keys[i].SpecialtyCode < keys[j].SpecialtyCode
	})
}
