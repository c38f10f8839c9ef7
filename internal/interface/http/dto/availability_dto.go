package dto

import (
	"github.com/google/uuid"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/availability"
)

type DayRequest struct {
	Day    string  `json:"day" binding:"required"`
	Active *bool   `json:"active"`
	Start  *string `json:"start"`
	End    *string `json:"end"`
}

// ToInput: день, перечисленный в запросе без флага active, считается активным.
func (r DayRequest) ToInput() availability.DayInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return availability.DayInput{Day: r.Day, Active: active, Start: r.Start, End: r.End}
}

type SaveScheduleRequest struct {
	CandidateID string       `json:"candidate_id" binding:"required,uuid"`
	Days        []DayRequest `json:"days" binding:"dive"`
}

func (r SaveScheduleRequest) ToInputs() []availability.DayInput {
	out := make([]availability.DayInput, len(r.Days))
	for i, d := range r.Days {
		out[i] = d.ToInput()
	}
	return out
}

type SetDayRequest struct {
	CandidateID string  `json:"candidate_id" binding:"required,uuid"`
	Active      bool    `json:"active"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
}

type CourseRequest struct {
	CandidateID string `json:"candidate_id" binding:"required,uuid"`
	CourseID    string `json:"course_id" binding:"required,uuid"`
}

type DaySlotResponse struct {
	Day    string  `json:"day"`
	Active bool    `json:"active"`
	Start  *string `json:"start"`
	End    *string `json:"end"`
}

func ToDaySlotResponse(s entity.DaySlot) DaySlotResponse {
	resp := DaySlotResponse{Day: string(s.Day), Active: s.Active}
	if s.Range != nil {
		start, end := s.Range.Start.String(), s.Range.End.String()
		resp.Start, resp.End = &start, &end
	}
	return resp
}

func ToDaySlotResponses(slots []entity.DaySlot) []DaySlotResponse {
	out := make([]DaySlotResponse, len(slots))
	for i, s := range slots {
		out[i] = ToDaySlotResponse(s)
	}
	return out
}

type CourseResponse struct {
	CourseID      uuid.UUID `json:"course_id"`
	FacultyCode   string    `json:"faculty_code"`
	SpecialtyCode string    `json:"specialty_code"`
	CourseName    string    `json:"course_name"`
	CourseCode    string    `json:"course_code"`
	Cycle         string    `json:"cycle"`
	Modality      string    `json:"modality"`
}

func ToCourseResponse(c entity.Course) CourseResponse {
	return CourseResponse{
		CourseID:      c.ID,
		FacultyCode:   c.FacultyCode,
		SpecialtyCode: c.SpecialtyCode,
		CourseName:    c.Name,
		CourseCode:    c.Code,
		Cycle:         c.Cycle,
		Modality:      c.Modality,
	}
}

func ToCourseResponses(courses []entity.Course) []CourseResponse {
	out := make([]CourseResponse, len(courses))
	for i, c := range courses {
		out[i] = ToCourseResponse(c)
	}
	return out
}

type CourseChangeResponse struct {
	Course   CourseResponse `json:"course"`
	Selected bool           `json:"selected"`
}

type SpecialtyKeyResponse struct {
	FacultyCode   string `json:"faculty_code"`
	SpecialtyCode string `json:"specialty_code"`
}

func toSpecialtyKeyResponse(k vo.SpecialtyKey) SpecialtyKeyResponse {
	return SpecialtyKeyResponse{FacultyCode: k.FacultyCode, SpecialtyCode: k.SpecialtyCode}
}

type SpecialtyGroupResponse struct {
	Key           string           `json:"key"`
	FacultyCode   string           `json:"faculty_code"`
	SpecialtyCode string           `json:"specialty_code"`
	Courses       []CourseResponse `json:"courses"`
}

func ToSpecialtyGroupResponses(groups []entity.SpecialtyGroup) []SpecialtyGroupResponse {
	out := make([]SpecialtyGroupResponse, len(groups))
	for i, g := range groups {
		out[i] = SpecialtyGroupResponse{
			Key:           g.Key.String(),
			FacultyCode:   g.Key.FacultyCode,
			SpecialtyCode: g.Key.SpecialtyCode,
			Courses:       ToCourseResponses(g.Courses),
		}
	}
	return out
}

type StatusResponse struct {
	Completed          bool                   `json:"completed"`
	CanModify          bool                   `json:"can_modify"`
	CoveredSpecialties []SpecialtyKeyResponse `json:"covered_specialties"`
}

func ToStatusResponse(s *availability.Status) StatusResponse {
	resp := StatusResponse{
		Completed:          s.Completed,
		CanModify:          s.CanModify,
		CoveredSpecialties: make([]SpecialtyKeyResponse, len(s.CoveredSpecialties)),
	}
	for i, k := range s.CoveredSpecialties {
		resp.CoveredSpecialties[i] = toSpecialtyKeyResponse(k)
	}
	return resp
}
