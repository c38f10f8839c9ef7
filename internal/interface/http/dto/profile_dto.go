package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

type PersonalDataRequest struct {
	CandidateID string  `json:"candidate_id" binding:"required,uuid"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	NationalID  string  `json:"national_id"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	Gender      string  `json:"gender"`
	Nationality string  `json:"nationality"`
	Address     string  `json:"address"`
	BirthDate   *string `json:"birth_date"`
	CVRef       string  `json:"cv_ref"`
}

func (r PersonalDataRequest) ToEntity() (entity.PersonalData, error) {
	birth, err := parseDate("дата рождения", r.BirthDate)
	if err != nil {
		return entity.PersonalData{}, err
	}
	return entity.PersonalData{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		NationalID:  r.NationalID,
		Phone:       r.Phone,
		Email:       r.Email,
		Gender:      r.Gender,
		Nationality: r.Nationality,
		Address:     r.Address,
		BirthDate:   birth,
		CVRef:       r.CVRef,
	}, nil
}

type AcademicRecordRequest struct {
	CandidateID string  `json:"candidate_id" binding:"required,uuid"`
	DegreeType  string  `json:"degree_type" binding:"required"`
	Field       string  `json:"field"`
	Institution string  `json:"institution" binding:"required"`
	Country     string  `json:"country"`
	ObtainedAt  *string `json:"obtained_at"`
	DocumentRef string  `json:"document_ref"`
}

func (r AcademicRecordRequest) ToInput() (entity.AcademicRecordInput, error) {
	obtained, err := parseDate("дата получения", r.ObtainedAt)
	if err != nil {
		return entity.AcademicRecordInput{}, err
	}
	return entity.AcademicRecordInput{
		DegreeType:  r.DegreeType,
		Field:       r.Field,
		Institution: r.Institution,
		Country:     r.Country,
		ObtainedAt:  obtained,
		DocumentRef: r.DocumentRef,
	}, nil
}

type WorkExperienceRequest struct {
	CandidateID string  `json:"candidate_id" binding:"required,uuid"`
	Country     string  `json:"country"`
	Sector      string  `json:"sector"`
	Employer    string  `json:"employer" binding:"required"`
	TaxID       *string `json:"tax_id"`
	Role        string  `json:"role" binding:"required"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     *string `json:"end_date"`
	Current     bool    `json:"is_current"`
	DocumentRef *string `json:"document_ref"`
}

func (r WorkExperienceRequest) ToInput() (entity.WorkExperienceInput, error) {
	start, err := parseDate("дата начала", &r.StartDate)
	if err != nil {
		return entity.WorkExperienceInput{}, err
	}
	if start == nil {
		return entity.WorkExperienceInput{}, apperror.Validation("дата начала обязательна")
	}
	end, err := parseDate("дата окончания", r.EndDate)
	if err != nil {
		return entity.WorkExperienceInput{}, err
	}
	return entity.WorkExperienceInput{
		Country:     r.Country,
		Sector:      r.Sector,
		Employer:    r.Employer,
		TaxID:       r.TaxID,
		Role:        r.Role,
		StartDate:   *start,
		EndDate:     end,
		Current:     r.Current,
		DocumentRef: r.DocumentRef,
	}, nil
}

type PersonalDataResponse struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	NationalID  string  `json:"national_id"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	Gender      string  `json:"gender"`
	Nationality string  `json:"nationality"`
	Address     string  `json:"address"`
	BirthDate   *string `json:"birth_date"`
	CVRef       string  `json:"cv_ref"`
}

type AcademicRecordResponse struct {
	ID          uuid.UUID `json:"id"`
	DegreeType  string    `json:"degree_type"`
	Field       string    `json:"field"`
	Institution string    `json:"institution"`
	Country     string    `json:"country"`
	ObtainedAt  *string   `json:"obtained_at"`
	DocumentRef string    `json:"document_ref"`
}

type WorkExperienceResponse struct {
	ID          uuid.UUID `json:"id"`
	Country     string    `json:"country"`
	Sector      string    `json:"sector"`
	Employer    string    `json:"employer"`
	TaxID       *string   `json:"tax_id"`
	Role        string    `json:"role"`
	StartDate   string    `json:"start_date"`
	EndDate     *string   `json:"end_date"`
	Current     bool      `json:"is_current"`
	DocumentRef *string   `json:"document_ref"`
}

type CompletenessResponse struct {
	PersonalData bool     `json:"personal_data"`
	Academic     bool     `json:"academic"`
	Experience   bool     `json:"experience"`
	Availability bool     `json:"availability"`
	Complete     bool     `json:"complete"`
	Missing      []string `json:"missing"`
}

type ProfileResponse struct {
	CandidateID     uuid.UUID                `json:"candidate_id"`
	PersonalData    *PersonalDataResponse    `json:"personal_data"`
	Completed       bool                     `json:"completed"`
	SubmittedAt     *time.Time               `json:"submitted_at"`
	AcademicRecords []AcademicRecordResponse `json:"academic_records"`
	Experiences     []WorkExperienceResponse `json:"work_experience"`
	Schedule        []DaySlotResponse        `json:"schedule"`
	CourseIDs       []uuid.UUID              `json:"course_ids"`
	Completeness    CompletenessResponse     `json:"completeness"`
}

func ToPersonalDataResponse(p *entity.Profile) *PersonalDataResponse {
	if p == nil {
		return nil
	}
	return &PersonalDataResponse{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		NationalID:  p.NationalID,
		Phone:       p.Phone,
		Email:       p.Email,
		Gender:      p.Gender,
		Nationality: p.Nationality,
		Address:     p.Address,
		BirthDate:   formatDate(p.BirthDate),
		CVRef:       p.CVRef,
	}
}

func ToAcademicRecordResponse(r entity.AcademicRecord) AcademicRecordResponse {
	return AcademicRecordResponse{
		ID:          r.ID,
		DegreeType:  r.DegreeType,
		Field:       r.Field,
		Institution: r.Institution,
		Country:     r.Country,
		ObtainedAt:  formatDate(r.ObtainedAt),
		DocumentRef: r.DocumentRef,
	}
}

func ToWorkExperienceResponse(w entity.WorkExperience) WorkExperienceResponse {
	return WorkExperienceResponse{
		ID:          w.ID,
		Country:     w.Country,
		Sector:      w.Sector,
		Employer:    w.Employer,
		TaxID:       w.TaxID,
		Role:        w.Role,
		StartDate:   w.StartDate.Format(dateLayout),
		EndDate:     formatDate(w.EndDate),
		Current:     w.Current,
		DocumentRef: w.DocumentRef,
	}
}

func ToCompletenessResponse(c entity.Completeness) CompletenessResponse {
	missing := c.MissingSections()
	if missing == nil {
		missing = []string{}
	}
	return CompletenessResponse{
		PersonalData: c.PersonalData,
		Academic:     c.Academic,
		Experience:   c.Experience,
		Availability: c.Availability,
		Complete:     c.IsProfileComplete(),
		Missing:      missing,
	}
}

func ToProfileResponse(candidateID uuid.UUID, s *entity.ProfileSnapshot) ProfileResponse {
	resp := ProfileResponse{
		CandidateID:     candidateID,
		PersonalData:    ToPersonalDataResponse(s.Profile),
		AcademicRecords: make([]AcademicRecordResponse, 0, len(s.AcademicRecords)),
		Experiences:     make([]WorkExperienceResponse, 0, len(s.Experiences)),
		Schedule:        []DaySlotResponse{},
		CourseIDs:       s.Selection.IDs(),
		Completeness:    ToCompletenessResponse(s.Completeness()),
	}
	if s.Profile != nil {
		resp.Completed = s.Profile.Completed
		resp.SubmittedAt = s.Profile.SubmittedAt
	}
	for _, r := range s.AcademicRecords {
		resp.AcademicRecords = append(resp.AcademicRecords, ToAcademicRecordResponse(r))
	}
	for _, w := range s.Experiences {
		resp.Experiences = append(resp.Experiences, ToWorkExperienceResponse(w))
	}
	if s.Availability != nil {
		for slot := range s.Availability.CompleteDays() {
			resp.Schedule = append(resp.Schedule, ToDaySlotResponse(slot))
		}
	}
	if resp.CourseIDs == nil {
		resp.CourseIDs = []uuid.UUID{}
	}
	return resp
}
