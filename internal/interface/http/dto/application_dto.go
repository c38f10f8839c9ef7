package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/submission"
)

type CreateApplicationRequest struct {
	CandidateID   string `json:"candidate_id" binding:"required,uuid"`
	FacultyCode   string `json:"faculty_code" binding:"required"`
	SpecialtyCode string `json:"specialty_code" binding:"required"`
}

type EvaluateApplicationRequest struct {
	NewStatus        string  `json:"new_status" binding:"required"`
	InterviewMessage *string `json:"interview_message"`
	EvaluatorID      string  `json:"evaluator_id" binding:"omitempty,uuid"`
}

type ApplicationResponse struct {
	ID               uuid.UUID  `json:"id"`
	CandidateID      uuid.UUID  `json:"candidate_id"`
	FacultyCode      string     `json:"faculty_code"`
	SpecialtyCode    string     `json:"specialty_code"`
	Status           string     `json:"status"`
	SubmittedAt      time.Time  `json:"submitted_at"`
	EvaluatorID      *uuid.UUID `json:"evaluator_id"`
	InterviewMessage *string    `json:"interview_message"`
	EvaluatedAt      *time.Time `json:"evaluated_at"`
}

func ToApplicationResponse(a *entity.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:               a.ID,
		CandidateID:      a.CandidateID,
		FacultyCode:      a.FacultyCode,
		SpecialtyCode:    a.SpecialtyCode,
		Status:           string(a.Status),
		SubmittedAt:      a.SubmittedAt,
		EvaluatorID:      a.EvaluatorID,
		InterviewMessage: a.InterviewMessage,
		EvaluatedAt:      a.EvaluatedAt,
	}
}

func ToApplicationResponses(apps []*entity.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, len(apps))
	for i, a := range apps {
		out[i] = ToApplicationResponse(a)
	}
	return out
}

type FailedSpecialtyResponse struct {
	FacultyCode   string `json:"faculty_code"`
	SpecialtyCode string `json:"specialty_code"`
	Code          string `json:"code"`
	Reason        string `json:"reason"`
}

type SubmitResponse struct {
	ApplicationsCreated int                       `json:"applications_created"`
	Applications        []ApplicationResponse     `json:"applications"`
	FailedSpecialties   []FailedSpecialtyResponse `json:"failed_specialties"`
}

func ToSubmitResponse(r *submission.Result) SubmitResponse {
	resp := SubmitResponse{
		ApplicationsCreated: r.ApplicationsCreated,
		Applications:        ToApplicationResponses(r.Applications),
		FailedSpecialties:   make([]FailedSpecialtyResponse, len(r.FailedSpecialties)),
	}
	for i, f := range r.FailedSpecialties {
		resp.FailedSpecialties[i] = FailedSpecialtyResponse{
			FacultyCode:   f.FacultyCode,
			SpecialtyCode: f.SpecialtyCode,
			Code:          string(f.Code),
			Reason:        f.Reason,
		}
	}
	return resp
}

type DocumentResponse struct {
	Ref         string `json:"ref"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}
