package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/recruitment-backend/internal/interface/http/dto"
	"github.com/ignatzorin/recruitment-backend/internal/interface/http/response"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/profile"
)

type ProfileHandler struct {
	getProfileUC       *profile.GetProfileUseCase
	completenessUC     *profile.GetCompletenessUseCase
	savePersonalUC     *profile.SavePersonalDataUseCase
	addAcademicUC      *profile.AddAcademicRecordUseCase
	removeAcademicUC   *profile.RemoveAcademicRecordUseCase
	addExperienceUC    *profile.AddWorkExperienceUseCase
	removeExperienceUC *profile.RemoveWorkExperienceUseCase
}

func NewProfileHandler(
	getProfileUC *profile.GetProfileUseCase,
	completenessUC *profile.GetCompletenessUseCase,
	savePersonalUC *profile.SavePersonalDataUseCase,
	addAcademicUC *profile.AddAcademicRecordUseCase,
	removeAcademicUC *profile.RemoveAcademicRecordUseCase,
	addExperienceUC *profile.AddWorkExperienceUseCase,
	removeExperienceUC *profile.RemoveWorkExperienceUseCase,
) *ProfileHandler {
	return &ProfileHandler{
		getProfileUC:       getProfileUC,
		completenessUC:     completenessUC,
		savePersonalUC:     savePersonalUC,
		addAcademicUC:      addAcademicUC,
		removeAcademicUC:   removeAcademicUC,
		addExperienceUC:    addExperienceUC,
		removeExperienceUC: removeExperienceUC,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	candidateID, ok := candidateFromQuery(c, actor)
	if !ok {
		return
	}

	snapshot, err := h.getProfileUC.Execute(c.Request.Context(), actor, candidateID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToProfileResponse(candidateID, snapshot))
}

func (h *ProfileHandler) GetCompleteness(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	candidateID, ok := candidateFromQuery(c, actor)
	if !ok {
		return
	}

	completeness, err := h.completenessUC.Execute(c.Request.Context(), actor, candidateID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToCompletenessResponse(completeness))
}

func (h *ProfileHandler) SavePersonalData(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	var req dto.PersonalDataRequest
	if !bindJSON(c, &req) {
		return
	}
	data, err := req.ToEntity()
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.savePersonalUC.Execute(c.Request.Context(), actor, uuid.MustParse(req.CandidateID), data)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToPersonalDataResponse(p))
}

func (h *ProfileHandler) AddAcademicRecord(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	var req dto.AcademicRecordRequest
	if !bindJSON(c, &req) {
		return
	}
	input, err := req.ToInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	record, err := h.addAcademicUC.Execute(c.Request.Context(), actor, uuid.MustParse(req.CandidateID), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToAcademicRecordResponse(*record))
}

func (h *ProfileHandler) RemoveAcademicRecord(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	recordID, ok := pathID(c, "id")
	if !ok {
		return
	}
	candidateID, ok := candidateFromQuery(c, actor)
	if !ok {
		return
	}

	if err := h.removeAcademicUC.Execute(c.Request.Context(), actor, candidateID, recordID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func (h *ProfileHandler) AddWorkExperience(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	var req dto.WorkExperienceRequest
	if !bindJSON(c, &req) {
		return
	}
	input, err := req.ToInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	experience, err := h.addExperienceUC.Execute(c.Request.Context(), actor, uuid.MustParse(req.CandidateID), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToWorkExperienceResponse(*experience))
}

func (h *ProfileHandler) RemoveWorkExperience(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	experienceID, ok := pathID(c, "id")
	if !ok {
		return
	}
	candidateID, ok := candidateFromQuery(c, actor)
	if !ok {
		return
	}

	if err := h.removeExperienceUC.Execute(c.Request.Context(), actor, candidateID, experienceID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
