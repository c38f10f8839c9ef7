package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/interface/http/dto"
	"github.com/ignatzorin/recruitment-backend/internal/interface/http/response"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/application"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/submission"
)

type ApplicationHandler struct {
	createUC   *application.CreateApplicationUseCase
	evaluateUC *application.EvaluateApplicationUseCase
	getUC      *application.GetApplicationUseCase
	listUC     *application.ListApplicationsUseCase
	submitUC   *submission.SubmitProfileUseCase
}

func NewApplicationHandler(
	createUC *application.CreateApplicationUseCase,
	evaluateUC *application.EvaluateApplicationUseCase,
	getUC *application.GetApplicationUseCase,
	listUC *application.ListApplicationsUseCase,
	submitUC *submission.SubmitProfileUseCase,
) *ApplicationHandler {
	return &ApplicationHandler{
		createUC:   createUC,
		evaluateUC: evaluateUC,
		getUC:      getUC,
		listUC:     listUC,
		submitUC:   submitUC,
	}
}

// Submit обслуживает POST /profile/submit.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	var req dto.CandidateRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), actor, uuid.MustParse(req.CandidateID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToSubmitResponse(result))
}

// Create - служебное создание заявки, доступно только администратору.
func (h *ApplicationHandler) Create(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	if actor.Role != vo.RoleAdmin {
		response.Forbidden(c, "создавать заявки напрямую может только администратор")
		return
	}

	var req dto.CreateApplicationRequest
	if !bindJSON(c, &req) {
		return
	}

	app, err := h.createUC.Execute(c.Request.Context(), application.CreateApplicationInput{
		CandidateID:   uuid.MustParse(req.CandidateID),
		FacultyCode:   req.FacultyCode,
		SpecialtyCode: req.SpecialtyCode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToApplicationResponse(app))
}

func (h *ApplicationHandler) Evaluate(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	applicationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.EvaluateApplicationRequest
	if !bindJSON(c, &req) {
		return
	}

	input := application.EvaluateApplicationInput{
		ApplicationID:    applicationID,
		NewStatus:        req.NewStatus,
		InterviewMessage: req.InterviewMessage,
	}
	if req.EvaluatorID != "" {
		input.EvaluatorID = uuid.MustParse(req.EvaluatorID)
	}

	app, err := h.evaluateUC.Execute(c.Request.Context(), actor, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToApplicationResponse(app))
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	applicationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	app, err := h.getUC.Execute(c.Request.Context(), actor, applicationID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToApplicationResponse(app))
}

// List обслуживает GET /applications?candidate_id=... или ?specialty_code=...
func (h *ApplicationHandler) List(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	if specialtyCode := c.Query("specialty_code"); specialtyCode != "" {
		apps, err := h.listUC.BySpecialty(c.Request.Context(), actor, specialtyCode)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, dto.ToApplicationResponses(apps))
		return
	}

	candidateID, ok := candidateFromQuery(c, actor)
	if !ok {
		return
	}
	apps, err := h.listUC.ByCandidate(c.Request.Context(), actor, candidateID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToApplicationResponses(apps))
}
