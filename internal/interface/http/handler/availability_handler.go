package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/recruitment-backend/internal/interface/http/dto"
	"github.com/ignatzorin/recruitment-backend/internal/interface/http/response"
	"github.com/ignatzorin/recruitment-backend/internal/usecase/availability"
)

type AvailabilityHandler struct {
	statusUC       *availability.GetStatusUseCase
	getScheduleUC  *availability.GetScheduleUseCase
	saveScheduleUC *availability.SaveScheduleUseCase
	setDayUC       *availability.SetDayUseCase
	listCoursesUC  *availability.ListCoursesUseCase
	changeCourseUC *availability.ChangeCourseUseCase
}

func NewAvailabilityHandler(
	statusUC *availability.GetStatusUseCase,
	getScheduleUC *availability.GetScheduleUseCase,
	saveScheduleUC *availability.SaveScheduleUseCase,
	setDayUC *availability.SetDayUseCase,
	listCoursesUC *availability.ListCoursesUseCase,
	changeCourseUC *availability.ChangeCourseUseCase,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		statusUC:       statusUC,
		getScheduleUC:  getScheduleUC,
		saveScheduleUC: saveScheduleUC,
		setDayUC:       setDayUC,
		listCoursesUC:  listCoursesUC,
		changeCourseUC: changeCourseUC,
	}
}

func (h *AvailabilityHandler) GetStatus(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	candidateID, ok := candidateFromQuery(c, actor)
	if !ok {
		return
	}

	status, err := h.statusUC.Execute(c.Request.Context(), actor, candidateID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToStatusResponse(status))
}

func (h *AvailabilityHandler) GetSchedule(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	candidateID, ok := candidateFromQuery(c, actor)
	if !ok {
		return
	}

	days, err := h.getScheduleUC.Execute(c.Request.Context(), actor, candidateID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToDaySlotResponses(days))
}

func (h *AvailabilityHandler) SaveSchedule(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	var req dto.SaveScheduleRequest
	if !bindJSON(c, &req) {
		return
	}

	days, err := h.saveScheduleUC.Execute(c.Request.Context(), actor, uuid.MustParse(req.CandidateID), req.ToInputs())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToDaySlotResponses(days))
}

func (h *AvailabilityHandler) SetDay(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	var req dto.SetDayRequest
	if !bindJSON(c, &req) {
		return
	}

	slot, err := h.setDayUC.Execute(c.Request.Context(), actor, uuid.MustParse(req.CandidateID), availability.DayInput{
		Day:    c.Param("day"),
		Active: req.Active,
		Start:  req.Start,
		End:    req.End,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToDaySlotResponse(slot))
}

func (h *AvailabilityHandler) ListCourses(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	candidateID, ok := candidateFromQuery(c, actor)
	if !ok {
		return
	}

	courses, err := h.listCoursesUC.Execute(c.Request.Context(), actor, candidateID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToCourseResponses(courses))
}

func (h *AvailabilityHandler) ListSpecialties(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	candidateID, ok := candidateFromQuery(c, actor)
	if !ok {
		return
	}

	groups, err := h.listCoursesUC.Specialties(c.Request.Context(), actor, candidateID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToSpecialtyGroupResponses(groups))
}

func (h *AvailabilityHandler) AddCourse(c *gin.Context) {
	h.changeCourse(c, availability.CourseSelect)
}

func (h *AvailabilityHandler) RemoveCourse(c *gin.Context) {
	h.changeCourse(c, availability.CourseDeselect)
}

func (h *AvailabilityHandler) changeCourse(c *gin.Context, change availability.CourseChange) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	var req dto.CourseRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.changeCourseUC.Execute(c.Request.Context(), actor, availability.ChangeCourseInput{
		CandidateID: uuid.MustParse(req.CandidateID),
		CourseID:    uuid.MustParse(req.CourseID),
		Change:      change,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.CourseChangeResponse{
		Course:   dto.ToCourseResponse(*result.Course),
		Selected: result.Selected,
	})
}
