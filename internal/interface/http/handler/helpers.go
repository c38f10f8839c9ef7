package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/http/middleware"
	"github.com/ignatzorin/recruitment-backend/internal/interface/http/response"
)

// getActor пишет 401, если пользователь не установлен в контексте.
func getActor(c *gin.Context) (vo.Actor, bool) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		response.Unauthorized(c, "требуется авторизация")
	}
	return actor, ok
}

// candidateFromQuery читает ?candidate_id; без параметра кандидат работает со своим профилем.
func candidateFromQuery(c *gin.Context, actor vo.Actor) (uuid.UUID, bool) {
	raw := c.Query("candidate_id")
	if raw == "" {
		if actor.Role == vo.RoleCandidate {
			return actor.UserID, true
		}
		response.BadRequest(c, "параметр candidate_id обязателен")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		response.BadRequest(c, "некорректный candidate_id")
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON пишет 400 при ошибке разбора тела.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "некорректные данные запроса")
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "некорректный идентификатор "+name)
		return uuid.Nil, false
	}
	return id, true
}
