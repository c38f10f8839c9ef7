package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/interface/http/response"
	"github.com/ignatzorin/recruitment-backend/internal/service"
)

const ContextActorKey = "actor"

// AccessParser - проверка access токена.
type AccessParser interface {
	ParseAccess(token string) (vo.Actor, error)
}

var _ AccessParser = (*service.TokenManager)(nil)

// AuthMiddleware проверяет Bearer токен и кладёт пользователя в контекст.
func AuthMiddleware(tokens AccessParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			response.Unauthorized(c, "требуется авторизация")
			c.Abort()
			return
		}

		actor, err := tokens.ParseAccess(strings.TrimSpace(raw))
		if err != nil {
			response.Unauthorized(c, "токен невалиден")
			c.Abort()
			return
		}

		c.Set(ContextActorKey, actor)
		c.Next()
	}
}

// CurrentActor возвращает пользователя, установленного AuthMiddleware.
func CurrentActor(c *gin.Context) (vo.Actor, bool) {
	raw, exists := c.Get(ContextActorKey)
	if !exists {
		return vo.Actor{}, false
	}
	actor, ok := raw.(vo.Actor)
	return actor, ok
}
