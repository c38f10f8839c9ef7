package handlers

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ignatzorin/recruitment-backend/internal/http/middleware"
	"github.com/ignatzorin/recruitment-backend/internal/interface/http/response"
	"github.com/ignatzorin/recruitment-backend/internal/ws"
)

// WSHandler подключает кандидатов к хабу событий заявок.
type WSHandler struct {
	hub      *ws.Hub
	tokens   middleware.AccessParser
	upgrader websocket.Upgrader
}

func NewWSHandler(hub *ws.Hub, tokens middleware.AccessParser, allowedOrigins []string) *WSHandler {
	allowAny := slices.Contains(allowedOrigins, "*")
	return &WSHandler{
		hub:    hub,
		tokens: tokens,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowAny || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

// Handle обслуживает GET /api/ws?token=... Браузер не передаёт заголовок
// Authorization при установке WebSocket, поэтому токен приходит в query.
func (h *WSHandler) Handle(c *gin.Context) {
	rawToken := c.Query("token")
	if rawToken == "" {
		response.Unauthorized(c, "access токен обязателен")
		return
	}

	actor, err := h.tokens.ParseAccess(rawToken)
	if err != nil {
		response.Unauthorized(c, "невалидный access токен")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade сам записал ответ с ошибкой.
		return
	}

	client := ws.NewClient(conn, h.hub, actor.UserID)
	h.hub.Register(client)

	client.Run(c.Request.Context())
}
