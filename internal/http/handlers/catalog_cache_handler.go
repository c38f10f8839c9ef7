package handlers

import (
	"github.com/gin-gonic/gin"

	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/http/middleware"
	"github.com/ignatzorin/recruitment-backend/internal/interface/http/response"
	"github.com/ignatzorin/recruitment-backend/internal/logger"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

// CatalogInvalidator сбрасывает закэшированные курсы каталога.
type CatalogInvalidator interface {
	Invalidate()
}

// CatalogCacheHandler даёт администратору сбросить кэш курсов после правки справочника,
// не дожидаясь истечения TTL.
type CatalogCacheHandler struct {
	catalog CatalogInvalidator
}

func NewCatalogCacheHandler(catalog CatalogInvalidator) *CatalogCacheHandler {
	return &CatalogCacheHandler{catalog: catalog}
}

// Invalidate обрабатывает POST /admin/catalog/cache/invalidate.
func (h *CatalogCacheHandler) Invalidate(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		response.Unauthorized(c, "требуется авторизация")
		return
	}
	if actor.Role != vo.RoleAdmin {
		response.Error(c, apperror.ErrForbidden)
		return
	}

	h.catalog.Invalidate()
	logger.L().WithField("user_id", actor.UserID).Info("catalog: кэш курсов сброшен")
	response.NoContent(c)
}
