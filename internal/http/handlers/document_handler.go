package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/recruitment-backend/internal/http/middleware"
	"github.com/ignatzorin/recruitment-backend/internal/interface/http/dto"
	"github.com/ignatzorin/recruitment-backend/internal/interface/http/response"
	"github.com/ignatzorin/recruitment-backend/internal/logger"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
	"github.com/ignatzorin/recruitment-backend/internal/storage"
)

// DocumentHandler принимает резюме и подтверждающие документы кандидатов.
type DocumentHandler struct {
	storage *storage.DocumentStorage
}

func NewDocumentHandler(storage *storage.DocumentStorage) *DocumentHandler {
	return &DocumentHandler{storage: storage}
}

// Upload обрабатывает POST /documents (multipart: file, candidate_id).
func (h *DocumentHandler) Upload(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		response.Unauthorized(c, "требуется авторизация")
		return
	}

	candidateID := actor.UserID
	if raw := c.PostForm("candidate_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "некорректный candidate_id")
			return
		}
		candidateID = parsed
	}
	if !actor.CanActFor(candidateID) {
		response.Error(c, apperror.ErrForbidden)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "поле file обязательно")
		return
	}
	if file.Size == 0 {
		response.BadRequest(c, "файл не может быть пустым")
		return
	}
	if file.Size > h.storage.MaxUploadBytes() {
		response.BadRequest(c, "размер файла превышает допустимый")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer src.Close()

	// Тип определяется по магическим байтам, расширение имени не учитывается.
	header := make([]byte, 512)
	n, err := io.ReadFull(src, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		response.BadRequest(c, "не удалось прочитать файл")
		return
	}
	kind, err := storage.DetectDocumentType(header[:n])
	if err != nil {
		response.BadRequest(c, "разрешены только PDF, JPEG и PNG")
		return
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		response.Error(c, err)
		return
	}

	ref, size, err := h.storage.Save(c.Request.Context(), candidateID, kind, src)
	if err != nil {
		if errors.Is(err, storage.ErrTooLarge) {
			response.BadRequest(c, "размер файла превышает допустимый")
			return
		}
		response.Error(c, err)
		return
	}

	logger.ForCandidate(candidateID).WithFields(logrus.Fields{
		"ref":  ref,
		"type": kind.MIME.Value,
		"size": size,
	}).Info("documents: документ загружен")

	response.Created(c, dto.DocumentResponse{Ref: ref, ContentType: kind.MIME.Value, Size: size})
}

// Download обрабатывает GET /documents?ref=... Директора читают документы любых кандидатов.
func (h *DocumentHandler) Download(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		response.Unauthorized(c, "требуется авторизация")
		return
	}

	owner, name, err := storage.ParseRef(c.Query("ref"))
	if err != nil {
		response.BadRequest(c, "некорректная ссылка на документ")
		return
	}
	if !actor.CanViewCandidate(owner) {
		response.Error(c, apperror.ErrForbidden)
		return
	}

	f, err := h.storage.Open(owner, name)
	if err != nil {
		response.Error(c, apperror.New(apperror.ErrCodeNotFound, "документ не найден"))
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+name)
	http.ServeContent(c.Writer, c.Request, name, info.ModTime(), f)
}
