package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
	"github.com/ignatzorin/recruitment-backend/internal/http/middleware"
	"github.com/ignatzorin/recruitment-backend/internal/storage"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		ping   pingerFunc
		status int
	}{
		{name: "healthy", ping: func(context.Context) error { return nil }, status: http.StatusOK},
		{name: "database down", ping: func(context.Context) error { return errors.New("connection refused") }, status: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", NewHealthHandler(map[string]Pinger{"database": tt.ping}).Health)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.status, w.Code)

			var body HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Contains(t, body.Checks["database"], "healthy")
		})
	}
}

func withActor(actor vo.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextActorKey, actor)
		c.Next()
	}
}

func multipartBody(t *testing.T, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "cv.pdf")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestDocumentHandler_UploadAndDownload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	docs, err := storage.NewDocumentStorage(t.TempDir(), 1)
	require.NoError(t, err)
	h := NewDocumentHandler(docs)

	candidateID := uuid.New()
	owner := vo.Actor{UserID: candidateID, Role: vo.RoleCandidate}

	r := gin.New()
	r.POST("/documents", withActor(owner), h.Upload)
	r.GET("/documents", withActor(owner), h.Download)

	pdf := append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte("x"), 64)...)
	body, contentType := multipartBody(t, pdf)
	req := httptest.NewRequest(http.MethodPost, "/documents", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data struct {
			Ref         string `json:"ref"`
			ContentType string `json:"content_type"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "application/pdf", created.Data.ContentType)
	refOwner, _, err := storage.ParseRef(created.Data.Ref)
	require.NoError(t, err)
	assert.Equal(t, candidateID, refOwner)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/documents?ref="+created.Data.Ref, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pdf, w.Body.Bytes())
}

func TestDocumentHandler_RejectsUnsupportedType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	docs, err := storage.NewDocumentStorage(t.TempDir(), 1)
	require.NoError(t, err)

	r := gin.New()
	r.POST("/documents", withActor(vo.Actor{UserID: uuid.New(), Role: vo.RoleCandidate}), NewDocumentHandler(docs).Upload)

	body, contentType := multipartBody(t, []byte("just some plain text, not a document"))
	req := httptest.NewRequest(http.MethodPost, "/documents", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocumentHandler_DownloadForeignDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)
	docs, err := storage.NewDocumentStorage(t.TempDir(), 1)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/documents", withActor(vo.Actor{UserID: uuid.New(), Role: vo.RoleCandidate}), NewDocumentHandler(docs).Download)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/documents?ref="+uuid.New().String()+"/cv.pdf", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/documents", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocumentHandler_DownloadRejectsParentEscape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	docs, err := storage.NewDocumentStorage(t.TempDir(), 1)
	require.NoError(t, err)

	victim := uuid.New()
	kind, err := storage.DetectDocumentType([]byte("%PDF-1.4\n"))
	require.NoError(t, err)
	secret := []byte("%PDF-1.4\nsecret diploma scan")
	ref, _, err := docs.Save(context.Background(), victim, kind, bytes.NewReader(secret))
	require.NoError(t, err)

	attacker := uuid.New()
	r := gin.New()
	r.GET("/documents", withActor(vo.Actor{UserID: attacker, Role: vo.RoleCandidate}), NewDocumentHandler(docs).Download)

	escaped := attacker.String() + "/../" + ref
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/documents?ref="+url.QueryEscape(escaped), nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Body.String(), "secret diploma scan")
}

type countingInvalidator struct {
	calls int
}

func (c *countingInvalidator) Invalidate() { c.calls++ }

func TestCatalogCacheHandler_Invalidate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		role      vo.Role
		wantCode  int
		wantCalls int
	}{
		{"admin", vo.RoleAdmin, http.StatusNoContent, 1},
		{"director", vo.RoleDirector, http.StatusForbidden, 0},
		{"candidate", vo.RoleCandidate, http.StatusForbidden, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &countingInvalidator{}
			r := gin.New()
			r.POST("/invalidate", withActor(vo.Actor{UserID: uuid.New(), Role: tt.role}), NewCatalogCacheHandler(inv).Invalidate)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/invalidate", nil))
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantCalls, inv.calls)
		})
	}
}
