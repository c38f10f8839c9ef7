package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
)

// ErrTooLarge - файл больше допустимого размера.
var ErrTooLarge = errors.New("storage: размер файла превышает лимит")

// ErrUnsupportedType - содержимое не PDF и не изображение.
var ErrUnsupportedType = errors.New("storage: неподдерживаемый тип документа")

var allowedDocumentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

// DetectDocumentType определяет тип по магическим байтам заголовка файла.
func DetectDocumentType(header []byte) (types.Type, error) {
	kind, err := filetype.Match(header)
	if err != nil || kind == filetype.Unknown {
		return types.Unknown, ErrUnsupportedType
	}
	if !allowedDocumentTypes[kind.MIME.Value] {
		return kind, fmt.Errorf("%w: %s", ErrUnsupportedType, kind.MIME.Value)
	}
	return kind, nil
}

// DocumentStorage хранит резюме и подтверждающие документы кандидатов на диске.
type DocumentStorage struct {
	rootPath       string
	maxUploadBytes int64
}

func NewDocumentStorage(rootPath string, maxUploadMB int64) (*DocumentStorage, error) {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: не удалось создать каталог %s: %w", rootPath, err)
	}

	return &DocumentStorage{
		rootPath:       rootPath,
		maxUploadBytes: maxUploadMB * 1024 * 1024,
	}, nil
}

func (s *DocumentStorage) MaxUploadBytes() int64 {
	return s.maxUploadBytes
}

// Save записывает документ через временный файл и возвращает ссылку вида
// "<candidate_id>/<имя>", которую кандидат указывает в разделах профиля.
func (s *DocumentStorage) Save(ctx context.Context, candidateID uuid.UUID, kind types.Type, r io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	fileName := fmt.Sprintf("%d_%s.%s", time.Now().UnixNano(), uuid.NewString()[:8], kind.Extension)
	candidateDir := filepath.Join(s.rootPath, candidateID.String())
	if err := os.MkdirAll(candidateDir, 0o755); err != nil {
		return "", 0, fmt.Errorf("storage: не удалось создать каталог кандидата: %w", err)
	}

	targetPath := filepath.Join(candidateDir, fileName)
	tempPath := targetPath + ".tmp"

	written, err := s.writeLimited(tempPath, r)
	if err != nil {
		_ = os.Remove(tempPath)
		return "", 0, err
	}

	if err := os.Rename(tempPath, targetPath); err != nil {
		_ = os.Remove(tempPath)
		return "", 0, fmt.Errorf("storage: не удалось переименовать файл: %w", err)
	}

	return candidateID.String() + "/" + fileName, written, nil
}

func (s *DocumentStorage) writeLimited(path string, r io.Reader) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("storage: не удалось создать файл: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, &io.LimitedReader{R: r, N: s.maxUploadBytes + 1})
	if err != nil {
		return 0, fmt.Errorf("storage: ошибка записи файла: %w", err)
	}
	if written > s.maxUploadBytes {
		return 0, ErrTooLarge
	}
	return written, f.Close()
}

// ErrInvalidRef - ссылка не имеет вида "<candidate_id>/<имя файла>".
var ErrInvalidRef = errors.New("storage: некорректная ссылка на документ")

// ParseRef разбирает ссылку на владельца и имя файла. Имя не может содержать
// разделителей пути или ссылок на родительский каталог.
func ParseRef(ref string) (uuid.UUID, string, error) {
	ownerRaw, name, ok := strings.Cut(ref, "/")
	if !ok {
		return uuid.Nil, "", ErrInvalidRef
	}
	owner, err := uuid.Parse(ownerRaw)
	if err != nil || owner.String() != ownerRaw {
		return uuid.Nil, "", ErrInvalidRef
	}
	if !validFileName(name) {
		return uuid.Nil, "", ErrInvalidRef
	}
	return owner, name, nil
}

func validFileName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/\\\x00") && filepath.Base(name) == name
}

// Open открывает документ кандидата по имени файла внутри его каталога.
func (s *DocumentStorage) Open(owner uuid.UUID, name string) (*os.File, error) {
	if owner == uuid.Nil || !validFileName(name) {
		return nil, ErrInvalidRef
	}
	return os.Open(filepath.Join(s.rootPath, owner.String(), name))
}
