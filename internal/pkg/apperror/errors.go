package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrCodeNotFound             ErrorCode = "NOT_FOUND"
	ErrCodeUnauthorized         ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden            ErrorCode = "FORBIDDEN"
	ErrCodeBadRequest           ErrorCode = "BAD_REQUEST"
	ErrCodeConflict             ErrorCode = "CONFLICT"
	ErrCodeInternal             ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation           ErrorCode = "VALIDATION_ERROR"
	ErrCodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	ErrCodeIncompleteProfile    ErrorCode = "INCOMPLETE_PROFILE"
	ErrCodeNoNewSpecialty       ErrorCode = "NO_NEW_SPECIALTY"
	ErrCodeDuplicateApplication ErrorCode = "DUPLICATE_APPLICATION"
	ErrCodeLocked               ErrorCode = "LOCKED"
)

type AppError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Cause:      err,
	}
}

// Validation - сокращение для ошибок валидации полей.
func Validation(format string, args ...any) *AppError {
	return New(ErrCodeValidation, fmt.Sprintf(format, args...))
}

func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeBadRequest, ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeConflict, ErrCodeDuplicateApplication:
		return http.StatusConflict
	case ErrCodeIncompleteProfile, ErrCodeNoNewSpecialty:
		return http.StatusUnprocessableEntity
	case ErrCodeLocked:
		return http.StatusLocked
	default:
		return http.StatusInternalServerError
	}
}

// CodeOf возвращает код ошибки или пустую строку, если это не AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// InternalMessage - текст, который клиент видит вместо внутренних ошибок.
const InternalMessage = "внутренняя ошибка сервера"

// Public возвращает код и сообщение, безопасные для клиента. Ошибки БД, внутренние
// ошибки и ошибки без кода сводятся к INTERNAL_ERROR без подробностей.
func Public(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != ErrCodeDatabaseError && appErr.Code != ErrCodeInternal {
		return appErr, true
	}
	return New(ErrCodeInternal, InternalMessage), false
}

func IsNotFound(err error) bool {
	return CodeOf(err) == ErrCodeNotFound
}

func IsForbidden(err error) bool {
	return CodeOf(err) == ErrCodeForbidden
}

func IsValidation(err error) bool {
	return CodeOf(err) == ErrCodeValidation
}

func IsLocked(err error) bool {
	return CodeOf(err) == ErrCodeLocked
}

func IsDuplicateApplication(err error) bool {
	return CodeOf(err) == ErrCodeDuplicateApplication
}

func IsIncompleteProfile(err error) bool {
	return CodeOf(err) == ErrCodeIncompleteProfile
}

func IsNoNewSpecialty(err error) bool {
	return CodeOf(err) == ErrCodeNoNewSpecialty
}

var (
	ErrProfileNotFound        = New(ErrCodeNotFound, "профиль кандидата не найден")
	ErrApplicationNotFound    = New(ErrCodeNotFound, "заявка не найдена")
	ErrCourseNotFound         = New(ErrCodeNotFound, "курс не найден")
	ErrAcademicRecordNotFound = New(ErrCodeNotFound, "запись об образовании не найдена")
	ErrExperienceNotFound     = New(ErrCodeNotFound, "запись об опыте работы не найдена")
	ErrUnauthorized           = New(ErrCodeUnauthorized, "требуется авторизация")
	ErrForbidden              = New(ErrCodeForbidden, "недостаточно прав")
	ErrLocked                 = New(ErrCodeLocked, "данные профиля заблокированы после подачи")
	ErrIncompleteProfile      = New(ErrCodeIncompleteProfile, "профиль заполнен не полностью")
	ErrNoNewSpecialty         = New(ErrCodeNoNewSpecialty, "нет новых специальностей для подачи заявки")
	ErrDuplicateApplication   = New(ErrCodeDuplicateApplication, "заявка на эту специальность уже существует")
)
