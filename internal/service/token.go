package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
)

// ErrInvalidToken - подпись, срок действия или клеймы токена не прошли проверку.
var ErrInvalidToken = errors.New("невалидный access токен")

// accessClaims - клеймы, которые выпускает внешний сервис аутентификации.
type accessClaims struct {
	Role          string `json:"role"`
	SpecialtyCode string `json:"specialty_code,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager проверяет access токены портала. Выпуск нужен для служебных
// сценариев и тестов: логин живёт во внешнем сервисе.
type TokenManager struct {
	accessSecret []byte
	accessTTL    time.Duration
}

func NewTokenManager(accessSecret string, accessTTL time.Duration) *TokenManager {
	return &TokenManager{
		accessSecret: []byte(accessSecret),
		accessTTL:    accessTTL,
	}
}

// IssueAccess выпускает access токен для пользователя.
func (m *TokenManager) IssueAccess(actor vo.Actor) (string, error) {
	now := time.Now()
	claims := accessClaims{
		Role:          string(actor.Role),
		SpecialtyCode: actor.SpecialtyCode,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.accessSecret)
}

// ParseAccess проверяет токен и возвращает пользователя с ролью.
func (m *TokenManager) ParseAccess(token string) (vo.Actor, error) {
	var claims accessClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return m.accessSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return vo.Actor{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return vo.Actor{}, fmt.Errorf("%w: некорректный sub", ErrInvalidToken)
	}

	role := vo.Role(claims.Role)
	if !role.IsValid() {
		return vo.Actor{}, fmt.Errorf("%w: неизвестная роль %q", ErrInvalidToken, claims.Role)
	}

	actor := vo.Actor{UserID: userID, Role: role}
	if role == vo.RoleDirector {
		actor.SpecialtyCode = claims.SpecialtyCode
	}
	return actor, nil
}
