package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/ignatzorin/recruitment-backend/internal/domain/valueobject"
)

const testSecret = "test-secret-which-is-long-enough-32"

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)
	director := vo.Actor{UserID: uuid.New(), Role: vo.RoleDirector, SpecialtyCode: "EDU-PRIM"}

	token, err := m.IssueAccess(director)
	require.NoError(t, err)

	got, err := m.ParseAccess(token)
	require.NoError(t, err)
	assert.Equal(t, director, got)
}

func TestTokenManager_SpecialtyOnlyForDirectors(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)
	token, err := m.IssueAccess(vo.Actor{UserID: uuid.New(), Role: vo.RoleCandidate, SpecialtyCode: "EDU-PRIM"})
	require.NoError(t, err)

	got, err := m.ParseAccess(token)
	require.NoError(t, err)
	assert.Empty(t, got.SpecialtyCode)
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	t.Run("другой секрет", func(t *testing.T) {
		token, err := NewTokenManager("another-secret-another-secret-123", time.Hour).
			IssueAccess(vo.Actor{UserID: uuid.New(), Role: vo.RoleAdmin})
		require.NoError(t, err)
		_, err = m.ParseAccess(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("истёк", func(t *testing.T) {
		token, err := NewTokenManager(testSecret, -time.Minute).
			IssueAccess(vo.Actor{UserID: uuid.New(), Role: vo.RoleAdmin})
		require.NoError(t, err)
		_, err = m.ParseAccess(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("неизвестная роль", func(t *testing.T) {
		token, err := m.IssueAccess(vo.Actor{UserID: uuid.New(), Role: vo.Role("client")})
		require.NoError(t, err)
		_, err = m.ParseAccess(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("без срока действия", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": uuid.NewString(), "role": "admin"})
		token, err := raw.SignedString([]byte(testSecret))
		require.NoError(t, err)
		_, err = m.ParseAccess(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("мусор", func(t *testing.T) {
		_, err := m.ParseAccess("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
