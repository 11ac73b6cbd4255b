package jwt

import (
	"fmt"
	"time"

	"github.com/fortune-auction/gateway/pkg/config"
	"github.com/fortune-auction/gateway/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionManager signs and verifies the session tokens the gateway hands to
// the browser in place of a raw sessionStorage user blob.
type SessionManager interface {
	GenerateSessionToken(accountID int, role int) (token string, tokenID string, err error)
	ValidateSessionToken(tokenString string) (*config.SessionClaims, error)
}

type Manager struct {
	secret []byte
}

func NewManager() (*Manager, error) {
	secret := utils.GetEnv("SESSION_TOKEN_SECRET", "")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_TOKEN_SECRET must be set in environment")
	}

	return &Manager{
		secret: []byte(secret),
	}, nil
}

// GenerateSessionToken creates a signed session token. The returned token ID
// is the redis key under which the full session record is stored.
func (m *Manager) GenerateSessionToken(accountID int, role int) (string, string, error) {
	now := time.Now()
	tokenID := uuid.NewString()

	claims := config.SessionClaims{
		AccountID: accountID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(config.SessionDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        tokenID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", "", err
	}
	return signed, tokenID, nil
}

// ValidateSessionToken verifies and returns the claims from a session token string.
func (m *Manager) ValidateSessionToken(tokenString string) (*config.SessionClaims, error) {
	claims := &config.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	return claims, nil
}
