package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fortune-auction/gateway/internal/backend"
	"github.com/fortune-auction/gateway/internal/cache"
	"github.com/fortune-auction/gateway/internal/model"
	"github.com/fortune-auction/gateway/pkg/config"
	"github.com/fortune-auction/gateway/pkg/jwt"
	"github.com/fortune-auction/gateway/pkg/logger"
)

type AuthServicer interface {
	Login(ctx context.Context, email, password string) (string, model.UserSession, error)
	Logout(ctx context.Context, tokenString string) error
	Resolve(ctx context.Context, tokenString string) (model.UserSession, error)
}

// AuthService proxies credentials to the marketplace login endpoint and owns
// the session lifecycle: the signed token the browser keeps stands in for the
// old sessionStorage blob, the record itself lives in redis until logout or
// expiry.
type AuthService struct {
	api   backend.Gateway
	cache cache.Cacher
	jm    jwt.SessionManager
	log   *logger.Logger
}

func NewAuthService(api backend.Gateway, c cache.Cacher, log *logger.Logger) (*AuthService, error) {
	jwtManager, err := jwt.NewManager()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AuthService: %w", err)
	}
	return &AuthService{
		api:   api,
		cache: c,
		jm:    jwtManager,
		log:   log,
	}, nil
}

func (as *AuthService) Login(ctx context.Context, email, password string) (string, model.UserSession, error) {
	user, err := as.api.Login(ctx, email, password)
	if err != nil {
		var statusErr *backend.StatusError
		if errors.As(err, &statusErr) && statusErr.IsClientError() {
			return "", model.UserSession{}, ErrInvalidCredentials
		}
		return "", model.UserSession{}, err
	}

	token, tokenID, err := as.jm.GenerateSessionToken(user.AccountID, int(user.Role))
	if err != nil {
		return "", model.UserSession{}, fmt.Errorf("failed to mint session token: %w", err)
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return "", model.UserSession{}, err
	}
	if err := as.cache.Set(ctx, config.SessionKeyPrefix+tokenID, string(raw), config.SessionDuration); err != nil {
		return "", model.UserSession{}, fmt.Errorf("failed to persist session: %w", err)
	}

	as.log.Infow("[AUTH] session opened", "account_id", user.AccountID, "role", user.Role)
	return token, user, nil
}

// Resolve turns a bearer token back into the session it names. A valid token
// whose redis entry is gone means the session was logged out or expired.
func (as *AuthService) Resolve(ctx context.Context, tokenString string) (model.UserSession, error) {
	claims, err := as.jm.ValidateSessionToken(tokenString)
	if err != nil {
		return model.UserSession{}, ErrSessionNotFound
	}

	raw, found, err := as.cache.Get(ctx, config.SessionKeyPrefix+claims.ID)
	if err != nil {
		return model.UserSession{}, err
	}
	if !found {
		return model.UserSession{}, ErrSessionNotFound
	}

	var user model.UserSession
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return model.UserSession{}, fmt.Errorf("corrupt session record: %w", err)
	}
	return user, nil
}

func (as *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := as.jm.ValidateSessionToken(tokenString)
	if err != nil {
		// nothing to tear down for an invalid token
		return nil
	}
	return as.cache.Delete(ctx, config.SessionKeyPrefix+claims.ID)
}
