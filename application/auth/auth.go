package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/mduval/wedding-rsvp/cmd/config"
	"github.com/mduval/wedding-rsvp/constant"
	"github.com/mduval/wedding-rsvp/model"
	"github.com/mduval/wedding-rsvp/session"
	"github.com/mduval/wedding-rsvp/utils/errors"
	"github.com/mduval/wedding-rsvp/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthApp checks admin credentials and mints/verifies session tokens.
// Which Verify* method the gate calls depends on the configured strategy.
type AuthApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (token string, expiresAt time.Time, err error)
	VerifyCookieToken(token string) (username string, ok bool)
	VerifyBasic(username, password string) bool
	VerifyBearer(token string) bool
}

type authAppImpl struct {
	config *config.Config
}

func NewAuthApp(config *config.Config) AuthApp {
	return &authAppImpl{config: config}
}

func (s *authAppImpl) Login(_ context.Context, req *model.LoginRequest) (string, time.Time, error) {
	cfg := s.config.Auth
	if cfg.AdminUser == "" || cfg.Secret == "" || (cfg.AdminPassword == "" && cfg.AdminPasswordHash == "") {
		logger.Error("[Login] admin credentials or secret not configured")
		return "", time.Time{}, errors.SetCustomError(constant.ErrServerConfig)
	}

	if !s.checkCredentials(req.Username, req.Password) {
		return "", time.Time{}, errors.SetCustomError(constant.ErrBadCredentials)
	}

	expiresAt := time.Now().Add(cfg.SessionTTL)
	token, err := session.Encode(session.Payload{
		Username:  req.Username,
		ExpiresAt: expiresAt.UnixMilli(),
	}, cfg.Secret)
	if err != nil {
		logger.Error("[Login] err session.Encode", zap.String("error", err.Error()))
		return "", time.Time{}, errors.SetCustomError(constant.ErrInternal)
	}

	return token, expiresAt, nil
}

func (s *authAppImpl) VerifyCookieToken(token string) (string, bool) {
	return session.Verify(token, s.config.Auth.Secret, time.Now())
}

func (s *authAppImpl) VerifyBasic(username, password string) bool {
	return s.checkCredentials(username, password)
}

func (s *authAppImpl) VerifyBearer(token string) bool {
	if s.config.Auth.APIToken == "" {
		return false
	}
	return secureEqual(token, s.config.Auth.APIToken)
}

// checkCredentials compares against the configured admin identity. A bcrypt
// hash takes precedence over the plaintext password when both are set.
func (s *authAppImpl) checkCredentials(username, password string) bool {
	cfg := s.config.Auth

	userOK := secureEqual(username, cfg.AdminUser)

	var passOK bool
	if cfg.AdminPasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(password)) == nil
	} else {
		passOK = cfg.AdminPassword != "" && secureEqual(password, cfg.AdminPassword)
	}

	return userOK && passOK
}

func secureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
