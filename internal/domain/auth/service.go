package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"skuforge/internal/core/apperror"
	"skuforge/pkg/logger"
)

// Service authenticates the configured admin account and issues tokens.
type Service struct {
	jwt          *JWTService
	adminEmail   string
	adminPwdHash string
}

// NewService creates the auth service. adminPwdHash is a bcrypt hash.
func NewService(jwt *JWTService, adminEmail, adminPwdHash string) *Service {
	return &Service{
		jwt:          jwt,
		adminEmail:   adminEmail,
		adminPwdHash: adminPwdHash,
	}
}

// Token is an issued access token with its expiry.
type Token struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Login checks credentials against the configured admin account.
// Wrong email and wrong password produce the same error.
func (s *Service) Login(ctx context.Context, email, password string) (*Token, error) {
	if email != s.adminEmail {
		// burn a compare anyway so the timing does not leak which field failed
		_ = bcrypt.CompareHashAndPassword([]byte(s.adminPwdHash), []byte(password))
		return nil, apperror.NewUnauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPwdHash), []byte(password)); err != nil {
		logger.Warn(ctx, "failed login attempt", "email", email)
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(s.adminEmail, s.adminEmail, true)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	logger.Info(ctx, "admin logged in", "email", email)
	return &Token{AccessToken: token, ExpiresAt: expiresAt}, nil
}
