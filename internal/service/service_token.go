package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-web-kit/internal/config"
	"github.com/MKhiriev/go-web-kit/internal/logger"
	"github.com/MKhiriev/go-web-kit/internal/utils"
	"github.com/MKhiriev/go-web-kit/models"
	"github.com/golang-jwt/jwt/v5"
)

type tokenService struct {
	signKey       string
	issuer        string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] from the security
// configuration. An empty sign key means the admin surface cannot be
// called; ParseToken then rejects everything.
func NewTokenService(cfg config.Security, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey:       cfg.TokenSignKey,
		issuer:        cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

func (s *tokenService) IssueToken(ctx context.Context, subject string) (models.ServiceToken, error) {
	token, err := utils.GenerateServiceToken(s.issuer, subject, s.tokenDuration, s.signKey)
	if err != nil {
		return models.ServiceToken{}, fmt.Errorf("issue service token: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("subject", subject).Msg("issued service token")
	return token, nil
}

func (s *tokenService) ParseToken(ctx context.Context, tokenString string) (models.ServiceToken, error) {
	if s.signKey == "" {
		return models.ServiceToken{}, ErrTokensDisabled
	}

	token, err := utils.ValidateServiceToken(tokenString, s.signKey, s.issuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.ServiceToken{}, ErrTokenIsExpired
		}
		return models.ServiceToken{}, err
	}

	return token, nil
}
