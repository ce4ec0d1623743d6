package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-web-kit/internal/config"
	"github.com/MKhiriev/go-web-kit/internal/logger"
	"github.com/MKhiriev/go-web-kit/internal/session"
	"github.com/MKhiriev/go-web-kit/internal/store"
	"github.com/MKhiriev/go-web-kit/models"
)

type sessionService struct {
	codec      *session.Codec
	registry   store.SessionRegistry
	cookieName string
	cookieTTL  time.Duration

	logger *logger.Logger
}

// NewSessionService wires the signed-cookie codec and the optional
// revocation registry into a [SessionService].
//
// An empty cookie secret yields a disabled service: Issue and Verify
// return [ErrSessionsDisabled] and the middleware skips cookie handling
// entirely, mirroring a deployment that has not opted into sessions.
func NewSessionService(registry store.SessionRegistry, cfg config.Security, logger *logger.Logger) (SessionService, error) {
	svc := &sessionService{
		registry:   registry,
		cookieName: cfg.CookieName,
		cookieTTL:  cfg.CookieTTL,
		logger:     logger,
	}

	if cfg.CookieSecret == "" {
		logger.Warn().Msg("no cookie secret configured, session cookies disabled")
		return svc, nil
	}

	codec, err := session.NewCodec(cfg.CookieSecret, cfg.CookieTTL)
	if err != nil {
		return nil, err
	}
	svc.codec = codec

	return svc, nil
}

func (s *sessionService) Issue(ctx context.Context) (models.Session, string, error) {
	if s.codec == nil {
		return models.Session{}, "", ErrSessionsDisabled
	}

	sess := session.New(s.cookieTTL)
	signed := s.codec.Sign(s.cookieName, sess.ID)

	if s.registry != nil {
		if err := s.registry.RegisterSession(ctx, sess); err != nil {
			return models.Session{}, "", fmt.Errorf("register session: %w", err)
		}
	}

	logger.FromContext(ctx).Debug().Str("session_id", sess.ID).Msg("issued session")
	return sess, signed, nil
}

func (s *sessionService) Verify(ctx context.Context, raw string) (models.Session, error) {
	if s.codec == nil {
		return models.Session{}, ErrSessionsDisabled
	}

	id, err := s.codec.Verify(s.cookieName, raw)
	if err != nil {
		return models.Session{}, err
	}

	if s.registry != nil {
		revoked, err := s.registry.IsRevoked(ctx, id)
		if err != nil {
			return models.Session{}, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return models.Session{}, ErrSessionRevoked
		}
	}

	return models.Session{ID: id}, nil
}

func (s *sessionService) Revoke(ctx context.Context, sessionID string) error {
	if s.registry == nil {
		return ErrRegistryDisabled
	}

	return s.registry.RevokeSession(ctx, sessionID)
}

func (s *sessionService) Get(ctx context.Context, sessionID string) (models.SessionRecord, error) {
	if s.registry == nil {
		return models.SessionRecord{}, ErrRegistryDisabled
	}

	return s.registry.GetSession(ctx, sessionID)
}

func (s *sessionService) Enabled() bool {
	return s.codec != nil
}

func (s *sessionService) RegistryEnabled() bool {
	return s.registry != nil
}

func (s *sessionService) CookieName() string {
	return s.cookieName
}

func (s *sessionService) CookieTTL() time.Duration {
	return s.cookieTTL
}
