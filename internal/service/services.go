package service

import (
	"github.com/MKhiriev/go-web-kit/internal/config"
	"github.com/MKhiriev/go-web-kit/internal/logger"
	"github.com/MKhiriev/go-web-kit/internal/store"
)

// Services aggregates the application's service layer for injection
// into the transport handlers.
type Services struct {
	SessionService SessionService
	TokenService   TokenService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	sessionSvc, err := NewSessionService(storages.SessionRegistry, cfg.Security, logger)
	if err != nil {
		return nil, err
	}

	appInfoSvc, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		SessionService: sessionSvc,
		TokenService:   NewTokenService(cfg.Security, logger),
		AppInfoService: appInfoSvc,
	}, nil
}
