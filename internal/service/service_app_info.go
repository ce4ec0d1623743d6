package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-web-kit/internal/config"
	"github.com/MKhiriev/go-web-kit/internal/logger"
)

// semverPattern matches the "MAJOR.MINOR.PATCH" form the version
// endpoint promises its scrapers.
var semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService validates the configured version up front: refusing
// to start beats serving an empty or free-form string to the deployment
// tooling that reads /api/version.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	if !semverPattern.MatchString(cfg.Version) {
		return nil, fmt.Errorf("%w: %q", ErrMalformedVersion, cfg.Version)
	}

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
