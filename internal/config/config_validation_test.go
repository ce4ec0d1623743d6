package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validTestConfig() *StructuredConfig {
	return &StructuredConfig{
		Bind: Bind{Addr: "127.0.0.1", Port: 8080},
		HTTP: HTTP{TCPBacklog: 128, RequestTimeout: 30 * time.Second},
		Security: Security{
			CookieName: "session",
			CookieTTL:  24 * time.Hour,
		},
		Proxy: Proxy{Timeout: 15 * time.Second},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "port zero",
			mutate:  func(cfg *StructuredConfig) { cfg.Bind.Port = 0 },
			wantErr: ErrInvalidBindConfigs,
		},
		{
			name:    "port too large",
			mutate:  func(cfg *StructuredConfig) { cfg.Bind.Port = 70000 },
			wantErr: ErrInvalidBindConfigs,
		},
		{
			name:    "negative tcp backlog",
			mutate:  func(cfg *StructuredConfig) { cfg.HTTP.TCPBacklog = -1 },
			wantErr: ErrInvalidHTTPConfigs,
		},
		{
			name:    "negative request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.HTTP.RequestTimeout = -time.Second },
			wantErr: ErrInvalidHTTPConfigs,
		},
		{
			name:    "empty cookie name",
			mutate:  func(cfg *StructuredConfig) { cfg.Security.CookieName = "" },
			wantErr: ErrInvalidSecurityConfigs,
		},
		{
			name:    "zero cookie ttl",
			mutate:  func(cfg *StructuredConfig) { cfg.Security.CookieTTL = 0 },
			wantErr: ErrInvalidSecurityConfigs,
		},
		{
			name:    "zero proxy timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Proxy.Timeout = 0 },
			wantErr: ErrInvalidProxyConfigs,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := validTestConfig()
			test.mutate(cfg)

			err := cfg.validate()

			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// TestValidate_DefaultConfig verifies that the shipped defaults satisfy
// every invariant.
func TestValidate_DefaultConfig(t *testing.T) {
	assert.NoError(t, DefaultConfig().validate())
}
