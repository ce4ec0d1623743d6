// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies
// all application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Bind.Port < 1 || cfg.Bind.Port > 65535 {
		return ErrInvalidBindConfigs
	}

	if cfg.HTTP.TCPBacklog < 0 || cfg.HTTP.RequestTimeout < 0 {
		return ErrInvalidHTTPConfigs
	}

	if cfg.Security.CookieName == "" || cfg.Security.CookieTTL <= 0 {
		return ErrInvalidSecurityConfigs
	}

	if cfg.Proxy.Timeout <= 0 {
		return ErrInvalidProxyConfigs
	}

	return nil
}
