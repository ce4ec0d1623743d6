package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withYAML() *configBuilder {
	// The first source naming a file wins, the same precedence every
	// other field follows: CONFIG env beats the -c flag.
	var yamlPath string

	for _, cfg := range b.configs {
		if cfg.YAMLFilePath != "" {
			yamlPath = cfg.YAMLFilePath
			break
		}
	}

	if yamlPath != "" {
		yamlCfg, err := parseYAML(yamlPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, yamlCfg)
	}

	return b
}

// withDefaults appends the built-in defaults. Because mergo only fills
// fields that are still zero, defaults must come last to have the
// lowest priority.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, DefaultConfig())
	return b
}
