package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredYAMLConfig mirrors [StructuredConfig] with the key layout
// used in the YAML configuration file.
type StructuredYAMLConfig struct {
	Bind struct {
		Addr string `yaml:"addr"`
		Port int    `yaml:"port"`
	} `yaml:"bind,omitempty"`

	HTTP struct {
		TCPBacklog     int      `yaml:"tcp-backlog"`
		RequestTimeout Duration `yaml:"request-timeout"`
	} `yaml:"http,omitempty"`

	Security struct {
		CookieSecret  string   `yaml:"cookie-secret"`
		CookieName    string   `yaml:"cookie-name"`
		CookieTTL     Duration `yaml:"cookie-ttl"`
		TokenSignKey  string   `yaml:"token-sign-key"`
		TokenIssuer   string   `yaml:"token-issuer"`
		TokenDuration Duration `yaml:"token-duration"`
	} `yaml:"security,omitempty"`

	Proxy struct {
		ForwardHeaders []string `yaml:"forward-headers"`
		Timeout        Duration `yaml:"timeout"`
	} `yaml:"proxy,omitempty"`

	Storage struct {
		DB struct {
			DSN string `yaml:"dsn"`
		} `yaml:"db,omitempty"`
	} `yaml:"storage,omitempty"`

	App struct {
		Version string `yaml:"version"`
	} `yaml:"app,omitempty"`
}

// parseYAML reads the YAML configuration file at yamlFilePath and maps
// it onto a [StructuredConfig].
//
// A missing file is not an error: the scaffold runs on defaults when no
// configuration file is present, so an absent file yields a zero config
// that contributes nothing to the merge. Parse errors are real errors.
func parseYAML(yamlFilePath string) (*StructuredConfig, error) {
	if _, err := os.Stat(yamlFilePath); errors.Is(err, fs.ErrNotExist) {
		return &StructuredConfig{}, nil
	}

	yamlFile, err := os.Open(yamlFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a yaml file: %w", err)
	}
	defer yamlFile.Close()

	var yamlCfg StructuredYAMLConfig
	if err := yaml.NewDecoder(yamlFile).Decode(&yamlCfg); err != nil {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	cfg := &StructuredConfig{
		Bind: Bind{
			Addr: yamlCfg.Bind.Addr,
			Port: yamlCfg.Bind.Port,
		},
		HTTP: HTTP{
			TCPBacklog:     yamlCfg.HTTP.TCPBacklog,
			RequestTimeout: time.Duration(yamlCfg.HTTP.RequestTimeout),
		},
		Security: Security{
			CookieSecret:  yamlCfg.Security.CookieSecret,
			CookieName:    yamlCfg.Security.CookieName,
			CookieTTL:     time.Duration(yamlCfg.Security.CookieTTL),
			TokenSignKey:  yamlCfg.Security.TokenSignKey,
			TokenIssuer:   yamlCfg.Security.TokenIssuer,
			TokenDuration: time.Duration(yamlCfg.Security.TokenDuration),
		},
		Proxy: Proxy{
			ForwardHeaders: yamlCfg.Proxy.ForwardHeaders,
			Timeout:        time.Duration(yamlCfg.Proxy.Timeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: yamlCfg.Storage.DB.DSN,
			},
		},
		App: App{
			Version: yamlCfg.App.Version,
		},
		YAMLFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports YAML
// unmarshaling from strings like "1h", "30s" as well as raw nanosecond
// integers.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var v interface{}
	if err := value.Decode(&v); err != nil {
		return err
	}

	switch value := v.(type) {
	case int:
		*d = Duration(time.Duration(value))
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("cannot unmarshal %v into a duration", v)
	}
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
