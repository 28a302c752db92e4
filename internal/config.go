package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvBaseURL  = "ARCA_BASE_URL"
	EnvUsername = "ARCA_USERNAME"
	EnvPassword = "ARCA_PASSWORD"
	EnvPrompt   = "ARCA_PROMPT"
)

// Config holds the settings of a run. Password is only ever taken from the
// environment and never written to disk.
type Config struct {
	BaseURL     string        `yaml:"base_url" validate:"required,url"`
	Username    string        `yaml:"username"`
	Password    string        `yaml:"-"`
	DefaultYear string        `yaml:"default_year" validate:"omitempty,len=4,numeric"`
	Timeout     time.Duration `yaml:"timeout" validate:"gt=0"`
	Prompt      string        `yaml:"prompt" validate:"omitempty,oneof=plain tui"`
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() *Config {
	return &Config{
		BaseURL:     DefaultBaseURL,
		DefaultYear: DefaultYear,
		Timeout:     DefaultTimeout,
		Prompt:      "plain",
	}
}

// DefaultConfigPath returns ~/.arca-booking/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".arca-booking", "config.yaml"), nil
}

// LoadConfig reads the config file at path, then applies .env and
// environment overrides and validates the result. An empty path means the
// default location, which may be absent; an explicit path must exist.
func LoadConfig(path string, envFiles ...string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultConfigPath(); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		LogDebug("Loaded config from %s", path)
	case errors.Is(err, os.ErrNotExist) && !explicit:
		LogDebug("No config file at %s, using defaults", path)
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to load %s: %w", f, err)
			}
			continue
		}
		LogDebug("Loaded environment from %s", f)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvUsername); v != "" {
		c.Username = v
	}
	if v := os.Getenv(EnvPassword); v != "" {
		c.Password = v
	}
	if v := os.Getenv(EnvPrompt); v != "" {
		c.Prompt = v
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the settings, reporting the first offending field
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		reason := fe.Tag()
		if fe.Param() != "" {
			reason += "=" + fe.Param()
		}
		return &ValidationError{Field: fe.Field(), Reason: fmt.Sprintf("%v fails %s", fe.Value(), reason)}
	}
	return fmt.Errorf("invalid config: %w", err)
}
