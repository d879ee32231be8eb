package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "voice2site/internal/app/errors"
)

// Config is the complete runtime configuration.
// Precedence: defaults, then the YAML file, then environment variables.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Provider ProviderConfig `yaml:"provider"`
	Site     SiteConfig     `yaml:"site"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string        `yaml:"port" validate:"required,numeric"`
	UploadDir       string        `yaml:"upload_dir"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" validate:"gt=0"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
	CORSOrigins     []string      `yaml:"cors_origins"`
}

// ProviderConfig selects and configures the model backends.
// API keys only come from the environment.
type ProviderConfig struct {
	Backend string        `yaml:"backend" validate:"oneof=openai gemini"`
	LLM     LLMConfig     `yaml:"llm"`
	Whisper WhisperConfig `yaml:"whisper"`
	Gemini  GeminiConfig  `yaml:"gemini"`
}

// LLMConfig configures the OpenAI-compatible chat completion endpoint
type LLMConfig struct {
	APIKey  string `yaml:"-"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// WhisperConfig configures the OpenAI-compatible transcription endpoint
type WhisperConfig struct {
	APIKey   string `yaml:"-"`
	BaseURL  string `yaml:"base_url"`
	Model    string `yaml:"model"`
	Language string `yaml:"language"`
}

// GeminiConfig configures the Gemini backend used for both stages
type GeminiConfig struct {
	APIKey  string `yaml:"-"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// SiteConfig holds rendering and fallback policy
type SiteConfig struct {
	Theme         string        `yaml:"theme" validate:"oneof=card plain"`
	EmptyServices string        `yaml:"empty_services" validate:"oneof=omit placeholder"`
	Placeholder   string        `yaml:"placeholder"`
	Default       DefaultRecord `yaml:"default_record"`
}

// DefaultRecord is the record substituted when extraction degrades
type DefaultRecord struct {
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type"`
	Style    string   `yaml:"style"`
	Services []string `yaml:"services"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Default returns the built-in configuration without credentials
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            DefaultHTTPPort,
			MaxUploadBytes:  DefaultMaxUploadBytes,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Provider: ProviderConfig{
			Backend: BackendOpenAI,
			LLM: LLMConfig{
				BaseURL: DefaultLLMBaseURL,
				Model:   DefaultLLMModel,
			},
			Whisper: WhisperConfig{
				BaseURL: DefaultWhisperBaseURL,
				Model:   DefaultWhisperModel,
			},
			Gemini: GeminiConfig{
				Model: DefaultGeminiModel,
			},
		},
		Site: SiteConfig{
			Theme:         DefaultTheme,
			EmptyServices: DefaultEmptyServices,
			Placeholder:   DefaultPlaceholder,
			Default: DefaultRecord{
				Name:     DefaultRecordName,
				Type:     DefaultRecordType,
				Style:    DefaultRecordStyle,
				Services: []string{},
			},
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// Load builds the configuration. An empty path reads DefaultConfigFile when it exists;
// an explicit path must exist. Missing credentials for the selected backend are an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(os.ExpandEnv(path))
	if err != nil {
		return apperrors.Wrapf(err, "failed to read config file %s", path)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return apperrors.Wrapf(err, "failed to parse config file %s", path)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Provider.Backend, EnvBackend)
	setString(&c.Server.Port, EnvPort)
	setString(&c.Server.UploadDir, EnvUploadDir)
	setString(&c.Provider.LLM.BaseURL, EnvLLMBaseURL)
	setString(&c.Provider.LLM.Model, EnvLLMModel)
	setString(&c.Provider.Whisper.BaseURL, EnvWhisperURL)
	setString(&c.Provider.Whisper.Model, EnvWhisperModel)
	setString(&c.Provider.Whisper.Language, EnvWhisperLang)
	setString(&c.Provider.Gemini.Model, EnvGeminiModel)
	setString(&c.Provider.Gemini.BaseURL, EnvGeminiBaseURL)
	setString(&c.Site.Theme, EnvTheme)
	setString(&c.Site.EmptyServices, EnvEmptyServices)
	setString(&c.Log.Level, EnvLogLevel)

	if v := getEnv(EnvMaxUpload); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return apperrors.Wrapf(apperrors.ErrInvalidConfig, "%s must be an integer, got %q", EnvMaxUpload, v)
		}
		c.Server.MaxUploadBytes = n
	}

	hfToken, openAIKey := getEnv(EnvHFToken), getEnv(EnvOpenAIKey)
	c.Provider.LLM.APIKey = firstNonEmpty(hfToken, openAIKey)
	c.Provider.Whisper.APIKey = firstNonEmpty(openAIKey, hfToken)
	c.Provider.Gemini.APIKey = getEnv(EnvGeminiKey)
	c.Provider.Backend = strings.ToLower(c.Provider.Backend)
	return nil
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func setString(dst *string, key string) {
	if v := getEnv(key); v != "" {
		*dst = v
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// String renders the configuration with credentials masked
func (c *Config) String() string {
	masked := *c
	masked.Provider.LLM.APIKey = mask(c.Provider.LLM.APIKey)
	masked.Provider.Whisper.APIKey = mask(c.Provider.Whisper.APIKey)
	masked.Provider.Gemini.APIKey = mask(c.Provider.Gemini.APIKey)
	return fmt.Sprintf("%+v", masked)
}

func mask(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}
