package config

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "voice2site/internal/app/errors"
)

var validate = validator.New()

// Validate checks field constraints and that the selected backend has its credentials
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return apperrors.Wrap(err, apperrors.ErrInvalidConfig.Error())
	}

	switch cfg.Provider.Backend {
	case BackendOpenAI:
		if err := ValidateAPIKey(cfg.Provider.LLM.APIKey, EnvHFToken+" or "+EnvOpenAIKey); err != nil {
			return err
		}
		if err := ValidateAPIKey(cfg.Provider.Whisper.APIKey, EnvOpenAIKey+" or "+EnvHFToken); err != nil {
			return err
		}
		if err := ValidateURL(cfg.Provider.LLM.BaseURL, "LLM"); err != nil {
			return err
		}
		if err := ValidateURL(cfg.Provider.Whisper.BaseURL, "Whisper"); err != nil {
			return err
		}
	case BackendGemini:
		if err := ValidateAPIKey(cfg.Provider.Gemini.APIKey, EnvGeminiKey); err != nil {
			return err
		}
		if cfg.Provider.Gemini.BaseURL != "" {
			if err := ValidateURL(cfg.Provider.Gemini.BaseURL, "Gemini"); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateAPIKey fails when a required credential is absent
func ValidateAPIKey(apiKey string, envName string) error {
	if strings.TrimSpace(apiKey) == "" {
		return apperrors.Wrapf(apperrors.ErrMissingAPIKey, "set %s in the environment or .env file", envName)
	}
	return nil
}

// ValidateURL validates URL format
func ValidateURL(raw string, name string) error {
	if raw == "" {
		return apperrors.Wrapf(apperrors.ErrInvalidConfig, "%s URL is required", name)
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperrors.Wrapf(apperrors.ErrInvalidConfig, "%s URL must be an absolute http(s) URL, got %q", name, raw)
	}
	return nil
}
