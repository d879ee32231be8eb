package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "voice2site/internal/app/errors"
)

var allEnv = []string{
	EnvHFToken, EnvOpenAIKey, EnvGeminiKey, EnvBackend, EnvPort, EnvUploadDir, EnvMaxUpload,
	EnvLLMBaseURL, EnvLLMModel, EnvWhisperURL, EnvWhisperModel, EnvWhisperLang,
	EnvGeminiModel, EnvGeminiBaseURL, EnvTheme, EnvEmptyServices, EnvLogLevel,
}

// clearEnv blanks every variable Load reads and runs the test from an empty directory
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allEnv {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHFToken, "hf_test_token")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPPort, cfg.Server.Port)
	assert.EqualValues(t, 25<<20, cfg.Server.MaxUploadBytes)
	assert.Equal(t, BackendOpenAI, cfg.Provider.Backend)
	assert.Equal(t, "https://router.huggingface.co/v1", cfg.Provider.LLM.BaseURL)
	assert.Equal(t, "meta-llama/Llama-3.1-8B-Instruct:novita", cfg.Provider.LLM.Model)
	assert.Equal(t, "whisper-1", cfg.Provider.Whisper.Model)
	assert.Equal(t, "https://api.openai.com/v1", cfg.Provider.Whisper.BaseURL)
	assert.Equal(t, "hf_test_token", cfg.Provider.LLM.APIKey)
	assert.Equal(t, "hf_test_token", cfg.Provider.Whisper.APIKey, "whisper falls back to the HF token")
	assert.Equal(t, "card", cfg.Site.Theme)
	assert.Equal(t, "omit", cfg.Site.EmptyServices)
	assert.Equal(t, DefaultRecord{Name: "My Business", Type: "Business", Style: "Modern", Services: []string{}}, cfg.Site.Default)
}

func TestLoad_MissingCredentials(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "openai backend without any key",
			env:     map[string]string{},
			wantErr: EnvHFToken,
		},
		{
			name:    "gemini backend without gemini key",
			env:     map[string]string{EnvBackend: "gemini", EnvHFToken: "hf_test_token"},
			wantErr: EnvGeminiKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := Load("")
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, apperrors.ErrMissingAPIKey)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_SeparateKeys(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHFToken, "hf_test_token")
	t.Setenv(EnvOpenAIKey, "sk-test-key")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "hf_test_token", cfg.Provider.LLM.APIKey)
	assert.Equal(t, "sk-test-key", cfg.Provider.Whisper.APIKey)
}

func TestLoad_GeminiBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvBackend, "Gemini")
	t.Setenv(EnvGeminiKey, "AIzaTest")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, BackendGemini, cfg.Provider.Backend)
	assert.Equal(t, "AIzaTest", cfg.Provider.Gemini.APIKey)
	assert.Equal(t, DefaultGeminiModel, cfg.Provider.Gemini.Model)
}

func TestLoad_YAMLAndEnvPrecedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", `
server:
  port: "9000"
  max_upload_bytes: 1048576
  read_timeout: 5s
provider:
  llm:
    model: yaml-model
  whisper:
    language: en
site:
  theme: plain
  empty_services: placeholder
  placeholder: Ask us
  default_record:
    name: Unnamed
log:
  level: debug
`)
	t.Setenv(EnvHFToken, "hf_test_token")
	t.Setenv(EnvPort, "9100")
	t.Setenv(EnvLLMModel, "env-model")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Server.Port, "env overrides yaml")
	assert.Equal(t, "env-model", cfg.Provider.LLM.Model, "env overrides yaml")
	assert.EqualValues(t, 1<<20, cfg.Server.MaxUploadBytes)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, DefaultWriteTimeout, cfg.Server.WriteTimeout, "unset yaml keys keep defaults")
	assert.Equal(t, "en", cfg.Provider.Whisper.Language)
	assert.Equal(t, "plain", cfg.Site.Theme)
	assert.Equal(t, "placeholder", cfg.Site.EmptyServices)
	assert.Equal(t, "Ask us", cfg.Site.Placeholder)
	assert.Equal(t, "Unnamed", cfg.Site.Default.Name)
	assert.Equal(t, DefaultRecordType, cfg.Site.Default.Type)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_DefaultConfigFile(t *testing.T) {
	clearEnv(t)
	writeFile(t, ".", DefaultConfigFile, "site:\n  theme: plain\n")
	t.Setenv(EnvHFToken, "hf_test_token")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "plain", cfg.Site.Theme)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		yaml string
	}{
		{name: "unknown theme", env: map[string]string{EnvTheme: "neon"}},
		{name: "unknown policy", env: map[string]string{EnvEmptyServices: "hide"}},
		{name: "unknown backend", env: map[string]string{EnvBackend: "llamacpp"}},
		{name: "non numeric upload limit", env: map[string]string{EnvMaxUpload: "lots"}},
		{name: "zero upload limit", yaml: "server:\n  max_upload_bytes: 0\n"},
		{name: "bad llm url", env: map[string]string{EnvLLMBaseURL: "router.huggingface.co"}},
		{name: "bad log level", env: map[string]string{EnvLogLevel: "verbose"}},
		{name: "malformed yaml", yaml: "server: [\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(EnvHFToken, "hf_test_token")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			path := ""
			if tc.yaml != "" {
				path = writeFile(t, t.TempDir(), "config.yaml", tc.yaml)
			}

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHFToken, "hf_test_token")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	first := writeFile(t, dir, ".env", "HF_TOKEN=from-dotenv\nV2S_THEME=plain\n")
	second := writeFile(t, dir, ".env.local", "HF_TOKEN=from-local\nLLM_MODEL=local-model\n")

	t.Setenv(EnvTheme, "card")

	loaded, err := LoadEnv(filepath.Join(dir, "missing"), first, second)
	require.NoError(t, err)
	assert.Equal(t, first, loaded)

	assert.Equal(t, "from-dotenv", os.Getenv(EnvHFToken))
	assert.Equal(t, "card", os.Getenv(EnvTheme), "process environment wins over .env")
	assert.Empty(t, os.Getenv(EnvLLMModel), "only the first existing file is loaded")
}

func TestLoadEnv_NoFiles(t *testing.T) {
	clearEnv(t)

	loaded, err := LoadEnv()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestConfigString_MasksKeys(t *testing.T) {
	cfg := Default()
	cfg.Provider.LLM.APIKey = "hf_abcdefghijklmnop"

	s := cfg.String()
	assert.NotContains(t, s, "hf_abcdefghijklmnop")
	assert.Contains(t, s, "hf_a****mnop")
}
