package config

import "time"

// Backends
const (
	// BackendOpenAI talks to any OpenAI-compatible API; the default base URL is the Hugging Face router
	BackendOpenAI = "openai"
	BackendGemini = "gemini"
)

// Default configuration constants
const (
	DefaultConfigFile = "voice2site.yaml"

	// Server defaults
	DefaultHTTPPort        = "8080"
	DefaultMaxUploadBytes  = 25 << 20
	DefaultReadTimeout     = 60 * time.Second
	DefaultWriteTimeout    = 120 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	// Completion defaults
	DefaultLLMBaseURL = "https://router.huggingface.co/v1"
	DefaultLLMModel   = "meta-llama/Llama-3.1-8B-Instruct:novita"

	// Transcription defaults
	DefaultWhisperBaseURL = "https://api.openai.com/v1"
	DefaultWhisperModel   = "whisper-1"

	DefaultGeminiModel = "gemini-2.0-flash"

	// Site defaults
	DefaultTheme         = "card"
	DefaultEmptyServices = "omit"
	DefaultPlaceholder   = "General Services"

	DefaultLogLevel = "info"
)

// Default record used when extraction degrades
const (
	DefaultRecordName  = "My Business"
	DefaultRecordType  = "Business"
	DefaultRecordStyle = "Modern"
)

// Environment variable names
const (
	EnvHFToken       = "HF_TOKEN"
	EnvOpenAIKey     = "OPENAI_API_KEY"
	EnvGeminiKey     = "GEMINI_API_KEY"
	EnvBackend       = "V2S_BACKEND"
	EnvPort          = "PORT"
	EnvUploadDir     = "V2S_UPLOAD_DIR"
	EnvMaxUpload     = "V2S_MAX_UPLOAD_BYTES"
	EnvLLMBaseURL    = "LLM_BASE_URL"
	EnvLLMModel      = "LLM_MODEL"
	EnvWhisperURL    = "WHISPER_BASE_URL"
	EnvWhisperModel  = "WHISPER_MODEL"
	EnvWhisperLang   = "WHISPER_LANGUAGE"
	EnvGeminiModel   = "GEMINI_MODEL"
	EnvGeminiBaseURL = "GEMINI_BASE_URL"
	EnvTheme         = "V2S_THEME"
	EnvEmptyServices = "V2S_EMPTY_SERVICES"
	EnvLogLevel      = "LOG_LEVEL"
)
