package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Placeholder credentials. A key equal to its placeholder counts as unset.
const (
	ClipdropKeyPlaceholder = "your_clipdrop_api_key_here"
	GeminiKeyPlaceholder   = "your_gemini_api_key_here"
	OpenAIKeyPlaceholder   = "your_openai_api_key_here"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// DefaultEnhanceInstruction is prepended to the user text sent to the text model.
const DefaultEnhanceInstruction = "Rewrite the following prompt to be a high-quality, detailed, and visually appealing description for a 2D game asset. " +
	"Do not explain, just output the improved prompt for an AI image generator."

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	ClipdropAPIKey     string
	ClipdropBaseURL    string
	PromptProvider     string
	GeminiAPIKey       string
	GeminiModel        string
	GeminiBaseURL      string
	OpenAIAPIKey       string
	OpenAIModel        string
	OpenAIBaseURL      string
	OpenAIOrgID        string
	EnhanceInstruction string
	OutboundTimeout    time.Duration
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	ShutdownTimeout    time.Duration
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "5000"),
		ClipdropAPIKey:     getCredential("CLIPDROP_API_KEY", ClipdropKeyPlaceholder),
		ClipdropBaseURL:    getEnv("CLIPDROP_BASE_URL", "https://clipdrop-api.co"),
		PromptProvider:     strings.ToLower(getEnv("PROMPT_PROVIDER", ProviderGemini)),
		GeminiAPIKey:       getCredential("GEMINI_API_KEY", GeminiKeyPlaceholder),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.5-flash-lite"),
		GeminiBaseURL:      os.Getenv("GEMINI_BASE_URL"),
		OpenAIAPIKey:       getCredential("OPENAI_API_KEY", OpenAIKeyPlaceholder),
		OpenAIOrgID:        os.Getenv("OPENAI_ORG_ID"),
		OpenAIModel:        getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:      getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		EnhanceInstruction: getEnv("ENHANCE_INSTRUCTION", DefaultEnhanceInstruction),
		OutboundTimeout:    time.Second * time.Duration(getEnvInt("OUTBOUND_TIMEOUT_SECONDS", 30)),
		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 90)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		ShutdownTimeout:    time.Second * time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10)),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	switch cfg.PromptProvider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return nil, fmt.Errorf("unsupported PROMPT_PROVIDER %q", cfg.PromptProvider)
	}

	if cfg.OutboundTimeout <= 0 {
		return nil, fmt.Errorf("OUTBOUND_TIMEOUT_SECONDS must be positive")
	}

	return cfg, nil
}

// ClipdropConfigured reports whether a real image-provider key was supplied.
func (c *Config) ClipdropConfigured() bool {
	return c.ClipdropAPIKey != ClipdropKeyPlaceholder
}

// GeminiConfigured reports whether a real Gemini key was supplied.
func (c *Config) GeminiConfigured() bool {
	return c.GeminiAPIKey != GeminiKeyPlaceholder
}

// OpenAIConfigured reports whether a real OpenAI key was supplied.
func (c *Config) OpenAIConfigured() bool {
	return c.OpenAIAPIKey != OpenAIKeyPlaceholder
}

// PromptProviderConfigured reports whether the selected text provider has a key.
func (c *Config) PromptProviderConfigured() bool {
	if c.PromptProvider == ProviderOpenAI {
		return c.OpenAIConfigured()
	}
	return c.GeminiConfigured()
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// getCredential only substitutes the placeholder for an absent variable. Any
// value that is set, even empty or blank, is kept verbatim so that health
// reporting and outbound calls see the same key.
func getCredential(key, placeholder string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return placeholder
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(raw string) []string {
	parts := lo.Map(strings.Split(raw, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
	return lo.Uniq(lo.Compact(parts))
}
