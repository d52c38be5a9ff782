// README: Config loader with env defaults for HTTP, storage, AI, and Parse settings.
package config

import (
	"os"
	"strconv"
	"time"
)

type AIConfig struct {
	// Provider selects the generation backend: "openai" (default) or "gemini".
	Provider    string
	OpenAIBase  string
	OpenAIKey   string
	OpenAIModel string
	GeminiKey   string
	// GenerateTimeout bounds one trip-generation round trip; ChatTimeout bounds one chat turn.
	GenerateTimeout time.Duration
	ChatTimeout     time.Duration
}

type ParseConfig struct {
	BaseURL string
	AppID   string
	RestKey string
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Storage struct {
		// DataDir holds the named JSON blobs (trips, selection, chat history, profile, language).
		DataDir string
	}
	Redis struct {
		// Addr is optional; empty disables the shared city cache.
		Addr string
	}
	AI    AIConfig
	Parse ParseConfig
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TG_HTTP_ADDR", ":8080")
	cfg.Storage.DataDir = envOrDefault("TG_DATA_DIR", ".travelgenie")
	cfg.Redis.Addr = os.Getenv("TG_REDIS_ADDR")

	cfg.AI.Provider = envOrDefault("TG_AI_PROVIDER", "openai")
	cfg.AI.OpenAIBase = envOrDefault("TG_OPENAI_BASE_URL", "https://api.openai.com/v1")
	cfg.AI.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.AI.OpenAIModel = envOrDefault("TG_OPENAI_MODEL", "gpt-4o-mini")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.AI.GenerateTimeout = envOrDefaultDuration("TG_GENERATE_TIMEOUT", 60*time.Second)
	cfg.AI.ChatTimeout = envOrDefaultDuration("TG_CHAT_TIMEOUT", 30*time.Second)

	cfg.Parse.BaseURL = envOrDefault("TG_PARSE_BASE_URL", "https://parseapi.back4app.com")
	cfg.Parse.AppID = os.Getenv("TG_PARSE_APP_ID")
	cfg.Parse.RestKey = os.Getenv("TG_PARSE_REST_KEY")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Second
		}
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
