package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName           string
	AppEnv            string
	AppPort           string
	DatabaseURL       string
	OpenAIAPIKey      string
	OpenAIModel       string
	OpenAIMaxTokens   int
	OpenAITemperature float32
	RateLimitMax      int
	RateLimitWindow   time.Duration
	StaticDir         string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("MATHQUEST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "MathQuest API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.max_tokens", 512)
	v.SetDefault("openai.temperature", 0.7)
	v.SetDefault("rate_limit.max", 20)
	v.SetDefault("rate_limit.window", "1m")
	v.SetDefault("static.dir", "./web")

	windowString := v.GetString("rate_limit.window")
	if windowString == "" {
		windowString = "1m"
	}

	window, err := time.ParseDuration(windowString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid rate limit window: %w", err)
	}

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		AppPort:           v.GetString("app.port"),
		DatabaseURL:       v.GetString("database.url"),
		OpenAIAPIKey:      v.GetString("openai_api_key"),
		OpenAIModel:       v.GetString("openai.model"),
		OpenAIMaxTokens:   v.GetInt("openai.max_tokens"),
		OpenAITemperature: float32(v.GetFloat64("openai.temperature")),
		RateLimitMax:      v.GetInt("rate_limit.max"),
		RateLimitWindow:   window,
		StaticDir:         v.GetString("static.dir"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("database url must be provided")
	}

	if cfg.OpenAIAPIKey == "" {
		return Config{}, fmt.Errorf("openai api key must be provided")
	}

	if cfg.OpenAIMaxTokens <= 0 {
		cfg.OpenAIMaxTokens = 512
	}

	if cfg.RateLimitMax <= 0 {
		cfg.RateLimitMax = 20
	}

	return cfg, nil
}
