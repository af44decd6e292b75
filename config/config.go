package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// Groq exposes an OpenAI-compatible API, so the same client works for both.
	DefaultLLMBaseURL = "https://api.groq.com/openai/v1"
	DefaultLLMModel   = "llama-3.3-70b-versatile"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"
	AppEnv        string `mapstructure:"APP_ENV"`        // "production" switches Gin to release mode

	// CORS Configuration
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"` // Comma separated, e.g. "http://localhost:3000"

	// AI Configuration
	LLMAPIKey     string        `mapstructure:"LLM_API_KEY"`     // API key for the generation backend
	LLMBaseURL    string        `mapstructure:"LLM_BASE_URL"`    // OpenAI-compatible endpoint
	LLMModel      string        `mapstructure:"LLM_MODEL"`       // e.g., "llama-3.3-70b-versatile", "gpt-4o"
	LLMTimeout    time.Duration `mapstructure:"LLM_TIMEOUT"`     // 0 leaves the HTTP client default in place
	LLMMaxRetries int           `mapstructure:"LLM_MAX_RETRIES"` // 0 means exactly one backend call per request
}

// AllowedOrigins splits CORSAllowedOrigins into a clean list.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)     // Path to look for the config file in
	v.SetConfigName("config") // Name of config file (without extension)
	v.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LLM_API_KEY", "")
	v.SetDefault("LLM_BASE_URL", DefaultLLMBaseURL)
	v.SetDefault("LLM_MODEL", DefaultLLMModel)
	v.SetDefault("LLM_TIMEOUT", "0s")
	v.SetDefault("LLM_MAX_RETRIES", 0)

	v.AutomaticEnv() // Read environment variables that match keys

	err = v.ReadInConfig()
	if err != nil {
		// If config file not found, log it but continue if env vars might be set
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", v.ConfigFileUsed())
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.LLMAPIKey == "" {
		log.Println("WARN: LLM_API_KEY is not set. Generation requests will fail.")
	}
	if config.LLMMaxRetries < 0 {
		return Config{}, fmt.Errorf("LLM_MAX_RETRIES must not be negative, got %d", config.LLMMaxRetries)
	}

	return
}
