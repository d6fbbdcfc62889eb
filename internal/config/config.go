package config

import (
	"io"
	"log"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Sampling holds the generation parameters sent with every upstream call.
// These never change at runtime; they are loaded once and passed around as
// plain data.
type Sampling struct {
	Temperature     float64 `yaml:"temperature"`
	TopP            float64 `yaml:"top_p"`
	TopK            int     `yaml:"top_k"`
	MaxOutputTokens int     `yaml:"max_output_tokens"`
}

// Prompts holds optional overrides for the built-in prompt text.
type Prompts struct {
	SystemInstruction string `yaml:"system_instruction"`
}

type Config struct {
	Port    string
	GinMode string

	// Gemini
	GeminiAPIKey         string
	GeminiModel          string `yaml:"gemini_model"`
	GeminiBaseURL        string `yaml:"gemini_base_url"`
	GeminiTimeoutSeconds int    `yaml:"gemini_timeout_seconds"`
	GeminiMaxRetries     int    `yaml:"gemini_max_retries"`

	Sampling Sampling `yaml:"sampling"`
	Prompts  Prompts  `yaml:"prompts"`

	// CORS
	CORSAllowedOrigins string

	// Logging
	LogLevel  string
	LogFormat string
}

var AppConfig *Config

func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),

		// Gemini
		GeminiAPIKey:  getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiBaseURL: getEnvOrDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),

		// The hosting platform aborts handlers after ~10s, so the upstream
		// call carries the same bound.
		GeminiTimeoutSeconds: getEnvAsInt("GEMINI_TIMEOUT_SECONDS", 10),
		GeminiMaxRetries:     getEnvAsInt("GEMINI_MAX_RETRIES", 0),

		Sampling: Sampling{
			Temperature:     getEnvFloat("GEMINI_TEMPERATURE", 0.7),
			TopP:            getEnvFloat("GEMINI_TOP_P", 0.9),
			TopK:            getEnvAsInt("GEMINI_TOP_K", 32),
			MaxOutputTokens: getEnvAsInt("GEMINI_MAX_OUTPUT_TOKENS", 2048),
		},

		// CORS
		CORSAllowedOrigins: getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*"),

		// Logging
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", ""),
	}

	// Load settings from a configuration file, if one is present. The file
	// only carries settings that should not come from the environment, like
	// prompt overrides.
	configFilePath := getEnvOrDefault("CONFIG_FILE", "config.yaml")

	configFile, err := os.Open(configFilePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatalf("Failed to open config file: %v", err)
		}
		log.Printf("No config file at %s, using defaults", configFilePath)
	} else {
		defer configFile.Close()

		log.Printf("Loading config file: %v", configFilePath)
		if err := LoadConfigFile(configFile, AppConfig); err != nil {
			log.Fatalf("Failed to load config file: %v", err)
		}
	}

	// The API key is checked per request so that a misconfigured instance
	// still boots and reports a clean error instead of crash-looping.
	if AppConfig.GeminiAPIKey == "" {
		log.Println("Warning: Gemini API key is missing. Please set GEMINI_API_KEY environment variable.")
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		} else {
			log.Printf("Warning: Failed to parse environment variable %s='%s' as int, using default %d: %v", key, value, defaultValue, err)
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		} else {
			log.Printf("Warning: Failed to parse environment variable %s='%s' as float, using default %f: %v", key, value, defaultValue, err)
		}
	}
	return defaultValue
}

func LoadConfigFile(reader io.Reader, config *Config) error {
	decoder := yaml.NewDecoder(reader)

	if err := decoder.Decode(config); err != nil {
		// An empty file is not an error.
		if err == io.EOF {
			return nil
		}
		return err
	}

	return nil
}
