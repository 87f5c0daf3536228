package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Extractor ExtractorConfig
	Converter ConverterConfig
	GraphQL   GraphQLConfig
	CORS      CORSConfig
	Upload    UploadConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ExtractorConfig holds LLM resume extractor settings.
type ExtractorConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// ConverterConfig holds settings for the external page-rasterization tool.
type ConverterConfig struct {
	Command     string `mapstructure:"command"`
	Density     int    `mapstructure:"density"`
	Quality     int    `mapstructure:"quality"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// GraphQLConfig holds settings for the external application data store.
type GraphQLConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	AdminSecret string `mapstructure:"admin_secret"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig holds upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// Load reads configuration from environment variables with the JOBDESK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("JOBDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Extractor defaults
	v.SetDefault("extractor.provider", "openai")
	v.SetDefault("extractor.api_key", "")
	v.SetDefault("extractor.default_model", "gpt-4o-mini")
	v.SetDefault("extractor.timeout_secs", 120)

	// Converter defaults
	v.SetDefault("converter.command", "convert")
	v.SetDefault("converter.density", 300)
	v.SetDefault("converter.quality", 100)
	v.SetDefault("converter.timeout_secs", 30)

	// GraphQL defaults
	v.SetDefault("graphql.endpoint", "")
	v.SetDefault("graphql.admin_secret", "")
	v.SetDefault("graphql.timeout_secs", 15)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 8)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "JOBDESK_SERVER_PORT",
		"server.read_timeout":     "JOBDESK_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "JOBDESK_SERVER_WRITE_TIMEOUT",
		"server.environment":      "JOBDESK_SERVER_ENVIRONMENT",
		"log.level":               "JOBDESK_LOG_LEVEL",
		"log.format":              "JOBDESK_LOG_FORMAT",
		"extractor.provider":      "JOBDESK_EXTRACTOR_PROVIDER",
		"extractor.api_key":       "JOBDESK_EXTRACTOR_API_KEY",
		"extractor.default_model": "JOBDESK_EXTRACTOR_DEFAULT_MODEL",
		"extractor.timeout_secs":  "JOBDESK_EXTRACTOR_TIMEOUT_SECS",
		"converter.command":       "JOBDESK_CONVERTER_COMMAND",
		"converter.density":       "JOBDESK_CONVERTER_DENSITY",
		"converter.quality":       "JOBDESK_CONVERTER_QUALITY",
		"converter.timeout_secs":  "JOBDESK_CONVERTER_TIMEOUT_SECS",
		"graphql.endpoint":        "JOBDESK_GRAPHQL_ENDPOINT",
		"graphql.admin_secret":    "JOBDESK_GRAPHQL_ADMIN_SECRET",
		"graphql.timeout_secs":    "JOBDESK_GRAPHQL_TIMEOUT_SECS",
		"cors.allowed_origins":    "JOBDESK_CORS_ALLOWED_ORIGINS",
		"upload.max_file_size_mb": "JOBDESK_UPLOAD_MAX_FILE_SIZE_MB",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if JOBDESK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("JOBDESK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Extractor = ExtractorConfig{
		Provider:     v.GetString("extractor.provider"),
		APIKey:       v.GetString("extractor.api_key"),
		DefaultModel: v.GetString("extractor.default_model"),
		TimeoutSecs:  v.GetInt("extractor.timeout_secs"),
	}
	cfg.Converter = ConverterConfig{
		Command:     v.GetString("converter.command"),
		Density:     v.GetInt("converter.density"),
		Quality:     v.GetInt("converter.quality"),
		TimeoutSecs: v.GetInt("converter.timeout_secs"),
	}
	cfg.GraphQL = GraphQLConfig{
		Endpoint:    v.GetString("graphql.endpoint"),
		AdminSecret: v.GetString("graphql.admin_secret"),
		TimeoutSecs: v.GetInt("graphql.timeout_secs"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}

	return cfg, nil
}
