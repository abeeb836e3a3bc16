package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Log    LogConfig
	Parser ParserConfig
	CORS   CORSConfig
	Queue  QueueConfig
	Email  EmailConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ParserConfig holds extraction pipeline settings.
type ParserConfig struct {
	Verbose bool `mapstructure:"verbose"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// QueueConfig holds parse queue worker settings.
type QueueConfig struct {
	PollIntervalSecs int `mapstructure:"poll_interval_secs"`
	MaxRetries       int `mapstructure:"max_retries"`
	Concurrency      int `mapstructure:"concurrency"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// Load reads configuration from environment variables with the SHIPMATRIX_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SHIPMATRIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "shipmatrix")
	v.SetDefault("db.password", "shipmatrix_secret")
	v.SetDefault("db.name", "shipmatrix_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "shipmatrix")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "shipmatrix-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 50)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Parser defaults
	v.SetDefault("parser.verbose", false)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Queue defaults
	v.SetDefault("queue.poll_interval_secs", 10)
	v.SetDefault("queue.max_retries", 5)
	v.SetDefault("queue.concurrency", 5)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@shipmatrix.io")
	v.SetDefault("email.from_name", "ShipMatrix")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "SHIPMATRIX_SERVER_PORT",
		"server.read_timeout":      "SHIPMATRIX_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "SHIPMATRIX_SERVER_WRITE_TIMEOUT",
		"server.environment":       "SHIPMATRIX_SERVER_ENVIRONMENT",
		"db.host":                  "SHIPMATRIX_DB_HOST",
		"db.port":                  "SHIPMATRIX_DB_PORT",
		"db.user":                  "SHIPMATRIX_DB_USER",
		"db.password":              "SHIPMATRIX_DB_PASSWORD",
		"db.name":                  "SHIPMATRIX_DB_NAME",
		"db.sslmode":               "SHIPMATRIX_DB_SSLMODE",
		"db.max_open":              "SHIPMATRIX_DB_MAX_OPEN",
		"db.max_idle":              "SHIPMATRIX_DB_MAX_IDLE",
		"jwt.secret":               "SHIPMATRIX_JWT_SECRET",
		"jwt.access_expiry":        "SHIPMATRIX_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":       "SHIPMATRIX_JWT_REFRESH_EXPIRY",
		"jwt.issuer":               "SHIPMATRIX_JWT_ISSUER",
		"s3.region":                "SHIPMATRIX_S3_REGION",
		"s3.bucket":                "SHIPMATRIX_S3_BUCKET",
		"s3.endpoint":              "SHIPMATRIX_S3_ENDPOINT",
		"s3.access_key":            "SHIPMATRIX_S3_ACCESS_KEY",
		"s3.secret_key":            "SHIPMATRIX_S3_SECRET_KEY",
		"s3.max_file_size_mb":      "SHIPMATRIX_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":        "SHIPMATRIX_S3_PRESIGN_EXPIRY",
		"log.level":                "SHIPMATRIX_LOG_LEVEL",
		"log.format":               "SHIPMATRIX_LOG_FORMAT",
		"parser.verbose":           "SHIPMATRIX_PARSER_VERBOSE",
		"cors.allowed_origins":     "SHIPMATRIX_CORS_ALLOWED_ORIGINS",
		"queue.poll_interval_secs": "SHIPMATRIX_QUEUE_POLL_INTERVAL_SECS",
		"queue.max_retries":        "SHIPMATRIX_QUEUE_MAX_RETRIES",
		"queue.concurrency":        "SHIPMATRIX_QUEUE_CONCURRENCY",
		"email.provider":           "SHIPMATRIX_EMAIL_PROVIDER",
		"email.region":             "SHIPMATRIX_EMAIL_REGION",
		"email.from_address":       "SHIPMATRIX_EMAIL_FROM_ADDRESS",
		"email.from_name":          "SHIPMATRIX_EMAIL_FROM_NAME",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SHIPMATRIX_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SHIPMATRIX_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Parser = ParserConfig{
		Verbose: v.GetBool("parser.verbose"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitAndTrim(v.GetString("cors.allowed_origins")),
	}
	cfg.Queue = QueueConfig{
		PollIntervalSecs: v.GetInt("queue.poll_interval_secs"),
		MaxRetries:       v.GetInt("queue.max_retries"),
		Concurrency:      v.GetInt("queue.concurrency"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	if cfg.Server.Environment == "production" && cfg.JWT.Secret == "change-me-in-production" {
		return nil, fmt.Errorf("config: JWT secret must be set in production")
	}

	return cfg, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
