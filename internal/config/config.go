package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port           string
	Env            string
	MigrationsPath string
	AllowedOrigins []string

	Auth     AuthConfig
	DB       DatabaseConfig
	Redis    RedisConfig
	S3       S3Config
	Company  CompanyConfig
	Document DocumentConfig
}

// AuthConfig contains the admin credential and JWT signing parameters.
type AuthConfig struct {
	JWTSecret     string
	JWTExpiry     time.Duration
	AdminEmail    string
	AdminPassword string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// RedisConfig contains Redis connection parameters. An empty Host disables
// the rendered document cache.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// Enabled reports whether a Redis host was configured.
func (c RedisConfig) Enabled() bool { return c.Host != "" }

// S3Config contains the bucket used to archive rendered quotations.
// An empty Bucket disables archiving.
type S3Config struct {
	Region          string
	Bucket          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// Enabled reports whether a bucket was configured.
func (c S3Config) Enabled() bool { return c.Bucket != "" }

// CompanyConfig is printed on the letterhead and footer of every quotation.
type CompanyConfig struct {
	Name         string
	AddressLine1 string
	AddressLine2 string
	GSTIN        string
	BankName     string
	BankAccount  string
	BankIFSC     string
}

// DocumentConfig controls quotation PDF rendering.
type DocumentConfig struct {
	Enabled bool
	Locale  string
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "5000")
	cfg.Env = getEnv("ENV", "development")
	cfg.MigrationsPath = getEnv("MIGRATIONS_PATH", "file://migrations")
	cfg.AllowedOrigins = getEnvList("CORS_ALLOWED_ORIGINS", "localhost:3000,127.0.0.1:3000,localhost:5173")

	// Auth
	cfg.Auth = AuthConfig{
		JWTSecret:     getEnv("JWT_SECRET", ""),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@heminfotech.in"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}

	// Database
	cfg.DB = DatabaseConfig{
		Host:         getEnv("DB_HOST", ""),
		Port:         getEnv("DB_PORT", "5432"),
		User:         getEnv("DB_USER", ""),
		Password:     getEnv("DB_PASSWORD", ""),
		Name:         getEnv("DB_NAME", ""),
		SSLMode:      getEnv("DB_SSLMODE", "disable"),
		MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),
	}

	// Redis
	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", ""),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	// S3
	cfg.S3 = S3Config{
		Region:          getEnv("S3_REGION", "ap-south-1"),
		Bucket:          getEnv("S3_BUCKET", ""),
		Endpoint:        getEnv("S3_ENDPOINT", ""),
		AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
	}

	// Letterhead
	cfg.Company = CompanyConfig{
		Name:         getEnv("COMPANY_NAME", "HEM INFOTECH"),
		AddressLine1: getEnv("COMPANY_ADDRESS_LINE1", "12, Shree Complex, Station Road"),
		AddressLine2: getEnv("COMPANY_ADDRESS_LINE2", "Surat, Gujarat - 395003"),
		GSTIN:        getEnv("COMPANY_GSTIN", "24ABCDE1234F1Z5"),
		BankName:     getEnv("COMPANY_BANK_NAME", "State Bank of India"),
		BankAccount:  getEnv("COMPANY_BANK_ACCOUNT", "00000000000"),
		BankIFSC:     getEnv("COMPANY_BANK_IFSC", "SBIN0000000"),
	}

	cfg.Document = DocumentConfig{
		Enabled: getEnvBool("DOCUMENT_ENABLED", true),
		Locale:  getEnv("DOCUMENT_LOCALE", "en"),
	}

	var err error
	if cfg.Auth.JWTExpiry, err = parseDurationEnv("JWT_EXPIRY", "24h"); err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY: %w", err)
	}
	if cfg.Redis.TTL, err = parseDurationEnv("DOCUMENT_CACHE_TTL", "1h"); err != nil {
		return nil, fmt.Errorf("invalid DOCUMENT_CACHE_TTL: %w", err)
	}

	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
		return nil, errors.New("database configuration incomplete: ensure DB_HOST, DB_USER, and DB_NAME are set")
	}
	if cfg.DB.MaxOpenConns <= 0 {
		return nil, errors.New("DB_MAX_OPEN_CONNS must be positive")
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set for authentication")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// getEnvList splits a comma separated variable, dropping blanks.
func getEnvList(key, def string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, def), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseDurationEnv reads an environment variable and parses it as time.Duration.
// If the variable is empty, it falls back to the provided default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return d, nil
}
