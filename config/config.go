package config

import (
	"errors"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// DevJWTSecret is only acceptable outside production.
const DevJWTSecret = "devsecret"

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// MongoDB
	MongoURI     string
	MongoDB      string
	MongoTimeout time.Duration

	// Migrations
	MigrationsDir  string
	MigrateOnStart bool

	// Redis (OAuth state)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// JWT
	JWTSecret string

	// OAuth providers
	GoogleClientID       string
	GoogleClientSecret   string
	GitHubClientID       string
	GitHubClientSecret   string
	OAuthCallbackBaseURL string
	OAuthFailureRedirect string
	OAuthStateTTL        time.Duration

	// CORS
	CORSAllowedOrigins string // comma-separated

	// HTTP access log toggle
	HTTPLogEnabled bool

	// Require a bearer token on the CRUD routes. Off by default: the
	// public API has never checked tokens.
	AuthEnforced bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	port := getenv("PORT", "5000")
	return &Config{
		AppName: getenv("APP_NAME", "quickchance-backend"),
		Env:     getenv("APP_ENV", "development"),
		Port:    port,
		GinMode: getenv("GIN_MODE", "release"),

		MongoURI:     getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getenv("MONGO_DB", "quickchance_db"),
		MongoTimeout: getdur("MONGO_TIMEOUT", 10*time.Second),

		MigrationsDir:  getenv("MIGRATIONS_DIR", "db/migrations"),
		MigrateOnStart: getbool("MIGRATE_ON_START", true),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		JWTSecret: getenv("JWT_SECRET", DevJWTSecret),

		GoogleClientID:       getenv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:   getenv("GOOGLE_CLIENT_SECRET", ""),
		GitHubClientID:       getenv("GITHUB_CLIENT_ID", ""),
		GitHubClientSecret:   getenv("GITHUB_CLIENT_SECRET", ""),
		OAuthCallbackBaseURL: strings.TrimRight(getenv("OAUTH_CALLBACK_BASE_URL", "http://localhost:"+port), "/"),
		OAuthFailureRedirect: getenv("OAUTH_FAILURE_REDIRECT", "/login"),
		OAuthStateTTL:        getdur("OAUTH_STATE_TTL", 10*time.Minute),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", "*"),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
		AuthEnforced:   getbool("AUTH_ENFORCED", false),
	}
}

// Validate rejects settings that must never reach production.
func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return errors.New("MONGO_URI is required")
	}
	if c.Env == "production" && (c.JWTSecret == "" || c.JWTSecret == DevJWTSecret) {
		return errors.New("JWT_SECRET must be set in production")
	}
	return nil
}

// MigrateURL returns the Mongo connection string with the database name in
// its path, as golang-migrate expects.
func (c *Config) MigrateURL() (string, error) {
	u, err := url.Parse(c.MongoURI)
	if err != nil {
		return "", err
	}
	u.Path = "/" + c.MongoDB
	return u.String(), nil
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

// AllowAllOrigins is true when CORS is left wide open.
func (c *Config) AllowAllOrigins() bool {
	origins := c.CORSOrigins()
	return len(origins) == 0 || (len(origins) == 1 && origins[0] == "*")
}
