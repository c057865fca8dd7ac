package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "MONGO_URI", "MONGO_DB", "JWT_SECRET", "OAUTH_CALLBACK_BASE_URL", "AUTH_ENFORCED", "OAUTH_STATE_TTL", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.Port != "5000" {
		t.Errorf("Port = %q", c.Port)
	}
	if c.MongoDB != "quickchance_db" {
		t.Errorf("MongoDB = %q", c.MongoDB)
	}
	if c.JWTSecret != DevJWTSecret {
		t.Errorf("JWTSecret = %q", c.JWTSecret)
	}
	if c.OAuthCallbackBaseURL != "http://localhost:5000" {
		t.Errorf("OAuthCallbackBaseURL = %q", c.OAuthCallbackBaseURL)
	}
	if c.OAuthStateTTL != 10*time.Minute {
		t.Errorf("OAuthStateTTL = %v", c.OAuthStateTTL)
	}
	if c.AuthEnforced {
		t.Errorf("AuthEnforced should default to false")
	}
	if !c.AllowAllOrigins() {
		t.Errorf("CORS should default to all origins")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("AUTH_ENFORCED", "true")
	t.Setenv("OAUTH_STATE_TTL", "90s")
	t.Setenv("OAUTH_CALLBACK_BASE_URL", "https://api.example.com/")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, ,https://b.example.com ")
	t.Setenv("REDIS_DB", "not-a-number")

	c := Load()
	if c.Port != "8080" || !c.AuthEnforced || c.OAuthStateTTL != 90*time.Second {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.OAuthCallbackBaseURL != "https://api.example.com" {
		t.Errorf("trailing slash not trimmed: %q", c.OAuthCallbackBaseURL)
	}
	origins := c.CORSOrigins()
	if len(origins) != 2 || origins[1] != "https://b.example.com" || c.AllowAllOrigins() {
		t.Errorf("origins = %v", origins)
	}
	if c.RedisDB != 0 {
		t.Errorf("invalid int should fall back to default, got %d", c.RedisDB)
	}
}

func TestValidate(t *testing.T) {
	c := &Config{MongoURI: "mongodb://localhost:27017", Env: "development", JWTSecret: DevJWTSecret}
	if err := c.Validate(); err != nil {
		t.Fatalf("development with dev secret should pass: %v", err)
	}
	c.Env = "production"
	if err := c.Validate(); err == nil {
		t.Fatalf("production with dev secret should fail")
	}
	c.JWTSecret = "a-real-secret"
	if err := c.Validate(); err != nil {
		t.Fatalf("production with real secret: %v", err)
	}
	c.MongoURI = ""
	if err := c.Validate(); err == nil {
		t.Fatalf("empty MONGO_URI should fail")
	}
}

func TestMigrateURL(t *testing.T) {
	c := &Config{MongoURI: "mongodb://user:pw@localhost:27017/?authSource=admin", MongoDB: "quickchance_db"}
	got, err := c.MigrateURL()
	if err != nil {
		t.Fatalf("MigrateURL: %v", err)
	}
	if want := "mongodb://user:pw@localhost:27017/quickchance_db?authSource=admin"; got != want {
		t.Fatalf("MigrateURL = %q, want %q", got, want)
	}
}
