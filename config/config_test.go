package config

import (
	"os"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	var c AppConfig
	applyDefaults(&c)

	if c.AppPort != "8080" {
		t.Errorf("expected default port 8080, got %s", c.AppPort)
	}
	if c.AppBaseURL != "http://localhost:8080" {
		t.Errorf("base url should follow the port, got %s", c.AppBaseURL)
	}
	if c.RateLimitPerMinute != 60 {
		t.Errorf("expected default rate limit 60, got %d", c.RateLimitPerMinute)
	}
	if len(c.AllowedOrigins) != 1 || c.AllowedOrigins[0] != "*" {
		t.Errorf("expected wildcard origins, got %v", c.AllowedOrigins)
	}
	if c.InviteTTLHours != 72 {
		t.Errorf("expected invite ttl 72h, got %d", c.InviteTTLHours)
	}
	if c.CoachTimeoutSec != 30 {
		t.Errorf("expected coach timeout 30s, got %d", c.CoachTimeoutSec)
	}
}

func TestApplyDefaults_KeepsExistingValues(t *testing.T) {
	c := AppConfig{AppPort: "9000", RateLimitPerMinute: 10}
	applyDefaults(&c)

	if c.AppPort != "9000" {
		t.Errorf("default overwrote explicit port: %s", c.AppPort)
	}
	if c.RateLimitPerMinute != 10 {
		t.Errorf("default overwrote explicit rate limit: %d", c.RateLimitPerMinute)
	}
	if c.AppBaseURL != "http://localhost:9000" {
		t.Errorf("base url should follow the explicit port, got %s", c.AppBaseURL)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	os.Setenv("APP_PORT", "9999")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	defer func() {
		os.Unsetenv("APP_PORT")
		os.Unsetenv("JWT_SECRET")
		os.Unsetenv("CORS_ALLOWED_ORIGINS")
	}()

	var c AppConfig
	applyDefaults(&c)
	applyEnvOverrides(&c)

	if c.AppPort != "9999" {
		t.Errorf("env port not applied, got %s", c.AppPort)
	}
	if c.JWTSecret != "test-secret" {
		t.Errorf("env secret not applied")
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(c.AllowedOrigins) != 2 || c.AllowedOrigins[0] != want[0] || c.AllowedOrigins[1] != want[1] {
		t.Errorf("origins not split and trimmed: %v", c.AllowedOrigins)
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim(" a ,, b,")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("unexpected result: %v", got)
	}
}
