package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.App.Port == "" {
		t.Error("expected a default port")
	}
	if cfg.SMTP.Port == 0 {
		t.Error("expected a default SMTP port")
	}
	if cfg.Auth.TokenTTLHours <= 0 {
		t.Errorf("expected a positive token TTL, got %d", cfg.Auth.TokenTTLHours)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8081")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("MIDTRANS_ENV", "production")
	t.Setenv("JWT_TTL_HOURS", "not-a-number")

	cfg := Load()

	if cfg.App.Port != "8081" {
		t.Errorf("expected APP_PORT override, got %s", cfg.App.Port)
	}
	if cfg.SMTP.Port != 2525 {
		t.Errorf("expected SMTP_PORT override, got %d", cfg.SMTP.Port)
	}
	if !cfg.Payment.Production {
		t.Error("expected production payment mode")
	}
	if cfg.Auth.TokenTTLHours != 24 {
		t.Errorf("expected fallback TTL on bad value, got %d", cfg.Auth.TokenTTLHours)
	}
}
